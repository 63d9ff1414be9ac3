package main

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/powbench"
)

// run executes the root command with args and returns stdout, stderr and
// the command error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		base, exponent string
		want           string
	}{
		{"1", "3", "1\n"},
		{"2", "3", "8\n"},
		{"3", "3", "27\n"},
		{"4", "3", "64\n"},
		{"5", "3", "125\n"},
		{"7", "0", "1\n"},
		{"2", "-1", "NaN\n"},
		{"2", "1.5", "NaN\n"},
		{"-2", "5", "-32\n"},
	}

	for _, tt := range tests {
		t.Run(tt.base+"^"+tt.exponent, func(t *testing.T) {
			// "--" keeps negative numbers from being parsed as flags.
			stdout, _, err := run(t, "eval", "--", tt.base, tt.exponent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestEval_InvalidExponentLogsWarning(t *testing.T) {
	stdout, stderr, err := run(t, "--no-color", "eval", "--", "2", "-1")
	require.NoError(t, err)
	assert.Equal(t, "NaN\n", stdout)
	assert.Contains(t, stderr, "invalid exponent")
	assert.Contains(t, stderr, "exponent=-1")
}

func TestEval_NaNBaseIsNotAnInvalidExponent(t *testing.T) {
	stdout, stderr, err := run(t, "--no-color", "--log-level", "debug", "eval", "NaN", "2")
	require.NoError(t, err)
	assert.Equal(t, "NaN\n", stdout)
	assert.NotContains(t, stderr, "invalid exponent")
	assert.Contains(t, stderr, "evaluated")
}

func TestEval_Strict(t *testing.T) {
	_, _, err := run(t, "eval", "--strict", "--", "2", "1.5")
	require.ErrorIs(t, err, powbench.ErrInvalidExponent)

	stdout, _, err := run(t, "eval", "--strict", "2", "10")
	require.NoError(t, err)
	assert.Equal(t, "1024\n", stdout)
}

func TestEval_BadArguments(t *testing.T) {
	_, _, err := run(t, "eval", "two", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse base "two"`)

	_, _, err = run(t, "eval", "2", "three")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse exponent "three"`)

	_, _, err = run(t, "eval", "2")
	assert.Error(t, err)
}

func TestEval_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "eval", "3", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "evaluated")
	assert.Contains(t, stderr, "result=9")

	_, stderr, err = run(t, "eval", "3", "2")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "evaluated")
}

func TestLaws(t *testing.T) {
	stdout, stderr, err := run(t, "laws", "--max-exponent", "6")
	require.NoError(t, err)

	assert.Contains(t, stdout, "powbench.Power: 7 laws")
	assert.Contains(t, stdout, "exponents 0..6")
	for _, law := range powbench.DefaultLaws() {
		assert.Contains(t, stdout, law.Name)
	}
	assert.Contains(t, stderr, "laws verified")

	assert.NoError(t, powbench.Require("powbench.Power", []string{"ZeroExponent"}))
}

func TestLaws_LargeMaxExponent(t *testing.T) {
	stdout, _, err := run(t, "laws", "--max-exponent", "1100")
	require.NoError(t, err)
	assert.Contains(t, stdout, "exponents 0..1100")
}

func TestLaws_NegativeMaxExponent(t *testing.T) {
	_, _, err := run(t, "laws", "--max-exponent", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative max exponent")
}

func TestUnknownLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "eval", "2", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNewLogger_NoColorForPipes(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	logger := newLogger(w, slog.LevelInfo, false)
	logger.Info("hello", "k", 1)
	require.NoError(t, w.Close())

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "hello k=1")
	assert.NotContains(t, buf.String(), "\x1b[")
}
