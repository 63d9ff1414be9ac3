package powbench

import (
	"fmt"
	"testing"
)

// AssertPower verifies Power(base, exponent) equals want exactly.
func AssertPower(t *testing.T, base, exponent, want float64) {
	t.Helper()

	got := Power(base, exponent)
	if IsInvalid(got) {
		t.Errorf("Power(%g, %g) = NaN, want %g", base, exponent, want)
		return
	}
	if got != want {
		t.Errorf("Power(%g, %g) = %g, want %g", base, exponent, got, want)
	}
}

// AssertInvalid verifies Power(base, exponent) returns the invalid-result
// marker instead of a number.
func AssertInvalid(t *testing.T, base, exponent float64) {
	t.Helper()

	if got := Power(base, exponent); !IsInvalid(got) {
		t.Errorf("Power(%g, %g) = %g, want NaN", base, exponent, got)
	}
}

// AssertCubes registers one subtest per integer x in [from, to], each
// checking that x to the power 3 is x*x*x.
//
// Subtests are named after their input and expectation:
//
//	"2 to the power 3 is 8"
func AssertCubes(t *testing.T, from, to int) {
	t.Helper()

	for x := from; x <= to; x++ {
		base := float64(x)
		want := base * base * base
		t.Run(fmt.Sprintf("%g to the power 3 is %g", base, want), func(t *testing.T) {
			AssertPower(t, base, 3, want)
		})
	}
}

// AssertLaws runs VerifyLaws and fails the test on any violation.
func AssertLaws(t *testing.T, cfg LawConfig) LawVerified {
	t.Helper()

	proof, err := VerifyLaws(cfg)
	if err != nil {
		t.Fatalf("Law verification failed: %v", err)
	}

	t.Logf("✓ %s satisfies %d laws over %d samples", proof.Function, len(proof.Laws), proof.Samples)
	for _, law := range proof.Laws {
		t.Logf("  - %s", law)
	}
	return proof
}
