package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/powbench"
)

type rootOptions struct {
	logLevel string
	noColor  bool
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "powbench",
		Short:         "Evaluate integer powers and verify the laws of exponentiation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), level, opts.noColor)
			slog.SetDefault(opts.logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored log output")

	cmd.AddCommand(newEvalCmd(opts), newLawsCmd(opts))
	return cmd
}

func newEvalCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "eval BASE EXPONENT",
		Short: "Print BASE raised to EXPONENT (NaN for unsupported exponents)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse base %q: %w", args[0], err)
			}
			exponent, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse exponent %q: %w", args[1], err)
			}

			result := powbench.Power(base, exponent)
			if strict {
				if result, err = powbench.PowerChecked(base, exponent); err != nil {
					return err
				}
			}
			if !powbench.ValidExponent(exponent) {
				opts.logger.Warn("invalid exponent", "base", base, "exponent", exponent)
			} else {
				opts.logger.Debug("evaluated", "base", base, "exponent", exponent, "result", result)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail instead of printing NaN for unsupported exponents")
	return cmd
}

func newLawsCmd(opts *rootOptions) *cobra.Command {
	var maxExponent int

	cmd := &cobra.Command{
		Use:   "laws",
		Short: "Verify Power against the laws of exponentiation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := powbench.DefaultLawConfig()
			cfg.MaxExponent = maxExponent

			opts.logger.Debug("verifying laws",
				"function", cfg.Function,
				"laws", len(cfg.Laws),
				"bases", len(cfg.Bases),
				"max_exponent", cfg.MaxExponent)

			proof, err := powbench.VerifyLaws(cfg)
			if err != nil {
				return err
			}
			powbench.Register(proof)

			opts.logger.Info("laws verified", "function", proof.Function, "samples", proof.Samples)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d laws, %d samples, exponents 0..%d\n",
				proof.Function, len(proof.Laws), proof.Samples, proof.MaxExponent)
			fmt.Fprintf(out, "  %s\n", strings.Join(proof.Laws, "\n  "))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxExponent, "max-exponent", 10, "largest exponent sampled")
	return cmd
}
