package luhnkit

import (
	"github.com/spf13/cobra"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/engine"
	"github.com/varalys/luhnkit/internal/report"
	"github.com/varalys/luhnkit/internal/types"
)

var flagValidateExitCode bool

func init() {
	cmd := &cobra.Command{
		Use:   "validate NUMBER...",
		Short: "Check numbers against the Luhn checksum",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate,
		Example: `
luhnkit validate 79927398713
luhnkit validate --exit-code 4539148803436467 4539148803436466`,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagValidateExitCode, "exit-code", false, "exit 1 when any number is invalid")
}

func runValidate(cmd *cobra.Command, args []string) error {
	// Reject malformed input before printing anything.
	results := make([]types.BatchResult, 0, len(args))
	for _, a := range args {
		in := normalize(a)
		sum, err := engine.Checksum(in)
		if err != nil {
			return withHint(err, in)
		}
		results = append(results, types.BatchResult{Input: in, Valid: sum%10 == 0, Checksum: sum})
	}

	anyInvalid := false
	for _, r := range results {
		record(audit.OpValidate, r.Input, audit.Verdict(r.Valid), "")
		if !r.Valid {
			anyInvalid = true
		}
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			report.PrintValidation(out, r.Input, r.Valid, printOpts())
		}
	}

	if flagValidateExitCode && anyInvalid {
		return exitError{code: 1}
	}
	return nil
}
