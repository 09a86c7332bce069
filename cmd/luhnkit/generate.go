package luhnkit

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/engine"
	"github.com/varalys/luhnkit/internal/report"
)

var flagGenerateFull bool

type checkDigitResult struct {
	Partial    string `json:"partial"`
	CheckDigit int    `json:"check_digit"`
	Number     string `json:"number"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "generate PARTIAL",
		Short: "Compute the check digit for a partial number",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
		Example: `
luhnkit generate 7992739871
luhnkit generate --full 7992739871`,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagGenerateFull, "full", false, "print only the completed number")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	partial := normalize(args[0])
	d, err := engine.CheckDigit(partial)
	if err != nil {
		return withHint(err, partial)
	}
	res := checkDigitResult{Partial: partial, CheckDigit: d, Number: partial + strconv.Itoa(d)}
	record(audit.OpGenerate, partial, strconv.Itoa(d), res.Number)

	out := cmd.OutOrStdout()
	switch {
	case flagJSON:
		return writeJSON(out, res)
	case flagGenerateFull:
		fmt.Fprintln(out, res.Number)
	default:
		report.PrintCheckDigit(out, partial, d, printOpts())
	}
	return nil
}
