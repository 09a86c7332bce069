package luhnkit

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/engine"
	"github.com/varalys/luhnkit/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "detect NUMBER",
		Short: "Suggest single-digit and transposition corrections",
		Long: "detect lists every number reachable by changing one digit or swapping two adjacent digits " +
			"that passes the Luhn check. Substitutions are listed first, then transpositions.",
		Args: cobra.ExactArgs(1),
		RunE: runDetect,
	}
	rootCmd.AddCommand(cmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	in := normalize(args[0])
	cs, err := engine.DetectCorrections(in)
	if err != nil {
		return withHint(err, in)
	}
	record(audit.OpDetect, in, fmt.Sprintf("%d candidates", len(cs)), "")

	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), cs)
	}
	return report.PrintCorrections(cmd.OutOrStdout(), cs, printOpts())
}
