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
		Use:   "explain NUMBER",
		Short: "Show the checksum computation step by step",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplain,
	}
	rootCmd.AddCommand(cmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	in := normalize(args[0])
	tr, err := engine.Explain(in)
	if err != nil {
		return withHint(err, in)
	}
	record(audit.OpExplain, in, audit.Verdict(tr.Valid), fmt.Sprintf("checksum %d", tr.Checksum))

	if flagJSON {
		return writeJSON(cmd.OutOrStdout(), tr)
	}
	return report.PrintTrace(cmd.OutOrStdout(), tr, printOpts())
}
