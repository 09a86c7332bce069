package luhnkit

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/report"
)

var (
	flagLogLimit int
	flagLogClear bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "View or clear the result log",
		Args:  cobra.NoArgs,
		RunE:  runLog,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVar(&flagLogLimit, "limit", 0, "show only the N most recent entries (0 = all)")
	cmd.Flags().BoolVar(&flagLogClear, "clear", false, "delete the result log")
}

func runLog(cmd *cobra.Command, _ []string) error {
	l := audit.NewResultLog(current.logFile)
	out := cmd.OutOrStdout()

	if flagLogClear {
		if err := l.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Cleared", l.Path())
		return nil
	}

	records, err := l.LoadHistory()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(out, "No log file found.")
			return nil
		}
		return err
	}
	if flagLogLimit > 0 && len(records) > flagLogLimit {
		records = records[:flagLogLimit]
	}

	if flagJSON {
		if records == nil {
			records = []audit.Record{}
		}
		return writeJSON(out, records)
	}
	report.PrintHistory(out, records)
	return nil
}
