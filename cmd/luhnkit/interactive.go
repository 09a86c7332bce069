package luhnkit

import (
	"github.com/spf13/cobra"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"menu", "shell"},
		Short:   "Open the interactive menu",
		Args:    cobra.NoArgs,
		RunE:    runInteractive,
	}
	rootCmd.AddCommand(cmd)
}

func runInteractive(_ *cobra.Command, _ []string) error {
	return tui.Run(interactiveOptions())
}

func interactiveOptions() tui.Options {
	opts := tui.Options{
		NoColor:   current.noColor,
		Strip:     current.strip,
		OnResult:  record,
		Prefs:     tui.LoadPrefs(),
		SavePrefs: tui.SavePrefs,
	}
	if current.log {
		l := audit.NewResultLog(current.logFile)
		opts.History = l.LoadHistory
	}
	return opts
}
