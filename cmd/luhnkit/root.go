package luhnkit

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagJSON    bool
	flagNoColor bool
	flagVerbose bool
	flagStrip   bool
	flagLog     bool
	flagLogFile string
	flagMaskLog bool
	flagConfig  string

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the luhnkit CLI.
var rootCmd = &cobra.Command{
	Use:   "luhnkit",
	Short: "Validate, generate and explain Luhn check digits",
	Long: "luhnkit validates digit strings with the Luhn (mod 10) checksum, generates check digits, " +
		"explains the computation step by step and suggests corrections for single-digit and transposition errors.",
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

// exitError carries a non-zero exit status without an error message.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// Execute runs the luhnkit CLI. It should be called by the main package.
func Execute() {
	os.Exit(executeArgs(os.Args[1:], os.Stdout, os.Stderr))
}

func executeArgs(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(stderr, "error:", err)
	return 2
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "print diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagStrip, "strip", false, "remove spaces, dashes and dots from numbers before checking")
	rootCmd.PersistentFlags().BoolVar(&flagLog, "log", false, "append results to the result log")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "result log path (default luhnkit_log.jsonl)")
	rootCmd.PersistentFlags().BoolVar(&flagMaskLog, "mask-log", false, "mask logged numbers, keeping the first 6 and last 4 digits")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default .luhnkit.yml, then ~/.config/luhnkit/config.yml)")
}

// runRoot opens the interactive shell on a terminal and prints help otherwise.
func runRoot(cmd *cobra.Command, _ []string) error {
	if isTerminal(cmd.OutOrStdout()) && term.IsTerminal(int(os.Stdin.Fd())) {
		return runInteractive(cmd, nil)
	}
	return cmd.Help()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
