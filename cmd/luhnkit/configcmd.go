package luhnkit

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/varalys/luhnkit/internal/config"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput  string
	cfgForce   bool
	cfgWorkers int
	cfgLog     bool
	cfgLogFile string
	cfgMaskLog bool
	cfgNoColor bool
	cfgStrip   bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .luhnkit.yml with the selected options",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".luhnkit.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
	initCmd.Flags().IntVar(&cfgWorkers, "workers", 0, "batch worker count (0 = GOMAXPROCS)")
	// prefixed so they don't shadow the persistent flags of the same name
	initCmd.Flags().BoolVar(&cfgLog, "default-log", false, "enable the result log by default")
	initCmd.Flags().StringVar(&cfgLogFile, "default-log-file", config.DefaultLogFile, "result log path")
	initCmd.Flags().BoolVar(&cfgMaskLog, "default-mask-log", true, "mask logged numbers")
	initCmd.Flags().BoolVar(&cfgNoColor, "default-no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgStrip, "default-strip", false, "strip separators from numbers by default")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(cfgOutput); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
	}

	fc := config.FileConfig{
		NoColor:         boolPtr(cfgNoColor),
		StripSeparators: boolPtr(cfgStrip),
		LogFile:         strPtr(cfgLogFile),
		Log:             boolPtr(cfgLog),
		MaskLog:         boolPtr(cfgMaskLog),
		Workers:         intPtr(cfgWorkers),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
