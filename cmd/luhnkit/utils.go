package luhnkit

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/config"
	"github.com/varalys/luhnkit/internal/engine"
	"github.com/varalys/luhnkit/internal/logger"
	"github.com/varalys/luhnkit/internal/report"
	"github.com/varalys/luhnkit/internal/validate"
)

// settings is the resolved configuration for one command run.
type settings struct {
	noColor bool
	strip   bool
	log     bool
	logFile string
	maskLog bool
	verbose bool
	workers int
}

var current settings

// setup resolves flags, environment and config files before any command
// runs. Precedence: flag > LUHNKIT_* env > local file > global file.
func setup(cmd *cobra.Command, _ []string) error {
	var gcfg, lcfg config.FileConfig
	if flagConfig != "" {
		c, err := config.LoadFile(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		lcfg = c
	} else {
		if c, err := config.LoadGlobal(); err == nil {
			gcfg = c
		}
		if c, err := config.LoadLocal("."); err == nil {
			lcfg = c
		}
	}
	ec, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	cfg := config.Merge(ec.Apply(lcfg), gcfg)

	current = settings{
		noColor: boolFlag(cmd, "no-color", flagNoColor, cfg.NoColor),
		strip:   boolFlag(cmd, "strip", flagStrip, cfg.StripSeparators),
		log:     boolFlag(cmd, "log", flagLog, cfg.Log),
		logFile: flagLogFile,
		maskLog: boolFlag(cmd, "mask-log", flagMaskLog, cfg.MaskLog),
		verbose: boolFlag(cmd, "verbose", flagVerbose, cfg.Verbose),
		workers: pickInt(0, cfg.Workers, nil),
	}
	if current.logFile == "" {
		current.logFile = cfg.GetLogFile()
	}

	logger.Init(cmd.ErrOrStderr(), current.verbose)
	logger.Debug("resolved settings",
		"command", cmd.Name(),
		"no_color", current.noColor,
		"strip", current.strip,
		"log", current.log,
		"log_file", current.logFile,
		"mask_log", current.maskLog,
		"workers", current.workers,
	)
	return nil
}

// normalize applies the boundary clean-up before input reaches the engine.
func normalize(s string) string {
	return validate.Normalize(s, current.strip)
}

// withHint suggests --strip when in only failed because of separators.
func withHint(err error, in string) error {
	if current.strip || !errors.Is(err, engine.ErrInvalidInput) {
		return err
	}
	if validate.IsDigits(validate.StripSeparators(in)) {
		return fmt.Errorf("%w (retry with --strip to ignore separators)", err)
	}
	return err
}

// record appends a result to the log when logging is on. Failures are
// reported but never change the command's outcome.
func record(op audit.Operation, input, outcome, detail string) {
	if !current.log {
		return
	}
	rec := audit.NewRecord(op, input, outcome, detail, current.maskLog)
	if _, err := audit.NewResultLog(current.logFile).Append(rec); err != nil {
		logger.Warn(fmt.Errorf("result log: %w", err))
		return
	}
	logger.Debug("logged result", "operation", string(op), "log_file", current.logFile)
}

func printOpts() report.PrintOptions {
	return report.PrintOptions{NoColor: current.noColor}
}

// writeJSON highlights only when writing to a color-capable terminal.
func writeJSON(w io.Writer, v any) error {
	return report.WriteJSON(w, v, !current.noColor && isTerminal(w))
}

func boolFlag(cmd *cobra.Command, name string, cli bool, file *bool) bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return cli
	}
	return pickBool(cli, file, nil)
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
