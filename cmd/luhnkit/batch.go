package luhnkit

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/engine"
	"github.com/varalys/luhnkit/internal/files"
	"github.com/varalys/luhnkit/internal/logger"
	"github.com/varalys/luhnkit/internal/report"
)

var (
	flagBatchFiles    []string
	flagBatchWorkers  int
	flagBatchExitCode bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "batch [NUMBERS...]",
		Short: "Validate many numbers in parallel",
		Long: "batch validates numbers given as arguments (comma or space separated) and/or read from files, " +
			"one number per line. Lines starting with # are ignored. Malformed entries are reported per item.",
		RunE: runBatch,
		Example: `
luhnkit batch 79927398713,79927398710 4539148803436467
luhnkit batch --file 'numbers/**/*.txt' --workers 8`,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringArrayVarP(&flagBatchFiles, "file", "f", nil, "read numbers from files matching this glob (repeatable, ** supported)")
	cmd.Flags().IntVar(&flagBatchWorkers, "workers", 0, "worker count (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&flagBatchExitCode, "exit-code", false, "exit 1 when any number is invalid or malformed")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	workers := pickInt(flagBatchWorkers, &current.workers, nil)

	var inputs []string
	for _, a := range args {
		inputs = append(inputs, files.SplitList(a)...)
	}
	if len(flagBatchFiles) > 0 {
		paths, err := files.ExpandGlobs(flagBatchFiles)
		if err != nil {
			return err
		}
		lines, err := files.ReadInputs(ctx, paths, workers)
		if err != nil {
			return err
		}
		logger.Debug("read batch files", "files", len(paths), "lines", len(lines))
		inputs = append(inputs, lines...)
	}
	if len(inputs) == 0 {
		return errors.New("no numbers given; pass numbers as arguments or use --file")
	}
	for i := range inputs {
		inputs[i] = normalize(inputs[i])
	}
	logger.Debug("batch validate", "items", len(inputs), "workers", workers)

	opts := engine.BatchOptions{Workers: workers}
	stderr := cmd.ErrOrStderr()
	total := len(inputs)
	showProgress := !flagJSON && isTerminal(stderr)
	if showProgress {
		progressed := 0
		opts.Progress = func() {
			progressed++
			if progressed%10 == 0 || progressed == total {
				pct := float64(progressed) / float64(total) * 100
				_, _ = fmt.Fprintf(stderr, "\r[%d/%d] %.0f%%", progressed, total, pct)
			}
		}
	}
	results, err := engine.ValidateBatch(ctx, inputs, opts)
	if showProgress {
		_, _ = fmt.Fprintln(stderr)
	}
	if err != nil {
		return fmt.Errorf("batch error: %w", err)
	}

	failed := false
	for _, r := range results {
		if r.Error != "" {
			failed = true
			continue
		}
		if !r.Valid {
			failed = true
		}
		record(audit.OpBatch, r.Input, audit.Verdict(r.Valid), "")
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else if err := report.PrintBatch(out, results, printOpts()); err != nil {
		return err
	}

	if flagBatchExitCode && failed {
		return exitError{code: 1}
	}
	return nil
}
