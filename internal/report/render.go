package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/types"
)

type PrintOptions struct {
	NoColor bool
}

var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// Verdict returns "Valid" or "Invalid", colored unless opts.NoColor.
func Verdict(valid bool, opts PrintOptions) string {
	word, style := "Invalid", invalidStyle
	if valid {
		word, style = "Valid", validStyle
	}
	if opts.NoColor {
		return word
	}
	return style.Render(word)
}

func label(s string, opts PrintOptions) string {
	if opts.NoColor {
		return s
	}
	return labelStyle.Render(s)
}

// PrintValidation prints one validation line per number.
func PrintValidation(w io.Writer, input string, valid bool, opts PrintOptions) {
	fmt.Fprintf(w, "%s %s: %s\n", label("Validation Result:", opts), input, Verdict(valid, opts))
}

func PrintCheckDigit(w io.Writer, partial string, digit int, opts PrintOptions) {
	fmt.Fprintf(w, "%s %d\n", label("Generated Check Digit:", opts), digit)
	fmt.Fprintf(w, "Full number: %s%d\n", partial, digit)
}

// StepAction describes what the walk did with one digit.
func StepAction(s types.Step) string {
	if s.Doubled {
		return fmt.Sprintf("Doubling %d gives %d -> Adjusted to %d", s.Digit, s.Digit*2, s.Value)
	}
	return fmt.Sprintf("Unchanged %d", s.Digit)
}

// PrintTrace renders a step table followed by the total and verdict.
func PrintTrace(w io.Writer, tr types.Trace, opts PrintOptions) error {
	table := tablewriter.NewWriter(w)
	table.Header("Step", "Position", "Digit", "Action", "Value", "Running Sum")
	for i, s := range tr.Steps {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Position),
			strconv.Itoa(s.Digit),
			StepAction(s),
			strconv.Itoa(s.Value),
			strconv.Itoa(s.Running),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("render trace: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render trace: %w", err)
	}
	fmt.Fprintf(w, "Total checksum: %d\n", tr.Checksum)
	fmt.Fprintf(w, "Result: %s\n", Verdict(tr.Valid, opts))
	return nil
}

// PrintCorrections renders the candidates or a fixed message when none exist.
func PrintCorrections(w io.Writer, corrections []types.Correction, opts PrintOptions) error {
	if len(corrections) == 0 {
		fmt.Fprintln(w, "No common errors detected.")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("Kind", "Index", "Candidate")
	for _, c := range corrections {
		idx := strconv.Itoa(c.Index)
		if c.Kind == types.KindTransposition {
			idx = fmt.Sprintf("%d-%d", c.Index, c.Index+1)
		}
		if err := table.Append([]string{string(c.Kind), idx, c.Candidate}); err != nil {
			return fmt.Errorf("render corrections: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render corrections: %w", err)
	}
	fmt.Fprintf(w, "Candidates: %d\n", len(corrections))
	return nil
}

// PrintBatch renders one row per item and a summary footer.
func PrintBatch(w io.Writer, results []types.BatchResult, opts PrintOptions) error {
	valid, invalid, failed := 0, 0, 0
	table := tablewriter.NewWriter(w)
	table.Header("Number", "Result", "Checksum")
	for _, r := range results {
		var row []string
		switch {
		case r.Error != "":
			failed++
			row = []string{r.Input, "Error", r.Error}
		case r.Valid:
			valid++
			row = []string{r.Input, "Valid", strconv.Itoa(r.Checksum)}
		default:
			invalid++
			row = []string{r.Input, "Invalid", strconv.Itoa(r.Checksum)}
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("render batch: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render batch: %w", err)
	}
	fmt.Fprintf(w, "Numbers: %d (valid: %d, invalid: %d, errors: %d)\n", len(results), valid, invalid, failed)
	return nil
}

func PrintHistory(w io.Writer, records []audit.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No log entries.")
		return
	}
	for _, r := range records {
		fmt.Fprintln(w, r.Line())
	}
}
