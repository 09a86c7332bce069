package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/engine"
	"github.com/varalys/luhnkit/internal/files"
	"github.com/varalys/luhnkit/internal/report"
	"github.com/varalys/luhnkit/internal/validate"
)

type statusMsg string

// stepMsg advances the explain progress bar by one digit. run ties the tick
// to the explain run that scheduled it.
type stepMsg struct{ run int }

const stepInterval = 60 * time.Millisecond

func nextStep(run int) tea.Cmd {
	return tea.Tick(stepInterval, func(time.Time) tea.Msg { return stepMsg{run: run} })
}

// submit runs the selected operation on the typed text. Malformed input keeps
// the prompt open with the engine's message.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := validate.Normalize(m.input.Value(), m.opts.Strip)
	m.errMsg = ""

	var out, plain bytes.Buffer
	render := func(fn func(w *bytes.Buffer, opts report.PrintOptions) error) error {
		if err := fn(&out, m.printOpts()); err != nil {
			return err
		}
		return fn(&plain, report.PrintOptions{NoColor: true})
	}

	var err error
	switch m.current.action {
	case actionValidate:
		var ok bool
		if ok, err = engine.IsValid(raw); err == nil {
			m.emit(audit.OpValidate, raw, audit.Verdict(ok), "")
			err = render(func(w *bytes.Buffer, o report.PrintOptions) error {
				report.PrintValidation(w, raw, ok, o)
				return nil
			})
		}

	case actionGenerate:
		var d int
		if d, err = engine.CheckDigit(raw); err == nil {
			m.emit(audit.OpGenerate, raw, strconv.Itoa(d), raw+strconv.Itoa(d))
			err = render(func(w *bytes.Buffer, o report.PrintOptions) error {
				report.PrintCheckDigit(w, raw, d, o)
				return nil
			})
		}

	case actionExplain:
		tr, terr := engine.Explain(raw)
		if terr == nil {
			m.emit(audit.OpExplain, raw, audit.Verdict(tr.Valid), fmt.Sprintf("checksum %d", tr.Checksum))
			m.trace = &tr
			m.step = 0
			m.run++
			m.screen = screenProgress
			m.input.Blur()
			return m, nextStep(m.run)
		}
		err = terr

	case actionBatch:
		// split before stripping, or spaces between numbers would vanish
		inputs := files.SplitList(m.input.Value())
		for i := range inputs {
			inputs[i] = validate.Normalize(inputs[i], m.opts.Strip)
		}
		if len(inputs) == 0 {
			m.errMsg = "Enter at least one number."
			return m, nil
		}
		results, berr := engine.ValidateBatch(context.Background(), inputs, engine.BatchOptions{})
		if berr != nil {
			err = berr
			break
		}
		for _, r := range results {
			if r.Error != "" {
				continue
			}
			m.emit(audit.OpBatch, r.Input, audit.Verdict(r.Valid), "")
		}
		err = render(func(w *bytes.Buffer, o report.PrintOptions) error {
			return report.PrintBatch(w, results, o)
		})

	case actionDetect:
		cs, derr := engine.DetectCorrections(raw)
		if derr == nil {
			m.emit(audit.OpDetect, raw, fmt.Sprintf("%d candidates", len(cs)), "")
			derr = render(func(w *bytes.Buffer, o report.PrintOptions) error {
				return report.PrintCorrections(w, cs, o)
			})
		}
		err = derr
	}

	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) {
			m.errMsg = err.Error()
		} else {
			m.errMsg = fmt.Sprintf("Error: %v", err)
		}
		m.input.Reset()
		return m, nil
	}

	m.result = out.String()
	m.plain = plain.String()
	m.screen = screenResult
	m.input.Blur()
	return m, nil
}

func (m Model) advanceTrace(msg stepMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenProgress || m.trace == nil || msg.run != m.run {
		return m, nil
	}
	m.step++
	if m.step < len(m.trace.Steps) {
		return m, nextStep(m.run)
	}

	var out, plain bytes.Buffer
	if err := report.PrintTrace(&out, *m.trace, m.printOpts()); err != nil {
		m.status = fmt.Sprintf("Render error: %v", err)
	}
	_ = report.PrintTrace(&plain, *m.trace, report.PrintOptions{NoColor: true})
	m.result = out.String()
	m.plain = plain.String()
	m.screen = screenResult
	return m, nil
}

func (m *Model) showHistory() {
	m.screen = screenResult
	if m.opts.History == nil {
		m.result = "Logging is disabled. Enable it with --log or log: true in .luhnkit.yml.\n"
		m.plain = m.result
		return
	}
	records, err := m.opts.History()
	if err != nil {
		m.result = "No log file found.\n"
		m.plain = m.result
		return
	}
	if m.opts.Prefs.MaskHistory {
		for i := range records {
			records[i].Input = audit.MaskNumber(records[i].Input)
		}
	}
	var buf bytes.Buffer
	report.PrintHistory(&buf, records)
	m.result = buf.String()
	m.plain = m.result
}

func (m Model) emit(op audit.Operation, input, outcome, detail string) {
	if m.opts.OnResult != nil {
		m.opts.OnResult(op, input, outcome, detail)
	}
}

// copyResult copies the plain-text form of the last result to the clipboard.
func (m Model) copyResult() tea.Cmd {
	text := m.plain
	if text == "" {
		return func() tea.Msg { return statusMsg("Nothing to copy") }
	}
	copyFn := m.copy
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			return statusMsg(fmt.Sprintf("Clipboard error: %v", err))
		}
		return statusMsg("Copied result to clipboard")
	}
}

func (m Model) savePrefs() tea.Cmd {
	if m.opts.SavePrefs == nil {
		return nil
	}
	prefs, save := m.opts.Prefs, m.opts.SavePrefs
	return func() tea.Msg {
		if err := save(prefs); err != nil {
			return statusMsg(fmt.Sprintf("Could not save preferences: %v", err))
		}
		return statusMsg("Preferences saved")
	}
}
