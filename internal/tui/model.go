package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/varalys/luhnkit/internal/audit"
	"github.com/varalys/luhnkit/internal/report"
	"github.com/varalys/luhnkit/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type screen int

const (
	screenMenu screen = iota
	screenPrompt
	screenProgress
	screenResult
)

type action int

const (
	actionValidate action = iota
	actionGenerate
	actionExplain
	actionBatch
	actionDetect
	actionViewLog
	actionExit
)

type menuItem struct {
	title  string
	action action
	prompt string
}

var menuItems = []menuItem{
	{"Validate a Number", actionValidate, "Enter number to validate:"},
	{"Generate a Check Digit", actionGenerate, "Enter number (without check digit):"},
	{"Explain Validation Process", actionExplain, "Enter number to explain validation:"},
	{"Batch Validate Multiple Numbers", actionBatch, "Enter numbers separated by commas or spaces:"},
	{"Detect Common Errors", actionDetect, "Enter number to check for common errors:"},
	{"View Log", actionViewLog, ""},
	{"Exit", actionExit, ""},
}

// Options configures the interactive shell.
type Options struct {
	NoColor bool
	// Strip removes separators from typed numbers before they reach the engine.
	Strip bool
	// History loads the result log; nil means logging is disabled.
	History func() ([]audit.Record, error)
	// OnResult is called once per computed result.
	OnResult func(op audit.Operation, input, outcome, detail string)
	Prefs    Prefs
	// SavePrefs persists toggled preferences; nil disables saving.
	SavePrefs func(Prefs) error
}

// Model is the bubbletea state of the interactive shell. It holds no digit
// state between operations: each submission is computed from the typed text.
type Model struct {
	opts     Options
	screen   screen
	cursor   int
	current  menuItem
	input    textinput.Model
	progress progress.Model

	trace *types.Trace
	step  int
	run   int

	result   string
	plain    string
	errMsg   string
	status   string
	width    int
	height   int
	quitting bool

	copy func(string) error
}

// NewModel initializes the shell at the main menu.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "digits"
	ti.CharLimit = 4096
	ti.Width = 50
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle

	return Model{
		opts:     opts,
		screen:   screenMenu,
		input:    ti,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		copy:     clipboard.WriteAll,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case stepMsg:
		return m.advanceTrace(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenPrompt:
			return m.updatePrompt(msg)
		case screenProgress:
			if msg.String() == "esc" {
				return m.backToMenu(), nil
			}
			return m, nil
		case screenResult:
			return m.updateResult(msg)
		}
	}

	if m.screen == screenPrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "b":
		m.opts.Prefs.ShowBanner = !m.opts.Prefs.ShowBanner
		return m, m.savePrefs()
	case "m":
		m.opts.Prefs.MaskHistory = !m.opts.Prefs.MaskHistory
		return m, m.savePrefs()
	case "enter":
		return m.choose(menuItems[m.cursor])
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= len(menuItems) {
			m.cursor = int(key[0] - '1')
			return m.choose(menuItems[m.cursor])
		}
		m.status = "Invalid choice. Please select a valid option."
	}
	return m, nil
}

func (m Model) choose(item menuItem) (tea.Model, tea.Cmd) {
	m.status = ""
	switch item.action {
	case actionExit:
		m.quitting = true
		return m, tea.Quit
	case actionViewLog:
		m.current = item
		m.showHistory()
		return m, nil
	}
	m.current = item
	m.screen = screenPrompt
	m.errMsg = ""
	m.input.Reset()
	return m, m.input.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.backToMenu(), nil
	case "enter":
		return m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc", "enter":
		return m.backToMenu(), nil
	case "y":
		return m, m.copyResult()
	}
	return m, nil
}

func (m Model) backToMenu() Model {
	m.screen = screenMenu
	m.trace = nil
	m.step = 0
	m.result = ""
	m.plain = ""
	m.errMsg = ""
	m.input.Blur()
	return m
}

func (m Model) printOpts() report.PrintOptions {
	return report.PrintOptions{NoColor: m.opts.NoColor}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	switch m.screen {
	case screenMenu:
		if m.opts.Prefs.ShowBanner {
			b.WriteString(report.Banner(m.opts.NoColor))
			b.WriteString("\n\n")
		}
		b.WriteString(m.title("Luhn Algorithm Tool Menu"))
		b.WriteString("\n\n")
		for i, item := range menuItems {
			line := fmt.Sprintf("%d. %s", i+1, item.title)
			if i == m.cursor {
				b.WriteString(m.style(cursorStyle, "> "+line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.style(helpStyle, "j/k: navigate | enter/1-7: choose | b: banner | m: mask log | q: quit"))

	case screenPrompt:
		b.WriteString(m.title(m.current.title))
		b.WriteString("\n\n")
		b.WriteString(m.current.prompt)
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(m.style(errorStyle, m.errMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.style(helpStyle, "enter: submit | esc: menu | ctrl+c: quit"))

	case screenProgress:
		total := len(m.trace.Steps)
		b.WriteString(m.title(m.current.title))
		b.WriteString("\n\n")
		b.WriteString("Processing digits...\n")
		b.WriteString(m.progress.ViewAs(float64(m.step) / float64(total)))
		b.WriteString(fmt.Sprintf("\n%d/%d", m.step, total))

	case screenResult:
		b.WriteString(m.title(m.current.title))
		b.WriteString("\n\n")
		b.WriteString(m.result)
		b.WriteString("\n")
		b.WriteString(m.style(helpStyle, "y: copy | esc: menu | q: quit"))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.style(statusStyle, m.status))
	}
	return b.String()
}

func (m Model) title(s string) string {
	return m.style(titleStyle, s)
}

func (m Model) style(st lipgloss.Style, s string) string {
	if m.opts.NoColor {
		return s
	}
	return st.Render(s)
}
