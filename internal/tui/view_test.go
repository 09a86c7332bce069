package tui

import (
	"strings"
	"testing"
)

func TestView_Rendering(t *testing.T) {
	m := NewModel(Options{NoColor: true, Prefs: DefaultPrefs()})

	// 1. Menu with banner
	output := m.View()
	if !strings.Contains(output, "Luhn Algorithm Tool Menu") {
		t.Errorf("menu title missing: %q", output)
	}
	if !strings.Contains(output, "> 1. Validate a Number") {
		t.Errorf("cursor should mark the first entry: %q", output)
	}
	if !strings.Contains(output, "7. Exit") {
		t.Errorf("exit entry missing: %q", output)
	}
	if !strings.Contains(output, "|_|") {
		t.Errorf("banner should be shown by default: %q", output)
	}

	// 2. Menu without banner
	m.opts.Prefs.ShowBanner = false
	if strings.Contains(m.View(), "|_|") {
		t.Error("banner should be hidden when ShowBanner is false")
	}

	// 3. Prompt with error
	m.screen = screenPrompt
	m.current = menuItems[0]
	m.errMsg = "invalid input \"x\": non-digit character 'x' at offset 0"
	output = m.View()
	if !strings.Contains(output, "Enter number to validate:") {
		t.Errorf("prompt text missing: %q", output)
	}
	if !strings.Contains(output, "non-digit character") {
		t.Errorf("error message missing: %q", output)
	}

	// 4. Result with status
	m.screen = screenResult
	m.result = "Validation Result: 0: Valid\n"
	m.status = "Copied result to clipboard"
	output = m.View()
	if !strings.Contains(output, "Validation Result: 0: Valid") {
		t.Errorf("result missing: %q", output)
	}
	if !strings.Contains(output, "Copied result to clipboard") {
		t.Errorf("status missing: %q", output)
	}

	// 5. Quitting renders nothing
	m.quitting = true
	if m.View() != "" {
		t.Error("View should be empty while quitting")
	}
}

func TestView_Colored(t *testing.T) {
	m := NewModel(Options{})
	if m.View() == "" {
		t.Error("View returned empty string")
	}
}
