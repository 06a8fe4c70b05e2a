package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathlab/internal/ui/theme"
)

// Charset limits which printable characters a TextInput accepts.
type Charset int

const (
	AnyText Charset = iota
	// Numeric accepts digits and a leading minus.
	Numeric
	// Arithmetic accepts digits, spaces, operators and separators.
	Arithmetic
)

func (c Charset) allows(r rune) bool {
	switch c {
	case Numeric:
		return r >= '0' && r <= '9' || r == '-'
	case Arithmetic:
		return r >= '0' && r <= '9' || r == ' ' || r == ',' || r == ':' || r == '.' ||
			r == '+' || r == '-' || r == '=' || r == 'x' || r == '*' || r == '/' ||
			r == '×' || r == '÷' || r == '−' || r == '<' || r == '>'
	}
	return true
}

// TextInput wraps bubbles/textinput with Mathlab styling.
type TextInput struct {
	Model     textinput.Model
	Charset   Charset
	submitted bool
	valid     bool
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder string, charset Charset, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{Model: ti, Charset: charset}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages, dropping keys outside the charset.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if !t.Charset.allows(r) {
				return t, nil
			}
		}
		t.submitted = false
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with a mark after a graded submission.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as graded.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Clear empties the input and drops the grading mark.
func (t *TextInput) Clear() {
	t.Model.SetValue("")
	t.submitted = false
}
