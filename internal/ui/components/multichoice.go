package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathlab/internal/ui/theme"
)

// MultiChoice picks one of a few short options with arrows, number keys or
// by typing the option itself.
type MultiChoice struct {
	Options  []string
	Selected int
}

// ChoiceMsg is emitted when an option is picked.
type ChoiceMsg struct {
	Value string
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

// Update handles navigation. Enter, a number key or the option's own text
// emits a ChoiceMsg.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "left", "up", "h", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "right", "down", "l", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter":
		return m, m.choose(m.Selected)
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) {
		m.Selected = n - 1
		return m, m.choose(m.Selected)
	}
	for i, opt := range m.Options {
		if kmsg.Text == opt {
			m.Selected = i
			return m, m.choose(i)
		}
	}
	return m, nil
}

func (m MultiChoice) choose(i int) tea.Cmd {
	v := m.Options[i]
	return func() tea.Msg { return ChoiceMsg{Value: v} }
}

// View renders the options in a row.
func (m MultiChoice) View() string {
	parts := make([]string, len(m.Options))
	for i, opt := range m.Options {
		label := fmt.Sprintf(" %d) %s ", i+1, opt)
		if i == m.Selected {
			parts[i] = theme.Selected.Render("▸" + label)
		} else {
			parts[i] = theme.Unselected.Render(" " + label)
		}
	}
	return strings.Join(parts, "   ")
}
