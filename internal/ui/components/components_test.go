package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_SkipsDisabledAndWraps(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Errorf("after wrap = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 3 {
		t.Errorf("after up wrap = %d, want 3", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd { ran = true; return nil }}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected Enter to run the selected action")
	}
}

func TestMultiChoice(t *testing.T) {
	mc := NewMultiChoice([]string{"<", "=", ">"})

	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if mc.Selected != 1 {
		t.Errorf("after right = %d, want 1", mc.Selected)
	}

	tests := []struct {
		msg  tea.KeyPressMsg
		want string
	}{
		{tea.KeyPressMsg{Code: tea.KeyEnter}, "="},
		{keyPress('3'), ">"},
		{keyPress('<'), "<"},
	}
	for _, tc := range tests {
		var cmd tea.Cmd
		mc, cmd = mc.Update(tc.msg)
		if cmd == nil {
			t.Fatalf("%v: expected a choice command", tc.msg)
		}
		got, ok := cmd().(ChoiceMsg)
		if !ok || got.Value != tc.want {
			t.Errorf("%v: choice = %+v, want %q", tc.msg, got, tc.want)
		}
	}

	if _, cmd := mc.Update(keyPress('9')); cmd != nil {
		t.Error("out of range number should not choose")
	}
}

func TestTextInput_Charset(t *testing.T) {
	ti := NewTextInput("", Numeric, 10)
	for _, r := range "4a2" {
		ti, _ = ti.Update(keyPress(r))
	}
	if got := ti.Value(); got != "42" {
		t.Errorf("numeric value = %q, want %q", got, "42")
	}

	ti = NewTextInput("", AnyText, 10)
	for _, r := range "cat" {
		ti, _ = ti.Update(keyPress(r))
	}
	ti.Submit(true)
	ti.Clear()
	if ti.Value() != "" {
		t.Errorf("Clear left %q", ti.Value())
	}
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar("", 1, 4, 20)
	if p.Percent != 0.25 {
		t.Errorf("Percent = %v, want 0.25", p.Percent)
	}
	if NewProgressBar("", 1, 0, 20).Percent != 0 {
		t.Error("zero total should give zero percent")
	}
}
