package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestChoiceList_SelectWithArrowsAndEnter(t *testing.T) {
	c := NewChoiceList([]string{"Fast", "Careful", "Both"}, "", false)
	c.Focused = true

	if _, ok := c.Value(); ok {
		t.Fatal("expected no value before choosing")
	}

	c, _ = c.Update(specialKey(tea.KeyDown))
	c, _ = c.Update(specialKey(tea.KeyEnter))
	if v, ok := c.Value(); !ok || v != "Careful" {
		t.Errorf("Value() = %q, %v, want Careful", v, ok)
	}
}

func TestChoiceList_NumberKeys(t *testing.T) {
	c := NewChoiceList([]string{"1", "2", "3", "4", "5"}, "", true)
	c.Focused = true

	c, _ = c.Update(keyPress('4'))
	if v, _ := c.Value(); v != "4" {
		t.Errorf("Value() = %q, want 4", v)
	}
	c, _ = c.Update(keyPress('9'))
	if v, _ := c.Value(); v != "4" {
		t.Errorf("out-of-range number changed value to %q", v)
	}
}

func TestChoiceList_IgnoresInputWhenBlurred(t *testing.T) {
	c := NewChoiceList([]string{"A", "B"}, "B", false)
	c, _ = c.Update(specialKey(tea.KeyUp))
	c, _ = c.Update(specialKey(tea.KeyEnter))
	if v, _ := c.Value(); v != "B" {
		t.Errorf("blurred list changed value to %q", v)
	}
	if c.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1 (starts on chosen)", c.Cursor)
	}
}

func TestRankList_MoveAndConfirm(t *testing.T) {
	r := NewRankList([]string{"A", "B", "C"}, nil)
	r.Focused = true

	r, _ = r.Update(specialKey(tea.KeyDown))
	r, _ = r.Update(specialKey(tea.KeySpace))
	r, _ = r.Update(specialKey(tea.KeyUp))
	if got := strings.Join(r.Order(), ","); got != "B,A,C" {
		t.Errorf("order = %s, want B,A,C", got)
	}
	if r.Confirmed {
		t.Error("moving must clear confirmation")
	}

	r, _ = r.Update(specialKey(tea.KeyEnter))
	if !r.Confirmed || r.Holding {
		t.Errorf("after enter: confirmed=%v holding=%v", r.Confirmed, r.Holding)
	}
}

func TestRankList_RestoresSavedOrder(t *testing.T) {
	r := NewRankList([]string{"A", "B", "C"}, []string{"C", "A", "B"})
	if got := strings.Join(r.Order(), ","); got != "C,A,B" || !r.Confirmed {
		t.Errorf("order = %s confirmed=%v", got, r.Confirmed)
	}

	r = NewRankList([]string{"A", "B"}, []string{"A", "Z"})
	if got := strings.Join(r.Order(), ","); got != "A,B" || r.Confirmed {
		t.Errorf("foreign order must be ignored, got %s", got)
	}
}

func TestTextInput_Dirty(t *testing.T) {
	ti := NewTextInput("Type here", "draft")
	if ti.Dirty() {
		t.Error("fresh input must not be dirty")
	}
	ti.Model.SetValue("draft 2")
	if !ti.Dirty() {
		t.Error("expected dirty after edit")
	}
	ti.MarkSaved()
	if ti.Dirty() {
		t.Error("expected clean after MarkSaved")
	}
}

func TestMeter(t *testing.T) {
	m := Meter{Label: "Scenarios", LabelWidth: 12, Value: 90, Max: 100, Width: 50}
	if got := m.Fraction(); got != 0.9 {
		t.Errorf("Fraction() = %v, want 0.9", got)
	}
	view := m.View()
	if !strings.Contains(view, "Scenarios") || !strings.Contains(view, "90.0") {
		t.Errorf("unexpected meter view %q", view)
	}

	over := Meter{Value: 150, Max: 100}
	if over.Fraction() != 1 {
		t.Errorf("Fraction() = %v, want clamp to 1", over.Fraction())
	}
	if (Meter{Value: 5}).Fraction() != 0 {
		t.Error("zero Max should give 0")
	}
}

func TestMenu_ArrowsWrapAndNumbersPick(t *testing.T) {
	var picked []string
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			picked = append(picked, label)
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Start over", Action: pick("start")},
		{Label: "Quit", Action: pick("quit")},
	})

	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want wrap to 1", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyEnter))
	m, _ = m.Update(keyPress('1'))
	m, _ = m.Update(keyPress('7'))

	if strings.Join(picked, ",") != "quit,start" {
		t.Errorf("picked = %v", picked)
	}
	if !strings.Contains(m.View(), "2  Quit") {
		t.Errorf("expected numbered items, got %q", m.View())
	}
}

func TestButton(t *testing.T) {
	if !strings.Contains(Button("Continue", true), "▸ Continue") {
		t.Error("focused button should carry the marker")
	}
	if strings.Contains(Button("Continue", false), "▸") {
		t.Error("blurred button should not carry the marker")
	}
}
