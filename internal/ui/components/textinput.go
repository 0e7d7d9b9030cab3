package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// DefaultCharLimit caps free-text answers.
const DefaultCharLimit = 500

// TextInput wraps bubbles/textinput for free-text answers.
type TextInput struct {
	Model textinput.Model
	saved string
}

// NewTextInput creates a blurred input pre-filled with value.
func NewTextInput(placeholder, value string) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = DefaultCharLimit
	ti.SetValue(value)
	return TextInput{Model: ti, saved: value}
}

// Focus gives the input the cursor.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes the cursor.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has the cursor.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Dirty reports whether the value changed since the last MarkSaved.
func (t TextInput) Dirty() bool {
	return t.Model.Value() != t.saved
}

// MarkSaved records the current value as persisted.
func (t *TextInput) MarkSaved() {
	t.saved = t.Model.Value()
}
