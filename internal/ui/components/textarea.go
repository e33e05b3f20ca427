package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/realitycheck/internal/ui/theme"
)

// TextArea wraps bubbles/textarea with Reality Check styling.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a focused multi-line input with the given number of rows.
func NewTextArea(placeholder string, rows int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(rows)
	ta.Focus()

	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the underlying textarea.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// SetWidth sets the outer width, including the border.
func (t *TextArea) SetWidth(width int) {
	inner := width - 2
	if inner < 10 {
		inner = 10
	}
	t.Model.SetWidth(inner)
}

// Focus focuses the textarea.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the textarea.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the textarea has focus.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current text.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}

// Reset clears the text.
func (t *TextArea) Reset() {
	t.Model.Reset()
}

// View renders the textarea inside a border that reflects focus.
func (t TextArea) View() string {
	if t.Model.Focused() {
		return theme.InputFocused.Render(t.Model.View())
	}
	return theme.InputBlurred.Render(t.Model.View())
}
