// Package filterbar is the text filter input above a table. Every keystroke
// emits a change event; the app applies the term after its debounce delay.
package filterbar

import (
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/desk/pkg/tui/events"
)

// Model wraps the filter text input.
type Model struct {
	id    events.ComponentID
	input textinput.Model
	last  string
}

// New builds an unfocused filter bar.
func New(id events.ComponentID) Model {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.CharLimit = 128
	ti.Prompt = "/ "
	return Model{id: id, input: ti}
}

// Focus puts the cursor in the input.
func (m *Model) Focus() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

// Blur removes focus, keeping the current term.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the input owns the keyboard.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the raw term as typed.
func (m Model) Value() string {
	return m.input.Value()
}

// Reset clears the term.
func (m *Model) Reset() {
	m.input.SetValue("")
	m.last = ""
}

// Update routes keystrokes to the input and emits a change event whenever the
// value differs from the last one seen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if value := m.input.Value(); value != m.last {
		m.last = value
		cmds = append(cmds, events.FilterChangeCmd(m.id, value))
	}
	return m, tea.Batch(cmds...)
}

// View renders the input line.
func (m Model) View() string {
	return m.input.View()
}
