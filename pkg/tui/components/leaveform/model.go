// Package leaveform is the leave request compose form: four fields with live
// range feedback and per-field validation markers.
package leaveform

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/desk/pkg/daterange"
	"tableflip.dev/desk/pkg/form"
	"tableflip.dev/desk/pkg/portal"
	"tableflip.dev/desk/pkg/tui/events"
	"tableflip.dev/desk/pkg/tui/theme"
)

const (
	fieldType = iota
	fieldStart
	fieldEnd
	fieldReason
	fieldCount
)

var labels = [fieldCount]string{"Leave type", "Start date", "End date", "Reason"}
var names = [fieldCount]string{"leave_type", "start_date", "end_date", "reason"}

// Model is the leave request form component.
type Model struct {
	id     events.ComponentID
	styles theme.FormTheme
	inputs [fieldCount]textinput.Model
	focus  int
	now    func() time.Time
}

// New builds the form with the type field focused.
func New(id events.ComponentID, styles theme.FormTheme) Model {
	m := Model{id: id, styles: styles, now: time.Now}
	placeholders := [fieldCount]string{
		strings.Join(portal.LeaveTypes, "|"),
		"2006-01-02",
		"2006-01-02",
		"optional",
	}
	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[fieldType].Focus()
	return m
}

// Fields snapshots the current values under their portal field names.
func (m Model) Fields() map[string]string {
	fields := make(map[string]string, fieldCount)
	for i := 0; i < fieldCount; i++ {
		fields[names[i]] = m.inputs[i].Value()
	}
	return fields
}

// SetFields restores values, typically from a draft.
func (m *Model) SetFields(fields map[string]string) {
	for i := 0; i < fieldCount; i++ {
		if value, ok := fields[names[i]]; ok {
			m.inputs[i].SetValue(value)
		}
	}
}

// Range returns the raw date pair.
func (m Model) Range() daterange.Range {
	return daterange.Range{
		Start: m.inputs[fieldStart].Value(),
		End:   m.inputs[fieldEnd].Value(),
	}
}

// Request builds the pending leave request from the current values.
func (m Model) Request() portal.LeaveRequest {
	return portal.LeaveRequest{
		Type:   m.inputs[fieldType].Value(),
		Start:  m.inputs[fieldStart].Value(),
		End:    m.inputs[fieldEnd].Value(),
		Reason: m.inputs[fieldReason].Value(),
		Status: portal.StatusPending,
	}
}

// Errors runs the field checks against the current values.
func (m Model) Errors() form.Errors {
	errs := form.Errors{}
	t := m.inputs[fieldType].Value()
	if msg := form.Required(t); msg != "" {
		errs.Set(names[fieldType], msg)
	} else if !portal.ValidLeaveType(t) {
		errs.Set(names[fieldType], "unknown leave type")
	}
	errs.Set(names[fieldStart], form.Required(m.inputs[fieldStart].Value()))
	errs.Set(names[fieldEnd], form.Required(m.inputs[fieldEnd].Value()))

	r := m.Range()
	if _, _, ok := r.Bounds(); ok {
		v := r.Validate(m.now())
		if v.EndBeforeStart {
			errs.Set(names[fieldEnd], "End date cannot be before start date")
		}
		if v.StartInPast {
			errs.Set(names[fieldStart], "Start date cannot be in the past")
		}
	}
	return errs
}

// Update cycles focus on tab keys and routes everything else to the focused
// input, emitting an edit event when a value changes.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		}
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		return m, tea.Batch(cmd, events.FormEditCmd(m.id))
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m, textinput.Blink
}

// View renders the fields, their validation markers, and the live range
// feedback under the dates.
func (m Model) View() string {
	errs := m.Errors()
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		marker := "  "
		if i == m.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(m.styles.Label.Render(fmt.Sprintf("%-10s", labels[i])))
		b.WriteString(" ")
		b.WriteString(m.styles.Value.Render(m.inputs[i].View()))
		if msg, flagged := errs[names[i]]; flagged && m.inputs[i].Value() != "" {
			b.WriteString("  ")
			b.WriteString(m.styles.Problem.Render(msg))
		}
		b.WriteString("\n")
	}

	r := m.Range()
	if days, show := r.DisplayDuration(m.now()); show {
		line := fmt.Sprintf("Duration: %d day(s)", days)
		if r.Extended() {
			line += "  extended leave"
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render(line))
		b.WriteString("\n")
	} else if min := r.MinEnd(); min != "" && m.inputs[fieldEnd].Value() == "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("End date on or after " + min))
		b.WriteString("\n")
	}
	return b.String()
}
