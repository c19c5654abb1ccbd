// Package events defines the cross-component messages of the desk TUI.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/desk/pkg/notify"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// ItemRef captures the metadata required to identify an inbox item in
// cross-component events.
type ItemRef struct {
	ID      string
	Kind    notify.Kind
	From    string
	Subject string
}

// Label returns a human-friendly identifier for the item.
func (r ItemRef) Label() string {
	if r.Subject != "" {
		return r.Subject
	}
	return r.ID
}

// RefFromItem converts a tracker item into an event reference.
func RefFromItem(it notify.Item) ItemRef {
	return ItemRef{
		ID:      it.ID,
		Kind:    it.Kind,
		From:    it.From,
		Subject: it.Subject,
	}
}

// MarkReadMsg asks the app to acknowledge one inbox item on the portal.
type MarkReadMsg struct {
	Component ComponentID
	Item      ItemRef
}

// Describe renders the request in a human-friendly format for logs.
func (m MarkReadMsg) Describe() string {
	return fmt.Sprintf(`item:%q kind:%q`, m.Item.Label(), m.Item.Kind)
}

// MarkReadCmd wraps MarkReadMsg in a tea.Cmd.
func MarkReadCmd(component ComponentID, item ItemRef) tea.Cmd {
	return func() tea.Msg {
		return MarkReadMsg{Component: component, Item: item}
	}
}

// FilterChangeMsg is emitted on every filter keystroke. The app debounces
// before applying the term.
type FilterChangeMsg struct {
	Component ComponentID
	Value     string
}

// Describe implements the logging helper.
func (m FilterChangeMsg) Describe() string {
	return fmt.Sprintf(`value:%q`, m.Value)
}

// FilterChangeCmd wraps FilterChangeMsg.
func FilterChangeCmd(component ComponentID, value string) tea.Cmd {
	return func() tea.Msg {
		return FilterChangeMsg{Component: component, Value: value}
	}
}

// SelectionChangeMsg announces that a table's bulk selection changed.
type SelectionChangeMsg struct {
	Component ComponentID
	Count     int
	State     string
}

// Describe implements the logging helper.
func (m SelectionChangeMsg) Describe() string {
	return fmt.Sprintf(`count:%d state:%q`, m.Count, m.State)
}

// SelectionChangeCmd wraps SelectionChangeMsg.
func SelectionChangeCmd(component ComponentID, count int, state string) tea.Cmd {
	return func() tea.Msg {
		return SelectionChangeMsg{Component: component, Count: count, State: state}
	}
}

// FormEditMsg notes that a form field changed so the app can re-arm the
// debounced autosave.
type FormEditMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FormEditMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// FormEditCmd wraps FormEditMsg.
func FormEditCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FormEditMsg{Component: component}
	}
}

// NoticeMsg requests a transient status-bar notice.
type NoticeMsg struct {
	Component ComponentID
	Text      string
	IsError   bool
}

// Describe implements the logging helper.
func (m NoticeMsg) Describe() string {
	return fmt.Sprintf(`text:%q error:%t`, m.Text, m.IsError)
}

// NoticeCmd wraps NoticeMsg.
func NoticeCmd(component ComponentID, text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Component: component, Text: text, IsError: isError}
	}
}
