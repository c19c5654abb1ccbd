// Package inboxlist renders the unread notifications and messages as a
// selectable list with tri-state bulk selection.
package inboxlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/desk/pkg/notify"
	"tableflip.dev/desk/pkg/selection"
	"tableflip.dev/desk/pkg/tui/events"
)

type listItem struct {
	ref     events.ItemRef
	checked bool
}

func (i listItem) Title() string {
	box := "[ ]"
	if i.checked {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s", box, i.ref.Label())
}

func (i listItem) Description() string {
	if i.ref.From == "" {
		return string(i.ref.Kind)
	}
	return fmt.Sprintf("%s from %s", i.ref.Kind, i.ref.From)
}

func (i listItem) FilterValue() string {
	return i.ref.Subject + " " + i.ref.From
}

// Model is the inbox list component.
type Model struct {
	id   events.ComponentID
	list list.Model
	sel  *selection.Controller
	refs []events.ItemRef
}

// New builds an empty inbox list.
func New(id events.ComponentID) Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 40, 20)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)

	return Model{
		id:   id,
		list: l,
		sel:  selection.NewController(nil),
	}
}

// SetItems replaces the rows and resets the bulk selection, as any filter or
// refresh that changes the row collection must.
func (m *Model) SetItems(items []notify.Item) {
	m.refs = make([]events.ItemRef, len(items))
	ids := make([]string, len(items))
	for i, it := range items {
		m.refs[i] = events.RefFromItem(it)
		ids[i] = it.ID
	}
	m.sel = selection.NewController(ids)
	m.syncList()
}

// SetSize resizes the embedded list.
func (m *Model) SetSize(width, height int) {
	m.list.SetWidth(width)
	m.list.SetHeight(height)
}

// CurrentRef returns the highlighted item.
func (m *Model) CurrentRef() (events.ItemRef, bool) {
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.refs) {
		return events.ItemRef{}, false
	}
	return m.refs[idx], true
}

// SelectedRefs returns the bulk-selected items in row order.
func (m *Model) SelectedRefs() []events.ItemRef {
	byID := make(map[string]events.ItemRef, len(m.refs))
	for _, ref := range m.refs {
		byID[ref.ID] = ref
	}
	ids := m.sel.Selected()
	refs := make([]events.ItemRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, byID[id])
	}
	return refs
}

// SelectionState reports the tri-state of the select-all control.
func (m *Model) SelectionState() selection.State {
	return m.sel.State()
}

// SelectionCount reports how many rows are bulk-selected.
func (m *Model) SelectionCount() int {
	return m.sel.Count()
}

// Update handles selection and acknowledgement keys; everything else routes
// to the embedded list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case " ", "space":
			if ref, ok := m.CurrentRef(); ok {
				m.sel.Toggle(ref.ID, !m.sel.IsSelected(ref.ID))
				m.syncList()
				return m, m.selectionChanged()
			}
			return m, nil
		case "a":
			m.sel.ToggleAll(m.sel.State() != selection.Checked)
			m.syncList()
			return m, m.selectionChanged()
		case "enter":
			if ref, ok := m.CurrentRef(); ok {
				return m, events.MarkReadCmd(m.id, ref)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m Model) View() string {
	if len(m.refs) == 0 {
		return "inbox empty"
	}
	return m.list.View()
}

func (m *Model) selectionChanged() tea.Cmd {
	return events.SelectionChangeCmd(m.id, m.sel.Count(), m.sel.State().String())
}

func (m *Model) syncList() {
	items := make([]list.Item, len(m.refs))
	for i, ref := range m.refs {
		items[i] = listItem{ref: ref, checked: m.sel.IsSelected(ref.ID)}
	}
	m.list.SetItems(items)
}
