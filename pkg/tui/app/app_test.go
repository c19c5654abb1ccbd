package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/desk/pkg/notify"
	"tableflip.dev/desk/pkg/tui/events"
)

func loadedModel() *Model {
	m := New(nil)
	next, _ := m.Update(inboxLoadedMsg{items: []notify.Item{
		{ID: "n1", Kind: notify.KindNotification, Subject: "Leave approved"},
		{ID: "m1", Kind: notify.KindMessage, From: "HR", Subject: "Benefits enrollment"},
	}})
	return next.(*Model)
}

func TestFilterNarrowsInbox(t *testing.T) {
	m := loadedModel()

	// With no service the debounce applies immediately.
	next, cmd := m.Update(events.FilterChangeMsg{Component: filterComponent, Value: "benefits"})
	m = next.(*Model)
	if cmd == nil {
		t.Fatal("expected an apply command")
	}
	next, _ = m.Update(cmd())
	m = next.(*Model)

	view := m.inbox.View()
	if strings.Contains(view, "Leave approved") {
		t.Fatalf("filtered row still visible:\n%s", view)
	}
	if !strings.Contains(view, "Benefits enrollment") {
		t.Fatalf("matching row missing:\n%s", view)
	}
}

func TestEmptyTermShowsAll(t *testing.T) {
	m := loadedModel()
	next, _ := m.Update(filterAppliedMsg{term: "benefits"})
	m = next.(*Model)
	next, _ = m.Update(filterAppliedMsg{term: ""})
	m = next.(*Model)

	view := m.inbox.View()
	if !strings.Contains(view, "Leave approved") || !strings.Contains(view, "Benefits enrollment") {
		t.Fatalf("rows missing after clearing the term:\n%s", view)
	}
}

func TestTabSwitching(t *testing.T) {
	m := loadedModel()

	next, _ := m.Update(tea.KeyPressMsg{Text: "2", Code: '2'})
	m = next.(*Model)
	if m.active != tabLeave {
		t.Fatalf("expected leave tab, got %v", m.active)
	}

	next, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = next.(*Model)
	if m.active != tabInbox {
		t.Fatalf("expected inbox tab, got %v", m.active)
	}
}

func TestBulkRemovalDropsBadgePerRow(t *testing.T) {
	m := loadedModel()
	m.badge = 2
	m.bottom.SetUnread(m.badge)

	next, _ := m.Update(events.MarkReadMsg{Item: events.ItemRef{ID: "n1"}})
	m = next.(*Model)
	if !strings.Contains(m.bottom.View(), "1 unread") {
		t.Fatalf("first removal did not drop the badge:\n%s", m.bottom.View())
	}

	next, _ = m.Update(events.MarkReadMsg{Item: events.ItemRef{ID: "m1"}})
	m = next.(*Model)
	if !strings.Contains(m.bottom.View(), "0 unread") {
		t.Fatalf("second removal did not drop the badge again:\n%s", m.bottom.View())
	}
}

func TestFaultGuardRecoversPanics(t *testing.T) {
	err := func() (err error) {
		defer faultGuard(&err)
		panic("index out of range")
	}()
	if err == nil || !strings.Contains(err.Error(), "index out of range") {
		t.Fatalf("panic not converted to error: %v", err)
	}
}

func TestNoticeExpiryIsGenerationGuarded(t *testing.T) {
	m := loadedModel()

	_ = m.setNotice("first", false)
	second := m.noticeGen + 1
	_ = m.setNotice("second", false)

	next, _ := m.Update(noticeExpiredMsg{gen: second - 1})
	m = next.(*Model)
	if !strings.Contains(m.bottom.View(), "second") {
		t.Fatal("stale expiry cleared the newer notice")
	}

	next, _ = m.Update(noticeExpiredMsg{gen: m.noticeGen})
	m = next.(*Model)
	if strings.Contains(m.bottom.View(), "second") {
		t.Fatal("matching expiry did not clear the notice")
	}
}
