// Package teaui hosts the Bubble Tea program for the desk TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/draft"
	"tableflip.dev/desk/pkg/notify"
	"tableflip.dev/desk/pkg/portal"
	"tableflip.dev/desk/pkg/schedule"
	"tableflip.dev/desk/pkg/store"
	"tableflip.dev/desk/pkg/table"
	"tableflip.dev/desk/pkg/tui/components/filterbar"
	"tableflip.dev/desk/pkg/tui/components/inboxlist"
	"tableflip.dev/desk/pkg/tui/components/leaveform"
	"tableflip.dev/desk/pkg/tui/components/statusbar"
	"tableflip.dev/desk/pkg/tui/events"
	"tableflip.dev/desk/pkg/tui/theme"
)

type tab int

const (
	tabInbox tab = iota
	tabLeave
	tabDrafts
	tabCount
)

var tabLabels = [tabCount]string{"inbox", "leave", "drafts"}

// NoticeTTL is how long a transient notice stays in the footer.
const NoticeTTL = 5 * time.Second

const (
	filterKey       = "tui:filter"
	filterDelay     = 300 * time.Millisecond
	inboxComponent  = events.ComponentID("inbox")
	filterComponent = events.ComponentID("filter")
	leaveComponent  = events.ComponentID("leave")
)

// Model is the root TUI model.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc
	theme  theme.Theme

	active tab
	width  int
	height int

	inbox  inboxlist.Model
	filter filterbar.Model
	leave  leaveform.Model
	bottom statusbar.Model

	allItems []notify.Item
	term     string
	drafts   []*draft.Record
	badge    int

	autosaver *draft.Autosaver
	async     chan tea.Msg
	refresh   *schedule.Ticker

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	noticeGen int
}

// messages
type errMsg struct{ err error }
type inboxLoadedMsg struct{ items []notify.Item }
type markReadDoneMsg struct {
	ref events.ItemRef
	err error
}
type submitDoneMsg struct {
	id  string
	err error
}
type countRefreshedMsg struct{ err error }
type draftsLoadedMsg struct{ records []*draft.Record }
type draftRestoredMsg struct{ fields map[string]string }
type clockTickMsg time.Time
type refreshTickMsg struct{}
type noticeExpiredMsg struct{ gen int }
type filterAppliedMsg struct{ term string }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}
type watchEventMsg struct{ event store.Event }
type watchStoppedMsg struct{}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) *Model {
	th := theme.Default()
	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		theme:  th,
		active: tabInbox,
		inbox:  inboxlist.New(inboxComponent),
		filter: filterbar.New(filterComponent),
		leave:  leaveform.New(leaveComponent, th.Form),
		bottom: statusbar.New(th.Footer),
		async:  make(chan tea.Msg, 16),
	}
	if svc != nil {
		m.autosaver = svc.Autosaver()
		interval := 30 * time.Second
		if svc.Refresh > 0 {
			interval = svc.Refresh
		}
		async := m.async
		m.refresh = schedule.NewTicker(interval, func() {
			select {
			case async <- refreshTickMsg{}:
			default:
			}
		})
	}
	m.bottom.SetHelp("enter read · space select · a all · / filter · q quit")
	return m
}

// Init loads initial data and starts the background pumps.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadInbox(),
		m.loadDrafts(),
		m.restoreDraft(),
		startWatchCmd(m.ctx, m.svc),
		m.waitForAsync(),
		clockTick(),
	)
}

func (m *Model) loadInbox() tea.Cmd {
	if m.svc == nil {
		return nil
	}
	return func() tea.Msg {
		items, err := m.svc.LoadInbox(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return inboxLoadedMsg{items: items}
	}
}

func (m *Model) loadDrafts() tea.Cmd {
	if m.svc == nil {
		return nil
	}
	return func() tea.Msg {
		keys := m.svc.DraftKeys(m.ctx)
		records := make([]*draft.Record, 0, len(keys))
		for _, key := range keys {
			rec, err := m.svc.Draft(key)
			if err != nil {
				continue
			}
			records = append(records, rec)
		}
		return draftsLoadedMsg{records: records}
	}
}

// restoreDraft loads the saved leave form values, skipping file fields.
func (m *Model) restoreDraft() tea.Cmd {
	if m.svc == nil {
		return nil
	}
	return func() tea.Msg {
		rec, err := m.svc.Draft(portal.LeaveFormKey)
		if err != nil {
			return nil
		}
		return draftRestoredMsg{fields: rec.Merge(nil, "attachment")}
	}
}

func (m *Model) markRead(ref events.ItemRef) tea.Cmd {
	return func() tea.Msg {
		return markReadDoneMsg{ref: ref, err: m.svc.MarkRead(m.ctx, ref.ID)}
	}
}

func (m *Model) submitLeave() tea.Cmd {
	req := m.leave.Request()
	return func() tea.Msg {
		id, err := m.svc.SubmitLeave(m.ctx, req)
		return submitDoneMsg{id: id, err: err}
	}
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (m *Model) refreshCount() tea.Cmd {
	return func() tea.Msg {
		return countRefreshedMsg{err: m.svc.RefreshCount(m.ctx)}
	}
}

// waitForAsync pumps scheduler callbacks back onto the program loop.
func (m *Model) waitForAsync() tea.Cmd {
	ch := m.async
	return func() tea.Msg {
		return <-ch
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.inbox.SetSize(msg.Width-6, msg.Height-8)

	case errMsg:
		cmds = append(cmds, m.setNotice(msg.err.Error(), true))

	case inboxLoadedMsg:
		m.allItems = msg.items
		m.applyFilter()
		m.syncBadge()

	case draftsLoadedMsg:
		m.drafts = msg.records

	case draftRestoredMsg:
		m.leave.SetFields(msg.fields)

	case events.MarkReadMsg:
		// Optimistic: the row disappears and the badge drops before the
		// portal answers; a failure rolls both back.
		m.removeVisible(msg.Item.ID)
		cmds = append(cmds, m.markRead(msg.Item))

	case markReadDoneMsg:
		m.reloadFromTracker()
		if msg.err != nil {
			cmds = append(cmds, m.setNotice(fmt.Sprintf("could not mark %q read", msg.ref.Label()), true))
		}

	case submitDoneMsg:
		if msg.err != nil {
			cmds = append(cmds, m.setNotice(msg.err.Error(), true))
			break
		}
		cmds = append(cmds,
			m.setNotice(fmt.Sprintf("leave request submitted as %s", msg.id), false),
			m.loadDrafts(),
		)

	case countRefreshedMsg:
		// An unreachable portal leaves the last displayed count alone.
		if msg.err == nil {
			m.syncBadge()
		}

	case refreshTickMsg:
		cmds = append(cmds, m.refreshCount(), m.waitForAsync())

	case clockTickMsg:
		m.bottom.SetClock(time.Time(msg))
		cmds = append(cmds, clockTick())

	case noticeExpiredMsg:
		if msg.gen == m.noticeGen {
			m.bottom.ClearNotice()
		}

	case events.FilterChangeMsg:
		cmds = append(cmds, m.scheduleFilter(msg.Value))

	case filterAppliedMsg:
		m.term = msg.term
		m.applyFilter()
		cmds = append(cmds, m.waitForAsync())

	case events.SelectionChangeMsg:
		if msg.Count > 0 {
			cmds = append(cmds, m.setNotice(fmt.Sprintf("%d selected (%s) · r to mark read", msg.Count, msg.State), false))
		} else {
			m.bottom.ClearNotice()
		}

	case events.FormEditMsg:
		if m.autosaver != nil {
			fields := m.leave.Fields()
			m.autosaver.Edited(portal.LeaveFormKey, func() map[string]string {
				return fields
			})
		}

	case events.NoticeMsg:
		cmds = append(cmds, m.setNotice(msg.Text, msg.IsError))

	case watchStartedMsg:
		if msg.err != nil {
			cmds = append(cmds, m.setNotice("watch: "+msg.err.Error(), true))
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case watchEventMsg:
		m.handleWatchEvent(msg.event, &cmds)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))

	case tea.KeyPressMsg:
		if done := m.handleKeyPress(msg, &cmds); done {
			return m, tea.Batch(cmds...)
		}
	}

	// Route everything not consumed above to the focused component so key
	// input and cursor messages land where the user is looking.
	switch {
	case m.active == tabInbox && m.filter.Focused():
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		cmds = append(cmds, cmd)
	case m.active == tabInbox:
		var cmd tea.Cmd
		m.inbox, cmd = m.inbox.Update(msg)
		cmds = append(cmds, cmd)
	case m.active == tabLeave:
		var cmd tea.Cmd
		m.leave, cmd = m.leave.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress owns the global keys. It reports true when the key was fully
// consumed and must not reach the focused component.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	key := msg.String()

	if key == "ctrl+c" {
		m.shutdown()
		*cmds = append(*cmds, tea.Quit)
		return true
	}

	if m.active == tabInbox && m.filter.Focused() {
		switch key {
		case "esc":
			m.filter.Blur()
			return true
		case "enter":
			m.filter.Blur()
			return true
		}
		return false
	}

	switch m.active {
	case tabInbox:
		switch key {
		case "q":
			m.shutdown()
			*cmds = append(*cmds, tea.Quit)
			return true
		case "/":
			*cmds = append(*cmds, m.filter.Focus())
			return true
		case "r":
			for _, ref := range m.inbox.SelectedRefs() {
				m.removeVisible(ref.ID)
				*cmds = append(*cmds, m.markRead(ref))
			}
			return true
		case "2":
			m.active = tabLeave
			return true
		case "3":
			m.active = tabDrafts
			return true
		}
	case tabLeave:
		switch key {
		case "esc":
			m.active = tabInbox
			return true
		case "ctrl+s":
			if errs := m.leave.Errors(); !errs.Valid() {
				*cmds = append(*cmds, m.setNotice("leave request incomplete", true))
				return true
			}
			*cmds = append(*cmds, m.submitLeave())
			return true
		}
	case tabDrafts:
		switch key {
		case "q":
			m.shutdown()
			*cmds = append(*cmds, tea.Quit)
			return true
		case "1", "esc":
			m.active = tabInbox
			return true
		case "2":
			m.active = tabLeave
			return true
		}
	}
	return false
}

func (m *Model) shutdown() {
	m.stopWatch()
	if m.refresh != nil {
		m.refresh.Stop()
		m.refresh = nil
	}
	if m.svc != nil && m.svc.Scheduler != nil {
		m.svc.Scheduler.Stop()
	}
	m.cancel()
}

func (m *Model) handleWatchEvent(ev store.Event, cmds *[]tea.Cmd) {
	switch ev.Type {
	case store.EventNamespaceChanged:
		if ev.Namespace == "autosave" {
			*cmds = append(*cmds, m.loadDrafts())
		}
	case store.EventInvalidated:
		*cmds = append(*cmds, m.loadDrafts())
	}
}

// scheduleFilter re-arms the debounce timer; the term applies only once the
// user pauses.
func (m *Model) scheduleFilter(term string) tea.Cmd {
	if m.svc == nil || m.svc.Scheduler == nil {
		return func() tea.Msg { return filterAppliedMsg{term: term} }
	}
	async := m.async
	m.svc.Scheduler.Schedule(filterKey, filterDelay, func() {
		select {
		case async <- filterAppliedMsg{term: term}:
		default:
		}
	})
	return nil
}

// applyFilter narrows the inbox rows through the shared table filter, which
// also resets the bulk selection.
func (m *Model) applyFilter() {
	rows := make([]table.Row, len(m.allItems))
	for i, it := range m.allItems {
		rows[i] = table.Row{
			ID:    it.ID,
			Cells: []string{string(it.Kind), it.From, it.Subject},
		}
	}
	view := table.NewView(table.NewSnapshot([]string{"Kind", "From", "Subject"}, rows))
	view.FilterByText(m.term)

	keep := make(map[string]bool)
	for _, id := range view.RowIDs() {
		keep[id] = true
	}
	visible := make([]notify.Item, 0, len(m.allItems))
	for _, it := range m.allItems {
		if keep[it.ID] {
			visible = append(visible, it)
		}
	}
	m.inbox.SetItems(visible)
}

// removeVisible drops one row from the current view without touching the
// canonical item set.
func (m *Model) removeVisible(id string) {
	kept := make([]notify.Item, 0, len(m.allItems))
	for _, it := range m.allItems {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	m.allItems = kept
	m.applyFilter()
	// Shadow the badge locally; the tracker has not decremented yet, and bulk
	// removals would otherwise all read the same stale count.
	if m.badge > 0 {
		m.badge--
	}
	m.bottom.SetUnread(m.badge)
}

// reloadFromTracker rebuilds the view from the tracker, which has already
// applied or rolled back the optimistic change.
func (m *Model) reloadFromTracker() {
	if m.svc == nil || m.svc.Tracker == nil {
		return
	}
	m.allItems = m.svc.Tracker.Visible()
	m.applyFilter()
	m.syncBadge()
}

func (m *Model) syncBadge() {
	if m.svc != nil {
		m.badge = m.svc.UnreadCount()
		m.bottom.SetUnread(m.badge)
	}
}

func (m *Model) setNotice(text string, isError bool) tea.Cmd {
	m.noticeGen++
	gen := m.noticeGen
	m.bottom.SetNotice(text, isError)
	return tea.Tick(NoticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{gen: gen}
	})
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabsView())
	b.WriteString("\n")

	body := ""
	switch m.active {
	case tabInbox:
		body = m.filter.View() + "\n" + m.inbox.View()
	case tabLeave:
		body = m.leave.View() + "\n" + m.theme.Panel.Faint.Render("ctrl+s submit · esc back")
	case tabDrafts:
		body = m.draftsView()
	}
	b.WriteString(m.theme.Panel.Frame.Render(body))
	b.WriteString("\n")
	b.WriteString(m.bottom.View())
	return b.String()
}

func (m *Model) tabsView() string {
	parts := make([]string, 0, int(tabCount))
	for i := tab(0); i < tabCount; i++ {
		label := fmt.Sprintf("%d:%s", int(i)+1, tabLabels[i])
		if i == m.active {
			parts = append(parts, m.theme.Tabs.Active.Render(label))
		} else {
			parts = append(parts, m.theme.Tabs.Inactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

func (m *Model) draftsView() string {
	if len(m.drafts) == 0 {
		return m.theme.Panel.Faint.Render("no drafts")
	}
	var b strings.Builder
	for i, rec := range m.drafts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.theme.Panel.Title.Render(rec.FormKey))
		b.WriteString(m.theme.Panel.Faint.Render(fmt.Sprintf("  %d field(s), saved %s", len(rec.Fields), rec.SavedAt.String())))
		b.WriteString("\n")
	}
	return b.String()
}

// faultGuard converts an unhandled panic into the error surface the command
// reports, instead of letting it take the process down.
func faultGuard(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("ui fault: %v", r)
	}
}

// Run launches the interactive TUI program.
func Run(svc *app.Service) (err error) {
	defer faultGuard(&err)
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
