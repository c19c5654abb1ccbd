// Package statusbar renders the footer: contextual help, transient notices,
// and the unread badge with a live clock.
package statusbar

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/desk/pkg/tui/theme"
)

// Model tracks footer rendering state.
type Model struct {
	styles theme.FooterTheme

	helpLine  string
	notice    string
	noticeErr bool
	unread    int
	clock     time.Time
}

// New returns a footer model with sensible defaults.
func New(styles theme.FooterTheme) Model {
	return Model{styles: styles}
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetNotice shows a transient message until cleared.
func (m *Model) SetNotice(text string, isError bool) {
	m.notice = text
	m.noticeErr = isError
}

// ClearNotice removes the transient message.
func (m *Model) ClearNotice() {
	m.notice = ""
	m.noticeErr = false
}

// SetUnread updates the badge count.
func (m *Model) SetUnread(count int) {
	m.unread = count
}

// SetClock updates the displayed time.
func (m *Model) SetClock(now time.Time) {
	m.clock = now
}

// View renders the single footer line.
func (m Model) View() string {
	var segments []string
	if m.helpLine != "" {
		segments = append(segments, m.styles.Help.Render(m.helpLine))
	}
	if m.notice != "" {
		style := m.styles.Notice
		if m.noticeErr {
			style = m.styles.Error
		}
		segments = append(segments, style.Render(m.notice))
	}
	segments = append(segments, m.styles.Badge.Render(fmt.Sprintf("%d unread", m.unread)))
	if !m.clock.IsZero() {
		segments = append(segments, m.styles.Status.Render(m.clock.Format("15:04:05")))
	}
	if len(segments) == 0 {
		return " "
	}
	return strings.Join(segments, " │ ")
}
