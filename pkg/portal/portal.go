// Package portal holds the employee-portal row types the client's tables,
// drafts, and printers operate over.
package portal

import (
	"fmt"
	"strings"

	"tableflip.dev/desk/pkg/daterange"
	"tableflip.dev/desk/pkg/form"
)

// Leave request statuses as the portal reports them.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// LeaveTypes the request form accepts.
var LeaveTypes = []string{"annual", "sick", "family", "unpaid"}

// LeaveFormKey is the draft key the leave request form autosaves under.
const LeaveFormKey = "leave-request"

// LeaveRequest is one leave request row.
type LeaveRequest struct {
	ID       string `json:"id"`
	Employee string `json:"employee"`
	Type     string `json:"leave_type"`
	Start    string `json:"start_date"`
	End      string `json:"end_date"`
	Reason   string `json:"reason"`
	Status   string `json:"status"`
}

// Range returns the request's date range for duration and validity checks.
func (l LeaveRequest) Range() daterange.Range {
	return daterange.Range{Start: l.Start, End: l.End}
}

// Dates renders the range the way portal tables show it.
func (l LeaveRequest) Dates() string {
	return fmt.Sprintf("%s to %s", l.Start, l.End)
}

// DurationText renders the inclusive day count, or a dash while either date
// is missing or unparseable.
func (l LeaveRequest) DurationText() string {
	days, ok := l.Range().Duration()
	if !ok {
		return "-"
	}
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// ValidLeaveType reports whether the portal accepts the given type.
func ValidLeaveType(t string) bool {
	for _, known := range LeaveTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Document is one uploaded document row.
type Document struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// SizeText renders the document size the way the portal does.
func (d Document) SizeText() string {
	return form.FormatFileSize(d.Size)
}

// Message is one portal message row.
type Message struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Read    bool   `json:"read"`
}

// Summary returns the subject, falling back to a trimmed body excerpt.
func (m Message) Summary() string {
	if m.Subject != "" {
		return m.Subject
	}
	body := strings.TrimSpace(m.Body)
	if len(body) > 60 {
		return body[:57] + "..."
	}
	return body
}
