package portal

import (
	"strings"
	"testing"
)

func TestLeaveRequestDurationText(t *testing.T) {
	cases := []struct {
		start, end string
		want       string
	}{
		{"2026-09-07", "2026-09-07", "1 day"},
		{"2026-09-07", "2026-09-11", "5 days"},
		{"", "2026-09-11", "-"},
		{"not-a-date", "2026-09-11", "-"},
	}
	for _, tc := range cases {
		l := LeaveRequest{Start: tc.start, End: tc.end}
		if got := l.DurationText(); got != tc.want {
			t.Fatalf("%s..%s: expected %q, got %q", tc.start, tc.end, tc.want, got)
		}
	}
}

func TestValidLeaveType(t *testing.T) {
	for _, known := range LeaveTypes {
		if !ValidLeaveType(known) {
			t.Fatalf("rejected known type %q", known)
		}
	}
	if ValidLeaveType("sabbatical") {
		t.Fatal("accepted unknown type")
	}
}

func TestLeaveTableRows(t *testing.T) {
	snap := LeaveTable([]LeaveRequest{
		{ID: "1", Type: "annual", Start: "2026-09-07", End: "2026-09-11", Reason: "trip", Status: StatusPending},
		{ID: "2", Type: "sick", Start: "2026-09-01", End: "2026-09-01", Status: StatusApproved},
	})

	if len(snap.Headers()) != len(LeaveHeaders) {
		t.Fatalf("unexpected headers: %v", snap.Headers())
	}
	rows := snap.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Status != StatusPending || rows[1].Status != StatusApproved {
		t.Fatalf("row status attribute not carried: %+v", rows)
	}
	if rows[0].Cells[1] != "2026-09-07 to 2026-09-11" {
		t.Fatalf("unexpected dates cell: %q", rows[0].Cells[1])
	}
	if rows[1].Cells[2] != "1 day" {
		t.Fatalf("unexpected duration cell: %q", rows[1].Cells[2])
	}
}

func TestMessageSummary(t *testing.T) {
	m := Message{Subject: "Benefits update"}
	if m.Summary() != "Benefits update" {
		t.Fatalf("unexpected summary: %q", m.Summary())
	}

	m = Message{Body: "  " + strings.Repeat("long body ", 20)}
	got := m.Summary()
	if len(got) != 60 || !strings.HasSuffix(got, "...") {
		t.Fatalf("body excerpt not trimmed: %q (%d)", got, len(got))
	}
}
