package table

import (
	"bytes"
	"encoding/json"
	"testing"
)

func leaveTable() *Snapshot {
	return NewSnapshot(
		[]string{"Employee", "Type", "Dates", "Status"},
		[]Row{
			{ID: "1", Cells: []string{"Thandi Nkosi", "annual", "2024-01-02 to 2024-01-05", "pending"}, Status: "pending"},
			{ID: "2", Cells: []string{"Pieter Botha", "sick", "2024-01-03 to 2024-01-03", "approved"}, Status: "approved"},
			{ID: "3", Cells: []string{"Ayesha Khan", "annual", "2024-02-12 to 2024-02-16", "pending"}, Status: "pending"},
		},
	)
}

func TestFilterByTextCaseInsensitive(t *testing.T) {
	v := NewView(leaveTable())

	v.FilterByText("PIETER")
	visible := v.Visible()
	if len(visible) != 1 || visible[0].ID != "2" {
		t.Fatalf("unexpected rows: %v", visible)
	}

	v.FilterByText("")
	if len(v.Visible()) != 3 {
		t.Fatal("empty term must show all rows")
	}
}

func TestFilterByStatus(t *testing.T) {
	v := NewView(leaveTable())

	v.FilterByStatus("pending")
	visible := v.Visible()
	if len(visible) != 2 || visible[0].ID != "1" || visible[1].ID != "3" {
		t.Fatalf("unexpected pending rows: %v", visible)
	}

	v.FilterByStatus(StatusAll)
	if len(v.Visible()) != 3 {
		t.Fatal("sentinel must show all rows")
	}
}

func TestFiltersCompose(t *testing.T) {
	v := NewView(leaveTable())
	v.FilterByStatus("pending")
	v.FilterByText("khan")

	visible := v.Visible()
	if len(visible) != 1 || visible[0].ID != "3" {
		t.Fatalf("unexpected rows: %v", visible)
	}
	ids := v.RowIDs()
	if len(ids) != 1 || ids[0] != "3" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestExportCSVQuotesEveryField(t *testing.T) {
	v := NewView(NewSnapshot(
		[]string{"Subject", "Status"},
		[]Row{{ID: "1", Cells: []string{`Re: "urgent" request`, "pending"}, Status: "pending"}},
	))

	f, err := v.Export("messages", FormatCSV)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if f.Name != "messages.csv" {
		t.Fatalf("unexpected name: %s", f.Name)
	}

	want := "\"Subject\",\"Status\"\n\"Re: \"\"urgent\"\" request\",\"pending\"\n"
	if string(f.Data) != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", f.Data, want)
	}
}

func TestExportFilteredScenario(t *testing.T) {
	// Rows with status pending, approved, pending: filter then export keeps
	// exactly the two pending rows plus the header.
	v := NewView(leaveTable())
	v.FilterByStatus("pending")

	f, err := v.Export("leave", FormatCSV)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := bytes.Split(bytes.TrimRight(f.Data, "\n"), []byte("\n"))
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !bytes.Contains(lines[1], []byte("Thandi Nkosi")) || !bytes.Contains(lines[2], []byte("Ayesha Khan")) {
		t.Fatalf("unexpected rows:\n%s", f.Data)
	}
}

func TestExportIdempotent(t *testing.T) {
	v := NewView(leaveTable())
	v.FilterByText("annual")

	first, err := v.Export("leave", FormatCSV)
	if err != nil {
		t.Fatalf("first export: %v", err)
	}
	second, err := v.Export("leave", FormatCSV)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Fatal("exports of the same visible rows differ")
	}
}

func TestExportZeroRowsIsHeaderOnly(t *testing.T) {
	v := NewView(leaveTable())
	v.FilterByText("no such employee")

	f, err := v.Export("leave", FormatCSV)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "\"Employee\",\"Type\",\"Dates\",\"Status\"\n"
	if string(f.Data) != want {
		t.Fatalf("expected header-only file, got:\n%s", f.Data)
	}
}

func TestExportJSONKeepsHeaderOrder(t *testing.T) {
	v := NewView(leaveTable())
	v.FilterByStatus("approved")

	f, err := v.Export("leave", FormatJSON)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if f.Name != "leave.json" {
		t.Fatalf("unexpected name: %s", f.Name)
	}

	var rows []map[string]string
	if err := json.Unmarshal(f.Data, &rows); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if len(rows) != 1 || rows[0]["Employee"] != "Pieter Botha" {
		t.Fatalf("unexpected rows: %v", rows)
	}

	// Header order, not alphabetical.
	employee := bytes.Index(f.Data, []byte(`"Employee"`))
	status := bytes.Index(f.Data, []byte(`"Status"`))
	if employee == -1 || status == -1 || employee > status {
		t.Fatalf("keys not in header order:\n%s", f.Data)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	v := NewView(leaveTable())
	if _, err := v.Export("leave", "xlsx"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
