// Package table filters rendered rows and serializes the visible ones. The
// Table interface keeps the logic independent of any render surface.
package table

import "strings"

// Row is one rendered table row: an opaque identifier, the cell texts in
// header order, and the row's status attribute.
type Row struct {
	ID     string
	Cells  []string
	Status string
}

// Table is the capability surface the filter and exporter need.
type Table interface {
	Headers() []string
	Rows() []Row
}

// StatusAll is the attribute filter sentinel that shows every row.
const StatusAll = "all"

// Snapshot is an in-memory Table, typically built from one portal page.
type Snapshot struct {
	headers []string
	rows    []Row
}

// NewSnapshot copies the given headers and rows.
func NewSnapshot(headers []string, rows []Row) *Snapshot {
	s := &Snapshot{
		headers: make([]string, len(headers)),
		rows:    make([]Row, len(rows)),
	}
	copy(s.headers, headers)
	copy(s.rows, rows)
	return s
}

func (s *Snapshot) Headers() []string { return s.headers }
func (s *Snapshot) Rows() []Row       { return s.rows }

// View is one table's transient filter state: a text term and a status value,
// recomputed against the table on every read and never persisted.
type View struct {
	table  Table
	term   string
	status string
}

// NewView starts unfiltered.
func NewView(t Table) *View {
	return &View{table: t, status: StatusAll}
}

// FilterByText sets the text term. Empty shows all rows.
func (v *View) FilterByText(term string) {
	v.term = term
}

// FilterByStatus sets the status attribute filter. StatusAll shows all rows.
func (v *View) FilterByStatus(value string) {
	if value == "" {
		value = StatusAll
	}
	v.status = value
}

// Visible returns the rows passing both filters, in table order. A row
// matches the term when its rendered text contains it case-insensitively.
func (v *View) Visible() []Row {
	term := strings.ToLower(strings.TrimSpace(v.term))
	out := make([]Row, 0, len(v.table.Rows()))
	for _, row := range v.table.Rows() {
		if v.status != StatusAll && row.Status != v.status {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(strings.Join(row.Cells, " ")), term) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// RowIDs lists the visible row identifiers, ready for a selection reset.
func (v *View) RowIDs() []string {
	visible := v.Visible()
	ids := make([]string, len(visible))
	for i, row := range visible {
		ids[i] = row.ID
	}
	return ids
}
