package portal

import "tableflip.dev/desk/pkg/table"

// LeaveHeaders are the leave table columns, in render and export order.
var LeaveHeaders = []string{"Type", "Dates", "Duration", "Reason", "Status"}

// LeaveTable renders leave requests into a filterable snapshot. The row status
// attribute carries the request status so status filters apply.
func LeaveTable(requests []LeaveRequest) *table.Snapshot {
	rows := make([]table.Row, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, table.Row{
			ID:     r.ID,
			Cells:  []string{r.Type, r.Dates(), r.DurationText(), r.Reason, r.Status},
			Status: r.Status,
		})
	}
	return table.NewSnapshot(LeaveHeaders, rows)
}
