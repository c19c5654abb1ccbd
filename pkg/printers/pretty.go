package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"tableflip.dev/desk/pkg/draft"
	"tableflip.dev/desk/pkg/notify"
	"tableflip.dev/desk/pkg/portal"
	"tableflip.dev/desk/pkg/table"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("leave-request  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// Inbox renders notification and message items with their sync status.
func (pp *PrettyPrint) Inbox(items []notify.Item, status func(id string) notify.Status) {
	if len(items) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	unread := color.New(color.Bold)
	read := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range items {
		p := read
		if status(it.ID) == notify.Unread {
			p = unread
		}
		row := []interface{}{p.Sprint(it.Kind), p.Sprint(it.From), p.Sprint(it.Subject)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(it.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Drafts renders saved form drafts, newest fields flattened to one line each.
func (pp *PrettyPrint) Drafts(records []*draft.Record) {
	if len(records) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, r := range records {
		if pp.ShowID {
			_, _ = y.Print(r.FormKey)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(r.FormKey))))
		}
		_, _ = t.Printf("%d field(s)", len(r.Fields))
		_, _ = f.Printf("  saved %s\n", r.SavedAt.String())
	}
	_, _ = t.Println("")
}

// Leave renders leave requests with their inclusive duration.
func (pp *PrettyPrint) Leave(requests []portal.LeaveRequest) {
	if len(requests) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Type"), bold.Sprint("Dates"), bold.Sprint("Duration"), bold.Sprint("Status"))
	for _, r := range requests {
		tbl.AddRow(r.Type, r.Dates(), r.DurationText(), statusColor(r.Status))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Documents renders uploaded document rows with human file sizes.
func (pp *PrettyPrint) Documents(docs []portal.Document) {
	if len(docs) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold.Sprint("Title"), bold.Sprint("Filename"), bold.Sprint("Size")}
	if pp.ShowID {
		header = append([]interface{}{""}, header...)
	}
	tbl.AddRow(header...)
	for _, d := range docs {
		row := []interface{}{d.Title, d.Filename, f.Sprint(d.SizeText())}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(d.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Table renders filtered rows as a terminal table.
func (pp *PrettyPrint) Table(headers []string, rows []table.Row) {
	if len(rows) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "

	header := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		header = append(header, bold.Sprint(h))
	}
	tbl.AddRow(header...)

	for _, row := range rows {
		cells := make([]interface{}, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, c)
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func statusColor(status string) string {
	switch status {
	case portal.StatusApproved:
		return color.New(color.FgGreen).Sprint(status)
	case portal.StatusRejected:
		return color.New(color.FgRed).Sprint(status)
	default:
		return color.New(color.FgYellow).Sprint(status)
	}
}
