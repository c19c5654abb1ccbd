package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/portal"
	"tableflip.dev/desk/pkg/printers"
	"tableflip.dev/desk/pkg/table"
)

// Export filters the leave table and writes the visible rows to a file, or to
// stdout when Output is "-".
type Export struct {
	ShowID bool
	Status string
	Term   string
	Format string
	Output string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}

	requests, err := n.Service.LeaveRequests(ctx)
	if err != nil {
		return err
	}

	view := table.NewView(portal.LeaveTable(requests))
	view.FilterByStatus(n.Status)
	view.FilterByText(n.Term)

	format := n.Format
	if format == "" {
		format = table.FormatCSV
	}
	file, err := view.Export("leave", format)
	if err != nil {
		return err
	}

	if n.Output == "-" {
		_, err = os.Stdout.Write(file.Data)
		return err
	}

	path := n.Output
	if path == "" {
		path = file.Name
	} else if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, file.Name)
	}
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount(path, len(view.Visible()))
	pp.Table(portal.LeaveHeaders, view.Visible())
	return nil
}
