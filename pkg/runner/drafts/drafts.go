package drafts

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/draft"
	"tableflip.dev/desk/pkg/printers"
)

// Drafts lists, shows, or discards saved form drafts.
type Drafts struct {
	ShowID  bool
	FormKey string
	Discard bool

	Service *app.Service
}

func (n *Drafts) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not access drafts, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Discard {
		if n.FormKey == "" {
			return errors.New("discard requires a form key")
		}
		if err := n.Service.DiscardDraft(n.FormKey); err != nil {
			return err
		}
		pp.Title(n.FormKey)
		fmt.Println("draft discarded")
		return nil
	}

	if n.FormKey != "" {
		rec, err := n.Service.Draft(n.FormKey)
		if err != nil {
			if errors.Is(err, draft.ErrAbsent) {
				pp.Title(n.FormKey)
				fmt.Println("no draft")
				return nil
			}
			return err
		}
		pp.Title(n.FormKey)
		n.fields(rec)
		return nil
	}

	keys := n.Service.DraftKeys(ctx)
	records := make([]*draft.Record, 0, len(keys))
	for _, key := range keys {
		rec, err := n.Service.Draft(key)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	pp.TitleWithCount("drafts", len(records))
	pp.Drafts(records)
	return nil
}

func (n *Drafts) fields(rec *draft.Record) {
	bold := color.New(color.Bold)

	names := make([]string, 0, len(rec.Fields))
	for name := range rec.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Field"), bold.Sprint("Value"))
	for _, name := range names {
		tbl.AddRow(name, rec.Fields[name])
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Printf("\nsaved %s\n", rec.SavedAt.String())
}
