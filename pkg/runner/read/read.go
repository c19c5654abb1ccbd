package read

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/printers"
)

// Read marks one inbox item read on the portal.
type Read struct {
	ShowID bool
	ID     string

	Service *app.Service
}

func (n *Read) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not mark read, no service")
	}
	if n.ID == "" {
		return errors.New("mark read requires an item id")
	}

	// The tracker only knows items it has seen, so load first.
	if _, err := n.Service.LoadInbox(ctx); err != nil {
		return err
	}
	if err := n.Service.MarkRead(ctx, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("inbox", n.Service.UnreadCount())
	pp.Inbox(n.Service.Tracker.Visible(), n.Service.Tracker.Status)
	return nil
}
