package inbox

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/printers"
)

// Inbox fetches and prints the unread notifications and messages.
type Inbox struct {
	ShowID    bool
	CountOnly bool

	Service *app.Service
}

func (n *Inbox) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not fetch inbox, no service")
	}

	if n.CountOnly {
		if err := n.Service.RefreshCount(ctx); err != nil {
			return err
		}
		fmt.Printf("%d unread\n", n.Service.UnreadCount())
		return nil
	}

	items, err := n.Service.LoadInbox(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount("inbox", n.Service.UnreadCount())
	pp.Inbox(items, n.Service.Tracker.Status)
	return nil
}
