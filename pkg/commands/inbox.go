package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/commands/options"
	"tableflip.dev/desk/pkg/runner/inbox"
)

func addInbox(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	countOnly := false

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "list unread notifications and messages",
		Example: `
desk inbox
desk inbox --count
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(nil)
			if err != nil {
				return err
			}
			s := inbox.Inbox{
				ShowID:    io.ShowID,
				CountOnly: countOnly,
				Service:   svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "Print just the unread count.")
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
