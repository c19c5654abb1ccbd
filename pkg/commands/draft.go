package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/commands/options"
	"tableflip.dev/desk/pkg/runner/drafts"
)

func addDraft(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "work with saved form drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDraftList(cmd)
	addDraftShow(cmd)
	addDraftDiscard(cmd)

	topLevel.AddCommand(cmd)
}

func addDraftList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list forms with saved drafts",
		Example: `
desk draft list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(nil)
			if err != nil {
				return err
			}
			s := drafts.Drafts{
				ShowID:  io.ShowID,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addDraftShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show <form>",
		Short: "show one form's draft fields",
		Example: `
desk draft show leave-request
`,
		Args: requireFormKey(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(nil)
			if err != nil {
				return err
			}
			s := drafts.Drafts{
				ShowID:  io.ShowID,
				FormKey: io.ID,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addDraftDiscard(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "discard <form>",
		Short: "delete one form's draft",
		Example: `
desk draft discard leave-request
`,
		Args: requireFormKey(io),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(nil)
			if err != nil {
				return err
			}
			s := drafts.Drafts{
				ShowID:  io.ShowID,
				FormKey: io.ID,
				Discard: true,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func requireFormKey(io *options.IDOptions) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("expected exactly one form key")
		}
		io.ID = args[0]
		return nil
	}
}
