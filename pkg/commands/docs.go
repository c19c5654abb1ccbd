package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/commands/options"
	"tableflip.dev/desk/pkg/runner/docs"
)

func addDocs(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "list uploaded documents",
		Example: `
desk docs
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(nil)
			if err != nil {
				return err
			}
			s := docs.Docs{
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
