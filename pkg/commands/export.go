package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/commands/options"
	"tableflip.dev/desk/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export the filtered leave table",
		Example: `
desk export --status pending
desk export --term annual --format json -o -
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				ShowID:  io.ShowID,
				Status:  fo.Status,
				Term:    fo.Term,
				Format:  fo.Format,
				Output:  fo.Output,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddExportArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
