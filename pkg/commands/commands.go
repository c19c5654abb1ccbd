package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "desk",
		Short: base.Wrap80("Employee portal companion on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addInbox(topLevel)
	addRead(topLevel)
	addDraft(topLevel)
	addLeave(topLevel)
	addDocs(topLevel)
	addExport(topLevel)
	addVersion(topLevel)
}
