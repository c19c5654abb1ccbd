package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/commands/options"
	"tableflip.dev/desk/pkg/runner/leave"
)

func addLeave(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "compose and list leave requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLeaveNew(cmd)
	addLeaveList(cmd)

	topLevel.AddCommand(cmd)
}

func addLeaveNew(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	lo := &options.LeaveOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "compose a leave request",
		Example: `
desk leave new --type annual --start 2026-09-07 --end 2026-09-11
desk leave new --submit
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(nil)
			if err != nil {
				return err
			}
			s := leave.Leave{
				ShowID:  io.ShowID,
				Type:    lo.Type,
				Start:   lo.Start,
				End:     lo.End,
				Reason:  lo.Reason,
				Submit:  lo.Submit,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddLeaveArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addLeaveList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list submitted leave requests",
		Example: `
desk leave list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.New(nil)
			if err != nil {
				return err
			}
			s := leave.Leave{
				ShowID:  io.ShowID,
				List:    true,
				Service: svc,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
