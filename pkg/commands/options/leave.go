package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/desk/pkg/portal"
)

// LeaveOptions captures the leave request form flags.
type LeaveOptions struct {
	Type   string
	Start  string
	End    string
	Reason string
	Submit bool
}

// AddLeaveArgs wires the leave form flags on the provided command.
func AddLeaveArgs(cmd *cobra.Command, o *LeaveOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Leave type, one of: "+strings.Join(portal.LeaveTypes, ", ")+".")
	cmd.Flags().StringVar(&o.Start, "start", "",
		"Start date, 2006-01-02.")
	cmd.Flags().StringVar(&o.End, "end", "",
		"End date, 2006-01-02.")
	cmd.Flags().StringVarP(&o.Reason, "reason", "r", "",
		"Reason for the request.")
	cmd.Flags().BoolVar(&o.Submit, "submit", false,
		"Submit the request instead of drafting it.")
}
