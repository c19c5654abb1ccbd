package leave

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"tableflip.dev/desk/pkg/app"
	"tableflip.dev/desk/pkg/daterange"
	"tableflip.dev/desk/pkg/draft"
	"tableflip.dev/desk/pkg/form"
	"tableflip.dev/desk/pkg/portal"
	"tableflip.dev/desk/pkg/printers"
)

// Leave composes a leave request. Without --submit the values are validated
// and drafted; with it the request is posted and the draft discarded.
type Leave struct {
	ShowID bool
	Type   string
	Start  string
	End    string
	Reason string
	Submit bool
	List   bool

	Service *app.Service
}

func (n *Leave) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not compose leave, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.List {
		requests, err := n.Service.LeaveRequests(ctx)
		if err != nil {
			return err
		}
		pp.TitleWithCount("leave requests", len(requests))
		pp.Leave(requests)
		return nil
	}

	fields := n.merged()
	r := daterange.Range{Start: fields["start_date"], End: fields["end_date"]}

	errs := form.Errors{}
	errs.Set("leave_type", n.typeError(fields["leave_type"]))
	errs.Set("start_date", form.Required(fields["start_date"]))
	errs.Set("end_date", form.Required(fields["end_date"]))
	if _, _, ok := r.Bounds(); ok {
		v := r.Validate(time.Now())
		if v.EndBeforeStart {
			errs.Set("end_date", "End date cannot be before start date")
		}
		if v.StartInPast {
			errs.Set("start_date", "Start date cannot be in the past")
		}
	}

	if !n.Submit {
		if err := n.Service.SaveDraft(portal.LeaveFormKey, fields); err != nil {
			return err
		}
		pp.Title(portal.LeaveFormKey)
		n.summary(r, fields, errs)
		fmt.Println("draft saved; run with --submit to send")
		return nil
	}

	if !errs.Valid() {
		// Keep the draft so a failed submit loses nothing.
		if err := n.Service.SaveDraft(portal.LeaveFormKey, fields); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("leave request invalid: %s", joinErrors(errs))
	}

	id, err := n.Service.SubmitLeave(ctx, portal.LeaveRequest{
		Type:   fields["leave_type"],
		Start:  fields["start_date"],
		End:    fields["end_date"],
		Reason: fields["reason"],
		Status: portal.StatusPending,
	})
	if err != nil {
		return err
	}
	pp.Title(portal.LeaveFormKey)
	fmt.Printf("submitted as %s\n", id)
	return nil
}

// merged overlays the flags onto any stored draft so a partially composed
// request can be finished across invocations.
func (n *Leave) merged() map[string]string {
	current := map[string]string{
		"leave_type": n.Type,
		"start_date": n.Start,
		"end_date":   n.End,
		"reason":     n.Reason,
	}
	rec, err := n.Service.Draft(portal.LeaveFormKey)
	if err != nil {
		if !errors.Is(err, draft.ErrAbsent) {
			fmt.Fprintln(os.Stderr, err)
		}
		return current
	}
	for name, value := range rec.Merge(nil) {
		if current[name] == "" {
			current[name] = value
		}
	}
	return current
}

func (n *Leave) typeError(t string) string {
	if msg := form.Required(t); msg != "" {
		return msg
	}
	if !portal.ValidLeaveType(t) {
		return fmt.Sprintf("unknown leave type, expected one of: %s", strings.Join(portal.LeaveTypes, ", "))
	}
	return ""
}

func (n *Leave) summary(r daterange.Range, fields map[string]string, errs form.Errors) {
	req := portal.LeaveRequest{
		Type:   fields["leave_type"],
		Start:  fields["start_date"],
		End:    fields["end_date"],
		Reason: fields["reason"],
		Status: portal.StatusPending,
	}
	fmt.Printf("%s %s (%s)\n", req.Type, req.Dates(), req.DurationText())
	if r.Extended() {
		fmt.Println("note: extended leave, more than two weeks")
	}
	for field, msg := range errs {
		fmt.Printf("  %s: %s\n", field, msg)
	}
	fmt.Println("")
}

func joinErrors(errs form.Errors) string {
	msgs := make([]string, 0, len(errs))
	for field, msg := range errs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
