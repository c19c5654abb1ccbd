// Package daterange derives inclusive day counts and validity from a pair of
// date fields, the way the leave request form needs them.
package daterange

import (
	"math"
	"time"
)

const layoutISO = "2006-01-02"

// ExtendedThreshold is the day count above which a range is presented as an
// extended leave. Presentation hint only, never a validation failure.
const ExtendedThreshold = 14

// Range holds the raw values of the two date fields. Either side may still be
// empty or unparseable while the user is typing.
type Range struct {
	Start string
	End   string
}

// Bounds parses both endpoints. ok is false until both are present and parse
// as calendar dates.
func (r Range) Bounds() (start, end time.Time, ok bool) {
	if r.Start == "" || r.End == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(layoutISO, r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(layoutISO, r.End)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Duration returns the inclusive day count: ceil(|end-start| / 1 day) + 1.
// ok is false when either endpoint is missing or invalid.
func (r Range) Duration() (days int, ok bool) {
	start, end, ok := r.Bounds()
	if !ok {
		return 0, false
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1, true
}

// Extended reports whether the range runs past the extended-leave threshold.
func (r Range) Extended() bool {
	days, ok := r.Duration()
	return ok && days > ExtendedThreshold
}

// MinEnd returns the lowest selectable end value: the start date once set.
// This is a UI constraint; Validate remains authoritative.
func (r Range) MinEnd() string {
	return r.Start
}

// Validation carries the two independent range checks. Both must pass for the
// range to be valid; an invalid range displays no duration.
type Validation struct {
	EndBeforeStart bool
	StartInPast    bool
}

// Valid reports whether every check passed.
func (v Validation) Valid() bool {
	return !v.EndBeforeStart && !v.StartInPast
}

// Problems lists the failed checks as field-level messages.
func (v Validation) Problems() []string {
	var msgs []string
	if v.EndBeforeStart {
		msgs = append(msgs, "end before start")
	}
	if v.StartInPast {
		msgs = append(msgs, "start in the past")
	}
	return msgs
}

// Validate runs both checks against today. Call it only once both endpoints
// parse; incomplete ranges are neither valid nor invalid yet.
func (r Range) Validate(today time.Time) Validation {
	start, end, ok := r.Bounds()
	if !ok {
		return Validation{}
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return Validation{
		EndBeforeStart: end.Before(start),
		StartInPast:    start.Before(midnight),
	}
}

// DisplayDuration returns the duration to show: set only when the range is
// complete and valid.
func (r Range) DisplayDuration(today time.Time) (days int, show bool) {
	days, ok := r.Duration()
	if !ok {
		return 0, false
	}
	if !r.Validate(today).Valid() {
		return 0, false
	}
	return days, true
}
