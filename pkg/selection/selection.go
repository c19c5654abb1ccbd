// Package selection tracks bulk-selection state over one table's rows and
// derives the tri-state of the select-all control from it.
package selection

// State is the select-all control's tri-state, a pure function of how many
// rows are selected relative to the total.
type State int

const (
	// Unchecked means no row is selected.
	Unchecked State = iota
	// Indeterminate means some but not all rows are selected.
	Indeterminate
	// Checked means every row is selected.
	Checked
)

func (s State) String() string {
	switch s {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}

// Controller owns the selection set for a single table scope. Instantiate one
// per table; toggling in one never affects another.
type Controller struct {
	rows     []string
	selected map[string]struct{}
}

// NewController starts with the given row identifiers and nothing selected.
func NewController(rowIDs []string) *Controller {
	c := &Controller{}
	c.Reset(rowIDs)
	return c
}

// Reset replaces the row collection and clears the selection. Call it whenever
// the underlying rows change (filter, reload).
func (c *Controller) Reset(rowIDs []string) {
	c.rows = make([]string, len(rowIDs))
	copy(c.rows, rowIDs)
	c.selected = make(map[string]struct{}, len(rowIDs))
}

// ToggleAll sets every row's membership to checked in one update.
func (c *Controller) ToggleAll(checked bool) {
	if !checked {
		c.selected = make(map[string]struct{}, len(c.rows))
		return
	}
	for _, id := range c.rows {
		c.selected[id] = struct{}{}
	}
}

// Toggle adds or removes a single row. Unknown row ids are ignored.
func (c *Controller) Toggle(rowID string, checked bool) {
	if !c.knownRow(rowID) {
		return
	}
	if checked {
		c.selected[rowID] = struct{}{}
	} else {
		delete(c.selected, rowID)
	}
}

func (c *Controller) knownRow(rowID string) bool {
	for _, id := range c.rows {
		if id == rowID {
			return true
		}
	}
	return false
}

// IsSelected reports membership for one row.
func (c *Controller) IsSelected(rowID string) bool {
	_, ok := c.selected[rowID]
	return ok
}

// Count returns how many rows are selected.
func (c *Controller) Count() int {
	return len(c.selected)
}

// Selected returns the selected row ids in table order.
func (c *Controller) Selected() []string {
	out := make([]string, 0, len(c.selected))
	for _, id := range c.rows {
		if _, ok := c.selected[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// State derives the select-all tri-state: checked iff size == total,
// indeterminate iff 0 < size < total.
func (c *Controller) State() State {
	switch n := len(c.selected); {
	case n == 0:
		return Unchecked
	case n == len(c.rows):
		return Checked
	default:
		return Indeterminate
	}
}

// BulkVisible reports whether the bulk-action surface should show: exactly
// when the selection is non-empty.
func (c *Controller) BulkVisible() bool {
	return len(c.selected) > 0
}
