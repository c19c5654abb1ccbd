package selection

import "testing"

func rows(n int) []string {
	ids := make([]string, 0, n)
	for _, id := range []string{"r1", "r2", "r3", "r4", "r5"}[:n] {
		ids = append(ids, id)
	}
	return ids
}

func TestTriStateTransitions(t *testing.T) {
	c := NewController(rows(5))

	if got := c.State(); got != Unchecked {
		t.Fatalf("0 of 5: expected unchecked, got %v", got)
	}

	c.Toggle("r1", true)
	c.Toggle("r3", true)
	c.Toggle("r5", true)
	if got := c.State(); got != Indeterminate {
		t.Fatalf("3 of 5: expected indeterminate, got %v", got)
	}

	c.Toggle("r2", true)
	c.Toggle("r4", true)
	if got := c.State(); got != Checked {
		t.Fatalf("5 of 5: expected checked, got %v", got)
	}
}

func TestToggleAll(t *testing.T) {
	c := NewController(rows(3))

	c.ToggleAll(true)
	if c.Count() != 3 || c.State() != Checked {
		t.Fatalf("expected all selected, got count=%d state=%v", c.Count(), c.State())
	}

	c.ToggleAll(false)
	if c.Count() != 0 || c.State() != Unchecked {
		t.Fatalf("expected nothing selected, got count=%d state=%v", c.Count(), c.State())
	}
}

func TestBulkSurfaceVisibility(t *testing.T) {
	c := NewController(rows(2))
	if c.BulkVisible() {
		t.Fatal("empty selection must hide the bulk surface")
	}
	c.Toggle("r1", true)
	if !c.BulkVisible() {
		t.Fatal("non-empty selection must show the bulk surface")
	}
	c.Toggle("r1", false)
	if c.BulkVisible() {
		t.Fatal("deselecting the last row must hide the bulk surface")
	}
}

func TestSelectedKeepsTableOrder(t *testing.T) {
	c := NewController(rows(4))
	c.Toggle("r3", true)
	c.Toggle("r1", true)

	got := c.Selected()
	if len(got) != 2 || got[0] != "r1" || got[1] != "r3" {
		t.Fatalf("expected table order [r1 r3], got %v", got)
	}
}

func TestResetClearsSelection(t *testing.T) {
	c := NewController(rows(3))
	c.ToggleAll(true)

	c.Reset([]string{"x1", "x2"})
	if c.Count() != 0 {
		t.Fatalf("reset must clear selection, got %d", c.Count())
	}
	if c.IsSelected("r1") {
		t.Fatal("stale row still selected after reset")
	}
	c.ToggleAll(true)
	if c.Count() != 2 {
		t.Fatalf("expected new rows selectable, got %d", c.Count())
	}
}

func TestUnknownRowIgnored(t *testing.T) {
	c := NewController(rows(2))
	c.Toggle("ghost", true)
	if c.Count() != 0 {
		t.Fatal("unknown row joined the selection")
	}
}

func TestScopesAreIndependent(t *testing.T) {
	a := NewController(rows(2))
	b := NewController(rows(2))

	a.ToggleAll(true)
	if b.Count() != 0 {
		t.Fatal("toggling one table affected another")
	}
}
