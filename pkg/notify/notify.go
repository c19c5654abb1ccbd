// Package notify keeps the displayed unread count and per-item read state
// consistent with the portal: optimistic updates on mark-read, rollback on
// failure, and a periodic authoritative count refresh.
package notify

import (
	"context"
	"fmt"
	"sync"
)

// Status is an item's position in the read state machine:
// Unread -> PendingRead -> Read, with PendingRead -> Unread on rollback.
type Status int

const (
	Unread Status = iota
	PendingRead
	Read
)

func (s Status) String() string {
	switch s {
	case PendingRead:
		return "pending"
	case Read:
		return "read"
	default:
		return "unread"
	}
}

// Kind selects which portal resource an item acknowledges against.
type Kind string

const (
	KindNotification Kind = "notification"
	KindMessage      Kind = "message"
)

// Item is one inbox entry as the portal rendered it.
type Item struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	SentAt  string `json:"sent_at"`
}

// Client is the remote acknowledgment surface. Implementations report
// ok=false when the portal answered but refused the operation.
type Client interface {
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, kind Kind, id string) (ok bool, err error)
}

// Tracker owns the session's notification state: the displayed count, the
// visible item list, and the per-item statuses including pending acks.
type Tracker struct {
	mu     sync.Mutex
	client Client
	items  []Item
	status map[string]Status
	count  int

	// decremented records, per pending ack, whether begin actually lowered
	// the count. Rollback restores only what was taken, so a count that had
	// already drifted to zero stays zero.
	decremented map[string]bool
}

// NewTracker starts an empty tracker over the given client.
func NewTracker(client Client) *Tracker {
	return &Tracker{
		client:      client,
		status:      make(map[string]Status),
		decremented: make(map[string]bool),
	}
}

// SetItems replaces the item list, e.g. after an inbox fetch. Every new item
// starts Unread; statuses of items that survived the reload are kept.
func (t *Tracker) SetItems(items []Item, count int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := make(map[string]Status, len(items))
	for _, it := range items {
		if st, ok := t.status[it.ID]; ok {
			kept[it.ID] = st
		} else {
			kept[it.ID] = Unread
		}
	}
	t.items = make([]Item, len(items))
	copy(t.items, items)
	t.status = kept
	if count < 0 {
		count = 0
	}
	t.count = count
}

// Count returns the displayed unread count. Never negative.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

// Status returns the state of one item. Unknown ids read as Read so stray
// acknowledgments stay no-ops.
func (t *Tracker) Status(id string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.status[id]
	if !ok {
		return Read
	}
	return st
}

// Visible lists the items still shown: those not yet optimistically removed.
// Order follows the original list so rollbacks restore items in place.
func (t *Tracker) Visible() []Item {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Item, 0, len(t.items))
	for _, it := range t.items {
		if t.status[it.ID] == Unread {
			out = append(out, it)
		}
	}
	return out
}

// begin performs the optimistic half of mark-read: Unread -> PendingRead,
// count decremented (floor 0), item hidden. Returns false when the item is
// already PendingRead or Read, in which case nothing changes.
func (t *Tracker) begin(id string) (Item, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.status[id]
	if !ok || st != Unread {
		return Item{}, false
	}
	t.status[id] = PendingRead
	t.decremented[id] = t.count > 0
	if t.count > 0 {
		t.count--
	}
	for _, it := range t.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{ID: id, Kind: KindNotification}, true
}

// finish reconciles the pending ack with the remote outcome: success
// finalizes the item as Read, failure rolls it back to Unread and restores
// the displayed count to its pre-call value.
func (t *Tracker) finish(id string, succeeded bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status[id] != PendingRead {
		return
	}
	took := t.decremented[id]
	delete(t.decremented, id)
	if succeeded {
		t.status[id] = Read
		return
	}
	t.status[id] = Unread
	if took {
		t.count++
	}
}

// MarkRead optimistically marks the item read, issues the remote
// acknowledgment, and reconciles. The returned error is the failure notice to
// surface; state has already been rolled back when it is non-nil. Calling it
// again for an item already pending or read is a no-op.
func (t *Tracker) MarkRead(ctx context.Context, id string) error {
	item, started := t.begin(id)
	if !started {
		return nil
	}

	ok, err := t.client.MarkRead(ctx, item.Kind, id)
	if err != nil {
		t.finish(id, false)
		return fmt.Errorf("notify: mark read %s: %w", id, err)
	}
	if !ok {
		t.finish(id, false)
		return fmt.Errorf("notify: mark read %s: portal refused", id)
	}
	t.finish(id, true)
	return nil
}

// RefreshCount fetches the authoritative unread count and overwrites the
// displayed one. This reconciliation always wins over optimistic updates;
// failures are left for the next interval.
func (t *Tracker) RefreshCount(ctx context.Context) error {
	count, err := t.client.UnreadCount(ctx)
	if err != nil {
		return fmt.Errorf("notify: refresh count: %w", err)
	}
	if count < 0 {
		count = 0
	}
	t.mu.Lock()
	t.count = count
	t.mu.Unlock()
	return nil
}
