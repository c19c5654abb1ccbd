package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClient struct {
	mu      sync.Mutex
	count   int
	ok      bool
	err     error
	countE  error
	acks    []string
	counts  int
	release chan struct{}
}

func (f *fakeClient) UnreadCount(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts++
	if f.countE != nil {
		return 0, f.countE
	}
	return f.count, nil
}

func (f *fakeClient) MarkRead(ctx context.Context, kind Kind, id string) (bool, error) {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks = append(f.acks, id)
	return f.ok, f.err
}

func threeItems() []Item {
	return []Item{
		{ID: "n1", Kind: KindNotification, Subject: "Leave approved"},
		{ID: "n2", Kind: KindMessage, Subject: "Payroll question"},
		{ID: "n3", Kind: KindNotification, Subject: "Policy update"},
	}
}

func TestMarkReadOptimisticSuccess(t *testing.T) {
	client := &fakeClient{ok: true}
	tr := NewTracker(client)
	tr.SetItems(threeItems(), 3)

	if err := tr.MarkRead(context.Background(), "n2"); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	if tr.Count() != 2 {
		t.Fatalf("expected count 2, got %d", tr.Count())
	}
	if tr.Status("n2") != Read {
		t.Fatalf("expected n2 read, got %v", tr.Status("n2"))
	}
	visible := tr.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible items, got %d", len(visible))
	}
	for _, it := range visible {
		if it.ID == "n2" {
			t.Fatal("acknowledged item still visible")
		}
	}
}

func TestMarkReadRollbackOnNetworkError(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	tr := NewTracker(client)
	tr.SetItems(threeItems(), 3)

	err := tr.MarkRead(context.Background(), "n1")
	if err == nil {
		t.Fatal("expected failure notice")
	}

	if tr.Count() != 3 {
		t.Fatalf("count not restored: %d", tr.Count())
	}
	if tr.Status("n1") != Unread {
		t.Fatalf("expected n1 back to unread, got %v", tr.Status("n1"))
	}
	visible := tr.Visible()
	if len(visible) != 3 || visible[0].ID != "n1" {
		t.Fatalf("item not restored in place: %v", visible)
	}
}

func TestMarkReadRollbackOnRefusal(t *testing.T) {
	client := &fakeClient{ok: false}
	tr := NewTracker(client)
	tr.SetItems(threeItems(), 3)

	if err := tr.MarkRead(context.Background(), "n3"); err == nil {
		t.Fatal("expected failure notice on success=false")
	}
	if tr.Count() != 3 || tr.Status("n3") != Unread {
		t.Fatalf("rollback incomplete: count=%d status=%v", tr.Count(), tr.Status("n3"))
	}
}

func TestMarkReadTwiceNeverDoubleDecrements(t *testing.T) {
	client := &fakeClient{ok: true}
	tr := NewTracker(client)
	tr.SetItems(threeItems(), 3)

	if err := tr.MarkRead(context.Background(), "n1"); err != nil {
		t.Fatalf("first mark read: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := tr.MarkRead(context.Background(), "n1"); err != nil {
			t.Fatalf("repeat mark read: %v", err)
		}
	}

	if tr.Count() != 2 {
		t.Fatalf("count double-decremented: %d", tr.Count())
	}
	client.mu.Lock()
	acks := len(client.acks)
	client.mu.Unlock()
	if acks != 1 {
		t.Fatalf("expected one remote ack, got %d", acks)
	}
}

func TestMarkReadWhilePendingIsNoop(t *testing.T) {
	release := make(chan struct{})
	client := &fakeClient{ok: true, release: release}
	tr := NewTracker(client)
	tr.SetItems(threeItems(), 3)

	done := make(chan error, 1)
	go func() {
		done <- tr.MarkRead(context.Background(), "n1")
	}()

	// Wait for the optimistic transition, then try again mid-flight.
	deadline := time.Now().Add(2 * time.Second)
	for tr.Status("n1") != PendingRead {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for pending state")
		}
		time.Sleep(time.Millisecond)
	}
	if err := tr.MarkRead(context.Background(), "n1"); err != nil {
		t.Fatalf("pending no-op returned error: %v", err)
	}
	if tr.Count() != 2 {
		t.Fatalf("pending no-op changed count: %d", tr.Count())
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("in-flight mark read: %v", err)
	}
	if tr.Status("n1") != Read {
		t.Fatalf("expected read after ack, got %v", tr.Status("n1"))
	}
}

func TestCountNeverNegative(t *testing.T) {
	client := &fakeClient{ok: true}
	tr := NewTracker(client)
	tr.SetItems(threeItems(), 0) // drifted: items visible but count already 0

	if err := tr.MarkRead(context.Background(), "n1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if tr.Count() != 0 {
		t.Fatalf("count went negative: %d", tr.Count())
	}
}

func TestRollbackAtZeroStaysZero(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	tr := NewTracker(client)
	tr.SetItems(threeItems(), 0) // drifted: items visible but count already 0

	if err := tr.MarkRead(context.Background(), "n1"); err == nil {
		t.Fatal("expected failure notice")
	}
	// begin took nothing from a zero count, so rollback must put nothing back.
	if tr.Count() != 0 {
		t.Fatalf("rollback did not return to pre-call state: count = %d, want 0", tr.Count())
	}
	if tr.Status("n1") != Unread {
		t.Fatalf("expected n1 back to unread, got %v", tr.Status("n1"))
	}
}

func TestRefreshCountIsAuthoritative(t *testing.T) {
	client := &fakeClient{ok: true, count: 7}
	tr := NewTracker(client)
	tr.SetItems(threeItems(), 3)

	if err := tr.MarkRead(context.Background(), "n1"); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := tr.RefreshCount(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if tr.Count() != 7 {
		t.Fatalf("authoritative count did not win: %d", tr.Count())
	}
}

func TestRefreshCountFailureLeavesDisplay(t *testing.T) {
	client := &fakeClient{ok: true, countE: errors.New("timeout")}
	tr := NewTracker(client)
	tr.SetItems(threeItems(), 3)

	if err := tr.RefreshCount(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if tr.Count() != 3 {
		t.Fatalf("failed refresh changed count: %d", tr.Count())
	}
}
