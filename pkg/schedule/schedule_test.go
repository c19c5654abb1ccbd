package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleFiresOnce(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired int32
	done := make(chan struct{})
	s.Schedule("save", 20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for scheduled action")
	}

	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Fatalf("expected exactly one fire, got %d", got)
	}
}

func TestScheduleSupersedesPreviousTimer(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var first, second int32
	done := make(chan struct{})
	s.Schedule("save", 30*time.Millisecond, func() {
		atomic.AddInt32(&first, 1)
	})
	s.Schedule("save", 30*time.Millisecond, func() {
		atomic.AddInt32(&second, 1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for superseding action")
	}

	time.Sleep(60 * time.Millisecond)
	if atomic.LoadInt32(&first) != 0 {
		t.Fatal("superseded action fired")
	}
	if atomic.LoadInt32(&second) != 1 {
		t.Fatal("superseding action did not fire exactly once")
	}
}

func TestScheduleIndependentKeys(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var a, b int32
	s.Schedule("a", 10*time.Millisecond, func() { atomic.AddInt32(&a, 1) })
	s.Schedule("b", 10*time.Millisecond, func() { atomic.AddInt32(&b, 1) })

	time.Sleep(100 * time.Millisecond)
	if atomic.LoadInt32(&a) != 1 || atomic.LoadInt32(&b) != 1 {
		t.Fatalf("expected both keys to fire once, got a=%d b=%d", a, b)
	}
}

func TestCancelPreventsFire(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired int32
	s.Schedule("save", 20*time.Millisecond, func() { atomic.AddInt32(&fired, 1) })
	s.Cancel("save")

	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Fatal("cancelled action fired")
	}
	if s.Pending("save") {
		t.Fatal("cancelled key still pending")
	}
}

func TestTickerStops(t *testing.T) {
	var ticks int32
	tk := NewTicker(10*time.Millisecond, func() { atomic.AddInt32(&ticks, 1) })

	time.Sleep(55 * time.Millisecond)
	tk.Stop()
	tk.Stop() // idempotent

	settled := atomic.LoadInt32(&ticks)
	if settled == 0 {
		t.Fatal("ticker never fired")
	}
	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt32(&ticks); got > settled+1 {
		t.Fatalf("ticker kept firing after stop: %d -> %d", settled, got)
	}
}
