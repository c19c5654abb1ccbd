// Package schedule provides keyed debounce timers and fixed-interval tickers
// shared by everything that reacts to rapid input events.
package schedule

import (
	"sync"
	"time"
)

// Scheduler coalesces rapid triggers under a shared key into a single delayed
// action. Scheduling the same key again before the delay elapses supersedes
// the previous timer, so the action fires at most once per burst.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	gen    map[string]uint64
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[string]*time.Timer),
		gen:    make(map[string]uint64),
	}
}

// Schedule arms fn to run after delay under key, cancelling any pending timer
// with the same key first.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.gen[key]++
	gen := s.gen[key]
	s.timers[key] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// A timer that was superseded after firing was already committed must
		// not run; the generation counter tells stale callbacks apart.
		if s.gen[key] != gen {
			s.mu.Unlock()
			return
		}
		delete(s.timers, key)
		s.mu.Unlock()
		fn()
	})
}

// Cancel removes a pending timer for key without firing it.
func (s *Scheduler) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
	s.gen[key]++
}

// Pending reports whether a timer is armed for key.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[key]
	return ok
}

// Stop cancels every pending timer.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
		s.gen[key]++
	}
}

// Ticker runs fn on a fixed interval until stopped. It backs the periodic
// reconciliation paths (notification refresh, clock display) where a missed
// tick is harmless because the next one repeats the work.
type Ticker struct {
	stop chan struct{}
	once sync.Once
}

// NewTicker starts a ticker invoking fn every interval.
func NewTicker(interval time.Duration, fn func()) *Ticker {
	t := &Ticker{stop: make(chan struct{})}
	go func() {
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-tick.C:
				fn()
			}
		}
	}()
	return t
}

// Stop halts the ticker. Safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
}
