// Package scheduler provides named, cancellable, re-armable timeouts over an
// injectable clock. The engine itself never sleeps; the CLI arms timers here
// for the midnight daily reset and the periodic autosave, and tests drive
// them deterministically through a FakeClock.
package scheduler

import (
	"sync"
	"time"
)

type Scheduler struct {
	clock  Clock
	mu     sync.Mutex
	timers map[string]Timer
}

func New(clock Clock) *Scheduler {
	return &Scheduler{
		clock:  clock,
		timers: make(map[string]Timer),
	}
}

// Now exposes the scheduler's clock.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// Schedule arms (or re-arms) the named timeout. An existing timer under the
// same name is cancelled first, so scheduling is idempotent per name.
func (s *Scheduler) Schedule(name string, d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[name]; ok {
		existing.Stop()
	}

	s.timers[name] = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, name)
		s.mu.Unlock()
		fn()
	})
}

// ScheduleAt arms the named timeout to fire at t. Times in the past fire
// immediately on the timer goroutine.
func (s *Scheduler) ScheduleAt(name string, t time.Time, fn func()) {
	d := t.Sub(s.clock.Now())
	if d < 0 {
		d = 0
	}
	s.Schedule(name, d, fn)
}

// Every arms the named timeout to fire repeatedly at the given interval,
// re-arming itself after each firing until cancelled.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) {
	s.Schedule(name, interval, func() {
		fn()
		s.Every(name, interval, fn)
	})
}

// Cancel stops the named timer, reporting whether it was pending.
func (s *Scheduler) Cancel(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[name]
	if !ok {
		return false
	}
	delete(s.timers, name)
	return timer.Stop()
}

// Stop cancels every pending timer.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, timer := range s.timers {
		timer.Stop()
		delete(s.timers, name)
	}
}
