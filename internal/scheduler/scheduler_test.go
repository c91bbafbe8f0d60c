package scheduler

import (
	"testing"
	"time"
)

var testStart = time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)

func TestScheduleFires(t *testing.T) {
	clock := NewFakeClock(testStart)
	s := New(clock)

	fired := 0
	s.Schedule("daily-reset", 2*time.Hour, func() { fired++ })

	clock.Advance(time.Hour)
	if fired != 0 {
		t.Fatal("timer fired early")
	}
	clock.Advance(time.Hour)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	clock.Advance(10 * time.Hour)
	if fired != 1 {
		t.Fatalf("one-shot timer fired again, fired = %d", fired)
	}
}

func TestScheduleReplacesSameName(t *testing.T) {
	clock := NewFakeClock(testStart)
	s := New(clock)

	var got string
	s.Schedule("autosave", time.Minute, func() { got = "first" })
	s.Schedule("autosave", 2*time.Minute, func() { got = "second" })

	clock.Advance(time.Minute)
	if got != "" {
		t.Fatal("replaced timer still fired")
	}
	clock.Advance(time.Minute)
	if got != "second" {
		t.Fatalf("got = %q, want second", got)
	}
}

func TestScheduleAt(t *testing.T) {
	clock := NewFakeClock(testStart)
	s := New(clock)

	fired := false
	midnight := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s.ScheduleAt("daily-reset", midnight, func() { fired = true })

	clock.Advance(119 * time.Minute)
	if fired {
		t.Fatal("fired before midnight")
	}
	clock.Advance(time.Minute)
	if !fired {
		t.Fatal("did not fire at midnight")
	}
}

func TestEveryReArms(t *testing.T) {
	clock := NewFakeClock(testStart)
	s := New(clock)

	fired := 0
	s.Every("autosave", 30*time.Second, func() { fired++ })

	clock.Advance(95 * time.Second)
	if fired != 3 {
		t.Fatalf("fired = %d, want 3", fired)
	}

	s.Cancel("autosave")
	clock.Advance(5 * time.Minute)
	if fired != 3 {
		t.Fatalf("fired after cancel, fired = %d", fired)
	}
}

func TestCancel(t *testing.T) {
	clock := NewFakeClock(testStart)
	s := New(clock)

	s.Schedule("daily-reset", time.Hour, func() { t.Error("cancelled timer fired") })
	if !s.Cancel("daily-reset") {
		t.Error("Cancel() = false for pending timer")
	}
	if s.Cancel("daily-reset") {
		t.Error("Cancel() = true for already-cancelled timer")
	}
	if s.Cancel("unknown") {
		t.Error("Cancel() = true for unknown name")
	}

	clock.Advance(2 * time.Hour)
}

func TestStopCancelsAll(t *testing.T) {
	clock := NewFakeClock(testStart)
	s := New(clock)

	for _, name := range []string{"a", "b", "c"} {
		s.Schedule(name, time.Minute, func() { t.Errorf("timer %s fired after Stop", name) })
	}
	s.Stop()
	clock.Advance(time.Hour)
}

func TestFakeClockAdvanceOrdersCallbacks(t *testing.T) {
	clock := NewFakeClock(testStart)

	var order []string
	clock.AfterFunc(3*time.Second, func() { order = append(order, "late") })
	clock.AfterFunc(time.Second, func() { order = append(order, "early") })

	clock.Advance(5 * time.Second)
	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("order = %v", order)
	}
	if got := clock.Now(); !got.Equal(testStart.Add(5 * time.Second)) {
		t.Errorf("Now() = %v after advance", got)
	}
}
