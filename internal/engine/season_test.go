package engine

import (
	"errors"
	"testing"
	"time"
)

func TestStartSeason(t *testing.T) {
	e, _ := newTestEngine(t)

	if err := e.StartSeason(600); err != nil {
		t.Fatal(err)
	}

	s := e.State()
	if !s.Started || s.SeasonGoalXP != 600 {
		t.Errorf("state after start = started %v, goal %d", s.Started, s.SeasonGoalXP)
	}
	if s.SeasonStartDate == nil || !s.SeasonStartDate.Equal(testStart) {
		t.Errorf("SeasonStartDate = %v, want %v", s.SeasonStartDate, testStart)
	}
}

func TestStartSeasonValidation(t *testing.T) {
	tests := []struct {
		name    string
		goal    int
		wantErr error
	}{
		{"missing goal", 0, ErrSeasonGoalRequired},
		{"arbitrary goal", 550, ErrInvalidSeasonGoal},
		{"negative goal", -500, ErrInvalidSeasonGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			if err := e.StartSeason(tt.goal); !errors.Is(err, tt.wantErr) {
				t.Errorf("StartSeason(%d) err = %v, want %v", tt.goal, err, tt.wantErr)
			}
			if e.State().Started {
				t.Error("season marked started after rejected goal")
			}
		})
	}
}

func TestStartSeasonTwice(t *testing.T) {
	e, _ := newTestEngine(t)
	if err := e.StartSeason(500); err != nil {
		t.Fatal(err)
	}
	if err := e.StartSeason(700); !errors.Is(err, ErrSeasonAlreadyStarted) {
		t.Errorf("err = %v, want ErrSeasonAlreadyStarted", err)
	}
	if got := e.State().SeasonGoalXP; got != 500 {
		t.Errorf("goal changed to %d by rejected restart", got)
	}
}

func TestSeasonStatus(t *testing.T) {
	e, clock := newTestEngine(t)

	status := e.SeasonStatus()
	if status.Started {
		t.Fatal("fresh season reported as started")
	}

	if err := e.StartSeason(750); err != nil {
		t.Fatal(err)
	}
	clock.Advance(10 * 24 * time.Hour)

	status = e.SeasonStatus()
	if status.DaysElapsed != 10 || status.DaysRemaining != 32 {
		t.Errorf("countdown = %d elapsed / %d remaining, want 10/32", status.DaysElapsed, status.DaysRemaining)
	}
	if !status.EndsAt.Equal(testStart.AddDate(0, 0, 42)) {
		t.Errorf("EndsAt = %v", status.EndsAt)
	}
}
