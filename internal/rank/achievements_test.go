package rank

import (
	"testing"
	"time"

	"github.com/rpglife/rpglife/internal/models"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestEvaluateFreshState(t *testing.T) {
	s := models.DefaultState(testNow)
	achievements := Evaluate(s, testNow, 15)

	if len(achievements) != 12 {
		t.Fatalf("Evaluate() returned %d achievements, want 12", len(achievements))
	}
	if got := UnlockedCount(achievements); got != 0 {
		t.Errorf("UnlockedCount() on fresh state = %d, want 0", got)
	}
}

func TestEvaluateUnlocks(t *testing.T) {
	s := models.DefaultState(testNow)
	s.TotalXP = 600
	s.DailyXP = 20
	s.FocusSessions = []models.FocusSession{
		{Date: testNow, DurationMinutes: 250},
	}

	byID := make(map[string]Achievement)
	for _, a := range Evaluate(s, testNow, 15) {
		byID[a.ID] = a
	}

	expectUnlocked := []string{"first_session", "daily_quota", "marathoner", "rank_sentinel"}
	for _, id := range expectUnlocked {
		if !byID[id].Unlocked {
			t.Errorf("achievement %s locked, want unlocked", id)
		}
	}
	expectLocked := []string{"focus_hunter", "xp_collector", "season_champion"}
	for _, id := range expectLocked {
		if byID[id].Unlocked {
			t.Errorf("achievement %s unlocked, want locked", id)
		}
	}
}

func TestSeasonChampion(t *testing.T) {
	tests := []struct {
		name    string
		history []models.SeasonRecord
		want    bool
	}{
		{"no seasons", nil, false},
		{"ended below", []models.SeasonRecord{{Season: 1, TotalXP: 700, Badge: "SS"}}, false},
		{"ended at SSS", []models.SeasonRecord{{Season: 1, TotalXP: 780, Badge: "SSS"}}, true},
		{
			"any past season counts",
			[]models.SeasonRecord{
				{Season: 1, TotalXP: 300, Badge: "C"},
				{Season: 2, TotalXP: 751, Badge: "SSS"},
				{Season: 3, TotalXP: 100, Badge: "E"},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.DefaultState(testNow)
			s.SeasonHistory = tt.history

			byID := make(map[string]Achievement)
			for _, a := range Evaluate(s, testNow, 15) {
				byID[a.ID] = a
			}
			if byID["season_champion"].Unlocked != tt.want {
				t.Errorf("season_champion unlocked = %v, want %v", byID["season_champion"].Unlocked, tt.want)
			}
		})
	}
}

func TestEvaluateProgressCounts(t *testing.T) {
	s := models.DefaultState(testNow)
	for i := 0; i < 7; i++ {
		s.FocusSessions = append(s.FocusSessions, models.FocusSession{Date: testNow, DurationMinutes: 30})
	}

	for _, a := range Evaluate(s, testNow, 15) {
		if a.ID == "focus_hunter" {
			if a.Progress != 7 || a.Target != 10 || a.Unlocked {
				t.Errorf("focus_hunter = progress %d/%d unlocked=%v, want 7/10 locked", a.Progress, a.Target, a.Unlocked)
			}
		}
	}
}
