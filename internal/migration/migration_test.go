package migration

import (
	"testing"

	"github.com/rpglife/rpglife/internal/models"
)

func legacyDoc() map[string]any {
	return map[string]any{
		"totalXP":        float64(420),
		"dailyXP":        float64(5),
		"lastDailyReset": "2026-02-01",
		"projects": []any{
			map[string]any{"id": "p1", "name": "thesis", "timeGoal": float64(100), "totalTime": float64(300)},
		},
		"focusSessions": []any{
			map[string]any{"date": "2026-02-01T10:00:00Z", "duration": float64(90), "project": "p1"},
		},
		"xpHistory": []any{
			map[string]any{"date": "2026-02-01T10:00:00Z", "amount": float64(5), "total": float64(420)},
		},
		"weeklyReviews": []any{
			map[string]any{"week": float64(3), "totalScore": float64(35)},
		},
		"seasonHistory": []any{},
		"settings": map[string]any{
			"theme":              "default",
			"soundNotifications": true,
			"chartRange":         float64(7),
		},
	}
}

func TestDocumentVersion(t *testing.T) {
	if got := DocumentVersion(map[string]any{}); got != 0 {
		t.Errorf("untagged version = %d, want 0", got)
	}
	if got := DocumentVersion(map[string]any{"version": float64(2)}); got != 2 {
		t.Errorf("version = %d, want 2", got)
	}
}

func TestMigrateLegacyDocument(t *testing.T) {
	doc, applied, err := Migrate(legacyDoc())
	if err != nil {
		t.Fatal(err)
	}
	if applied != 3 {
		t.Errorf("applied %d steps, want 3", applied)
	}
	if got := DocumentVersion(doc); got != models.CurrentVersion {
		t.Errorf("version = %d, want %d", got, models.CurrentVersion)
	}

	if _, ok := doc["totalXP"]; ok {
		t.Error("camelCase totalXP survived migration")
	}
	if doc["total_xp"] != float64(420) {
		t.Errorf("total_xp = %v", doc["total_xp"])
	}
	if doc["started"] != false || doc["season_number"] != float64(1) {
		t.Errorf("season fields = started %v, number %v", doc["started"], doc["season_number"])
	}

	session := doc["focus_sessions"].([]any)[0].(map[string]any)
	if session["duration_minutes"] != float64(90) {
		t.Errorf("session duration_minutes = %v", session["duration_minutes"])
	}
	if session["project_id"] != "p1" {
		t.Errorf("session project_id = %v", session["project_id"])
	}
	if session["kind"] != "normal" || session["xp_awarded"] != float64(0) {
		t.Errorf("seeded session fields = kind %v, xp %v", session["kind"], session["xp_awarded"])
	}

	project := doc["projects"].([]any)[0].(map[string]any)
	if project["time_goal_hours"] != float64(100) || project["total_time_minutes"] != float64(300) {
		t.Errorf("project fields = %v", project)
	}

	entry := doc["xp_history"].([]any)[0].(map[string]any)
	if entry["running_total"] != float64(420) {
		t.Errorf("ledger running_total = %v", entry["running_total"])
	}

	review := doc["weekly_reviews"].([]any)[0].(map[string]any)
	if review["total_score"] != float64(35) {
		t.Errorf("review total_score = %v", review["total_score"])
	}

	settings := doc["settings"].(map[string]any)
	if settings["chart_range_days"] != float64(7) {
		t.Errorf("settings chart_range_days = %v", settings["chart_range_days"])
	}
	if _, ok := settings["soundNotifications"]; ok {
		t.Error("camelCase soundNotifications survived migration")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	doc, _, err := Migrate(legacyDoc())
	if err != nil {
		t.Fatal(err)
	}

	again, applied, err := Migrate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 0 {
		t.Errorf("second Migrate applied %d steps, want 0", applied)
	}
	if DocumentVersion(again) != models.CurrentVersion {
		t.Errorf("version drifted to %d", DocumentVersion(again))
	}
}

func TestMigrateFromIntermediateVersion(t *testing.T) {
	doc := map[string]any{
		"version":        float64(2),
		"total_xp":       float64(100),
		"focus_sessions": []any{map[string]any{"duration": float64(45)}},
	}

	doc, applied, err := Migrate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 1 {
		t.Errorf("applied %d steps, want 1", applied)
	}
	session := doc["focus_sessions"].([]any)[0].(map[string]any)
	if session["duration_minutes"] != float64(45) {
		t.Errorf("duration_minutes = %v", session["duration_minutes"])
	}
}

func TestMigrateFutureVersionIsNoOp(t *testing.T) {
	doc := map[string]any{"version": float64(99)}
	got, applied, err := Migrate(doc)
	if err != nil {
		t.Fatal(err)
	}
	if applied != 0 || DocumentVersion(got) != 99 {
		t.Errorf("future document touched: applied=%d version=%d", applied, DocumentVersion(got))
	}
}

func TestRenameKeyKeepsExistingTarget(t *testing.T) {
	m := map[string]any{"duration": float64(10), "duration_minutes": float64(20)}
	renameKey(m, "duration", "duration_minutes")
	if m["duration_minutes"] != float64(20) {
		t.Errorf("existing target overwritten: %v", m["duration_minutes"])
	}
	if _, ok := m["duration"]; ok {
		t.Error("source key survived rename")
	}
}
