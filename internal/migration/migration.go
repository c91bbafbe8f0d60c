package migration

import (
	"fmt"

	"github.com/rpglife/rpglife/internal/models"
)

// A Step upgrades a state document from exactly one schema version to the
// next. Steps are keyed by the version they upgrade FROM and are never
// renumbered; adding a migration means appending a new entry for the current
// version before bumping models.CurrentVersion.
type Step struct {
	From  int
	Name  string
	Apply func(doc map[string]any) map[string]any
}

var steps = []Step{
	{From: 0, Name: "tag_version_and_rename_legacy_keys", Apply: migrateV0},
	{From: 1, Name: "season_fields_and_chart_range", Apply: migrateV1},
	{From: 2, Name: "normalize_sessions_and_projects", Apply: migrateV2},
}

// DocumentVersion returns the schema version recorded in doc, or 0 for
// untagged legacy documents.
func DocumentVersion(doc map[string]any) int {
	if v, ok := doc["version"].(float64); ok {
		return int(v)
	}
	return 0
}

// Migrate upgrades doc to models.CurrentVersion one step at a time and
// returns the upgraded document along with the number of steps applied. It is
// a no-op for documents already at (or somehow beyond) the current version.
func Migrate(doc map[string]any) (map[string]any, int, error) {
	applied := 0
	for {
		version := DocumentVersion(doc)
		if version >= models.CurrentVersion {
			return doc, applied, nil
		}

		step, ok := stepFrom(version)
		if !ok {
			return doc, applied, fmt.Errorf("no migration path from schema version %d", version)
		}

		doc = step.Apply(doc)
		doc["version"] = float64(version + 1)
		applied++
	}
}

func stepFrom(version int) (Step, bool) {
	for _, s := range steps {
		if s.From == version {
			return s, true
		}
	}
	return Step{}, false
}

// migrateV0 tags untagged legacy documents and renames the original
// camelCase keys to their snake_case successors.
func migrateV0(doc map[string]any) map[string]any {
	renameKey(doc, "totalXP", "total_xp")
	renameKey(doc, "dailyXP", "daily_xp")
	renameKey(doc, "lastDailyReset", "last_daily_reset")
	renameKey(doc, "focusSessions", "focus_sessions")
	renameKey(doc, "xpHistory", "xp_history")
	renameKey(doc, "dailyActions", "daily_actions")
	renameKey(doc, "weeklyReviews", "weekly_reviews")
	renameKey(doc, "seasonHistory", "season_history")
	renameKey(doc, "seasonStartDate", "season_start_date")

	if settings, ok := doc["settings"].(map[string]any); ok {
		renameKey(settings, "soundNotifications", "sound_notifications")
	}

	return doc
}

// migrateV1 seeds the season lifecycle fields introduced alongside seasons
// and renames the chart range setting to carry its unit.
func migrateV1(doc map[string]any) map[string]any {
	setDefault(doc, "started", false)
	setDefault(doc, "season_number", float64(1))
	setDefault(doc, "season_history", []any{})

	if settings, ok := doc["settings"].(map[string]any); ok {
		renameKey(settings, "chartRange", "chart_range_days")
	}

	return doc
}

// migrateV2 normalizes session, project, and ledger records to the current
// field names and seeds the per-session XP bookkeeping.
func migrateV2(doc map[string]any) map[string]any {
	if sessions, ok := doc["focus_sessions"].([]any); ok {
		for _, raw := range sessions {
			session, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			renameKey(session, "duration", "duration_minutes")
			renameKey(session, "project", "project_id")
			setDefault(session, "xp_awarded", float64(0))
			setDefault(session, "kind", string(models.SessionNormal))
		}
	}

	if projects, ok := doc["projects"].([]any); ok {
		for _, raw := range projects {
			project, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			renameKey(project, "timeGoal", "time_goal_hours")
			renameKey(project, "totalTime", "total_time_minutes")
			renameKey(project, "createdAt", "created_at")
		}
	}

	if entries, ok := doc["xp_history"].([]any); ok {
		for _, raw := range entries {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			renameKey(entry, "total", "running_total")
		}
	}

	if reviews, ok := doc["weekly_reviews"].([]any); ok {
		for _, raw := range reviews {
			review, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			renameKey(review, "totalScore", "total_score")
		}
	}

	return doc
}

func renameKey(m map[string]any, from, to string) {
	if v, ok := m[from]; ok {
		if _, exists := m[to]; !exists {
			m[to] = v
		}
		delete(m, from)
	}
}

func setDefault(m map[string]any, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}
