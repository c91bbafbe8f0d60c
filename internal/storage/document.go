package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpglife/rpglife/internal/logger"
	"github.com/rpglife/rpglife/internal/migration"
	"github.com/rpglife/rpglife/internal/models"
	"github.com/rpglife/rpglife/internal/validation"
)

// DecodeDocument turns raw persisted bytes into a trusted state: validate,
// migrate, then unmarshal. A document that fails validation yields a default
// state and a warning in the log; the caller must never partially trust a
// malformed document.
func DecodeDocument(raw []byte) (*models.ProgressionState, error) {
	doc, err := validation.ValidateBytes(raw)
	if err != nil {
		logger.Warn("Persisted state failed validation, falling back to defaults", "error", err)
		return models.DefaultState(time.Now()), nil
	}

	doc, applied, err := migration.Migrate(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate state document: %w", err)
	}
	if applied > 0 {
		logger.Info("Migrated state document", "steps", applied, "version", migration.DocumentVersion(doc))
	}

	migrated, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to re-serialize migrated document: %w", err)
	}

	var state models.ProgressionState
	if err := json.Unmarshal(migrated, &state); err != nil {
		logger.Warn("Migrated state does not parse, falling back to defaults", "error", err)
		return models.DefaultState(time.Now()), nil
	}

	ensureCollections(&state)
	return &state, nil
}

// EncodeDocument serializes state as the persisted document format.
func EncodeDocument(state *models.ProgressionState) ([]byte, error) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state: %w", err)
	}
	return data, nil
}

// ensureCollections replaces nil collections so downstream appends and map
// writes never have to nil-check.
func ensureCollections(state *models.ProgressionState) {
	if state.SeasonHistory == nil {
		state.SeasonHistory = []models.SeasonRecord{}
	}
	if state.Projects == nil {
		state.Projects = []models.Project{}
	}
	if state.FocusSessions == nil {
		state.FocusSessions = []models.FocusSession{}
	}
	if state.DailyActions == nil {
		state.DailyActions = map[string]models.DayActions{}
	}
	if state.XPHistory == nil {
		state.XPHistory = []models.XPEntry{}
	}
	if state.WeeklyReviews == nil {
		state.WeeklyReviews = []models.WeeklyReview{}
	}
	if state.Achievements == nil {
		state.Achievements = []models.AchievementCache{}
	}
}
