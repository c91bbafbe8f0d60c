package engine

import (
	"encoding/json"
	"fmt"

	"github.com/rpglife/rpglife/internal/migration"
	"github.com/rpglife/rpglife/internal/models"
	"github.com/rpglife/rpglife/internal/validation"
)

// ExportDocument serializes the current state verbatim as the persisted
// document format; the result round-trips through Import.
func (e *Engine) ExportDocument() ([]byte, error) {
	data, err := json.MarshalIndent(e.state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state: %w", err)
	}
	return data, nil
}

// Import validates, migrates, and shallow-merges a user-supplied document
// into the current state: imported top-level fields override existing ones,
// settings merge one level deep. A document that fails validation is
// rejected with no mutation at all.
func (e *Engine) Import(raw []byte) error {
	doc, err := validation.ValidateBytes(raw)
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	doc, _, err = migration.Migrate(doc)
	if err != nil {
		return fmt.Errorf("import rejected: %w", err)
	}

	currentJSON, err := json.Marshal(e.state)
	if err != nil {
		return fmt.Errorf("failed to serialize current state: %w", err)
	}
	var current map[string]any
	if err := json.Unmarshal(currentJSON, &current); err != nil {
		return fmt.Errorf("failed to reload current state: %w", err)
	}

	merged := mergeDocuments(current, doc)

	mergedJSON, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("failed to serialize merged state: %w", err)
	}
	var next models.ProgressionState
	if err := json.Unmarshal(mergedJSON, &next); err != nil {
		return fmt.Errorf("import rejected: merged document does not parse: %w", err)
	}

	*e.state = next
	e.CheckDailyReset()
	e.CheckSeasonRollover()
	return nil
}

func mergeDocuments(current, imported map[string]any) map[string]any {
	merged := make(map[string]any, len(current))
	for k, v := range current {
		merged[k] = v
	}

	for k, v := range imported {
		if k == "settings" {
			merged[k] = mergeSettings(current[k], v)
			continue
		}
		merged[k] = v
	}
	return merged
}

func mergeSettings(current, imported any) any {
	currentMap, okCurrent := current.(map[string]any)
	importedMap, okImported := imported.(map[string]any)
	if !okCurrent || !okImported {
		return imported
	}

	merged := make(map[string]any, len(currentMap))
	for k, v := range currentMap {
		merged[k] = v
	}
	for k, v := range importedMap {
		merged[k] = v
	}
	return merged
}
