package validation

import (
	"encoding/json"
	"fmt"
)

// collectionFields are the top-level fields that must be JSON arrays in any
// trusted state document, regardless of schema version.
var collectionFields = []string{
	"projects",
	"focus_sessions",
	"xp_history",
	"season_history",
	"weekly_reviews",
	"achievements",
}

// legacyAliases maps current field names to the names older documents used.
// A document satisfies the array requirement through either spelling.
var legacyAliases = map[string]string{
	"focus_sessions": "focusSessions",
	"xp_history":     "xpHistory",
	"season_history": "seasonHistory",
	"weekly_reviews": "weeklyReviews",
	"total_xp":       "totalXP",
}

// ValidateDocument reports whether doc is a structurally trustworthy state
// document. It gates every load and import: on failure the loader falls back
// to a default state and the importer aborts without mutating anything.
// Validation is deliberately shallow; the migration engine owns per-version
// shape differences.
func ValidateDocument(doc map[string]any) bool {
	if doc == nil {
		return false
	}

	for _, field := range collectionFields {
		if !isArray(lookup(doc, field)) {
			return false
		}
	}

	if !isNumber(lookup(doc, "total_xp")) {
		return false
	}

	if v, ok := doc["version"]; ok && !isNumber(v) {
		return false
	}

	return true
}

// ValidateBytes parses raw JSON and validates the resulting document.
func ValidateBytes(raw []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("state document is not valid JSON: %w", err)
	}
	if !ValidateDocument(doc) {
		return nil, fmt.Errorf("state document is malformed")
	}
	return doc, nil
}

func lookup(doc map[string]any, field string) any {
	if v, ok := doc[field]; ok {
		return v
	}
	if alias, ok := legacyAliases[field]; ok {
		if v, ok := doc[alias]; ok {
			return v
		}
	}
	return nil
}

func isArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, json.Number:
		return true
	default:
		return false
	}
}
