package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
focus:
  cancel_min_minutes: 5
daily:
  xp_goal: 20
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Focus.CancelMinMinutes != 5 {
		t.Errorf("CancelMinMinutes = %d, want 5", cfg.Focus.CancelMinMinutes)
	}
	if cfg.Daily.XPGoal != 20 {
		t.Errorf("XPGoal = %d, want 20", cfg.Daily.XPGoal)
	}
	if cfg.Season.LengthDays != 42 {
		t.Errorf("LengthDays = %d, want default kept", cfg.Season.LengthDays)
	}
	if cfg.Autosave.IntervalSeconds != 30 {
		t.Errorf("IntervalSeconds = %d, want default kept", cfg.Autosave.IntervalSeconds)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("focus: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed config accepted")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"negative cancel threshold": "focus:\n  cancel_min_minutes: -1\n",
		"zero season length":        "season:\n  length_days: 0\n",
		"zero autosave interval":    "autosave:\n  interval_seconds: 0\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}
