package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/rpglife/rpglife/internal/cli"
	"github.com/rpglife/rpglife/internal/config"
	"github.com/rpglife/rpglife/internal/constants"
	"github.com/rpglife/rpglife/internal/errors"
	"github.com/rpglife/rpglife/internal/logger"
	"github.com/rpglife/rpglife/internal/scheduler"
	"github.com/rpglife/rpglife/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	State   string `help:"State file path. A .db extension selects the SQLite snapshot store." type:"path" default:"~/.config/rpglife/rpglife.json"`
	Config  string `help:"Tuning config file path." type:"path" default:"~/.config/rpglife/config.yaml"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init         cli.InitCmd         `cmd:"" help:"Initialize rpglife storage."`
	Status       cli.StatusCmd       `cmd:"" help:"Show rank, XP, streaks and season at a glance." default:"1"`
	Log          cli.LogCmd          `cmd:"" help:"Log daily activities (sport, sleep, distractions)."`
	Focus        cli.FocusCmd        `cmd:"" help:"Run and record focus sessions."`
	Review       cli.ReviewCmd       `cmd:"" help:"Weekly self-assessment."`
	Season       cli.SeasonCmd       `cmd:"" help:"Season goals, countdown and history."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show the achievement catalog."`
	Project      cli.ProjectCmd      `cmd:"" help:"Manage focus projects."`
	Backup       cli.BackupCmd       `cmd:"" help:"Create, list and restore state backups."`
	Export       cli.ExportCmd       `cmd:"" help:"Export state to a JSON document."`
	Import       cli.ImportCmd       `cmd:"" help:"Import a previously exported document."`
	Reset        cli.ResetCmd        `cmd:"" help:"Wipe all progression."`
	Doctor       cli.DoctorCmd       `cmd:"" help:"Run storage and clock diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local RPG-style progression tracker: XP, ranks, streaks and seasons"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(CLI.State)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.State, ".db") || strings.HasSuffix(CLI.State, ".sqlite") {
		store = storage.NewSQLiteStore(CLI.State)
	} else {
		store = storage.NewJSONStore(CLI.State)
	}
	defer store.Close()

	lock, err := storage.AcquireLock(CLI.State)
	if err != nil {
		errors.Fatal(err)
	}
	defer lock.Release()

	appCtx := &cli.Context{
		Store:     store,
		Config:    cfg,
		Clock:     scheduler.SystemClock{},
		ConfigDir: configDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		lock.Release()
		store.Close()
		errors.Fatal(err)
	}
}
