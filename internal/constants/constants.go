package constants

const (
	AppName           = "rpglife"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/rpglife/rpglife.json"

	// DateFormat is the standard calendar-day format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Export constants
	ExportFilePrefix = "rpglife-export-"
	ExportFileSuffix = ".json"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "rpglife-"
	BackupFileSuffix = ".json"

	// Lockfile guarding against a second instance mutating the same state file
	LockfileName = "rpglife.lock"
)

// XP awards and penalties for dashboard activities.
const (
	XPSport      = 3
	XPSleepGood  = 2
	XPSleepAvg   = 1
	XPReview     = 5
	PenaltyInsta = 3
	PenaltyMusic = 5
)

// Focus economy constants. Every full MinutesPerXP minutes of focus earns one
// XP; a day's focus time is divided into MandatoryBlockMinutes blocks, capped
// at MaxMandatoryBlocks, and completing the cap doubles further session XP.
const (
	MinutesPerXP          = 18
	MandatoryBlockMinutes = 90
	MaxMandatoryBlocks    = 2
	BlocksStreakMinutes   = 180
)

// Weekly review constants.
const (
	ReviewScoreCount   = 5
	ReviewScoreMax     = 10
	ReviewCooldownDays = 7
)
