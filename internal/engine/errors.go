package engine

import "errors"

// Failure signals of the core engine. Every one of them means "no state
// change"; callers decide whether to surface them as errors or as informative
// notices (e.g. ErrAlreadyLogged).
var (
	ErrAlreadyLogged        = errors.New("already logged today")
	ErrReviewNotEligible    = errors.New("weekly review not yet available")
	ErrInvalidScore         = errors.New("review scores must be between 1 and 10")
	ErrSeasonGoalRequired   = errors.New("a season goal must be chosen before starting")
	ErrInvalidSeasonGoal    = errors.New("season goal must be one of the selectable targets")
	ErrSeasonAlreadyStarted = errors.New("a season is already in progress")
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidSleepQuality  = errors.New("unknown sleep quality")
	ErrInvalidDistraction   = errors.New("unknown distraction type")
)
