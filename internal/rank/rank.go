package rank

// Rank is a named tier unlocked by a cumulative XP threshold (inclusive).
type Rank struct {
	Name   string
	Badge  string
	Avatar string
	MinXP  int
}

// Table is the ascending rank ladder. Order matters: Current walks it from
// the top down.
var Table = []Rank{
	{Name: "Aimless Drifter", Badge: "E", Avatar: "😵", MinXP: 0},
	{Name: "Spectator of Life", Badge: "D", Avatar: "🎯", MinXP: 200},
	{Name: "Twilight Wanderer", Badge: "C", Avatar: "⚡", MinXP: 300},
	{Name: "Nascent Strategist", Badge: "B", Avatar: "🔥", MinXP: 400},
	{Name: "Veteran", Badge: "A", Avatar: "💎", MinXP: 500},
	{Name: "Sentinel of Ascension", Badge: "S", Avatar: "👑", MinXP: 600},
	{Name: "Paragon of Zenith", Badge: "SS", Avatar: "🌟", MinXP: 700},
	{Name: "Chosen of Destiny", Badge: "SSS", Avatar: "🌙", MinXP: 750},
}

// Current returns the highest rank whose threshold is at or below totalXP.
func Current(totalXP int) Rank {
	current := Table[0]
	for i := len(Table) - 1; i >= 0; i-- {
		if totalXP >= Table[i].MinXP {
			current = Table[i]
			break
		}
	}
	return current
}

// Next returns the rank above totalXP, or false when already at the top.
func Next(totalXP int) (Rank, bool) {
	for _, r := range Table {
		if totalXP < r.MinXP {
			return r, true
		}
	}
	return Rank{}, false
}

// IntensityLevel labels a band of intensity rates.
type IntensityLevel struct {
	Min   int
	Max   int
	Label string
}

var intensityLevels = []IntensityLevel{
	{Min: 0, Max: 20, Label: "Void Wanderer"},
	{Min: 21, Max: 40, Label: "Lost Apprentice"},
	{Min: 41, Max: 60, Label: "Driven Disciple"},
	{Min: 61, Max: 75, Label: "Determined Adept"},
	{Min: 76, Max: 85, Label: "Focused Expert"},
	{Min: 86, Max: 95, Label: "Disciplined Master"},
	{Min: 96, Max: 99, Label: "Living Legend"},
	{Min: 100, Max: 100, Label: "Transcendent"},
}

// IntensityLabel names the intensity band containing rate.
func IntensityLabel(rate int) string {
	for _, level := range intensityLevels {
		if rate >= level.Min && rate <= level.Max {
			return level.Label
		}
	}
	return intensityLevels[0].Label
}
