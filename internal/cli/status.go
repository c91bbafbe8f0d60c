package cli

import (
	"fmt"
	"strings"

	"github.com/rpglife/rpglife/internal/engine"
	"github.com/rpglife/rpglife/internal/rank"
	"github.com/rpglife/rpglife/internal/stats"
)

type StatusCmd struct {
	Chart bool `help:"Include a per-day XP chart."`
}

func (c *StatusCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		s := e.State()
		now := e.Now()

		current := rank.Current(s.TotalXP)
		fmt.Println(titleStyle.Render(fmt.Sprintf("%s %s — %s", current.Avatar, current.Badge, current.Name)))

		fmt.Printf("%s %s\n", labelStyle.Render("Total XP"), valueStyle.Render(fmt.Sprintf("%d", s.TotalXP)))
		if next, ok := rank.Next(s.TotalXP); ok {
			fmt.Printf("%s %d XP to %s\n", labelStyle.Render("Next rank"), next.MinXP-s.TotalXP, next.Badge)
		} else {
			fmt.Printf("%s top of the ladder\n", labelStyle.Render("Next rank"))
		}
		fmt.Printf("%s %d / %d\n", labelStyle.Render("Today"), s.DailyXP, e.Config().Daily.XPGoal)

		fmt.Println()
		goal := e.Config().Daily.XPGoal
		fmt.Printf("%s %d days\n", labelStyle.Render("XP streak"), stats.DailyXPStreak(s, now, goal))
		fmt.Printf("%s %d days\n", labelStyle.Render("Sport streak"), stats.SportStreak(s, now))
		fmt.Printf("%s %d days\n", labelStyle.Render("Blocks streak"), stats.BlocksStreak(s, now))

		mandatory := stats.MandatorySessionsToday(s, now)
		fmt.Printf("%s %d/2 (%d min focused today)\n",
			labelStyle.Render("Mandatory blocks"), mandatory, stats.TodayFocusMinutes(s, now))
		if mandatory >= 2 {
			fmt.Println(bonusStyle.Render("Double XP active for further sessions today."))
		}

		rate := stats.IntensityRate(s.WeeklyReviews)
		fmt.Printf("%s %d%% — %s\n", labelStyle.Render("Intensity"), rate, rank.IntensityLabel(rate))

		status := e.SeasonStatus()
		if status.Started {
			fmt.Printf("%s %d, day %d of %d, goal %d XP\n",
				labelStyle.Render("Season"), status.Season, status.DaysElapsed+1,
				e.Config().Season.LengthDays, status.GoalXP)
		} else {
			fmt.Printf("%s %d not started\n", labelStyle.Render("Season"), status.Season)
		}

		if c.Chart {
			fmt.Println()
			printChart(stats.LastDays(s, now, s.Settings.ChartRangeDays))
		}
		return nil
	})
}

// printChart renders one bar per day scaled to the busiest day in range.
func printChart(points []stats.DayPoint) {
	maxXP := 1
	for _, p := range points {
		if p.XP > maxXP {
			maxXP = p.XP
		}
	}
	for _, p := range points {
		// Penalties can push a day's net XP below zero; such days get an
		// empty bar rather than a negative repeat count.
		width := p.XP * 30 / maxXP
		if width < 0 {
			width = 0
		}
		fmt.Printf("%s %s %d XP, %d min\n",
			labelStyle.Render(p.Day), strings.Repeat("█", width), p.XP, p.Minutes)
	}
}

type AchievementsCmd struct {
	All bool `help:"Include locked achievements."`
}

func (c *AchievementsCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		s := e.State()
		achievements := rank.Evaluate(s, e.Now(), e.Config().Daily.XPGoal)

		fmt.Println(titleStyle.Render(fmt.Sprintf("Achievements %d/%d",
			rank.UnlockedCount(achievements), len(achievements))))

		for _, a := range achievements {
			switch {
			case a.Unlocked:
				fmt.Printf("%s %s — %s\n", a.Icon, valueStyle.Render(a.Name), a.Description)
			case c.All:
				line := fmt.Sprintf("🔒 %s — %s", a.Name, a.Description)
				if a.Target > 0 {
					line += fmt.Sprintf(" (%d/%d)", a.Progress, a.Target)
				}
				fmt.Println(lockedStyle.Render(line))
			}
		}
		return nil
	})
}
