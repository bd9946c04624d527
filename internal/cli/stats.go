package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habithero/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	barFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("236"))
)

const xpBarWidth = 30

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	now := time.Now()
	state, err := ctx.OpenSession(now)
	if err != nil {
		return err
	}

	threshold := engine.XPForNextLevel(state.Profile.CurrentLevel)
	today := engine.LogicDay(now)

	fmt.Println(headerStyle.Render(fmt.Sprintf("%s — Level %d", state.Profile.Name, state.Profile.CurrentLevel)))
	fmt.Printf("%s %s %d/%d XP\n", renderXPBar(state.Profile.CurrentXP, threshold), labelStyle.Render("next level:"), state.Profile.CurrentXP, threshold)
	fmt.Printf("%s %d\n", labelStyle.Render("Lifetime XP:"), state.Profile.TotalLifetimeXP)
	fmt.Println()

	fmt.Printf("%s %d day(s)", labelStyle.Render("Current streak:"), state.Streak.CurrentStreak)
	if state.Streak.StreakStartDate != "" {
		fmt.Printf(" (since %s)", state.Streak.StreakStartDate)
	}
	fmt.Println()
	fmt.Printf("%s %d day(s)\n", labelStyle.Render("Longest streak:"), state.Streak.LongestStreak)
	fmt.Println()

	completed := len(state.Completions[today])
	active := len(state.ActiveHabits())
	fmt.Printf("%s %d/%d habits completed\n", labelStyle.Render("Today:"), completed, active)
	if mood, ok := state.Moods[today]; ok {
		fmt.Printf("%s %s\n", labelStyle.Render("Mood:"), mood)
	}

	return nil
}

func renderXPBar(current, max int) string {
	if max <= 0 {
		max = 1
	}
	filled := current * xpBarWidth / max
	if filled > xpBarWidth {
		filled = xpBarWidth
	}
	return barFilledStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", xpBarWidth-filled))
}
