package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habithero/internal/engine"
)

var levelUpStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205")).
	Bold(true)

type DoneCmd struct {
	Name string `arg:"" help:"Habit name to mark complete."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	now := time.Now()
	state, err := ctx.OpenSession(now)
	if err != nil {
		return err
	}

	habit, ok := findHabit(state, c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	next, res := engine.CompleteHabit(state, habit.ID, now)
	if !res.Applied {
		switch res.Reason {
		case engine.ReasonAlreadyCompleted:
			fmt.Printf("%q is already done for today.\n", habit.Name)
		case engine.ReasonHabitArchived:
			fmt.Printf("%q is archived; unarchive it first.\n", habit.Name)
		default:
			fmt.Printf("Could not complete %q.\n", habit.Name)
		}
		return nil
	}

	ctx.SaveSession(next)

	fmt.Printf("Completed %q: +%d XP\n", habit.Name, res.XPGained)
	if res.LeveledUp {
		fmt.Println(levelUpStyle.Render(fmt.Sprintf("Level up! You reached level %d", res.NewLevel)))
	}
	fmt.Printf("Streak: %d day(s) | Level %d, %d/%d XP\n",
		next.Streak.CurrentStreak,
		next.Profile.CurrentLevel,
		next.Profile.CurrentXP,
		engine.XPForNextLevel(next.Profile.CurrentLevel))
	return nil
}
