package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/habithero/internal/engine"
	"github.com/julianstephens/habithero/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit a habit's name or XP tier."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit."`
}

func xpOptions() []huh.Option[models.XPValue] {
	return []huh.Option[models.XPValue]{
		huh.NewOption("Trivial (20 XP)", models.XPTrivial),
		huh.NewOption("Easy (30 XP)", models.XPEasy),
		huh.NewOption("Medium (50 XP)", models.XPMedium),
		huh.NewOption("Hard (70 XP)", models.XPHard),
		huh.NewOption("Epic (100 XP)", models.XPEpic),
	}
}

type HabitAddCmd struct {
	Name string `arg:"" optional:"" help:"Habit name."`
	XP   int    `help:"XP tier (20, 30, 50, 70 or 100)." default:"0"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	now := time.Now()
	state, err := ctx.OpenSession(now)
	if err != nil {
		return err
	}

	name := c.Name
	xp := models.XPValue(c.XP)

	// Fall back to an interactive form when the flags don't fully
	// describe the habit.
	if name == "" || !xp.Valid() {
		if xp == 0 {
			xp = models.XPMedium
		}
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("name cannot be empty")
						}
						return nil
					}),
				huh.NewSelect[models.XPValue]().
					Title("XP tier").
					Options(xpOptions()...).
					Value(&xp),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	ctx.PerformAutomaticBackup()

	next, habit, err := engine.CreateHabit(state, uuid.New().String(), name, xp, now)
	if err != nil {
		return err
	}

	ctx.SaveSession(next)
	fmt.Printf("Added habit: %s (%d XP)\n", habit.Name, habit.XPValue)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	now := time.Now()
	state, err := ctx.OpenSession(now)
	if err != nil {
		return err
	}

	if len(state.Habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today := engine.LogicDay(now)
	done := make(map[string]bool)
	for _, comp := range state.Completions[today] {
		done[comp.HabitID] = true
	}

	for _, habit := range state.Habits {
		if habit.IsArchived && !c.Archived {
			continue
		}
		status := "[ ]"
		if done[habit.ID] {
			status = "[x]"
		}
		suffix := ""
		if habit.IsArchived {
			suffix = " [ARCHIVED]"
		}
		fmt.Printf("%s %s (%d XP)%s\n", status, habit.Name, habit.XPValue, suffix)
	}

	return nil
}

type HabitEditCmd struct {
	Name    string `arg:"" help:"Habit name."`
	NewName string `help:"New name for the habit."`
	XP      int    `help:"New XP tier (20, 30, 50, 70 or 100)." default:"0"`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	now := time.Now()
	state, err := ctx.OpenSession(now)
	if err != nil {
		return err
	}

	habit, ok := state.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	name := habit.Name
	if c.NewName != "" {
		name = c.NewName
	}
	xp := habit.XPValue
	if c.XP != 0 {
		xp = models.XPValue(c.XP)
	}

	ctx.PerformAutomaticBackup()

	next, err := engine.EditHabit(state, habit.ID, name, xp)
	if err != nil {
		return err
	}

	ctx.SaveSession(next)
	fmt.Printf("Updated habit: %s (%d XP)\n", name, xp)
	return nil
}

type HabitArchiveCmd struct {
	Name      string `arg:"" help:"Habit name to archive."`
	Unarchive bool   `help:"Unarchive the habit instead."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	now := time.Now()
	state, err := ctx.OpenSession(now)
	if err != nil {
		return err
	}

	habit, ok := findHabit(state, c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	var next models.AppState
	if c.Unarchive {
		next, err = engine.UnarchiveHabit(state, habit.ID)
	} else {
		next, err = engine.ArchiveHabit(state, habit.ID)
	}
	if err != nil {
		return err
	}

	ctx.SaveSession(next)
	if c.Unarchive {
		fmt.Printf("Unarchived habit: %s\n", habit.Name)
	} else {
		fmt.Printf("Archived habit: %s\n", habit.Name)
	}
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	now := time.Now()
	state, err := ctx.OpenSession(now)
	if err != nil {
		return err
	}

	habit, ok := findHabit(state, c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	ctx.PerformAutomaticBackup()

	next, err := engine.DeleteHabit(state, habit.ID)
	if err != nil {
		return err
	}

	ctx.SaveSession(next)
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	fmt.Println("(Completion history is kept; restore from a backup to undo)")
	return nil
}

// findHabit matches by name including archived habits, since archive
// management must reach them.
func findHabit(state models.AppState, name string) (models.Habit, bool) {
	for _, h := range state.Habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}
