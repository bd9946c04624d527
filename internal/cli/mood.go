package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habithero/internal/engine"
	"github.com/julianstephens/habithero/internal/logger"
	"github.com/julianstephens/habithero/internal/models"
)

func moodOptions() []huh.Option[models.Mood] {
	return []huh.Option[models.Mood]{
		huh.NewOption("Focused", models.MoodFocused),
		huh.NewOption("Good", models.MoodGood),
		huh.NewOption("Neutral", models.MoodNeutral),
		huh.NewOption("Frustrated", models.MoodFrustrated),
		huh.NewOption("Low energy", models.MoodLowEnergy),
	}
}

type MoodCmd struct {
	Tag string `arg:"" optional:"" help:"Mood tag (focused, good, neutral, frustrated, low_energy)."`
}

func (c *MoodCmd) Run(ctx *Context) error {
	now := time.Now()
	state, err := ctx.OpenSession(now)
	if err != nil {
		return err
	}

	today := engine.LogicDay(now)

	// The marker slice is a redundant fast check; the stats slice is
	// authoritative when they disagree.
	if marker, ok := ctx.Store.LoadMoodMarker(); ok && marker.Date == today {
		fmt.Printf("Mood already recorded for today: %s\n", marker.Mood)
		return nil
	}
	if !engine.NeedsCheckIn(state, now) {
		fmt.Printf("Mood already recorded for today: %s\n", state.Moods[today])
		return nil
	}

	mood := models.Mood(c.Tag)
	if c.Tag == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[models.Mood]().
					Title("How are you feeling today?").
					Options(moodOptions()...).
					Value(&mood),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	} else if !mood.Valid() {
		return fmt.Errorf("unknown mood %q: must be one of %v", c.Tag, models.Moods)
	}

	next, ok := engine.RecordMood(state, now, mood)
	if !ok {
		fmt.Println("Mood already recorded for today.")
		return nil
	}

	ctx.SaveSession(next)
	if err := ctx.Store.SaveMoodMarker(models.MoodMarker{Date: today, Mood: mood}); err != nil {
		logger.Warn("Failed to save mood marker", "error", err)
	}

	fmt.Printf("Mood recorded: %s\n", mood)
	return nil
}
