package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habithero/internal/constants"
	"github.com/julianstephens/habithero/internal/models"
)

func validateHabitName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("habit name cannot be empty")
	}
	if len(name) > constants.MaxHabitNameLen {
		return "", fmt.Errorf("habit name cannot exceed %d characters", constants.MaxHabitNameLen)
	}
	return name, nil
}

// CreateHabit adds a new habit. The id comes from the caller's ID supplier
// so the engine stays deterministic. The XP tier constraint is enforced
// here, not just by the entry forms.
func CreateHabit(state models.AppState, id, name string, xp models.XPValue, now time.Time) (models.AppState, models.Habit, error) {
	name, err := validateHabitName(name)
	if err != nil {
		return state, models.Habit{}, err
	}
	if !xp.Valid() {
		return state, models.Habit{}, fmt.Errorf("invalid XP value %d: must be one of %v", xp, models.XPTiers)
	}
	if _, exists := state.HabitByName(name); exists {
		return state, models.Habit{}, fmt.Errorf("habit with name %q already exists", name)
	}

	habit := models.Habit{
		ID:        id,
		Name:      name,
		XPValue:   xp,
		CreatedAt: now,
	}

	next := state.Clone()
	next.Habits = append(next.Habits, habit)
	return next, habit, nil
}

// EditHabit updates a habit's name and XP tier. Completions already
// recorded keep their snapshotted XP.
func EditHabit(state models.AppState, id, name string, xp models.XPValue) (models.AppState, error) {
	name, err := validateHabitName(name)
	if err != nil {
		return state, err
	}
	if !xp.Valid() {
		return state, fmt.Errorf("invalid XP value %d: must be one of %v", xp, models.XPTiers)
	}
	if _, ok := state.HabitByID(id); !ok {
		return state, fmt.Errorf("habit not found: %s", id)
	}

	next := state.Clone()
	for i := range next.Habits {
		if next.Habits[i].ID == id {
			next.Habits[i].Name = name
			next.Habits[i].XPValue = xp
			break
		}
	}
	return next, nil
}

// ArchiveHabit hides a habit from active lists without touching its
// history. Archived habits cannot be completed.
func ArchiveHabit(state models.AppState, id string) (models.AppState, error) {
	return setArchived(state, id, true)
}

// UnarchiveHabit returns an archived habit to the active list.
func UnarchiveHabit(state models.AppState, id string) (models.AppState, error) {
	return setArchived(state, id, false)
}

func setArchived(state models.AppState, id string, archived bool) (models.AppState, error) {
	if _, ok := state.HabitByID(id); !ok {
		return state, fmt.Errorf("habit not found: %s", id)
	}

	next := state.Clone()
	for i := range next.Habits {
		if next.Habits[i].ID == id {
			next.Habits[i].IsArchived = archived
			break
		}
	}
	return next, nil
}

// DeleteHabit removes a habit from the list. Completion records keep the
// dangling habit id; they are history, not owned by the habit.
func DeleteHabit(state models.AppState, id string) (models.AppState, error) {
	if _, ok := state.HabitByID(id); !ok {
		return state, fmt.Errorf("habit not found: %s", id)
	}

	next := state.Clone()
	habits := next.Habits[:0]
	for _, h := range next.Habits {
		if h.ID != id {
			habits = append(habits, h)
		}
	}
	next.Habits = habits
	return next, nil
}
