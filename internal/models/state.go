package models

import (
	"time"

	"github.com/julianstephens/habithero/internal/constants"
)

// Stats is the composite persisted under the stats storage key.
type Stats struct {
	Profile     UserProfile             `json:"profile"`
	Completions map[string][]Completion `json:"completions"` // day key -> ordered completions
	Moods       map[string]Mood         `json:"moods"`       // day key -> mood
	Streak      StreakData              `json:"streak"`
}

// AppState is the full in-memory state. Engine transitions treat it as a
// value: they clone, mutate the clone, and return it, so readers always
// see a consistent snapshot.
type AppState struct {
	Profile     UserProfile             `json:"profile"`
	Habits      []Habit                 `json:"habits"`
	Completions map[string][]Completion `json:"completions"`
	Moods       map[string]Mood         `json:"moods"`
	Streak      StreakData              `json:"streak"`
	IsLoading   bool                    `json:"-"`
}

// DefaultProfile returns the fallback profile for a fresh or malformed
// stats slice.
func DefaultProfile(now time.Time) UserProfile {
	return UserProfile{
		Name:           constants.DefaultProfileName,
		CurrentLevel:   1,
		CurrentXP:      0,
		LastActiveDate: now,
	}
}

// DefaultStats returns the fallback stats slice.
func DefaultStats(now time.Time) Stats {
	return Stats{
		Profile:     DefaultProfile(now),
		Completions: map[string][]Completion{},
		Moods:       map[string]Mood{},
	}
}

// DefaultState returns a fresh AppState.
func DefaultState(now time.Time) AppState {
	return AppState{
		Profile:     DefaultProfile(now),
		Habits:      []Habit{},
		Completions: map[string][]Completion{},
		Moods:       map[string]Mood{},
	}
}

// Clone returns a deep copy of the state. Maps and slices are copied so a
// transition on the clone cannot leak into the original.
func (s AppState) Clone() AppState {
	out := s

	out.Habits = make([]Habit, len(s.Habits))
	copy(out.Habits, s.Habits)

	out.Completions = make(map[string][]Completion, len(s.Completions))
	for day, comps := range s.Completions {
		copied := make([]Completion, len(comps))
		copy(copied, comps)
		out.Completions[day] = copied
	}

	out.Moods = make(map[string]Mood, len(s.Moods))
	for day, mood := range s.Moods {
		out.Moods[day] = mood
	}

	if s.Streak.LastCompletionDate != nil {
		t := *s.Streak.LastCompletionDate
		out.Streak.LastCompletionDate = &t
	}

	return out
}

// Stats extracts the persisted stats composite from the state.
func (s AppState) Stats() Stats {
	return Stats{
		Profile:     s.Profile,
		Completions: s.Completions,
		Moods:       s.Moods,
		Streak:      s.Streak,
	}
}

// HabitByID returns the habit with the given id, if present.
func (s AppState) HabitByID(id string) (Habit, bool) {
	for _, h := range s.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// HabitByName returns the first non-archived habit with the given name.
func (s AppState) HabitByName(name string) (Habit, bool) {
	for _, h := range s.Habits {
		if h.Name == name && !h.IsArchived {
			return h, true
		}
	}
	return Habit{}, false
}

// ActiveHabits returns the habits that are not archived, in insertion order.
func (s AppState) ActiveHabits() []Habit {
	var active []Habit
	for _, h := range s.Habits {
		if !h.IsArchived {
			active = append(active, h)
		}
	}
	return active
}
