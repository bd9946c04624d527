package storage

import (
	"time"

	"github.com/julianstephens/habithero/internal/models"
)

// Provider is a keyed slice store. Loads never fail toward the caller:
// a missing or malformed slice degrades to its documented default, so the
// engine always starts from a valid state. Save failures are surfaced for
// logging but are non-fatal; the in-memory state stays the source of
// truth for the session.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits slice
	LoadHabits() []models.Habit
	SaveHabits([]models.Habit) error

	// Stats slice (profile, completions, moods, streak)
	LoadStats(now time.Time) models.Stats
	SaveStats(models.Stats) error

	// Mood marker slice, the redundant fast-check for the check-in gate
	LoadMoodMarker() (models.MoodMarker, bool)
	SaveMoodMarker(models.MoodMarker) error

	// Utils
	GetConfigPath() string
}

// LoadState assembles the full AppState from the persisted slices.
func LoadState(p Provider, now time.Time) models.AppState {
	stats := p.LoadStats(now)
	state := models.AppState{
		Profile:     stats.Profile,
		Habits:      p.LoadHabits(),
		Completions: stats.Completions,
		Moods:       stats.Moods,
		Streak:      stats.Streak,
	}
	if state.Completions == nil {
		state.Completions = map[string][]models.Completion{}
	}
	if state.Moods == nil {
		state.Moods = map[string]models.Mood{}
	}
	return state
}

// SaveState writes the habit and stats slices back. The first error is
// returned after all slices have been attempted.
func SaveState(p Provider, state models.AppState) error {
	var firstErr error
	if err := p.SaveHabits(state.Habits); err != nil {
		firstErr = err
	}
	if err := p.SaveStats(state.Stats()); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
