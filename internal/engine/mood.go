package engine

import (
	"time"

	"github.com/julianstephens/habithero/internal/models"
)

// NeedsCheckIn reports whether the user has not yet recorded a mood for
// the logic day containing now.
func NeedsCheckIn(state models.AppState, now time.Time) bool {
	_, ok := state.Moods[LogicDay(now)]
	return !ok
}

// RecordMood stores a mood for the current logic day. First write wins:
// a later check-in on the same day is a no-op, as is an unknown mood tag.
// Moods never affect XP, levels, or streaks.
func RecordMood(state models.AppState, now time.Time, mood models.Mood) (models.AppState, bool) {
	if !mood.Valid() {
		return state, false
	}
	today := LogicDay(now)
	if _, ok := state.Moods[today]; ok {
		return state, false
	}

	next := state.Clone()
	next.Moods[today] = mood
	return next, true
}
