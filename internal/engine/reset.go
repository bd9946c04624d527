package engine

import (
	"time"

	"github.com/julianstephens/habithero/internal/models"
)

// CheckDailyReset reconciles stored state against the passage of time. It
// must run once per session, before any other transition observes the
// state, and is idempotent within a logic day.
//
// When a new logic day has begun since the last reconciliation, the streak
// is reset to 0 if at least one full logic day passed with no completion.
// A gap of exactly one day preserves the streak; the increment itself only
// happens on the next actual completion. LongestStreak is never touched
// here.
func CheckDailyReset(state models.AppState, now time.Time) models.AppState {
	today := LogicDay(now)
	lastActive := LogicDay(state.Profile.LastActiveDate)

	if today == lastActive {
		return state
	}

	next := state.Clone()

	if next.Streak.LastCompletionDate != nil {
		lastCompletionDay := LogicDay(*next.Streak.LastCompletionDate)
		if dayDistance(lastCompletionDay, today) > 1 {
			next.Streak.CurrentStreak = 0
			next.Streak.StreakStartDate = ""
		}
	} else if next.Streak.CurrentStreak > 0 {
		// A streak with no recorded completion is inconsistent data;
		// normalize rather than propagate it.
		next.Streak.CurrentStreak = 0
		next.Streak.StreakStartDate = ""
	}

	next.Profile.LastActiveDate = now
	return next
}
