package engine

import (
	"time"

	"github.com/julianstephens/habithero/internal/models"
)

// RejectReason explains why a transition left the state untouched.
type RejectReason string

const (
	ReasonUnknownHabit     RejectReason = "unknown_habit"
	ReasonHabitArchived    RejectReason = "habit_archived"
	ReasonAlreadyCompleted RejectReason = "already_completed"
)

// CompletionResult reports the outcome of CompleteHabit. Rejections are
// deliberate no-ops (double-clicks, stale UI) rather than errors, so the
// caller can assert them explicitly instead of comparing states.
type CompletionResult struct {
	Applied   bool
	Reason    RejectReason
	XPGained  int
	LeveledUp bool
	NewLevel  int
}

func rejected(reason RejectReason) CompletionResult {
	return CompletionResult{Reason: reason}
}

// CompleteHabit applies a habit completion for the logic day containing
// now. On acceptance it credits XP, resolves cascading level-ups, appends
// the completion record, and advances the streak if this is the day's
// first completion. The input state is never mutated.
func CompleteHabit(state models.AppState, habitID string, now time.Time) (models.AppState, CompletionResult) {
	habit, ok := state.HabitByID(habitID)
	if !ok {
		return state, rejected(ReasonUnknownHabit)
	}
	if habit.IsArchived {
		return state, rejected(ReasonHabitArchived)
	}

	today := LogicDay(now)
	todays := state.Completions[today]
	for _, c := range todays {
		if c.HabitID == habitID {
			return state, rejected(ReasonAlreadyCompleted)
		}
	}
	hadCompletionToday := len(todays) > 0

	next := state.Clone()
	gained := int(habit.XPValue)

	next.Profile.TotalLifetimeXP += gained

	xp := next.Profile.CurrentXP + gained
	level := next.Profile.CurrentLevel
	leveledUp := false
	// Recompute the threshold each pass so one large gain can cross
	// several levels.
	for xp >= XPForNextLevel(level) {
		xp -= XPForNextLevel(level)
		level++
		leveledUp = true
	}
	next.Profile.CurrentXP = xp
	next.Profile.CurrentLevel = level

	next.Completions[today] = append(next.Completions[today], models.Completion{
		HabitID:     habitID,
		CompletedAt: now,
		XPGained:    gained,
	})

	// Only the first completion of a logic day advances the streak.
	if !hadCompletionToday {
		if next.Streak.CurrentStreak == 0 {
			next.Streak.CurrentStreak = 1
			next.Streak.StreakStartDate = today
		} else {
			next.Streak.CurrentStreak++
		}
	}
	if next.Streak.CurrentStreak > next.Streak.LongestStreak {
		next.Streak.LongestStreak = next.Streak.CurrentStreak
	}
	completedAt := now
	next.Streak.LastCompletionDate = &completedAt

	return next, CompletionResult{
		Applied:   true,
		XPGained:  gained,
		LeveledUp: leveledUp,
		NewLevel:  level,
	}
}
