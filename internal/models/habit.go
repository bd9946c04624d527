package models

import "time"

// XPValue is the reward tier of a habit. Only the five fixed tiers are
// valid; the engine rejects anything else at creation/edit time.
type XPValue int

const (
	XPTrivial XPValue = 20
	XPEasy    XPValue = 30
	XPMedium  XPValue = 50
	XPHard    XPValue = 70
	XPEpic    XPValue = 100
)

// XPTiers lists the valid XP values in ascending order.
var XPTiers = []XPValue{XPTrivial, XPEasy, XPMedium, XPHard, XPEpic}

// Valid reports whether v is one of the fixed XP tiers.
func (v XPValue) Valid() bool {
	for _, tier := range XPTiers {
		if v == tier {
			return true
		}
	}
	return false
}

// Habit represents a recurring practice to track
type Habit struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	XPValue    XPValue   `json:"xp_value"`
	CreatedAt  time.Time `json:"created_at"`
	IsArchived bool      `json:"is_archived"`
}

// Completion records that a habit was fulfilled on a given logic day.
// XPGained snapshots the habit's tier at completion time, so later edits
// to the habit never rewrite history.
type Completion struct {
	HabitID     string    `json:"habit_id"`
	CompletedAt time.Time `json:"completed_at"`
	XPGained    int       `json:"xp_gained"`
}
