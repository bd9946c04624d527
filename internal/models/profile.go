package models

import "time"

// Mood is the user's self-reported state for a logic day
type Mood string

const (
	MoodFocused    Mood = "focused"
	MoodGood       Mood = "good"
	MoodNeutral    Mood = "neutral"
	MoodFrustrated Mood = "frustrated"
	MoodLowEnergy  Mood = "low_energy"
)

// Moods lists all valid mood tags.
var Moods = []Mood{MoodFocused, MoodGood, MoodNeutral, MoodFrustrated, MoodLowEnergy}

// Valid reports whether m is a known mood tag.
func (m Mood) Valid() bool {
	for _, mood := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// UserProfile is the singleton progression aggregate.
// CurrentXP always satisfies 0 <= CurrentXP < threshold(CurrentLevel);
// TotalLifetimeXP never decreases.
type UserProfile struct {
	Name            string    `json:"name"`
	CurrentLevel    int       `json:"current_level"`
	CurrentXP       int       `json:"current_xp"`
	TotalLifetimeXP int       `json:"total_lifetime_xp"`
	LastActiveDate  time.Time `json:"last_active_date"`
}

// StreakData tracks consecutive logic days with at least one completion.
// LongestStreak >= CurrentStreak always; StreakStartDate is empty when the
// streak is 0.
type StreakData struct {
	CurrentStreak      int        `json:"current_streak"`
	LongestStreak      int        `json:"longest_streak"`
	LastCompletionDate *time.Time `json:"last_completion_date,omitempty"`
	StreakStartDate    string     `json:"streak_start_date,omitempty"` // YYYY-MM-DD format
}

// MoodMarker is the redundant fast-check record written alongside the
// stats slice when a mood is recorded for the current day.
type MoodMarker struct {
	Date string `json:"date"` // YYYY-MM-DD format
	Mood Mood   `json:"mood"`
}
