package constants

const (
	// DateFormat is the standard day-key format used throughout the app
	DateFormat = "2006-01-02"

	// DayBoundaryHour is the local hour at which a new logic day begins.
	// Activity before 6 AM counts toward the previous day, so a late night
	// still belongs to the day the user considers "today".
	DayBoundaryHour = 6

	// LevelCurveConstant and LevelCurveExponent define the XP threshold
	// curve: floor(C * level^E). Level 1 costs 100 XP, level 2 costs 282.
	LevelCurveConstant = 100
	LevelCurveExponent = 1.5

	// MaxHabitNameLen is the maximum length of a habit name
	MaxHabitNameLen = 50

	// DefaultProfileName is the display name for a fresh profile
	DefaultProfileName = "Hero"
)

// Storage slice keys. Versioned so a future format change can coexist
// with old data.
const (
	KeyHabits = "habitHero.v1.habits"
	KeyStats  = "habitHero.v1.stats"
	KeyMood   = "habitHero.v1.mood"
)
