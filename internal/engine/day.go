package engine

import (
	"time"

	"github.com/julianstephens/habithero/internal/constants"
)

// LogicDay maps a wall-clock timestamp to its day key (YYYY-MM-DD). The
// accounting day runs from 6:00 AM to 5:59 AM, so anything before the
// boundary hour belongs to the previous calendar date.
func LogicDay(t time.Time) string {
	if t.Hour() < constants.DayBoundaryHour {
		t = t.AddDate(0, 0, -1)
	}
	return t.Format(constants.DateFormat)
}

// dayDistance returns the whole-day distance between two day keys.
// Keys are re-anchored at UTC midnight so DST transitions cannot produce
// a 23- or 25-hour day.
func dayDistance(fromKey, toKey string) int {
	from, err := time.ParseInLocation(constants.DateFormat, fromKey, time.UTC)
	if err != nil {
		return 0
	}
	to, err := time.ParseInLocation(constants.DateFormat, toKey, time.UTC)
	if err != nil {
		return 0
	}
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}
