package engine

import (
	"math"

	"github.com/julianstephens/habithero/internal/constants"
)

// XPForNextLevel returns the XP required to advance past the given level:
// floor(100 * level^1.5). Level 1 costs 100, level 2 costs 282, level 3
// costs 519.
func XPForNextLevel(level int) int {
	return int(math.Floor(constants.LevelCurveConstant * math.Pow(float64(level), constants.LevelCurveExponent)))
}
