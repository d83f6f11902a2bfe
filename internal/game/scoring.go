package game

import "math"

// BonusWindowSeconds is the answer time at which the speed bonus reaches zero.
const BonusWindowSeconds = 15

// Points returns the points for a correct answer given in timeTaken seconds.
// The bonus is half the base for an instant answer and shrinks linearly, going
// negative past BonusWindowSeconds.
func Points(basePoints int, timeTaken float64) int {
	base := float64(basePoints)
	bonus := math.Round(base * (1 - timeTaken/BonusWindowSeconds) / 2)
	return basePoints + int(bonus)
}

// Award returns the points earned for an answer. Incorrect answers earn 0.
func Award(basePoints int, timeTaken float64, correct bool) int {
	if !correct {
		return 0
	}
	return Points(basePoints, timeTaken)
}
