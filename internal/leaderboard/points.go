package leaderboard

import "math"

// Point weights. A loss still earns a little to reward showing up.
const (
	WinPoints   = 10
	LossPoints  = 3
	ReviewBonus = 10
)

// Points converts counters into the final integer total:
// wins*10 + losses*3, plus the one-time review bonus, plus the sum of
// persisted boost deltas from the audit rows. The boost contribution is
// never re-derived from aggregate wins; the audit rows are the single
// source of truth for it.
func Points(s Stats, reviewed bool, boostDelta int) int {
	points := s.Wins*WinPoints + s.Losses*LossPoints
	if reviewed {
		points += ReviewBonus
	}
	points += boostDelta
	if points < 0 {
		return 0
	}
	return points
}

// BoostedPoints applies the boost multiplier to a pre-boost total, rounding
// to the nearest integer. With percent=30, 56 becomes 73.
func BoostedPoints(before int, percent int) int {
	return int(math.Round(float64(before) * (1 + float64(percent)/100)))
}
