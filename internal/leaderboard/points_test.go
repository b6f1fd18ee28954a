package leaderboard_test

import (
	"testing"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
	"github.com/stretchr/testify/assert"
)

func TestPoints_ScenarioA(t *testing.T) {
	// 5 wins, 2 losses, no review, no boost.
	points := leaderboard.Points(leaderboard.Stats{Wins: 5, Losses: 2}, false, 0)
	assert.Equal(t, 56, points)
	assert.Equal(t, leaderboard.TierBronze, leaderboard.TierFor(points))
}

func TestPoints_ScenarioB(t *testing.T) {
	// 48 wins, 5 losses, has reviewed.
	points := leaderboard.Points(leaderboard.Stats{Wins: 48, Losses: 5}, true, 0)
	assert.Equal(t, 505, points)
	assert.Equal(t, leaderboard.TierChampion, leaderboard.TierFor(points))
}

func TestPoints_Monotonicity(t *testing.T) {
	for wins := 0; wins < 20; wins++ {
		base := leaderboard.Points(leaderboard.Stats{Wins: wins, Losses: 4}, false, 0)
		plusWin := leaderboard.Points(leaderboard.Stats{Wins: wins + 1, Losses: 4}, false, 0)
		assert.Equal(t, 10, plusWin-base, "one extra win is worth exactly 10")
	}
	for losses := 0; losses < 20; losses++ {
		base := leaderboard.Points(leaderboard.Stats{Wins: 4, Losses: losses}, false, 0)
		plusLoss := leaderboard.Points(leaderboard.Stats{Wins: 4, Losses: losses + 1}, false, 0)
		assert.Equal(t, 3, plusLoss-base, "one extra loss is worth exactly 3")
	}
}

func TestPoints_ReviewBonusIsBinary(t *testing.T) {
	without := leaderboard.Points(leaderboard.Stats{Wins: 1}, false, 0)
	with := leaderboard.Points(leaderboard.Stats{Wins: 1}, true, 0)
	assert.Equal(t, 10, with-without)
}

func TestPoints_BoostDeltaAdds(t *testing.T) {
	points := leaderboard.Points(leaderboard.Stats{Wins: 5, Losses: 2}, false, 17)
	assert.Equal(t, 73, points)
}

func TestPoints_NeverNegative(t *testing.T) {
	assert.Equal(t, 0, leaderboard.Points(leaderboard.Stats{}, false, -5))
}

func TestBoostedPoints(t *testing.T) {
	assert.Equal(t, 73, leaderboard.BoostedPoints(56, 30))
	assert.Equal(t, 13, leaderboard.BoostedPoints(10, 30))
	assert.Equal(t, 0, leaderboard.BoostedPoints(0, 30))
}
