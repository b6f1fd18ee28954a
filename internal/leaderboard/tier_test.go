package leaderboard_test

import (
	"testing"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		points int
		want   leaderboard.Tier
	}{
		{0, leaderboard.TierBronze},
		{99, leaderboard.TierBronze},
		{100, leaderboard.TierArgent},
		{199, leaderboard.TierArgent},
		{200, leaderboard.TierOr},
		{299, leaderboard.TierOr},
		{300, leaderboard.TierDiamant},
		{499, leaderboard.TierDiamant},
		{500, leaderboard.TierChampion},
		{10000, leaderboard.TierChampion},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, leaderboard.TierFor(tc.points), "points=%d", tc.points)
	}
}

func TestTierStyle_AllTiersHaveOne(t *testing.T) {
	for _, tier := range []leaderboard.Tier{
		leaderboard.TierBronze, leaderboard.TierArgent, leaderboard.TierOr,
		leaderboard.TierDiamant, leaderboard.TierChampion,
	} {
		style := tier.Style()
		assert.NotEmpty(t, style.Icon, "tier %s", tier)
		assert.NotEmpty(t, style.Color, "tier %s", tier)
	}
}
