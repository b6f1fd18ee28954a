package leaderboard_test

import (
	"testing"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profilesFor(ids ...string) map[string]league.Profile {
	out := make(map[string]league.Profile, len(ids))
	for _, id := range ids {
		out[id] = league.Profile{ID: id, DisplayName: "Player " + id}
	}
	return out
}

func TestAssemble_SortAndDenseRanks(t *testing.T) {
	stats := map[string]leaderboard.Stats{
		"a": {Wins: 5, Losses: 2, Matches: 7},  // 56
		"b": {Wins: 10, Losses: 0, Matches: 10}, // 100
		"c": {Wins: 2, Losses: 1, Matches: 3},  // 23
	}
	entries := leaderboard.Assemble(stats, profilesFor("a", "b", "c"), nil, nil)

	require.Len(t, entries, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{entries[0].UserID, entries[1].UserID, entries[2].UserID})
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank, "ranks are dense and 1-based")
	}
	assert.Equal(t, leaderboard.TierArgent, entries[0].Tier)
}

func TestAssemble_TieBreakFewerMatchesRanksHigher(t *testing.T) {
	// Equal points and wins; the player with fewer matches is more
	// efficient and ranks higher.
	stats := map[string]leaderboard.Stats{
		"grinder":  {Wins: 3, Losses: 10, Matches: 13}, // 60
		"efficient": {Wins: 3, Losses: 10, Matches: 12}, // 60 via capped history
	}
	entries := leaderboard.Assemble(stats, profilesFor("grinder", "efficient"), nil, nil)

	require.Len(t, entries, 2)
	assert.Equal(t, "efficient", entries[0].UserID)
	assert.Equal(t, "grinder", entries[1].UserID)
}

func TestAssemble_TieBreakWinsBeforeMatches(t *testing.T) {
	// 30 points each: 3 wins beats 0 wins + 10 losses.
	stats := map[string]leaderboard.Stats{
		"loser":  {Wins: 0, Losses: 10, Matches: 10},
		"winner": {Wins: 3, Losses: 0, Matches: 3},
	}
	entries := leaderboard.Assemble(stats, profilesFor("loser", "winner"), nil, nil)

	require.Len(t, entries, 2)
	assert.Equal(t, "winner", entries[0].UserID)
}

func TestAssemble_ZeroEligibleMatchesExcluded(t *testing.T) {
	stats := map[string]leaderboard.Stats{
		"active": {Wins: 1, Matches: 1},
		"idle":   {},
	}
	entries := leaderboard.Assemble(stats, profilesFor("active", "idle"), nil, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "active", entries[0].UserID)
}

func TestAssemble_BonusAndBoostFlowIntoPoints(t *testing.T) {
	stats := map[string]leaderboard.Stats{
		"a": {Wins: 5, Losses: 2, Matches: 7},
	}
	entries := leaderboard.Assemble(stats, profilesFor("a"),
		map[string]bool{"a": true}, map[string]int{"a": 17})

	require.Len(t, entries, 1)
	assert.Equal(t, 56+10+17, entries[0].Points)
}

func TestAssemble_Idempotent(t *testing.T) {
	stats := map[string]leaderboard.Stats{
		"a": {Wins: 5, Losses: 2, Matches: 7},
		"b": {Wins: 5, Losses: 2, Matches: 7},
		"c": {Wins: 10, Losses: 0, Matches: 10},
	}
	first := leaderboard.Assemble(stats, profilesFor("a", "b", "c"), nil, nil)
	second := leaderboard.Assemble(stats, profilesFor("a", "b", "c"), nil, nil)
	assert.Equal(t, first, second, "same data must yield identical order, ranks and points")
}
