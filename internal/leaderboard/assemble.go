package leaderboard

import (
	"sort"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
)

// Assemble joins per-user stats with profiles, computes points and tiers,
// sorts and assigns dense 1-based ranks. Only users present in statsMap
// appear: having at least one eligible match is a precondition for standing,
// players with zero eligible matches are not shown with 0 points.
//
// Sort order: points descending, then wins descending, then matches
// ascending (fewer matches ranks higher among equals), with user id as a
// final stable key so recomputation yields identical output.
func Assemble(statsMap map[string]Stats, profiles map[string]league.Profile, reviewers map[string]bool, boostDeltas map[string]int) []Entry {
	entries := make([]Entry, 0, len(statsMap))
	for userID, stats := range statsMap {
		if stats.Matches == 0 {
			continue
		}
		profile := profiles[userID]
		points := Points(stats, reviewers[userID], boostDeltas[userID])
		entries = append(entries, Entry{
			UserID:     userID,
			Name:       profile.DisplayName,
			PlayerName: profile.PlayerName,
			Points:     points,
			Wins:       stats.Wins,
			Losses:     stats.Losses,
			Matches:    stats.Matches,
			Tier:       TierFor(points),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Matches != b.Matches {
			return a.Matches < b.Matches
		}
		return a.UserID < b.UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
