package leaderboard

import (
	"sort"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
)

// winningTeam resolves a match's winner team id against its team ids and
// returns 1 or 2, or 0 when the winner is unset or matches neither team.
func winningTeam(m league.Match) int {
	switch m.WinnerTeamID {
	case "":
		return 0
	case m.Team1ID:
		return 1
	case m.Team2ID:
		return 2
	default:
		return 0
	}
}

// Aggregate folds eligible participations into per-player counters, keyed by
// league.PlayerRef.Key(). Matches without a resolvable winner are skipped
// entirely: they count as neither win nor loss and do not appear in the
// match counter.
func Aggregate(parts []league.Participation, matches map[string]league.Match, eligible EligibleSet) map[string]Stats {
	type outcome struct {
		matchID  string
		playedAt int64
		won      bool
	}
	history := make(map[string][]outcome)

	stats := make(map[string]Stats)
	for _, p := range parts {
		match, ok := matches[p.MatchID]
		if !ok {
			continue
		}
		winner := winningTeam(match)
		if winner == 0 {
			continue
		}
		if !eligible.Contains(p.MatchID, p.Player) {
			continue
		}

		key := p.Player.Key()
		s := stats[key]
		won := p.Team == winner
		if won {
			s.Wins++
		} else {
			s.Losses++
		}
		s.Matches++
		stats[key] = s

		history[key] = append(history[key], outcome{matchID: p.MatchID, playedAt: match.PlayedAt, won: won})
	}

	for key, outcomes := range history {
		sort.Slice(outcomes, func(i, j int) bool {
			if outcomes[i].playedAt != outcomes[j].playedAt {
				return outcomes[i].playedAt > outcomes[j].playedAt
			}
			return outcomes[i].matchID > outcomes[j].matchID
		})
		best, run := 0, 0
		for _, o := range outcomes {
			if o.won {
				run++
				if run > best {
					best = run
				}
			} else {
				run = 0
			}
		}
		s := stats[key]
		s.Streak = best
		stats[key] = s
	}
	return stats
}
