package leaderboard

import (
	"sort"
	"time"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
)

// EligibilityKey identifies one (match, player) pair. Eligibility is
// per-player: the same match can earn points for one participant while being
// over another participant's daily cap.
type EligibilityKey struct {
	MatchID   string
	PlayerKey string
}

// EligibleSet is the set of (match, player) pairs that count toward points.
type EligibleSet map[EligibilityKey]struct{}

// Contains reports whether the match counts for the given player.
func (e EligibleSet) Contains(matchID string, player league.PlayerRef) bool {
	_, ok := e[EligibilityKey{MatchID: matchID, PlayerKey: player.Key()}]
	return ok
}

// Eligible applies the daily match cap: for each player, participations are
// grouped by the calendar day of the match's playedAt, sorted ascending
// within the day, and only the first maxPerDay are marked eligible.
//
// A match with no playedAt is bucketed as if played "now". That keeps parity
// with how submissions without a timestamp have always been scored, even
// though a backfilled match can then occupy a cap slot for the day it is
// read rather than the day it was played.
func Eligible(parts []league.Participation, matches map[string]league.Match, maxPerDay int, now func() time.Time) EligibleSet {
	if now == nil {
		now = time.Now
	}

	type dayKey struct {
		playerKey string
		day       string
	}
	type timedPart struct {
		matchID  string
		playedAt int64
	}

	days := make(map[dayKey][]timedPart)
	for _, p := range parts {
		match, ok := matches[p.MatchID]
		if !ok {
			continue
		}
		playedAt := match.PlayedAt
		if playedAt == 0 {
			playedAt = now().Unix()
		}
		day := time.Unix(playedAt, 0).Format("2006-01-02")
		k := dayKey{playerKey: p.Player.Key(), day: day}
		days[k] = append(days[k], timedPart{matchID: p.MatchID, playedAt: playedAt})
	}

	eligible := make(EligibleSet)
	for k, group := range days {
		sort.Slice(group, func(i, j int) bool {
			if group[i].playedAt != group[j].playedAt {
				return group[i].playedAt < group[j].playedAt
			}
			// Stable order for same-second matches keeps recomputation deterministic.
			return group[i].matchID < group[j].matchID
		})
		limit := maxPerDay
		if limit > len(group) {
			limit = len(group)
		}
		for _, tp := range group[:limit] {
			eligible[EligibilityKey{MatchID: tp.matchID, PlayerKey: k.playerKey}] = struct{}{}
		}
	}
	return eligible
}
