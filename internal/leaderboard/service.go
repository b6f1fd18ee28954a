package leaderboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
)

// Service computes leaderboards on demand. Every call is a pure fold over a
// freshly fetched snapshot of the match store; there is no cache and no
// shared mutable state, so concurrent requests are fully independent.
type Service struct {
	store     league.Store
	maxPerDay int
	nowFn     func() time.Time
}

// New creates a leaderboard service with the given daily match cap.
func New(store league.Store, maxPerDay int) *Service {
	return &Service{
		store:     store,
		maxPerDay: maxPerDay,
		nowFn:     time.Now,
	}
}

// ForClub computes the leaderboard scoped to one club. The club filter is
// applied to the participations before aggregation, so a cross-club
// teammate's contribution never reaches a club-scoped board.
func (s *Service) ForClub(clubID string) ([]Entry, error) {
	return s.compute(league.Filter{ClubID: clubID})
}

// Global computes the unscoped leaderboard across all clubs.
func (s *Service) Global() ([]Entry, error) {
	return s.compute(league.Filter{})
}

func (s *Service) compute(filter league.Filter) ([]Entry, error) {
	start := time.Now()
	parts, err := s.store.GetParticipations(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load participations: %w", err)
	}
	if len(parts) == 0 {
		return []Entry{}, nil
	}

	matches, err := s.loadMatches(parts)
	if err != nil {
		return nil, err
	}

	eligible := Eligible(parts, matches, s.maxPerDay, s.nowFn)
	stats := Aggregate(parts, matches, eligible)

	userStats := make(map[string]Stats)
	var userIDs []string
	for _, p := range parts {
		if !p.Player.IsUser() {
			continue
		}
		if _, seen := userStats[p.Player.UserID]; seen {
			continue
		}
		if s, ok := stats[p.Player.Key()]; ok && s.Matches > 0 {
			userStats[p.Player.UserID] = s
			userIDs = append(userIDs, p.Player.UserID)
		}
	}
	if len(userIDs) == 0 {
		return []Entry{}, nil
	}

	profileRows, err := s.store.GetProfiles(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	profiles := make(map[string]league.Profile, len(profileRows))
	for _, p := range profileRows {
		profiles[p.ID] = p
	}

	reviewers, err := s.store.GetReviewers(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviewers: %w", err)
	}
	boostDeltas, err := s.store.GetBoostDeltas(userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load boost deltas: %w", err)
	}

	entries := Assemble(userStats, profiles, reviewers, boostDeltas)
	log.Debug("Leaderboard computed", "players", len(entries), "duration_ms", time.Since(start).Milliseconds())
	return entries, nil
}

func (s *Service) loadMatches(parts []league.Participation) (map[string]league.Match, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, p := range parts {
		if !seen[p.MatchID] {
			seen[p.MatchID] = true
			ids = append(ids, p.MatchID)
		}
	}
	rows, err := s.store.GetMatches(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}
	matches := make(map[string]league.Match, len(rows))
	for _, m := range rows {
		matches[m.ID] = m
	}
	return matches, nil
}

// UserStats returns one user's eligible-match counters and point total.
func (s *Service) UserStats(userID string) (Stats, int, error) {
	parts, err := s.store.GetParticipations(league.Filter{UserID: userID})
	if err != nil {
		return Stats{}, 0, fmt.Errorf("failed to load participations: %w", err)
	}
	if len(parts) == 0 {
		return Stats{}, 0, nil
	}
	matches, err := s.loadMatches(parts)
	if err != nil {
		return Stats{}, 0, err
	}
	eligible := Eligible(parts, matches, s.maxPerDay, s.nowFn)
	stats := Aggregate(parts, matches, eligible)[league.PlayerRef{UserID: userID}.Key()]

	reviewers, err := s.store.GetReviewers([]string{userID})
	if err != nil {
		return Stats{}, 0, fmt.Errorf("failed to load reviewers: %w", err)
	}
	boostDeltas, err := s.store.GetBoostDeltas([]string{userID})
	if err != nil {
		return Stats{}, 0, fmt.Errorf("failed to load boost deltas: %w", err)
	}
	return stats, Points(stats, reviewers[userID], boostDeltas[userID]), nil
}

// UserBadges re-derives the full badge set for one user.
func (s *Service) UserBadges(userID string) ([]Badge, error) {
	stats, points, err := s.UserStats(userID)
	if err != nil {
		return nil, err
	}
	return EvaluateBadges(stats, points), nil
}

// CountsForDay reports whether the given match is point-eligible for the
// given user, i.e. whether it fits under the user's daily cap. Used by the
// submission path to attach a warning, never to reject a match.
func (s *Service) CountsForDay(userID, matchID string) (bool, error) {
	parts, err := s.store.GetParticipations(league.Filter{UserID: userID})
	if err != nil {
		return false, fmt.Errorf("failed to load participations: %w", err)
	}
	matches, err := s.loadMatches(parts)
	if err != nil {
		return false, err
	}
	eligible := Eligible(parts, matches, s.maxPerDay, s.nowFn)
	return eligible.Contains(matchID, league.PlayerRef{UserID: userID}), nil
}
