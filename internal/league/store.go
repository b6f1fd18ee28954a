package league

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a new Store backed by the given database.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// CreateMatch inserts a match, its four participants, the submitted sets and
// an optional boost use in a single transaction. Readers never observe a
// partial match.
func (s *store) CreateMatch(newMatch NewMatch) (*Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	match := &Match{
		ID:             uuid.New().String(),
		Team1ID:        uuid.New().String(),
		Team2ID:        uuid.New().String(),
		PlayedAt:       newMatch.PlayedAt,
		LocationClubID: newMatch.LocationClubID,
		CreatedAt:      now,
		Sets:           newMatch.Sets,
	}
	switch newMatch.WinnerTeam {
	case 1:
		match.WinnerTeamID = match.Team1ID
	case 2:
		match.WinnerTeamID = match.Team2ID
	}

	_, err = tx.Exec(`
		INSERT INTO matches (id, team1_id, team2_id, winner_team_id, played_at, location_club_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		match.ID, match.Team1ID, match.Team2ID,
		nullString(match.WinnerTeamID), nullInt64(match.PlayedAt), nullString(match.LocationClubID),
		match.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO participants (id, match_id, user_id, guest_id, team) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()
	for _, p := range newMatch.Players {
		_, err = stmt.Exec(uuid.New().String(), match.ID, nullString(p.Ref.UserID), nullString(p.Ref.GuestID), p.Team)
		if err != nil {
			return nil, fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for _, set := range newMatch.Sets {
		_, err = tx.Exec(`INSERT INTO match_sets (match_id, seq, team1_games, team2_games, tie_break) VALUES (?, ?, ?, ?, ?)`,
			match.ID, set.Seq, set.Team1Games, set.Team2Games, set.TieBreak)
		if err != nil {
			return nil, fmt.Errorf("failed to insert set: %w", err)
		}
	}

	if newMatch.Boost != nil {
		if err := claimBoostCredit(tx, match.ID, newMatch.Boost); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	log.Info("Created match", "matchID", match.ID, "boost", newMatch.Boost != nil)
	return match, nil
}

// claimBoostCredit consumes exactly one unconsumed credit inside the match
// transaction. The conditional UPDATE is what prevents double-spending under
// concurrent submissions; there is no read-then-write window.
func claimBoostCredit(tx *sql.Tx, matchID string, claim *BoostClaim) error {
	var usedThisMonth int
	err := tx.QueryRow(`SELECT COUNT(*) FROM boost_uses WHERE user_id = ? AND used_at >= ?`,
		claim.UserID, monthStart(time.Now())).Scan(&usedThisMonth)
	if err != nil {
		return fmt.Errorf("failed to count monthly boost uses: %w", err)
	}
	if claim.MonthlyCap > 0 && usedThisMonth >= claim.MonthlyCap {
		return ErrBoostCapReached
	}

	now := time.Now().Unix()
	var creditID string
	err = tx.QueryRow(`
		UPDATE boost_credits SET consumed_at = ?
		WHERE id = (
			SELECT id FROM boost_credits
			WHERE user_id = ? AND consumed_at IS NULL
			ORDER BY created_at ASC
			LIMIT 1
		) AND consumed_at IS NULL
		RETURNING id`,
		now, claim.UserID).Scan(&creditID)
	if err == sql.ErrNoRows {
		return ErrNoBoostCredit
	}
	if err != nil {
		return fmt.Errorf("failed to claim boost credit: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO boost_uses (id, credit_id, match_id, user_id, points_before, points_after, used_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), creditID, matchID, claim.UserID, claim.PointsBefore, claim.PointsAfter, now)
	if err != nil {
		return fmt.Errorf("failed to record boost use: %w", err)
	}
	return nil
}

// GetParticipations returns participant rows, optionally narrowed to one user
// or to users affiliated with one club. The club filter joins on the player's
// profile, so cross-club teammates fall out of a club-scoped aggregation.
func (s *store) GetParticipations(filter Filter) ([]Participation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT p.match_id, p.user_id, p.guest_id, p.team FROM participants p`
	var args []any
	var conds []string
	if filter.ClubID != "" {
		query += ` JOIN profiles pr ON pr.id = p.user_id`
		conds = append(conds, "pr.club_id = ?")
		args = append(args, filter.ClubID)
	}
	if filter.UserID != "" {
		conds = append(conds, "p.user_id = ?")
		args = append(args, filter.UserID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query participations: %w", err)
	}
	defer rows.Close()

	var parts []Participation
	for rows.Next() {
		var p Participation
		var userID, guestID sql.NullString
		if err := rows.Scan(&p.MatchID, &userID, &guestID, &p.Team); err != nil {
			log.Error("Failed to scan participation row", "error", err)
			continue
		}
		p.Player = PlayerRef{UserID: userID.String, GuestID: guestID.String}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// GetMatches returns the match rows for the given ids. Set scores are not
// loaded here; the leaderboard only needs team ids, winner and played_at.
func (s *store) GetMatches(ids []string) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT id, team1_id, team2_id, winner_team_id, played_at, location_club_id, created_at
		FROM matches WHERE id IN (%s)`, placeholders(len(ids)))

	rows, err := s.db.Query(query, toAnySlice(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

// ListMatches returns the most recent matches with their set scores, newest
// first. This feeds the match-history endpoint, capped matches included.
func (s *store) ListMatches(limit int) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, team1_id, team2_id, winner_team_id, played_at, location_club_id, created_at
		FROM matches ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, *match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range matches {
		sets, err := s.getSets(matches[i].ID)
		if err != nil {
			return nil, err
		}
		matches[i].Sets = sets
	}
	return matches, nil
}

func (s *store) getSets(matchID string) ([]SetResult, error) {
	rows, err := s.db.Query(`SELECT seq, team1_games, team2_games, tie_break FROM match_sets WHERE match_id = ? ORDER BY seq`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sets: %w", err)
	}
	defer rows.Close()

	var sets []SetResult
	for rows.Next() {
		var set SetResult
		if err := rows.Scan(&set.Seq, &set.Team1Games, &set.Team2Games, &set.TieBreak); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// scanMatch is a helper to scan a single match row.
func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var match Match
	var winnerTeamID, locationClubID sql.NullString
	var playedAt sql.NullInt64

	err := scanner.Scan(
		&match.ID, &match.Team1ID, &match.Team2ID,
		&winnerTeamID, &playedAt, &locationClubID, &match.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	match.WinnerTeamID = winnerTeamID.String
	match.PlayedAt = playedAt.Int64
	match.LocationClubID = locationClubID.String
	return &match, nil
}

func (s *store) GetProfiles(ids []string) ([]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`
		SELECT id, display_name, player_name, club_id, avatar_url
		FROM profiles WHERE id IN (%s)`, placeholders(len(ids)))

	rows, err := s.db.Query(query, toAnySlice(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			log.Error("Failed to scan profile row", "error", err)
			continue
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func scanProfile(scanner interface{ Scan(...any) error }) (*Profile, error) {
	var p Profile
	var playerName, clubID, avatarURL sql.NullString
	if err := scanner.Scan(&p.ID, &p.DisplayName, &playerName, &clubID, &avatarURL); err != nil {
		return nil, err
	}
	p.PlayerName = playerName.String
	p.ClubID = clubID.String
	p.AvatarURL = avatarURL.String
	return &p, nil
}

// GetReviewers returns the subset of the given users that have submitted at
// least one review. The bonus is binary, so presence is all that matters.
func (s *store) GetReviewers(ids []string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviewers := make(map[string]bool)
	if len(ids) == 0 {
		return reviewers, nil
	}
	query := fmt.Sprintf(`SELECT DISTINCT user_id FROM reviews WHERE user_id IN (%s)`, placeholders(len(ids)))
	rows, err := s.db.Query(query, toAnySlice(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviewers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		reviewers[userID] = true
	}
	return reviewers, rows.Err()
}

// GetBoostDeltas sums the persisted before/after deltas from the boost audit
// rows per user. The leaderboard adds these instead of re-deriving boost
// effects from aggregate wins.
func (s *store) GetBoostDeltas(ids []string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deltas := make(map[string]int)
	if len(ids) == 0 {
		return deltas, nil
	}
	query := fmt.Sprintf(`
		SELECT user_id, COALESCE(SUM(points_after - points_before), 0)
		FROM boost_uses WHERE user_id IN (%s) GROUP BY user_id`, placeholders(len(ids)))
	rows, err := s.db.Query(query, toAnySlice(ids)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query boost deltas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var delta int
		if err := rows.Scan(&userID, &delta); err != nil {
			return nil, err
		}
		deltas[userID] = delta
	}
	return deltas, rows.Err()
}

func (s *store) GetBoostStats(userID string) (BoostStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats BoostStats
	err := s.db.QueryRow(`SELECT COUNT(*) FROM boost_credits WHERE user_id = ? AND consumed_at IS NULL`, userID).Scan(&stats.Available)
	if err != nil {
		return stats, fmt.Errorf("failed to count boost credits: %w", err)
	}
	err = s.db.QueryRow(`SELECT COUNT(*) FROM boost_uses WHERE user_id = ? AND used_at >= ?`,
		userID, monthStart(time.Now())).Scan(&stats.UsedThisMonth)
	if err != nil {
		return stats, fmt.Errorf("failed to count boost uses: %w", err)
	}
	return stats, nil
}

func (s *store) AddBoostCredit(userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	_, err := s.db.Exec(`INSERT INTO boost_credits (id, user_id, created_at) VALUES (?, ?, ?)`,
		id, userID, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("failed to add boost credit: %w", err)
	}
	return id, nil
}

func (s *store) AddReview(userID string, rating int, comment string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO reviews (id, user_id, rating, comment, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), userID, rating, comment, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to add review: %w", err)
	}
	return nil
}

// RecordNotification appends to the durable notification log. Callers treat
// this as best effort; a failure must never block the primary outcome.
func (s *store) RecordNotification(userID, kind, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO notifications (id, user_id, kind, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), userID, kind, payload, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}

func (s *store) UpsertProfile(profile Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO profiles (id, display_name, player_name, club_id, avatar_url)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			player_name = excluded.player_name,
			club_id = excluded.club_id,
			avatar_url = excluded.avatar_url;`,
		profile.ID, profile.DisplayName, nullString(profile.PlayerName), nullString(profile.ClubID), nullString(profile.AvatarURL))
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (s *store) UpsertClub(club Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO clubs (id, name, city, registered)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			city = excluded.city,
			registered = excluded.registered;`,
		club.ID, club.Name, nullString(club.City), club.Registered)
	if err != nil {
		return fmt.Errorf("failed to upsert club: %w", err)
	}
	return nil
}

func (s *store) AddGuest(firstName, lastName string) (Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guest := Guest{ID: uuid.New().String(), FirstName: firstName, LastName: lastName}
	_, err := s.db.Exec(`INSERT INTO guests (id, first_name, last_name) VALUES (?, ?, ?)`,
		guest.ID, guest.FirstName, guest.LastName)
	if err != nil {
		return Guest{}, fmt.Errorf("failed to add guest: %w", err)
	}
	return guest, nil
}

func (s *store) ListProfiles() ([]Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, display_name, player_name, club_id, avatar_url FROM profiles ORDER BY display_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			log.Error("Failed to scan profile row", "error", err)
			continue
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// monthStart returns the unix timestamp of the first instant of t's month.
func monthStart(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Unix()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func toAnySlice(ids []string) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt64(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}
