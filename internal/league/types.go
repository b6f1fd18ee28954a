package league

import (
	"database/sql"
	"errors"
	"sync"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

var (
	// ErrNoBoostCredit is returned when a boost claim finds no unconsumed credit.
	ErrNoBoostCredit = errors.New("no unconsumed boost credit available")
	// ErrBoostCapReached is returned when a player has exhausted the monthly boost allowance.
	ErrBoostCapReached = errors.New("monthly boost cap reached")
)

// PlayerRef identifies a match participant: a registered user or a guest.
// Exactly one of the two ids is set.
type PlayerRef struct {
	UserID  string `json:"user_id,omitempty"`
	GuestID string `json:"guest_id,omitempty"`
}

// IsUser reports whether the reference points at a registered user.
func (r PlayerRef) IsUser() bool {
	return r.UserID != ""
}

// Key returns a stable map key, distinct across users and guests.
func (r PlayerRef) Key() string {
	if r.IsUser() {
		return "u:" + r.UserID
	}
	return "g:" + r.GuestID
}

// Match is an immutable record of a completed contest.
type Match struct {
	ID             string      `json:"id"`
	Team1ID        string      `json:"team1_id"`
	Team2ID        string      `json:"team2_id"`
	WinnerTeamID   string      `json:"winner_team_id,omitempty"` // empty until decided
	PlayedAt       int64       `json:"played_at,omitempty"`      // unix seconds, 0 when unknown
	LocationClubID string      `json:"location_club_id,omitempty"`
	CreatedAt      int64       `json:"created_at"`
	Sets           []SetResult `json:"sets,omitempty"`
}

// SetResult is one submitted set score.
type SetResult struct {
	Seq        int  `json:"seq"`
	Team1Games int  `json:"team1_games"`
	Team2Games int  `json:"team2_games"`
	TieBreak   bool `json:"tie_break,omitempty"`
}

// Participation links a match to one player slot.
type Participation struct {
	MatchID string    `json:"match_id"`
	Player  PlayerRef `json:"player"`
	Team    int       `json:"team"` // 1 or 2
}

// Profile is the slice of a user account the league reads.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	PlayerName  string `json:"player_name,omitempty"`
	ClubID      string `json:"club_id,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Club is a padel club, registered or free-form from a submission.
type Club struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city,omitempty"`
	Registered bool   `json:"registered"`
}

// Guest is an unregistered player occupying a participant slot.
type Guest struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// BoostStats summarises a player's boost-credit position.
type BoostStats struct {
	Available     int `json:"available"`
	UsedThisMonth int `json:"used_this_month"`
}

// MatchPlayer is one player slot in a submission.
type MatchPlayer struct {
	Ref  PlayerRef
	Team int
}

// BoostClaim asks CreateMatch to consume one credit in the same transaction
// as the match write. PointsBefore/PointsAfter are persisted on the audit row.
type BoostClaim struct {
	UserID       string
	PointsBefore int
	PointsAfter  int
	MonthlyCap   int
}

// NewMatch is the transactional write payload: one match, four participants,
// the submitted sets and an optional boost claim. All or nothing.
type NewMatch struct {
	Players        []MatchPlayer
	WinnerTeam     int // 1 or 2, 0 when undecided
	Sets           []SetResult
	PlayedAt       int64
	LocationClubID string
	Boost          *BoostClaim
}

// Filter narrows GetParticipations.
type Filter struct {
	UserID string
	ClubID string
}
