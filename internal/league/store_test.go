package league_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/database"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (league.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := league.New(db)
	return store, db, dbTeardown
}

func seedPlayers(t *testing.T, store league.Store, clubID string, ids ...string) {
	t.Helper()
	if clubID != "" {
		require.NoError(t, store.UpsertClub(league.Club{ID: clubID, Name: "Test Club", Registered: true}))
	}
	for _, id := range ids {
		require.NoError(t, store.UpsertProfile(league.Profile{ID: id, DisplayName: "Player " + id, ClubID: clubID}))
	}
}

func fourPlayers(ids ...string) []league.MatchPlayer {
	players := make([]league.MatchPlayer, len(ids))
	for i, id := range ids {
		team := 1
		if i >= 2 {
			team = 2
		}
		players[i] = league.MatchPlayer{Ref: league.PlayerRef{UserID: id}, Team: team}
	}
	return players
}

func TestCreateMatch(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	seedPlayers(t, store, "club-1", "p1", "p2", "p3", "p4")

	match, err := store.CreateMatch(league.NewMatch{
		Players:    fourPlayers("p1", "p2", "p3", "p4"),
		WinnerTeam: 1,
		PlayedAt:   time.Now().Unix(),
		Sets: []league.SetResult{
			{Seq: 1, Team1Games: 6, Team2Games: 4},
			{Seq: 2, Team1Games: 6, Team2Games: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, match.Team1ID, match.WinnerTeamID)

	var participantCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM participants WHERE match_id = ?`, match.ID).Scan(&participantCount))
	assert.Equal(t, 4, participantCount)

	var setCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM match_sets WHERE match_id = ?`, match.ID).Scan(&setCount))
	assert.Equal(t, 2, setCount)
}

func TestCreateMatch_BoostFailureRollsBackEverything(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	seedPlayers(t, store, "club-1", "p1", "p2", "p3", "p4")

	// p1 has no credit, so the boost claim must fail and take the whole
	// match write with it.
	_, err := store.CreateMatch(league.NewMatch{
		Players:    fourPlayers("p1", "p2", "p3", "p4"),
		WinnerTeam: 1,
		PlayedAt:   time.Now().Unix(),
		Boost:      &league.BoostClaim{UserID: "p1", PointsBefore: 10, PointsAfter: 13, MonthlyCap: 10},
	})
	require.ErrorIs(t, err, league.ErrNoBoostCredit)

	var matchCount, participantCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM matches`).Scan(&matchCount))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&participantCount))
	assert.Zero(t, matchCount, "no partial match row may be visible")
	assert.Zero(t, participantCount)
}

func TestClaimBoostCredit_ConsumesExactlyOne(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	seedPlayers(t, store, "club-1", "p1", "p2", "p3", "p4")
	creditID, err := store.AddBoostCredit("p1")
	require.NoError(t, err)

	match, err := store.CreateMatch(league.NewMatch{
		Players:    fourPlayers("p1", "p2", "p3", "p4"),
		WinnerTeam: 1,
		PlayedAt:   time.Now().Unix(),
		Boost:      &league.BoostClaim{UserID: "p1", PointsBefore: 10, PointsAfter: 13, MonthlyCap: 10},
	})
	require.NoError(t, err)

	var consumedAt sql.NullInt64
	require.NoError(t, db.QueryRow(`SELECT consumed_at FROM boost_credits WHERE id = ?`, creditID).Scan(&consumedAt))
	assert.True(t, consumedAt.Valid, "credit should be consumed")

	deltas, err := store.GetBoostDeltas([]string{"p1"})
	require.NoError(t, err)
	assert.Equal(t, 3, deltas["p1"])

	stats, err := store.GetBoostStats("p1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Available)
	assert.Equal(t, 1, stats.UsedThisMonth)

	// A second boosted submission with no remaining credit must fail.
	_, err = store.CreateMatch(league.NewMatch{
		Players:    fourPlayers("p1", "p2", "p3", "p4"),
		WinnerTeam: 1,
		PlayedAt:   time.Now().Unix(),
		Boost:      &league.BoostClaim{UserID: "p1", PointsBefore: 23, PointsAfter: 30, MonthlyCap: 10},
	})
	require.ErrorIs(t, err, league.ErrNoBoostCredit)
	_ = match
}

func TestClaimBoostCredit_MonthlyCap(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedPlayers(t, store, "club-1", "p1", "p2", "p3", "p4")
	for i := 0; i < 2; i++ {
		_, err := store.AddBoostCredit("p1")
		require.NoError(t, err)
	}

	_, err := store.CreateMatch(league.NewMatch{
		Players:    fourPlayers("p1", "p2", "p3", "p4"),
		WinnerTeam: 1,
		PlayedAt:   time.Now().Unix(),
		Boost:      &league.BoostClaim{UserID: "p1", PointsBefore: 10, PointsAfter: 13, MonthlyCap: 1},
	})
	require.NoError(t, err)

	_, err = store.CreateMatch(league.NewMatch{
		Players:    fourPlayers("p1", "p2", "p3", "p4"),
		WinnerTeam: 1,
		PlayedAt:   time.Now().Unix(),
		Boost:      &league.BoostClaim{UserID: "p1", PointsBefore: 23, PointsAfter: 30, MonthlyCap: 1},
	})
	require.ErrorIs(t, err, league.ErrBoostCapReached)
}

func TestGetParticipations_ClubFilter(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedPlayers(t, store, "club-1", "p1", "p2")
	seedPlayers(t, store, "club-2", "p3", "p4")

	_, err := store.CreateMatch(league.NewMatch{
		Players:    fourPlayers("p1", "p2", "p3", "p4"),
		WinnerTeam: 1,
		PlayedAt:   time.Now().Unix(),
	})
	require.NoError(t, err)

	parts, err := store.GetParticipations(league.Filter{ClubID: "club-1"})
	require.NoError(t, err)
	require.Len(t, parts, 2, "cross-club players are excluded before aggregation")
	for _, p := range parts {
		assert.Contains(t, []string{"p1", "p2"}, p.Player.UserID)
	}

	parts, err = store.GetParticipations(league.Filter{UserID: "p3"})
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "p3", parts[0].Player.UserID)
}

func TestGetParticipations_GuestSlots(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedPlayers(t, store, "club-1", "p1", "p2", "p3")
	guest, err := store.AddGuest("Alex", "Guest")
	require.NoError(t, err)

	_, err = store.CreateMatch(league.NewMatch{
		Players: []league.MatchPlayer{
			{Ref: league.PlayerRef{UserID: "p1"}, Team: 1},
			{Ref: league.PlayerRef{UserID: "p2"}, Team: 1},
			{Ref: league.PlayerRef{UserID: "p3"}, Team: 2},
			{Ref: league.PlayerRef{GuestID: guest.ID}, Team: 2},
		},
		WinnerTeam: 2,
		PlayedAt:   time.Now().Unix(),
	})
	require.NoError(t, err)

	parts, err := store.GetParticipations(league.Filter{})
	require.NoError(t, err)
	require.Len(t, parts, 4)

	guests := 0
	for _, p := range parts {
		if !p.Player.IsUser() {
			guests++
			assert.Equal(t, guest.ID, p.Player.GuestID)
		}
	}
	assert.Equal(t, 1, guests)
}

func TestGetReviewers(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedPlayers(t, store, "club-1", "p1", "p2")
	require.NoError(t, store.AddReview("p1", 5, "great courts"))
	require.NoError(t, store.AddReview("p1", 4, "still great"))

	reviewers, err := store.GetReviewers([]string{"p1", "p2"})
	require.NoError(t, err)
	assert.True(t, reviewers["p1"])
	assert.False(t, reviewers["p2"])
}

func TestRecordNotification(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	seedPlayers(t, store, "club-1", "p1")
	require.NoError(t, store.RecordNotification("p1", "badge_unlocked", `{"badge":"first_win"}`))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM notifications WHERE user_id = 'p1'`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestListMatches_IncludesSets(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	seedPlayers(t, store, "club-1", "p1", "p2", "p3", "p4")
	_, err := store.CreateMatch(league.NewMatch{
		Players:    fourPlayers("p1", "p2", "p3", "p4"),
		WinnerTeam: 2,
		PlayedAt:   time.Now().Unix(),
		Sets: []league.SetResult{
			{Seq: 1, Team1Games: 4, Team2Games: 6},
			{Seq: 2, Team1Games: 6, Team2Games: 7, TieBreak: true},
		},
	})
	require.NoError(t, err)

	matches, err := store.ListMatches(10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Len(t, matches[0].Sets, 2)
	assert.True(t, matches[0].Sets[1].TieBreak)
	assert.Equal(t, matches[0].Team2ID, matches[0].WinnerTeamID)
}
