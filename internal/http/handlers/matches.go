package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/config"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/metrics"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/notifier"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/pubsub"
)

type submitPlayer struct {
	UserID         string `json:"user_id,omitempty"`
	GuestFirstName string `json:"guest_first_name,omitempty"`
	GuestLastName  string `json:"guest_last_name,omitempty"`
	Team           int    `json:"team"`
}

type submitSet struct {
	Team1    int  `json:"team1"`
	Team2    int  `json:"team2"`
	TieBreak bool `json:"tie_break,omitempty"`
}

type submitMatchRequest struct {
	Players              []submitPlayer `json:"players"`
	Winner               int            `json:"winner"`
	Sets                 []submitSet    `json:"sets"`
	PlayedAt             int64          `json:"played_at,omitempty"`
	UseBoost             bool           `json:"use_boost,omitempty"`
	LocationClubID       string         `json:"location_club_id,omitempty"`
	IsUnregisteredClub   bool           `json:"is_unregistered_club,omitempty"`
	UnregisteredClubName string         `json:"unregistered_club_name,omitempty"`
	UnregisteredClubCity string         `json:"unregistered_club_city,omitempty"`
}

type boostPointsInfo struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

type submitMatchResponse struct {
	Match           *league.Match    `json:"match"`
	BoostApplied    bool             `json:"boost_applied,omitempty"`
	BoostPointsInfo *boostPointsInfo `json:"boost_points_info,omitempty"`
	Warning         string           `json:"warning,omitempty"`
}

// MatchesHandler serves GET (recent match history, capped matches included)
// and POST (match submission, the product's sole write trigger).
func MatchesHandler(store league.Store, svc *leaderboard.Service, notif notifier.Notifier, pubsubClient pubsub.PubSubClient, metricsSvc metrics.Metrics, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listMatches(w, store)
		case http.MethodPost:
			submitMatch(w, r, store, svc, notif, pubsubClient, metricsSvc, cfg)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func listMatches(w http.ResponseWriter, store league.Store) {
	matches, err := store.ListMatches(50)
	if err != nil {
		log.Error("Failed to get matches from store", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get matches")
		return
	}
	if matches == nil {
		matches = []league.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func submitMatch(w http.ResponseWriter, r *http.Request, store league.Store, svc *leaderboard.Service, notif notifier.Notifier, pubsubClient pubsub.PubSubClient, metricsSvc metrics.Metrics, cfg config.Config) {
	userID := UserIDFromContext(r)
	dryRun := IsDryRunFromContext(r)

	var req submitMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metricsSvc.IncMatchesRejected()
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Everything is validated before any write; a rejected submission is
	// never partially applied.
	if fieldErrors := validateSubmission(&req); len(fieldErrors) > 0 {
		metricsSvc.IncMatchesRejected()
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrors})
		return
	}

	locationClubID, err := resolveLocationClub(store, &req)
	if err != nil {
		log.Error("Failed to resolve location club", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record match")
		return
	}

	players, err := resolvePlayers(store, req.Players)
	if err != nil {
		log.Error("Failed to resolve players", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record match")
		return
	}

	newMatch := league.NewMatch{
		Players:        players,
		WinnerTeam:     req.Winner,
		Sets:           toSetResults(req.Sets),
		PlayedAt:       req.PlayedAt,
		LocationClubID: locationClubID,
	}

	var boostInfo *boostPointsInfo
	if req.UseBoost {
		claim, info, fieldErr := prepareBoostClaim(svc, &req, userID, cfg.League)
		if fieldErr != "" {
			metricsSvc.IncMatchesRejected()
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"use_boost": fieldErr}})
			return
		}
		newMatch.Boost = claim
		boostInfo = info
	}

	if dryRun {
		log.Info("[Dry Run] Would record match", "players", len(players), "winner", req.Winner, "boost", req.UseBoost)
		writeJSON(w, http.StatusOK, submitMatchResponse{Match: &league.Match{}, BoostApplied: req.UseBoost, BoostPointsInfo: boostInfo})
		return
	}

	match, err := store.CreateMatch(newMatch)
	if err != nil {
		switch {
		case errors.Is(err, league.ErrNoBoostCredit):
			metricsSvc.IncMatchesRejected()
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"use_boost": "no boost credit available"}})
		case errors.Is(err, league.ErrBoostCapReached):
			metricsSvc.IncMatchesRejected()
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"use_boost": "monthly boost limit reached"}})
		default:
			log.Error("Failed to create match", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to record match")
		}
		return
	}
	metricsSvc.IncMatchesSubmitted()
	if newMatch.Boost != nil {
		metricsSvc.IncBoostsApplied()
	}

	resp := submitMatchResponse{
		Match:           match,
		BoostApplied:    newMatch.Boost != nil,
		BoostPointsInfo: boostInfo,
		Warning:         dailyCapWarning(svc, players, match.ID),
	}

	// Post-write fan-out is best effort: a failed signal or notification
	// must never fail a recorded match.
	announceMatch(store, svc, notif, pubsubClient, match, players, userID, newMatch.Boost != nil, dryRun)

	writeJSON(w, http.StatusOK, resp)
}

// validateSubmission returns field-level error messages, empty when valid.
func validateSubmission(req *submitMatchRequest) map[string]string {
	fieldErrors := make(map[string]string)

	if len(req.Players) != 4 {
		fieldErrors["players"] = "exactly 4 players are required"
		return fieldErrors
	}
	teamCounts := map[int]int{}
	seenUsers := map[string]bool{}
	seenGuests := map[string]bool{}
	for _, p := range req.Players {
		teamCounts[p.Team]++
		if p.UserID != "" {
			if seenUsers[p.UserID] {
				fieldErrors["players"] = "a player cannot appear twice"
			}
			seenUsers[p.UserID] = true
		} else {
			if p.GuestFirstName == "" || p.GuestLastName == "" {
				fieldErrors["players"] = "guest players need a first and last name"
			}
			guestKey := strings.ToLower(p.GuestFirstName + " " + p.GuestLastName)
			if seenGuests[guestKey] {
				fieldErrors["players"] = "a guest cannot appear twice"
			}
			seenGuests[guestKey] = true
		}
	}
	if teamCounts[1] != 2 || teamCounts[2] != 2 {
		fieldErrors["players"] = "each team needs exactly 2 players"
	}

	if len(req.Sets) == 0 {
		fieldErrors["sets"] = "at least one set is required"
	}
	team1Sets, team2Sets := 0, 0
	for _, set := range req.Sets {
		if set.Team1 < 0 || set.Team2 < 0 {
			fieldErrors["sets"] = "set scores cannot be negative"
		}
		switch {
		case set.Team1 > set.Team2:
			team1Sets++
		case set.Team2 > set.Team1:
			team2Sets++
		}
	}
	if len(req.Sets) > 0 && fieldErrors["sets"] == "" {
		switch {
		case team1Sets == team2Sets:
			fieldErrors["winner"] = "winner cannot be resolved from the submitted sets"
		case team1Sets > team2Sets && req.Winner != 1, team2Sets > team1Sets && req.Winner != 2:
			fieldErrors["winner"] = "declared winner does not match the submitted sets"
		}
	}
	if req.Winner != 1 && req.Winner != 2 {
		fieldErrors["winner"] = "winner must be team 1 or team 2"
	}

	if req.IsUnregisteredClub && req.UnregisteredClubName == "" {
		fieldErrors["unregistered_club_name"] = "a name is required for an unregistered club"
	}
	return fieldErrors
}

func resolveLocationClub(store league.Store, req *submitMatchRequest) (string, error) {
	if !req.IsUnregisteredClub {
		return req.LocationClubID, nil
	}
	club := league.Club{
		ID:         uuid.New().String(),
		Name:       req.UnregisteredClubName,
		City:       req.UnregisteredClubCity,
		Registered: false,
	}
	if err := store.UpsertClub(club); err != nil {
		return "", err
	}
	return club.ID, nil
}

func resolvePlayers(store league.Store, players []submitPlayer) ([]league.MatchPlayer, error) {
	resolved := make([]league.MatchPlayer, 0, len(players))
	for _, p := range players {
		if p.UserID != "" {
			resolved = append(resolved, league.MatchPlayer{Ref: league.PlayerRef{UserID: p.UserID}, Team: p.Team})
			continue
		}
		guest, err := store.AddGuest(p.GuestFirstName, p.GuestLastName)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, league.MatchPlayer{Ref: league.PlayerRef{GuestID: guest.ID}, Team: p.Team})
	}
	return resolved, nil
}

func toSetResults(sets []submitSet) []league.SetResult {
	results := make([]league.SetResult, len(sets))
	for i, s := range sets {
		results[i] = league.SetResult{Seq: i + 1, Team1Games: s.Team1, Team2Games: s.Team2, TieBreak: s.TieBreak}
	}
	return results
}

// prepareBoostClaim validates boost preconditions and snapshots the
// before/after points persisted on the audit row.
func prepareBoostClaim(svc *leaderboard.Service, req *submitMatchRequest, userID string, leagueCfg config.LeagueConfig) (*league.BoostClaim, *boostPointsInfo, string) {
	onWinningTeam := false
	for _, p := range req.Players {
		if p.UserID == userID && p.Team == req.Winner {
			onWinningTeam = true
		}
	}
	if !onWinningTeam {
		return nil, nil, "a boost can only be applied to your own winning match"
	}

	_, before, err := svc.UserStats(userID)
	if err != nil {
		log.Error("Failed to compute points before boost", "error", err, "userID", userID)
		return nil, nil, "could not compute boost points"
	}
	after := leaderboard.BoostedPoints(before, leagueCfg.BoostPercent)
	claim := &league.BoostClaim{
		UserID:       userID,
		PointsBefore: before,
		PointsAfter:  after,
		MonthlyCap:   leagueCfg.MonthlyBoostCap,
	}
	return claim, &boostPointsInfo{Before: before, After: after}, ""
}

// dailyCapWarning checks each registered player's daily cap for the freshly
// recorded match. A capped match is still recorded, the submitter is only
// informed.
func dailyCapWarning(svc *leaderboard.Service, players []league.MatchPlayer, matchID string) string {
	var capped []string
	for _, p := range players {
		if !p.Ref.IsUser() {
			continue
		}
		counts, err := svc.CountsForDay(p.Ref.UserID, matchID)
		if err != nil {
			log.Error("Failed to check daily cap", "error", err, "userID", p.Ref.UserID)
			continue
		}
		if !counts {
			capped = append(capped, p.Ref.UserID)
		}
	}
	if len(capped) == 0 {
		return ""
	}
	return "match recorded, but the daily limit was reached for: " + strings.Join(capped, ", ")
}

// announceMatch publishes the data-changed signal, appends badge
// notifications to the durable log and pings Slack. Everything here is
// fire and forget.
func announceMatch(store league.Store, svc *leaderboard.Service, notif notifier.Notifier, pubsubClient pubsub.PubSubClient, match *league.Match, players []league.MatchPlayer, submitterID string, boostApplied bool, dryRun bool) {
	var userIDs []string
	for _, p := range players {
		if p.Ref.IsUser() {
			userIDs = append(userIDs, p.Ref.UserID)
		}
	}
	event := pubsub.MatchRecordedEvent{
		MatchID:      match.ID,
		ClubID:       match.LocationClubID,
		UserIDs:      userIDs,
		BoostApplied: boostApplied,
		RecordedAt:   time.Now().Unix(),
	}
	if err := pubsubClient.SendMessage(string(pubsub.EventMatchRecorded), event); err != nil {
		log.Error("Failed to publish match-recorded event", "error", err, "matchID", match.ID)
	}

	badges, err := svc.UserBadges(submitterID)
	if err != nil {
		log.Error("Failed to evaluate badges after match", "error", err, "userID", submitterID)
		return
	}
	if len(badges) == 0 {
		return
	}
	payload, _ := json.Marshal(badges)
	if err := store.RecordNotification(submitterID, "badges_snapshot", string(payload)); err != nil {
		log.Error("Failed to record badge notification", "error", err, "userID", submitterID)
	}

	name := submitterID
	if profiles, err := store.GetProfiles([]string{submitterID}); err == nil && len(profiles) > 0 {
		name = profiles[0].DisplayName
	}
	if err := notif.SendBadgeUnlocks(name, badges, dryRun); err != nil {
		log.Error("Failed to send badge notification", "error", err, "userID", submitterID)
	}
}
