package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/metrics"
)

type leaderboardResponse struct {
	Leaderboard []leaderboard.Entry `json:"leaderboard"`
}

// LeaderboardHandler serves the caller's club-scoped leaderboard, computed
// fresh on every request. A caller without a club affiliation gets an empty
// board with a 200: being new and clubless is an expected state, not a fault.
func LeaderboardHandler(store league.Store, svc *leaderboard.Service, metricsSvc metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := UserIDFromContext(r)
		metricsSvc.IncLeaderboardRequests()
		start := time.Now()

		profiles, err := store.GetProfiles([]string{userID})
		if err != nil {
			log.Error("Failed to load caller profile", "error", err, "userID", userID)
			writeError(w, http.StatusInternalServerError, "failed to load leaderboard")
			return
		}
		clubID := ""
		if len(profiles) > 0 {
			clubID = profiles[0].ClubID
		}
		if clubID == "" {
			writeJSON(w, http.StatusOK, leaderboardResponse{Leaderboard: []leaderboard.Entry{}})
			return
		}

		entries, err := svc.ForClub(clubID)
		if err != nil {
			// Never guess: a partial ranking is worse than an error.
			log.Error("Failed to compute leaderboard", "error", err, "clubID", clubID)
			writeError(w, http.StatusInternalServerError, "failed to load leaderboard")
			return
		}
		metricsSvc.ObserveLeaderboardDuration(time.Since(start).Seconds())
		writeJSON(w, http.StatusOK, leaderboardResponse{Leaderboard: entries})
	}
}

type badgeView struct {
	Kind  leaderboard.BadgeKind `json:"kind"`
	Title string                `json:"title"`
	Icon  string                `json:"icon"`
	Color string                `json:"color"`
}

// BadgesHandler returns the full badge set currently satisfied by a user.
// Diffing against previously seen badges is the client's job.
func BadgesHandler(svc *leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user")
		if userID == "" {
			writeError(w, http.StatusBadRequest, "missing user parameter")
			return
		}
		badges, err := svc.UserBadges(userID)
		if err != nil {
			log.Error("Failed to evaluate badges", "error", err, "userID", userID)
			writeError(w, http.StatusInternalServerError, "failed to evaluate badges")
			return
		}
		views := make([]badgeView, 0, len(badges))
		for _, b := range badges {
			style := b.Style()
			views = append(views, badgeView{Kind: b.Kind, Title: b.Title, Icon: style.Icon, Color: style.Color})
		}
		writeJSON(w, http.StatusOK, map[string][]badgeView{"badges": views})
	}
}

// BoostsHandler reports the caller's boost-credit position.
func BoostsHandler(store league.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := UserIDFromContext(r)
		stats, err := store.GetBoostStats(userID)
		if err != nil {
			log.Error("Failed to load boost stats", "error", err, "userID", userID)
			writeError(w, http.StatusInternalServerError, "failed to load boost stats")
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// ListMembersHandler lists all registered profiles.
func ListMembersHandler(store league.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profiles, err := store.ListProfiles()
		if err != nil {
			log.Error("Failed to get profiles from store", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get members")
			return
		}
		writeJSON(w, http.StatusOK, profiles)
	}
}
