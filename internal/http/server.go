package http

import (
	"net/http"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/config"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/http/handlers"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/metrics"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/notifier"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/pubsub"
)

func NewServer(store league.Store, leaderboardSvc *leaderboard.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Leaderboard:    leaderboardSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Identity-bound routes add authMiddleware; the upstream proxy owns the
	// session, we only consume the forwarded user id.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(handlers.LeaderboardHandler(s.Store, s.Leaderboard, s.Metrics), paramsMiddleware, authMiddleware))
	s.Router.Handle("/matches", Chain(handlers.MatchesHandler(s.Store, s.Leaderboard, s.Notifier, s.pubsub, s.Metrics, s.Cfg), paramsMiddleware, authMiddleware))
	s.Router.Handle("/members", Chain(handlers.ListMembersHandler(s.Store), paramsMiddleware))
	s.Router.Handle("/badges", Chain(handlers.BadgesHandler(s.Leaderboard), paramsMiddleware))
	s.Router.Handle("/boosts", Chain(handlers.BoostsHandler(s.Store), paramsMiddleware, authMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
