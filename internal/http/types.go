package http

import (
	"net/http"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/config"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/league"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/metrics"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/notifier"
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/pubsub"
)

type Server struct {
	Store          league.Store
	Leaderboard    *leaderboard.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
