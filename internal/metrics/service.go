package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		LeaderboardRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_leaderboard_requests_total",
			Help: "The total number of leaderboard computations served.",
		}),
		LeaderboardDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "padel_leaderboard_duration_seconds",
			Help:    "The duration of individual leaderboard computations.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		MatchesSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_matches_submitted_total",
			Help: "The total number of matches recorded.",
		}),
		MatchesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_matches_rejected_total",
			Help: "The total number of match submissions rejected by validation.",
		}),
		BoostsApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_boosts_applied_total",
			Help: "The total number of boost credits consumed on winning matches.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padel_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.LeaderboardRequests,
		s.LeaderboardDuration,
		s.MatchesSubmitted,
		s.MatchesRejected,
		s.BoostsApplied,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLeaderboardRequests() {
	s.LeaderboardRequests.Inc()
}

func (s *Service) ObserveLeaderboardDuration(duration float64) {
	s.LeaderboardDuration.Observe(duration)
}

func (s *Service) IncMatchesSubmitted() {
	s.MatchesSubmitted.Inc()
}

func (s *Service) IncMatchesRejected() {
	s.MatchesRejected.Inc()
}

func (s *Service) IncBoostsApplied() {
	s.BoostsApplied.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
