package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncLeaderboardRequests()
	ObserveLeaderboardDuration(duration float64)
	IncMatchesSubmitted()
	IncMatchesRejected()
	IncBoostsApplied()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
