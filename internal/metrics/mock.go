package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	leaderboardRequests  int
	leaderboardDurations []float64
	matchesSubmitted     int
	matchesRejected      int
	boostsApplied        int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		leaderboardDurations: make([]float64, 0),
	}
}

func (m *Mock) IncLeaderboardRequests() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardRequests++
}

func (m *Mock) ObserveLeaderboardDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardDurations = append(m.leaderboardDurations, duration)
}

func (m *Mock) IncMatchesSubmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesSubmitted++
}

func (m *Mock) IncMatchesRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRejected++
}

func (m *Mock) IncBoostsApplied() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.boostsApplied++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// LeaderboardRequests returns the number of times IncLeaderboardRequests was called.
func (m *Mock) LeaderboardRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.leaderboardRequests
}

// MatchesSubmitted returns the number of times IncMatchesSubmitted was called.
func (m *Mock) MatchesSubmitted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesSubmitted
}

// MatchesRejected returns the number of times IncMatchesRejected was called.
func (m *Mock) MatchesRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRejected
}

// BoostsApplied returns the number of times IncBoostsApplied was called.
func (m *Mock) BoostsApplied() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.boostsApplied
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
