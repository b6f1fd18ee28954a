package notifier

import (
	"sync"

	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendBadgeUnlocksCalls []struct {
		PlayerName string
		Badges     []leaderboard.Badge
	}
	SendPodiumUpdateCalls []struct {
		ClubName string
		Entries  []leaderboard.Entry
	}

	// Optional error injection
	SendBadgeUnlocksErr error
	SendPodiumUpdateErr error
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendBadgeUnlocks(playerName string, badges []leaderboard.Badge, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendBadgeUnlocksCalls = append(m.SendBadgeUnlocksCalls, struct {
		PlayerName string
		Badges     []leaderboard.Badge
	}{playerName, badges})
	return m.SendBadgeUnlocksErr
}

func (m *Mock) SendPodiumUpdate(clubName string, entries []leaderboard.Entry, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPodiumUpdateCalls = append(m.SendPodiumUpdateCalls, struct {
		ClubName string
		Entries  []leaderboard.Entry
	}{clubName, entries})
	return m.SendPodiumUpdateErr
}
