package notifier

import (
	"github.com/mathishannebique111-hash/PadelXP-sub000/internal/leaderboard"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
// All sends are best effort: callers log and swallow errors, a failed
// notification never blocks the user-facing outcome.
type Notifier interface {
	// For freshly unlocked badges after a match submission.
	SendBadgeUnlocks(playerName string, badges []leaderboard.Badge, dryRun bool) error
	// For the top of a freshly computed club leaderboard.
	SendPodiumUpdate(clubName string, entries []leaderboard.Entry, dryRun bool) error
}
