package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventMatchRecorded fires after a successful match write. Leaderboard
	// consumers treat it as a "data changed" signal and refetch; delivery is
	// at least once, so handlers must tolerate duplicates.
	EventMatchRecorded EventType = "match-recorded"
	// EventLeaderboardDirty asks consumers to refresh their standings view.
	EventLeaderboardDirty EventType = "leaderboard-dirty"
)

// MatchRecordedEvent is the payload published on EventMatchRecorded.
type MatchRecordedEvent struct {
	MatchID      string   `msgpack:"match_id"`
	ClubID       string   `msgpack:"club_id,omitempty"`
	UserIDs      []string `msgpack:"user_ids"`
	BoostApplied bool     `msgpack:"boost_applied"`
	RecordedAt   int64    `msgpack:"recorded_at"`
}
