package leaderboard

// Stats are the per-player counters folded out of eligible match history.
type Stats struct {
	Wins    int `json:"wins"`
	Losses  int `json:"losses"`
	Matches int `json:"matches"`
	// Streak is the best consecutive win run observed in the player's
	// chronological eligible-match history.
	Streak int `json:"streak"`
}

// Entry is one leaderboard row. Rank is dense and 1-based; the array order
// of a response carries the same information.
type Entry struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	PlayerName string `json:"player_name,omitempty"`
	Points     int    `json:"points"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Matches    int    `json:"matches"`
	Tier       Tier   `json:"tier"`
	Rank       int    `json:"rank"`
}

// Style is a presentation descriptor for a tier or badge, keeping "which
// badges exist" separate from how a client draws them.
type Style struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
