package league

// Store defines the interface for interacting with the league's data.
type Store interface {
	// Read surface consumed by the leaderboard engine.
	GetParticipations(filter Filter) ([]Participation, error)
	GetMatches(ids []string) ([]Match, error)
	GetProfiles(ids []string) ([]Profile, error)
	GetReviewers(ids []string) (map[string]bool, error)
	GetBoostDeltas(ids []string) (map[string]int, error)
	GetBoostStats(userID string) (BoostStats, error)

	// Write path.
	CreateMatch(newMatch NewMatch) (*Match, error)
	AddBoostCredit(userID string) (string, error)
	AddReview(userID string, rating int, comment string) error
	RecordNotification(userID, kind, payload string) error

	// Account/club surface (owned elsewhere in the product, read-write here
	// for seeding and membership upkeep).
	UpsertProfile(profile Profile) error
	UpsertClub(club Club) error
	AddGuest(firstName, lastName string) (Guest, error)
	ListProfiles() ([]Profile, error)
	ListMatches(limit int) ([]Match, error)
}
