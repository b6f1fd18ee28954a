package league

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	GetParticipationsFunc  func(filter Filter) ([]Participation, error)
	GetMatchesFunc         func(ids []string) ([]Match, error)
	GetProfilesFunc        func(ids []string) ([]Profile, error)
	GetReviewersFunc       func(ids []string) (map[string]bool, error)
	GetBoostDeltasFunc     func(ids []string) (map[string]int, error)
	GetBoostStatsFunc      func(userID string) (BoostStats, error)
	CreateMatchFunc        func(newMatch NewMatch) (*Match, error)
	AddBoostCreditFunc     func(userID string) (string, error)
	AddReviewFunc          func(userID string, rating int, comment string) error
	RecordNotificationFunc func(userID, kind, payload string) error
	UpsertProfileFunc      func(profile Profile) error
	UpsertClubFunc         func(club Club) error
	AddGuestFunc           func(firstName, lastName string) (Guest, error)
	ListProfilesFunc       func() ([]Profile, error)
	ListMatchesFunc        func(limit int) ([]Match, error)

	// Call records
	GetParticipationsCalls  []Filter
	CreateMatchCalls        []NewMatch
	RecordNotificationCalls []struct {
		UserID  string
		Kind    string
		Payload string
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) GetParticipations(filter Filter) ([]Participation, error) {
	m.mu.Lock()
	m.GetParticipationsCalls = append(m.GetParticipationsCalls, filter)
	m.mu.Unlock()
	if m.GetParticipationsFunc != nil {
		return m.GetParticipationsFunc(filter)
	}
	return nil, nil
}

func (m *MockStore) GetMatches(ids []string) ([]Match, error) {
	if m.GetMatchesFunc != nil {
		return m.GetMatchesFunc(ids)
	}
	return nil, nil
}

func (m *MockStore) GetProfiles(ids []string) ([]Profile, error) {
	if m.GetProfilesFunc != nil {
		return m.GetProfilesFunc(ids)
	}
	return nil, nil
}

func (m *MockStore) GetReviewers(ids []string) (map[string]bool, error) {
	if m.GetReviewersFunc != nil {
		return m.GetReviewersFunc(ids)
	}
	return map[string]bool{}, nil
}

func (m *MockStore) GetBoostDeltas(ids []string) (map[string]int, error) {
	if m.GetBoostDeltasFunc != nil {
		return m.GetBoostDeltasFunc(ids)
	}
	return map[string]int{}, nil
}

func (m *MockStore) GetBoostStats(userID string) (BoostStats, error) {
	if m.GetBoostStatsFunc != nil {
		return m.GetBoostStatsFunc(userID)
	}
	return BoostStats{}, nil
}

func (m *MockStore) CreateMatch(newMatch NewMatch) (*Match, error) {
	m.mu.Lock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, newMatch)
	m.mu.Unlock()
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(newMatch)
	}
	return &Match{ID: "mock-match"}, nil
}

func (m *MockStore) AddBoostCredit(userID string) (string, error) {
	if m.AddBoostCreditFunc != nil {
		return m.AddBoostCreditFunc(userID)
	}
	return "mock-credit", nil
}

func (m *MockStore) AddReview(userID string, rating int, comment string) error {
	if m.AddReviewFunc != nil {
		return m.AddReviewFunc(userID, rating, comment)
	}
	return nil
}

func (m *MockStore) RecordNotification(userID, kind, payload string) error {
	m.mu.Lock()
	m.RecordNotificationCalls = append(m.RecordNotificationCalls, struct {
		UserID  string
		Kind    string
		Payload string
	}{userID, kind, payload})
	m.mu.Unlock()
	if m.RecordNotificationFunc != nil {
		return m.RecordNotificationFunc(userID, kind, payload)
	}
	return nil
}

func (m *MockStore) UpsertProfile(profile Profile) error {
	if m.UpsertProfileFunc != nil {
		return m.UpsertProfileFunc(profile)
	}
	return nil
}

func (m *MockStore) UpsertClub(club Club) error {
	if m.UpsertClubFunc != nil {
		return m.UpsertClubFunc(club)
	}
	return nil
}

func (m *MockStore) AddGuest(firstName, lastName string) (Guest, error) {
	if m.AddGuestFunc != nil {
		return m.AddGuestFunc(firstName, lastName)
	}
	return Guest{ID: "mock-guest", FirstName: firstName, LastName: lastName}, nil
}

func (m *MockStore) ListProfiles() ([]Profile, error) {
	if m.ListProfilesFunc != nil {
		return m.ListProfilesFunc()
	}
	return nil, nil
}

func (m *MockStore) ListMatches(limit int) ([]Match, error) {
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(limit)
	}
	return nil, nil
}
