package leaderboard

// BadgeKind enumerates the badges that exist. Presentation lives in
// badgeStyles; predicates live in EvaluateBadges.
type BadgeKind string

const (
	BadgeFirstWin    BadgeKind = "first_win"
	BadgeSeasoned    BadgeKind = "seasoned"
	BadgeMarathoner  BadgeKind = "marathoner"
	BadgeDominator   BadgeKind = "dominator"
	BadgeOnFire      BadgeKind = "on_fire"
	BadgeUnstoppable BadgeKind = "unstoppable"
	BadgeChampion    BadgeKind = "champion"
)

// Badge is one unlocked badge descriptor.
type Badge struct {
	Kind  BadgeKind `json:"kind"`
	Title string    `json:"title"`
}

// Badge thresholds.
const (
	seasonedMatches    = 10
	marathonerMatches  = 25
	dominatorWins      = 10
	onFireStreak       = 3
	unstoppableStreak  = 5
	championPointsGate = 500
)

// EvaluateBadges returns every badge currently satisfied by the stats. Each
// predicate is independent; badges are cumulative, never exclusive. This is
// a pure re-derivation on every call, not an event log: deciding which
// badges are "new" is the notification layer's job.
func EvaluateBadges(s Stats, points int) []Badge {
	var badges []Badge
	add := func(kind BadgeKind, title string, unlocked bool) {
		if unlocked {
			badges = append(badges, Badge{Kind: kind, Title: title})
		}
	}
	add(BadgeFirstWin, "Première victoire", s.Wins >= 1)
	add(BadgeSeasoned, "Habitué", s.Matches >= seasonedMatches)
	add(BadgeMarathoner, "Marathonien", s.Matches >= marathonerMatches)
	add(BadgeDominator, "Dominateur", s.Wins >= dominatorWins)
	add(BadgeOnFire, "En feu", s.Streak >= onFireStreak)
	add(BadgeUnstoppable, "Inarrêtable", s.Streak >= unstoppableStreak)
	add(BadgeChampion, "Champion", points >= championPointsGate)
	return badges
}

var badgeStyles = map[BadgeKind]Style{
	BadgeFirstWin:    {Icon: "🎾", Color: "#4CAF50"},
	BadgeSeasoned:    {Icon: "📅", Color: "#2196F3"},
	BadgeMarathoner:  {Icon: "🏃", Color: "#FF9800"},
	BadgeDominator:   {Icon: "⚡", Color: "#F44336"},
	BadgeOnFire:      {Icon: "🔥", Color: "#FF5722"},
	BadgeUnstoppable: {Icon: "🚀", Color: "#9C27B0"},
	BadgeChampion:    {Icon: "🏆", Color: "#FFD700"},
}

// Style returns the presentation descriptor for the badge.
func (b Badge) Style() Style {
	return badgeStyles[b.Kind]
}
