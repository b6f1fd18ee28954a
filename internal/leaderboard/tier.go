package leaderboard

// Tier is the named bracket derived solely from a player's point total.
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierArgent   Tier = "Argent"
	TierOr       Tier = "Or"
	TierDiamant  Tier = "Diamant"
	TierChampion Tier = "Champion"
)

// tierThresholds is evaluated highest-first; the first match wins. The
// ranges are disjoint and exhaustive, so no ties are possible.
var tierThresholds = []struct {
	min  int
	tier Tier
}{
	{500, TierChampion},
	{300, TierDiamant},
	{200, TierOr},
	{100, TierArgent},
}

// TierFor maps a point total to its tier.
func TierFor(points int) Tier {
	for _, t := range tierThresholds {
		if points >= t.min {
			return t.tier
		}
	}
	return TierBronze
}

var tierStyles = map[Tier]Style{
	TierBronze:   {Icon: "🥉", Color: "#CD7F32"},
	TierArgent:   {Icon: "🥈", Color: "#C0C0C0"},
	TierOr:       {Icon: "🥇", Color: "#FFD700"},
	TierDiamant:  {Icon: "💎", Color: "#50B1F6"},
	TierChampion: {Icon: "🏆", Color: "#8A2BE2"},
}

// Style returns the presentation descriptor for the tier.
func (t Tier) Style() Style {
	return tierStyles[t]
}
