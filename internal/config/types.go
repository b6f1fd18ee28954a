package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Slack         SlackConfig
	Turso         TursoConfig
	League        LeagueConfig
	ProjectID     string
}
type SlackConfig struct {
	Token     string
	ChannelID string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// LeagueConfig holds the scoring tunables.
type LeagueConfig struct {
	// DailyMatchCap is the number of matches per calendar day that can earn
	// a player points.
	DailyMatchCap int
	// BoostPercent is the bonus applied to a boosted win, in percent.
	BoostPercent int
	// MonthlyBoostCap is the number of boost credits a player can consume
	// per calendar month.
	MonthlyBoostCap int
}
