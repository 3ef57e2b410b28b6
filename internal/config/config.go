package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Audio     AudioConfig     `mapstructure:"audio" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Path is the SQLite database file path. The special value ":memory:"
	// opens an ephemeral in-memory database.
	Path string `mapstructure:"path" validate:"required"`
}

// SchedulerConfig contains optional overrides for the review scheduling
// parameters. A zero value means "use the built-in default", so an empty
// section leaves the scheduler untouched.
type SchedulerConfig struct {
	MinEaseFactor      float64 `mapstructure:"min_ease_factor" validate:"omitempty,gt=0"`
	MaxEaseFactor      float64 `mapstructure:"max_ease_factor" validate:"omitempty,gt=0"`
	KnowEaseBonus      float64 `mapstructure:"know_ease_bonus" validate:"omitempty,gt=0"`
	VagueEasePenalty   float64 `mapstructure:"vague_ease_penalty" validate:"omitempty,gt=0"`
	ForgetEasePenalty  float64 `mapstructure:"forget_ease_penalty" validate:"omitempty,gt=0"`
	FirstKnowInterval  int     `mapstructure:"first_know_interval" validate:"omitempty,gt=0"`
	SecondKnowInterval int     `mapstructure:"second_know_interval" validate:"omitempty,gt=0"`
	MasteredInterval   int     `mapstructure:"mastered_interval" validate:"omitempty,gt=0"`
}

// AudioConfig contains settings for the pronunciation audio proxy.
type AudioConfig struct {
	// UpstreamURL is the dictionary voice endpoint queried for words that
	// are not yet in the local cache.
	UpstreamURL string `mapstructure:"upstream_url" validate:"required,url"`
	// FetchTimeoutSeconds bounds a single upstream request.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" validate:"required,gt=0"`
}
