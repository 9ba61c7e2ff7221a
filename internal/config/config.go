// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Default configuration values.
const (
	defaultAddr             = ":9080"
	defaultMaxUploadBytes   = 8 << 20 // 8 MiB per uploaded roster file
	defaultMaxLeaderboard   = 100
	defaultResultTTLMinutes = 30
	defaultMaxStoredRuns    = 1000
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxUploadBytes bounds the size of one uploaded roster file.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// MaxLeaderboardLimit caps GET .../leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// ResultTTLMinutes sets how long stored runs stay retrievable.
	ResultTTLMinutes int `koanf:"result_ttl_minutes"`

	// MaxStoredRuns caps the number of runs kept in memory.
	MaxStoredRuns int `koanf:"max_stored_runs"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                defaultAddr,
		MaxUploadBytes:      defaultMaxUploadBytes,
		MaxLeaderboardLimit: defaultMaxLeaderboard,
		ResultTTLMinutes:    defaultResultTTLMinutes,
		MaxStoredRuns:       defaultMaxStoredRuns,
	}
}
