package config

import "time"

// Flag and viper keys.
const (
	KeyInterval = "interval"
	KeyTimeout  = "command_timeout"
	KeyPlain    = "plain"
)

// Defaults applied when a flag isn't given.
const (
	DefaultIntervalSeconds = 1
	DefaultCommandTimeout  = 30 * time.Second
)

// Config is the resolved runtime configuration for one dashboard session.
type Config struct {
	// Interval is how long the dashboard waits after drawing a frame
	// before sampling again.
	Interval time.Duration `mapstructure:"interval"`

	// CommandTimeout bounds each diagnostic utility invocation.
	CommandTimeout time.Duration `mapstructure:"command_timeout"`

	// Plain forces the line-printing loop even on a terminal.
	Plain bool `mapstructure:"plain"`
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() *Config {
	return &Config{
		Interval:       DefaultIntervalSeconds * time.Second,
		CommandTimeout: DefaultCommandTimeout,
	}
}
