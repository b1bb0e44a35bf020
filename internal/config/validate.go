package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/mgpustat/internal/errors"
)

// MinInterval is the shortest refresh accepted. Collection itself takes
// over a second because powermetrics samples for 1000ms.
const MinInterval = time.Second

// Validate checks the configuration and returns a structured error.
func Validate(cfg *Config) error {
	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval must be at least %d second, got %d", int(MinInterval/time.Second), int(cfg.Interval/time.Second)),
			"Pass a positive number of seconds, like -i 2.")
	}

	if cfg.CommandTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Command timeout must be positive, got %s", cfg.CommandTimeout),
			"This shouldn't happen - please report this bug!")
	}

	return nil
}
