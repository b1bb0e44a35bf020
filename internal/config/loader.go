package config

import (
	"fmt"
	"math"
	"time"

	"github.com/rileyhilliard/mgpustat/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Load resolves the configuration from the command's flag set.
// Only flags are consulted; mgpustat has no config file.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyInterval, DefaultIntervalSeconds)
	v.SetDefault(KeyTimeout, DefaultCommandTimeout)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't read command-line flags",
				"This shouldn't happen - please report this bug!")
		}
	}

	return parseConfig(v)
}

// MaxIntervalSeconds is the longest interval that fits in a time.Duration.
const MaxIntervalSeconds = math.MaxInt64 / int64(time.Second)

// parseConfig converts the resolved viper values into a validated Config.
func parseConfig(v *viper.Viper) (*Config, error) {
	seconds, err := intervalSeconds(v)
	if err != nil {
		return nil, err
	}
	if int64(seconds) > MaxIntervalSeconds || int64(seconds) < -MaxIntervalSeconds {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval of %d seconds is out of range", seconds),
			fmt.Sprintf("Use a whole number of seconds between 1 and %d.", MaxIntervalSeconds))
	}

	cfg := &Config{
		Interval:       time.Duration(seconds) * time.Second,
		CommandTimeout: v.GetDuration(KeyTimeout),
		Plain:          v.GetBool(KeyPlain),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// intervalSeconds reads the interval as a whole number of seconds.
// viper's GetInt silently turns junk into zero, so the raw value is checked first.
func intervalSeconds(v *viper.Viper) (int, error) {
	s, ok := v.Get(KeyInterval).(string)
	if !ok {
		return v.GetInt(KeyInterval), nil
	}
	n := v.GetInt(KeyInterval)
	if n == 0 && s != "0" {
		return 0, errors.New(errors.ErrConfig,
			"'"+s+"' isn't a whole number of seconds",
			"Use something like -i 2.")
	}
	return n, nil
}
