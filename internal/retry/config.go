package retry

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups the retry tunables. Values are taken from environment
// variables with the prefix "YV_RETRY". Example: YV_RETRY_MAX_ATTEMPTS=5 .
type Config struct {
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"3"`
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"5s"`
}

// LoadConfig populates Config from environment variables (prefix YV_RETRY).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("YV_RETRY", &c)
}

// withDefaults fills zero values so a zero Config is usable.
func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = 100 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 5 * time.Second
	}
	return c
}
