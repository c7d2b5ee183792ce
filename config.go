package youversion

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/youversion-community/go-youversion/internal/retry"
)

// Config groups the environment-driven client settings. Values are taken
// from environment variables with the prefix "YOUVERSION". Example:
// YOUVERSION_TOKEN=... YOUVERSION_LANGUAGE=es .
type Config struct {
	Token       string        `envconfig:"TOKEN" required:"true"`
	Language    string        `envconfig:"LANGUAGE" default:"en"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
}

// LoadConfig populates Config from environment variables (prefix YOUVERSION).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("YOUVERSION", &c)
}

// NewFromEnv constructs a Client from the environment: YOUVERSION_* for
// the client itself and YV_RETRY_* for the retry budget. Explicit options
// are applied after the environment and win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	retryCfg, err := retry.LoadConfig()
	if err != nil {
		return nil, err
	}

	lang, err := ParseLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithLanguage(lang),
		WithDebugLogging(cfg.Debug),
		withRetryConfig(retryCfg),
	}
	return New(cfg.Token, append(base, opts...)...)
}
