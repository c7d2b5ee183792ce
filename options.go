package youversion

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/youversion-community/go-youversion/internal/retry"
)

// Option configures a Client during construction in New.
//
// Options run before the header transport wrapper is installed, so
// transport-related options (like debug logging) end up underneath the
// token wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithBaseURL points the client at a different API endpoint. Useful for
// tests and proxies. The value must be non-empty.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base URL must be non-empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client wholesale. The
// header wrapper is still installed on top of its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must be non-nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithLanguage selects the initial request language.
func WithLanguage(lang Language) Option {
	return func(c *Client) error {
		parsed, err := ParseLanguage(string(lang))
		if err != nil {
			return err
		}
		c.language = parsed
		return nil
	}
}

// WithRetryAttempts bounds how many times an idempotent request is tried
// before its last error is surfaced. Must be at least 1; 1 disables
// retries entirely.
func WithRetryAttempts(n int) Option {
	return func(c *Client) error {
		if n < 1 {
			return fmt.Errorf("retry attempts must be >= 1")
		}
		c.retry.MaxAttempts = n
		return nil
	}
}

// withRetryConfig installs a fully-formed retry configuration; used by
// NewFromEnv once the environment has been processed.
func withRetryConfig(cfg retry.Config) Option {
	return func(c *Client) error {
		c.retry = cfg
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is logged when enabled is true.
//
// The debug transport sits beneath the token wrapper. Do not enable this
// in production: dumps include headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
