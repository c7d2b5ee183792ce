// Package retry runs idempotent operations under bounded exponential
// backoff. Only GET requests flow through it, so replaying a failed
// attempt is always safe.
package retry

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	clienterrors "github.com/youversion-community/go-youversion/internal/errors"
)

// Do invokes op until it succeeds, returns an irrecoverable error, or the
// attempt budget is spent. Waits between attempts grow exponentially from
// cfg.BaseBackoff up to cfg.MaxInterval; ctx cancellation interrupts the
// wait.
func Do(ctx context.Context, cfg Config, op func(context.Context) error) error {
	cfg = cfg.withDefaults()

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = cfg.MaxInterval
	exp.Reset()

	var err error
	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = op(ctx); err == nil {
			return nil
		}
		if clienterrors.IsIrrecoverable(err) {
			return err
		}
		if attempt >= cfg.MaxAttempts {
			return err
		}

		select {
		case <-time.After(exp.NextBackOff()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
