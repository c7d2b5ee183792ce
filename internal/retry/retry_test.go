package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	clienterrors "github.com/youversion-community/go-youversion/internal/errors"
)

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, BaseBackoff: time.Millisecond, MaxInterval: 5 * time.Millisecond}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()
	calls := 0
	err := Do(context.Background(), fastConfig(3), func(context.Context) error {
		calls++
		if calls < 3 {
			return clienterrors.NewHTTPError(500, "", "versions")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestDo_FailsFastOnIrrecoverable(t *testing.T) {
	t.Parallel()
	calls := 0
	err := Do(context.Background(), fastConfig(5), func(context.Context) error {
		calls++
		return clienterrors.NewHTTPError(404, "", "versions")
	})
	if err == nil || calls != 1 {
		t.Fatalf("want single failing call, got calls=%d err=%v", calls, err)
	}
}

func TestDo_AttemptBudget(t *testing.T) {
	t.Parallel()
	calls := 0
	wantErr := errors.New("flaky")
	err := Do(context.Background(), fastConfig(4), func(context.Context) error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("want last error surfaced, got %v", err)
	}
	if calls != 4 {
		t.Fatalf("calls = %d, want 4", calls)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Do(ctx, fastConfig(3), func(context.Context) error {
		t.Fatal("op must not run with canceled context")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestDo_CancelDuringBackoff(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Config{MaxAttempts: 3, BaseBackoff: time.Hour, MaxInterval: time.Hour}, func(context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()
	c := Config{}.withDefaults()
	if c.MaxAttempts != 3 || c.BaseBackoff != 100*time.Millisecond || c.MaxInterval != 5*time.Second {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("YV_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("YV_RETRY_BASE_BACKOFF", "50ms")
	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.MaxAttempts != 7 || c.BaseBackoff != 50*time.Millisecond {
		t.Fatalf("unexpected config %+v", c)
	}
}
