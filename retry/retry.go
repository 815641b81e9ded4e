// Package retry wraps remote calls with a per-attempt timeout, failure
// classification and exponential backoff. Classification and the backoff
// schedule are pure functions so they can be tested without timing or
// network involvement.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/hazyhaar/officepipe/oferr"
)

// Class is the failure class of an attempt.
type Class int

const (
	// Terminal failures propagate immediately without consuming an
	// attempt budget.
	Terminal Class = iota
	// Retryable failures are eligible for automatic re-attempt.
	Retryable
)

// StatusError is implemented by errors carrying an HTTP status code.
type StatusError interface {
	error
	HTTPStatus() int
}

// Classify maps an attempt error onto a failure class. Status codes 429,
// 500, 502, 503 and 504 and any network or timeout error are retryable;
// every other status (notably 403 and 404) is terminal, as is anything
// unrecognized.
func Classify(err error) Class {
	var se StatusError
	if errors.As(err, &se) {
		switch se.HTTPStatus() {
		case 429, 500, 502, 503, 504:
			return Retryable
		}
		return Terminal
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Retryable
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return Retryable
	}
	return Terminal
}

// Backoff returns the sleep before the attempt after attempt (0-based):
// 2^attempt seconds.
func Backoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Second
}

// Engine runs remote calls through the retry state machine.
type Engine struct {
	maxRetries int
	timeout    time.Duration
	logger     *slog.Logger

	// sleep is injectable for tests; defaults to a context-aware sleep.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates an Engine. maxRetries is the total attempt budget for
// retryable failures; timeout bounds each individual attempt.
func New(maxRetries int, timeout time.Duration, logger *slog.Logger) *Engine {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		maxRetries: maxRetries,
		timeout:    timeout,
		logger:     logger,
		sleep:      sleepCtx,
	}
}

// WithSleep replaces the inter-attempt sleep. Tests use this to verify the
// schedule without waiting.
func (e *Engine) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *Engine {
	e.sleep = sleep
	return e
}

// Do runs fn until it succeeds, fails terminally, or the attempt budget is
// exhausted. Terminal failures are returned unchanged so the caller can
// distinguish permission-denied from not-found; exhaustion yields a single
// stable APIError carrying the last underlying message.
func (e *Engine) Do(ctx context.Context, op string, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < e.maxRetries; attempt++ {
		err := e.attempt(ctx, fn)
		if err == nil {
			if attempt > 0 {
				e.logger.Debug("remote call succeeded after retry", "op", op, "attempt", attempt+1)
			}
			return nil
		}
		if Classify(err) == Terminal {
			e.logger.Error("remote call failed terminally", "op", op, "error", err)
			return err
		}
		lastErr = err
		if attempt < e.maxRetries-1 {
			wait := Backoff(attempt)
			e.logger.Warn("remote call failed, retrying",
				"op", op,
				"attempt", attempt+1,
				"max_retries", e.maxRetries,
				"backoff", wait,
				"error", err)
			if serr := e.sleep(ctx, wait); serr != nil {
				return lastErr
			}
		}
	}
	e.logger.Error("remote call exhausted retries", "op", op, "max_retries", e.maxRetries, "last_error", lastErr)
	return oferr.New(oferr.APIError,
		fmt.Sprintf("%s failed after %d attempts: %v", op, e.maxRetries, lastErr),
		map[string]any{"last_error": lastErr.Error(), "attempts": e.maxRetries})
}

// attempt runs fn in a short-lived worker so the wall-clock timeout holds
// even when fn ignores its context. The worker is scoped to this one call.
func (e *Engine) attempt(ctx context.Context, fn func(context.Context) error) error {
	if e.timeout <= 0 {
		return fn(ctx)
	}
	actx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn(actx) }()
	select {
	case err := <-done:
		return err
	case <-actx.Done():
		return actx.Err()
	}
}

// Call runs fn through the engine and returns its typed result.
func Call[T any](ctx context.Context, e *Engine, op string, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := e.Do(ctx, op, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
