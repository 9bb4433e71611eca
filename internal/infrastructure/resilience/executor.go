package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrorClassification tells the executor what to do with a failed call.
// Retryable gates the backoff loop, RecordFailure gates the breaker counters;
// an auditor-facing flow that must not double-classify photos sets neither.
type ErrorClassification struct {
	Retryable     bool
	RecordFailure bool
}

// ErrorClassifier inspects one error from the guarded call.
type ErrorClassifier func(err error) ErrorClassification

// Executor wraps outbound calls (vision API, queue publish) with bounded
// retries and a per-operation circuit breaker. The default policy performs a
// single attempt; re-running an analysis is an operator action.
type Executor struct {
	cfg Config

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[struct{}]
}

func NewExecutor(cfg Config) *Executor {
	return &Executor{
		cfg:      cfg.normalize(),
		breakers: make(map[string]*gobreaker.CircuitBreaker[struct{}]),
	}
}

// Execute runs fn under the operation's breaker and retry policy. The
// classifier decides per error whether to retry and whether the breaker
// counts it; a nil classifier treats every error as final.
func (e *Executor) Execute(
	ctx context.Context,
	operation string,
	fn func(context.Context) error,
	classifier ErrorClassifier,
) error {
	if fn == nil {
		return fmt.Errorf("resilience: nil operation callback")
	}
	op := strings.TrimSpace(operation)
	if op == "" {
		op = "unknown"
	}
	if classifier == nil {
		classifier = func(error) ErrorClassification {
			return ErrorClassification{RecordFailure: true}
		}
	}

	if !e.cfg.BreakerEnabled {
		return e.attempt(ctx, op, fn, classifier)
	}
	_, err := e.breakerFor(op, classifier).Execute(func() (struct{}, error) {
		return struct{}{}, e.attempt(ctx, op, fn, classifier)
	})
	return err
}

func (e *Executor) attempt(
	ctx context.Context,
	operation string,
	fn func(context.Context) error,
	classifier ErrorClassifier,
) error {
	delay := e.cfg.RetryInitialBackoff

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if n >= e.cfg.RetryMaxAttempts || !classifier(err).Retryable {
			return err
		}

		if delay > e.cfg.RetryMaxBackoff {
			delay = e.cfg.RetryMaxBackoff
		}
		slog.Warn("retrying operation",
			"operation", operation,
			"attempt", n,
			"max_attempts", e.cfg.RetryMaxAttempts,
			"backoff", delay.String(),
			"error", err,
		)
		if waitErr := sleepCtx(ctx, delay); waitErr != nil {
			return err
		}
		delay = time.Duration(float64(delay) * e.cfg.RetryMultiplier)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (e *Executor) breakerFor(operation string, classifier ErrorClassifier) *gobreaker.CircuitBreaker[struct{}] {
	e.mu.Lock()
	defer e.mu.Unlock()

	if breaker, ok := e.breakers[operation]; ok {
		return breaker
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        operation,
		MaxRequests: e.cfg.BreakerHalfOpenMaxCalls,
		Timeout:     e.cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < e.cfg.BreakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= e.cfg.BreakerFailureRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !classifier(err).RecordFailure
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("breaker state change", "operation", name, "from", from.String(), "to", to.String())
		},
	})
	e.breakers[operation] = breaker
	return breaker
}

// IsCircuitOpen reports whether err came from an open or saturated breaker.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
