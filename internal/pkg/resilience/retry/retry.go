// Package retry provides a configurable retry mechanism for operations that may fail temporarily.
// It wraps the retry-go package from Avast and exposes a simple interface with functional
// options for customizing retry behavior.
//
// Delays grow exponentially from a base value and a random jitter is added on every attempt,
// so the delay before retry n is bounded by base*2^(n-1) + maxJitter.
//
// Basic usage:
//
//	r := retry.New()
//	err := r.Execute(ctx, func() error {
//	    return someOperation()
//	})
//
// With custom options:
//
//	r := retry.New(
//	    retry.WithAttempts(5),
//	    retry.WithDelay(2*time.Second),
//	    retry.WithMaxJitter(500*time.Millisecond),
//	    retry.WithOperation("eth_blockNumber"),
//	)
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gabapcia/txalert/internal/pkg/logger"

	retry "github.com/avast/retry-go/v4"
)

// maxShift caps the exponent used by the backoff so the shifted delay never overflows.
const maxShift = 30

// ErrRetriesExhausted is matched by errors.Is on every *ExhaustedError.
var ErrRetriesExhausted = errors.New("retries exhausted")

// ExhaustedError is returned when every configured attempt failed.
// It unwraps to both ErrRetriesExhausted and the error of the final attempt.
type ExhaustedError struct {
	Operation string
	Attempts  uint
	Err       error
}

func (e *ExhaustedError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("%s after %d attempts: %v", ErrRetriesExhausted, e.Attempts, e.Err)
	}

	return fmt.Sprintf("%s: %s after %d attempts: %v", e.Operation, ErrRetriesExhausted, e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() []error {
	return []error{ErrRetriesExhausted, e.Err}
}

// Unrecoverable marks err so that Execute stops retrying and returns it immediately.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

// Retry defines the interface for retry operations.
// Implementations of this interface provide a mechanism to execute operations
// with automatic retry logic in case of failures.
type Retry interface {
	// Execute runs the given function with configured retry logic.
	//
	// It returns nil as soon as the operation succeeds. When every attempt fails
	// it returns an *ExhaustedError wrapping the last failure. Errors marked with
	// Unrecoverable are returned as is, without further attempts. If the context
	// is done while waiting, the context error is returned.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts  uint          // maximum number of attempts, including the first one
	delay     time.Duration // base delay, doubled on each retry
	maxJitter time.Duration // upper bound (exclusive) of the random jitter added to each delay
	maxDelay  time.Duration // hard cap on a single delay, zero disables it
	operation string        // name used in logs and errors
}

// Option defines a functional option for configuring the retry mechanism.
// Options are applied in the order they are provided to New().
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates and returns a Retry implementation configured with
// the provided options. If no options are given, default values are used.
//
// Default configuration:
//   - attempts:  5 (1 initial attempt + 4 retries)
//   - delay:     1 second base, doubled on every retry
//   - maxJitter: 1 second
//   - maxDelay:  60 seconds
func New(opts ...Option) Retry {
	cfg := config{
		attempts:  5,
		delay:     1 * time.Second,
		maxJitter: 1 * time.Second,
		maxDelay:  60 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.attempts == 0 {
		cfg.attempts = 1
	}

	return &retrier{
		cfg: cfg,
	}
}

// backoff returns a retry-go delay function computing base*2^(n-1) plus a
// uniformly distributed jitter in [0, maxJitter).
func backoff(base, maxJitter time.Duration) retry.DelayTypeFunc {
	return func(n uint, _ error, _ *retry.Config) time.Duration {
		shift := n
		if shift > 0 {
			shift--
		}
		if shift > maxShift {
			shift = maxShift
		}

		d := base << shift
		if maxJitter > 0 {
			d += time.Duration(rand.Int64N(int64(maxJitter)))
		}

		return d
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	var calls uint

	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.DelayType(backoff(r.cfg.delay, r.cfg.maxJitter)),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return ctx.Err() == nil && retry.IsRecoverable(err)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn(ctx, "attempt failed",
				"operation", r.cfg.operation,
				"attempt", n+1,
				"maxAttempts", r.cfg.attempts,
				"error", err,
			)
		}),
	}

	err := retry.Do(func() error {
		calls++
		return operation()
	}, options...)
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if calls < r.cfg.attempts {
		return err
	}

	return &ExhaustedError{
		Operation: r.cfg.operation,
		Attempts:  calls,
		Err:       err,
	}
}

// Value runs operation through r and returns its result. It is a generic
// convenience for operations that produce a value.
func Value[T any](ctx context.Context, r Retry, operation func() (T, error)) (T, error) {
	var result T

	err := r.Execute(ctx, func() error {
		v, err := operation()
		if err != nil {
			return err
		}

		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// WithAttempts sets the maximum number of attempts (including the initial attempt).
// Default: 5.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay used before the first retry. Each following
// retry doubles it.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxJitter sets the upper bound of the random jitter added to every delay.
// A zero value disables jitter.
// Default: 1 second.
func WithMaxJitter(d time.Duration) Option {
	return func(c *config) {
		c.maxJitter = d
	}
}

// WithMaxDelay caps any single delay. Zero disables the cap.
// Default: 60 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithOperation names the wrapped operation in logs and in *ExhaustedError.
func WithOperation(name string) Option {
	return func(c *config) {
		c.operation = name
	}
}
