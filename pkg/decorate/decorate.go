package decorate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidArgument is returned by Validated when the predicate rejects
// the argument.
var ErrInvalidArgument = errors.New("decorate: invalid argument")

// Func is a decoratable function.
type Func[A, R any] func(ctx context.Context, arg A) (R, error)

// Middleware wraps a Func.
type Middleware[A, R any] func(next Func[A, R]) Func[A, R]

// Chain wraps f in mws. mws[0] is the outermost layer.
func Chain[A, R any](f Func[A, R], mws ...Middleware[A, R]) Func[A, R] {
	for i := len(mws) - 1; i >= 0; i-- {
		f = mws[i](f)
	}
	return f
}

// Logged logs the start and end of every call.
func Logged[A, R any](logger zerolog.Logger, name string) Middleware[A, R] {
	return func(next Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (R, error) {
			logger.Info().Str("func", name).Interface("arg", arg).Msg("Starting execution")
			r, err := next(ctx, arg)
			level := zerolog.InfoLevel
			if err != nil {
				level = zerolog.WarnLevel
			}
			logger.WithLevel(level).Err(err).Str("func", name).Msg("Finished execution")
			return r, err
		}
	}
}

// Timed reports the duration of every call to observe.
func Timed[A, R any](name string, observe func(name string, d time.Duration)) Middleware[A, R] {
	return func(next Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (R, error) {
			start := time.Now()
			r, err := next(ctx, arg)
			observe(name, time.Since(start))
			return r, err
		}
	}
}

// Cached memoizes successful results per argument. Errors are not cached.
// The cache is safe for concurrent use; concurrent misses for the same
// argument may both compute.
func Cached[A comparable, R any](logger zerolog.Logger, name string) Middleware[A, R] {
	return func(next Func[A, R]) Func[A, R] {
		var (
			mu    sync.RWMutex
			cache = make(map[A]R)
		)
		return func(ctx context.Context, arg A) (R, error) {
			mu.RLock()
			r, ok := cache[arg]
			mu.RUnlock()
			if ok {
				logger.Debug().Str("func", name).Interface("arg", arg).Msg("Using cached result")
				return r, nil
			}

			logger.Debug().Str("func", name).Interface("arg", arg).Msg("Computing result")
			r, err := next(ctx, arg)
			if err != nil {
				return r, err
			}

			mu.Lock()
			cache[arg] = r
			mu.Unlock()
			return r, nil
		}
	}
}

// Retry calls the function up to attempts times, waiting delay between
// failed attempts. It stops early when ctx is done and returns the last
// error otherwise.
func Retry[A, R any](logger zerolog.Logger, attempts int, delay time.Duration) Middleware[A, R] {
	if attempts < 1 {
		attempts = 1
	}
	return func(next Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (R, error) {
			var (
				r   R
				err error
			)
			for attempt := 1; attempt <= attempts; attempt++ {
				r, err = next(ctx, arg)
				if err == nil || attempt == attempts {
					return r, err
				}

				logger.Warn().Err(err).
					Int("attempt", attempt).
					Dur("delay", delay).
					Msg("Attempt failed, retrying")

				timer := time.NewTimer(delay)
				select {
				case <-ctx.Done():
					timer.Stop()
					return r, fmt.Errorf("retry aborted after %d attempts: %w", attempt, ctx.Err())
				case <-timer.C:
				}
			}
			return r, err
		}
	}
}

// Validated rejects arguments for which valid returns false with an error
// wrapping ErrInvalidArgument.
func Validated[A, R any](name string, valid func(A) bool) Middleware[A, R] {
	return func(next Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (R, error) {
			if !valid(arg) {
				var zero R
				return zero, fmt.Errorf("%w for %s: %v", ErrInvalidArgument, name, arg)
			}
			return next(ctx, arg)
		}
	}
}

// Deprecated logs msg as a warning on every call.
func Deprecated[A, R any](logger zerolog.Logger, msg string) Middleware[A, R] {
	return func(next Func[A, R]) Func[A, R] {
		return func(ctx context.Context, arg A) (R, error) {
			logger.Warn().Msg(msg)
			return next(ctx, arg)
		}
	}
}
