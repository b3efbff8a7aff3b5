package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patterns-go/patterns/pkg/decorate"
)

// errNetwork is the failure simulated by the unreliable call.
var errNetwork = errors.New("network connection failed")

// Functions walks through function middleware.
func Functions(ctx context.Context, env Env) error {
	env.heading("Function Decorators")

	report := func(name string, d time.Duration) {
		env.Logger.Info().Str("func", name).Dur("took", d).Msg("Timing")
	}

	var fib decorate.Func[int, int]
	fib = decorate.Chain(func(ctx context.Context, n int) (int, error) {
		if n <= 1 {
			return n, nil
		}
		a, err := fib(ctx, n-1)
		if err != nil {
			return 0, err
		}
		b, err := fib(ctx, n-2)
		return a + b, err
	}, decorate.Cached[int, int](env.Logger, "fibonacci"))

	top := decorate.Chain(fib,
		decorate.Logged[int, int](env.Logger, "fibonacci"),
		decorate.Timed[int, int]("fibonacci", report),
	)

	fmt.Fprintln(env.Out, "\n--- Fibonacci with caching ---")
	for _, label := range []string{"fibonacci(10)", "fibonacci(10) again"} {
		n, err := top(ctx, 10)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "%s = %d\n", label, n)
	}

	var factorial decorate.Func[int, int]
	factorial = decorate.Chain(func(ctx context.Context, n int) (int, error) {
		if n == 1 {
			return 1, nil
		}
		rest, err := factorial(ctx, n-1)
		return n * rest, err
	}, decorate.Validated[int, int]("factorial", func(n int) bool { return n > 0 }))

	legacy := decorate.Chain(factorial,
		decorate.Deprecated[int, int](env.Logger, "Use the optimized factorial function instead"))

	fmt.Fprintln(env.Out, "\n--- Factorial with validation ---")
	for _, n := range []int{5, -1} {
		v, err := legacy(ctx, n)
		if err != nil {
			fmt.Fprintf(env.Out, "Caught error: %v\n", err)
			continue
		}
		fmt.Fprintf(env.Out, "factorial(%d) = %d\n", n, v)
	}

	var attempts int
	call := decorate.Chain(func(_ context.Context, url string) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errNetwork
		}
		return "Data from " + url, nil
	}, decorate.Retry[string, string](env.Logger, 3, 10*time.Millisecond))

	fmt.Fprintln(env.Out, "\n--- Retry decorator ---")
	result, err := call(ctx, "https://example.com/api")
	if err != nil {
		fmt.Fprintf(env.Out, "Failed after retries: %v\n", err)
		return nil
	}
	fmt.Fprintf(env.Out, "Success after %d attempts: %s\n", attempts, result)
	return nil
}
