// Package demo contains the narrated walkthroughs run by the patterns command.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/patterns-go/patterns/pkg/log"
)

// Env is what every walkthrough writes to.
type Env struct {
	// Out receives the narrated output.
	Out io.Writer

	// Logger receives operational messages.
	Logger zerolog.Logger

	// Journal receives pattern events. Nil disables journaling.
	Journal log.Logger
}

func (e Env) journal() log.Logger {
	if e.Journal == nil {
		return log.NoopLogger{}
	}
	return e.Journal
}

func (e Env) heading(title string) {
	fmt.Fprintf(e.Out, "\n=== %s ===\n", title)
}

// Runner is one named walkthrough.
type Runner struct {
	Name  string
	Short string
	Run   func(ctx context.Context, env Env) error
}

// Runners returns every walkthrough in presentation order.
func Runners() []Runner {
	return []Runner{
		{Name: "observer", Short: "Weather station publishing to subscribers", Run: Observer},
		{Name: "factory", Short: "Simple factory, factory method and families", Run: Factory},
		{Name: "singleton", Short: "Shared configuration, logger and database", Run: Singleton},
		{Name: "decorator", Short: "Coffee orders built from wrapper layers", Run: Decorator},
		{Name: "functions", Short: "Function middleware: log, time, cache, retry", Run: Functions},
	}
}

// All runs every walkthrough in order and stops at the first error.
func All(ctx context.Context, env Env) error {
	for _, r := range Runners() {
		if err := r.Run(ctx, env); err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
	}
	return nil
}
