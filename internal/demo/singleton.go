package demo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/patterns-go/patterns/pkg/appconfig"
	"github.com/patterns-go/patterns/pkg/applog"
	"github.com/patterns-go/patterns/pkg/database"
	"github.com/patterns-go/patterns/pkg/log"
	"github.com/patterns-go/patterns/pkg/singleton"
)

// Singleton walks through the shared configuration, logger and database.
// Each run uses fresh holders so repeated runs start from scratch.
func Singleton(ctx context.Context, env Env) error {
	if err := databaseDemo(ctx, env); err != nil {
		return err
	}
	if err := configDemo(env); err != nil {
		return err
	}
	loggerDemo(env)
	workersDemo(env)
	return nil
}

func databaseDemo(ctx context.Context, env Env) error {
	env.heading("Database Singleton")

	holder := database.NewHolder()
	db1 := holder.Get(database.Options{
		DSN:     "file:patterns-demo?mode=memory&cache=shared",
		Logger:  env.Logger,
		Journal: env.journal(),
	})
	if err := db1.Connect(ctx); err != nil {
		return err
	}
	defer db1.Disconnect()

	db2 := holder.Get(database.Options{DSN: "file:ignored?mode=memory"})
	fmt.Fprintf(env.Out, "Are db1 and db2 the same instance? %t\n", db1 == db2)
	fmt.Fprintf(env.Out, "Connection string in use: %s\n", db2.DSN())

	if _, err := db1.Exec(ctx, "CREATE TABLE IF NOT EXISTS users (id INTEGER PRIMARY KEY, name TEXT)"); err != nil {
		return err
	}
	if _, err := db1.Exec(ctx, "INSERT OR REPLACE INTO users (id, name) VALUES (1, 'Result 1'), (2, 'Result 2')"); err != nil {
		return err
	}

	fmt.Fprintln(env.Out, "Execute a query")
	rows, err := db2.Query(ctx, "SELECT id, name FROM users ORDER BY id")
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Fprintf(env.Out, "  id=%v name=%v\n", row["id"], row["name"])
	}
	return nil
}

func configDemo(env Env) error {
	env.heading("Application Config Singleton")

	holder := appconfig.NewHolder()
	config1 := holder.Get(appconfig.Options{Logger: env.Logger})
	fmt.Fprintf(env.Out, "Default configuration: %s\n", formatSettings(config1.All()))

	config1.Set("theme", "dark")
	config1.Set("fontSize", 14)

	config2 := holder.Get()
	fmt.Fprintf(env.Out, "Updated configuration via config2: %s\n", formatSettings(config2.All()))

	config2.Set("language", "fr")
	theme, err := config1.Get("theme")
	if err != nil {
		return err
	}
	language, err := config1.Get("language")
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Theme setting via config1: %v\n", theme)
	fmt.Fprintf(env.Out, "Language setting via config1: %v\n", language)

	if _, err := config1.Get("missing"); err != nil {
		fmt.Fprintf(env.Out, "Lookup error: %v\n", err)
	}

	config1.Reset()
	fmt.Fprintf(env.Out, "After reset via config1, config2 shows: %s\n", formatSettings(config2.All()))

	recordState(env, "config", "CUSTOMIZED", "DEFAULTS", "reset")
	return nil
}

func loggerDemo(env Env) {
	env.heading("Logger Singleton")

	holder := applog.NewHolder()
	logger1 := holder.Get(applog.Options{Level: applog.LevelDebug, File: "app-debug.log"})
	logger2 := holder.Get()

	fmt.Fprintf(env.Out, "Are logger1 and logger2 the same instance? %t\n", logger1 == logger2)
	fmt.Fprintf(env.Out, "Writing to %s at level %s\n", logger2.File(), logger2.Level())

	logger1.Info("Application started")
	logger1.Debug("Loading configuration...")
	logger2.Warn("Configuration file not found, using defaults")
	logger2.Error("Failed to connect to service")

	_ = logger1.SetLevel(applog.LevelError)
	logger2.Debug("This debug message might not be logged due to log level")
	logger2.Error("This error will still be logged")

	for _, e := range logger1.Entries() {
		fmt.Fprintf(env.Out, "  #%d %s\n", e.Seq, e)
	}
	fmt.Fprintf(env.Out, "%d messages accepted\n", logger2.Count())
}

// counter is the shared value raced for by the workers demo.
type counter struct {
	mu    sync.Mutex
	value string
}

func workersDemo(env Env) {
	env.heading("Thread-Safe Singleton")

	var builds int
	holder := singleton.New(func(v string) *counter {
		builds++
		return &counter{value: v}
	}, "")

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := holder.Get(fmt.Sprintf("Value-%d", i))
			c.mu.Lock()
			old := c.value
			c.value = fmt.Sprintf("Changed by Worker-%d", i)
			c.mu.Unlock()
			results[i] = fmt.Sprintf("Worker-%d changed value from %q", i, old)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		fmt.Fprintln(env.Out, r)
	}
	p, _ := holder.Params()
	fmt.Fprintf(env.Out, "Instances built: %d (first value %q)\n", builds, p)
}

func recordState(env Env, entity, from, to, reason string) {
	e := log.NewEvent(log.PatternSingleton, log.CategoryState, entity)
	e.StateChange = &log.StateChangeEvent{Entity: entity, OldState: from, NewState: to, Reason: reason}
	env.journal().Log(e)
}

// formatSettings renders settings in sorted key order.
func formatSettings(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := "{"
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %v", k, m[k])
	}
	return s + "}"
}
