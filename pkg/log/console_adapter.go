package log

import (
	"github.com/rs/zerolog"
)

// ConsoleAdapter writes journal events to a zerolog.Logger.
// Useful for development when you want to see events in the console.
type ConsoleAdapter struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// NewConsoleAdapter creates a ConsoleAdapter that writes at Debug level.
func NewConsoleAdapter(logger zerolog.Logger) *ConsoleAdapter {
	return &ConsoleAdapter{logger: logger, level: zerolog.DebugLevel}
}

// WithLevel returns a copy of the adapter that writes at level.
func (a *ConsoleAdapter) WithLevel(level zerolog.Level) *ConsoleAdapter {
	return &ConsoleAdapter{logger: a.logger, level: level}
}

// Log writes the event to the zerolog logger.
func (a *ConsoleAdapter) Log(event Event) {
	level := a.level
	if event.Error != nil {
		level = zerolog.ErrorLevel
	}

	e := a.logger.WithLevel(level).
		Str("id", event.ID).
		Str("pattern", event.Pattern.String()).
		Str("category", event.Category.String())

	if event.Source != "" {
		e = e.Str("source", event.Source)
	}

	switch {
	case event.Measurement != nil:
		e = e.Float64("temperature", event.Measurement.Temperature).
			Float64("humidity", event.Measurement.Humidity).
			Float64("pressure", event.Measurement.Pressure).
			Int("subscribers", event.Measurement.Subscribers)
	case event.Order != nil:
		e = e.Str("description", event.Order.Description).
			Float64("cost", event.Order.Cost).
			Int("layers", event.Order.Layers)
	case event.StateChange != nil:
		e = e.Str("entity", event.StateChange.Entity).
			Str("old_state", event.StateChange.OldState).
			Str("new_state", event.StateChange.NewState)
		if event.StateChange.Reason != "" {
			e = e.Str("reason", event.StateChange.Reason)
		}
	case event.Error != nil:
		e = e.Str("error_msg", event.Error.Message).
			Str("error_context", event.Error.Context)
	}

	e.Time("at", event.Timestamp).Msg("journal")
}

// Compile-time interface satisfaction check.
var _ Logger = (*ConsoleAdapter)(nil)
