// Package commands implements the journal subcommands of the patterns CLI.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/patterns-go/patterns/pkg/log"
)

// FilterOptions holds the raw flag values used to select journal events.
type FilterOptions struct {
	Pattern   string
	Category  string
	Source    string
	TimeStart string
	TimeEnd   string
}

// Filter converts the flag values into a journal filter.
func (o FilterOptions) Filter() (log.Filter, error) {
	filter := log.Filter{Source: o.Source}

	if o.Pattern != "" {
		p, err := ParsePatternFlag(o.Pattern)
		if err != nil {
			return filter, err
		}
		filter.Pattern = &p
	}
	if o.Category != "" {
		c, err := ParseCategoryFlag(o.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	return filter, nil
}

// ParsePatternFlag parses a pattern name (case-insensitive).
func ParsePatternFlag(s string) (log.Pattern, error) {
	p, ok := log.ParsePattern(strings.TrimSpace(s))
	if !ok {
		return 0, fmt.Errorf("invalid pattern: %s (must be observer, factory, singleton, or decorator)", s)
	}
	return p, nil
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.TrimSpace(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be notification, construction, state, or error)", s)
	}
	return c, nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [%s] %s %s %s\n", ts, shortenID(event.ID), event.Pattern, event.Category, event.Source)

	switch {
	case event.Measurement != nil:
		m := event.Measurement
		fmt.Fprintf(w, "  Temperature: %g°C  Humidity: %g%%  Pressure: %g hPa\n", m.Temperature, m.Humidity, m.Pressure)
		if m.Subscribers > 0 {
			fmt.Fprintf(w, "  Subscribers: %d\n", m.Subscribers)
		}
	case event.Order != nil:
		fmt.Fprintf(w, "  Order: %s\n", event.Order.Description)
		fmt.Fprintf(w, "  Cost: $%.2f (%d layers)\n", event.Order.Cost, event.Order.Layers)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of the event ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity)
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// RunView writes every event of the journal at path that matches filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
