package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/patterns-go/patterns/pkg/log"
)

// Stats holds aggregate statistics about a journal.
type Stats struct {
	TotalEvents      int
	EventsByPattern  map[log.Pattern]int
	EventsByCategory map[log.Category]int
	EventsBySource   map[string]int
	Orders           int
	Revenue          float64
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// RunStats analyzes the journal at path and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByPattern:  make(map[log.Pattern]int),
		EventsByCategory: make(map[log.Category]int),
		EventsBySource:   make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByPattern[event.Pattern]++
	s.EventsByCategory[event.Category]++
	if event.Source != "" {
		s.EventsBySource[event.Source]++
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Order != nil {
		s.Orders++
		s.Revenue += event.Order.Cost
	}
	if event.Error != nil {
		s.Errors++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Pattern Journal Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Pattern:")
	for _, p := range []log.Pattern{log.PatternObserver, log.PatternFactory, log.PatternSingleton, log.PatternDecorator} {
		if count := stats.EventsByPattern[p]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", p.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, c := range []log.Category{log.CategoryNotification, log.CategoryConstruction, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[c]; count > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", c.String()+":", count)
		}
	}

	if len(stats.EventsBySource) > 0 {
		sources := make([]string, 0, len(stats.EventsBySource))
		for s := range stats.EventsBySource {
			sources = append(sources, s)
		}
		sort.Strings(sources)

		fmt.Fprintln(w)
		fmt.Fprintf(w, "Sources: %d\n", len(sources))
		for _, s := range sources {
			fmt.Fprintf(w, "  %-18s %d\n", s, stats.EventsBySource[s])
		}
	}

	if stats.Orders > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Orders: %d (total $%.2f)\n", stats.Orders, stats.Revenue)
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
