package log

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event represents a journal entry produced by a pattern demonstration.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ID uniquely identifies the event (UUID).
	ID string `cbor:"2,keyasint"`

	// Pattern that produced the event.
	Pattern Pattern `cbor:"3,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// Source names the emitting component (e.g. "weather-station").
	Source string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Measurement *MeasurementEvent `cbor:"10,keyasint,omitempty"`
	Order       *OrderEvent       `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"`
}

// NewEvent returns an event stamped with the current time and a fresh ID.
func NewEvent(pattern Pattern, category Category, source string) Event {
	return Event{
		Timestamp: time.Now(),
		ID:        uuid.NewString(),
		Pattern:   pattern,
		Category:  category,
		Source:    source,
	}
}

// Pattern identifies the design pattern that emitted an event.
type Pattern uint8

const (
	// PatternObserver is the publish/subscribe registry.
	PatternObserver Pattern = 0
	// PatternFactory covers simple factory, factory method and abstract factory.
	PatternFactory Pattern = 1
	// PatternSingleton is the lazily initialized holder.
	PatternSingleton Pattern = 2
	// PatternDecorator is the layered wrapper chain.
	PatternDecorator Pattern = 3
)

// String returns the pattern name.
func (p Pattern) String() string {
	switch p {
	case PatternObserver:
		return "OBSERVER"
	case PatternFactory:
		return "FACTORY"
	case PatternSingleton:
		return "SINGLETON"
	case PatternDecorator:
		return "DECORATOR"
	default:
		return "UNKNOWN"
	}
}

// ParsePattern returns the pattern for a case-insensitive name.
func ParsePattern(s string) (Pattern, bool) {
	for _, p := range []Pattern{PatternObserver, PatternFactory, PatternSingleton, PatternDecorator} {
		if strings.EqualFold(p.String(), s) {
			return p, true
		}
	}
	return 0, false
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryNotification indicates a snapshot delivered to subscribers.
	CategoryNotification Category = 0
	// CategoryConstruction indicates a value was built.
	CategoryConstruction Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryNotification:
		return "NOTIFICATION"
	case CategoryConstruction:
		return "CONSTRUCTION"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory returns the category for a case-insensitive name.
func ParseCategory(s string) (Category, bool) {
	for _, c := range []Category{CategoryNotification, CategoryConstruction, CategoryState, CategoryError} {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}
	return 0, false
}

// MeasurementEvent captures one weather snapshot.
type MeasurementEvent struct {
	Temperature float64 `cbor:"1,keyasint"`
	Humidity    float64 `cbor:"2,keyasint"`
	Pressure    float64 `cbor:"3,keyasint"`

	// Subscribers is the number of observers notified.
	Subscribers int `cbor:"4,keyasint,omitempty"`
}

// OrderEvent captures a beverage assembled from a wrapper chain.
type OrderEvent struct {
	Description string  `cbor:"1,keyasint"`
	Cost        float64 `cbor:"2,keyasint"`

	// Layers is the number of wrappers around the base beverage.
	Layers int `cbor:"3,keyasint,omitempty"`
}

// StateChangeEvent captures lifecycle changes of stateful components.
type StateChangeEvent struct {
	// Entity being changed (e.g. "config", "database").
	Entity string `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures errors surfaced by a demonstration.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
