package weather

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/patterns-go/patterns/pkg/observer"
)

// Measurements is the snapshot delivered to observers.
type Measurements struct {
	// Temperature in degrees Celsius.
	Temperature float64

	// Humidity in percent.
	Humidity float64

	// Pressure in hPa.
	Pressure float64

	// RecordedAt is when SetMeasurements was called.
	RecordedAt time.Time
}

// Station is the subject publishing weather snapshots.
// It is safe for concurrent use.
type Station struct {
	registry *observer.Registry[Measurements]
	logger   zerolog.Logger

	// now is overridable for tests.
	now func() time.Time

	mu      sync.Mutex
	current Measurements
}

// NewStation creates a station with no observers and zeroed readings.
func NewStation(logger zerolog.Logger) *Station {
	s := &Station{
		registry: observer.NewRegistry[Measurements](),
		logger:   logger.With().Str("component", "weather-station").Logger(),
		now:      time.Now,
	}
	return s
}

// Register adds an observer. Registering the same observer twice is a no-op.
func (s *Station) Register(o observer.Observer[Measurements]) {
	if added, err := s.registry.TryRegister(o); err != nil {
		s.logger.Warn().Err(err).Msg("observer rejected")
	} else if added {
		s.logger.Debug().Int("observers", s.registry.Len()).Msg("observer registered")
	}
}

// Remove deletes an observer. Removing an absent observer is a no-op.
func (s *Station) Remove(o observer.Observer[Measurements]) {
	if s.registry.Remove(o) {
		s.logger.Debug().Int("observers", s.registry.Len()).Msg("observer removed")
	}
}

// NotifyObservers sends the current snapshot to every observer in
// registration order. A panicking observer stops delivery to the observers
// after it and the panic reaches the caller.
func (s *Station) NotifyObservers() {
	snapshot := s.Snapshot()
	s.logger.Debug().
		Float64("temperature", snapshot.Temperature).
		Float64("humidity", snapshot.Humidity).
		Float64("pressure", snapshot.Pressure).
		Int("observers", s.registry.Len()).
		Msg("notifying observers")
	s.registry.Notify(snapshot)
}

// SetMeasurements replaces the readings and notifies all observers.
func (s *Station) SetMeasurements(temperature, humidity, pressure float64) {
	s.mu.Lock()
	s.current = Measurements{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
		RecordedAt:  s.now(),
	}
	s.mu.Unlock()

	s.NotifyObservers()
}

// Snapshot returns a copy of the latest readings.
func (s *Station) Snapshot() Measurements {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Temperature returns the latest temperature.
func (s *Station) Temperature() float64 { return s.Snapshot().Temperature }

// Humidity returns the latest humidity.
func (s *Station) Humidity() float64 { return s.Snapshot().Humidity }

// Pressure returns the latest pressure.
func (s *Station) Pressure() float64 { return s.Snapshot().Pressure }

// Observers returns the number of registered observers.
func (s *Station) Observers() int {
	return s.registry.Len()
}

// Compile-time interface satisfaction check.
var _ observer.Subject[Measurements] = (*Station)(nil)
