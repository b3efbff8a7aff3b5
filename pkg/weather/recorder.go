package weather

import (
	"github.com/patterns-go/patterns/pkg/log"
	"github.com/patterns-go/patterns/pkg/observer"
)

// RecorderSource is the journal source name used by Recorder.
const RecorderSource = "weather-station"

// Recorder journals every snapshot as a log.Event.
type Recorder struct {
	journal log.Logger
	station *Station
}

// NewRecorder creates a recorder writing to journal. If station is not nil,
// each event carries the number of observers registered on it.
func NewRecorder(journal log.Logger, station *Station) *Recorder {
	if journal == nil {
		journal = log.NoopLogger{}
	}
	return &Recorder{journal: journal, station: station}
}

// Update implements observer.Observer.
func (r *Recorder) Update(m Measurements) {
	event := log.NewEvent(log.PatternObserver, log.CategoryNotification, RecorderSource)
	if !m.RecordedAt.IsZero() {
		event.Timestamp = m.RecordedAt
	}

	payload := &log.MeasurementEvent{
		Temperature: m.Temperature,
		Humidity:    m.Humidity,
		Pressure:    m.Pressure,
	}
	if r.station != nil {
		payload.Subscribers = r.station.Observers()
	}
	event.Measurement = payload

	r.journal.Log(event)
}

// Compile-time interface satisfaction check.
var _ observer.Observer[Measurements] = (*Recorder)(nil)
