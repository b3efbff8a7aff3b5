package weather

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/patterns-go/patterns/pkg/log"
)

type stubObserver struct{ mock.Mock }

func (s *stubObserver) Update(m Measurements) { s.Called(m) }

// journal captures logged events.
type journal struct {
	mu     sync.Mutex
	events []log.Event
}

func (j *journal) Log(e log.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, e)
}

func readings(temp, humidity, pressure float64) func(Measurements) bool {
	return func(m Measurements) bool {
		return m.Temperature == temp && m.Humidity == humidity && m.Pressure == pressure
	}
}

func newTestStation() *Station {
	s := NewStation(zerolog.Nop())
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	return s
}

func TestStationFanOut(t *testing.T) {
	station := newTestStation()
	a, b, c := &stubObserver{}, &stubObserver{}, &stubObserver{}

	a.On("Update", mock.MatchedBy(readings(27, 65, 1013))).Once()
	b.On("Update", mock.MatchedBy(readings(27, 65, 1013))).Once()
	c.On("Update", mock.MatchedBy(readings(27, 65, 1013))).Once()
	a.On("Update", mock.MatchedBy(readings(26, 75, 1010))).Once()
	b.On("Update", mock.MatchedBy(readings(26, 75, 1010))).Once()

	station.Register(a)
	station.Register(b)
	station.Register(c)
	station.SetMeasurements(27, 65, 1013)

	station.Remove(c)
	station.SetMeasurements(26, 75, 1010)

	a.AssertExpectations(t)
	b.AssertExpectations(t)
	c.AssertExpectations(t)
	c.AssertNumberOfCalls(t, "Update", 1)
}

func TestStationNotifiesWithoutChange(t *testing.T) {
	station := newTestStation()
	stats := NewStatistics(&bytes.Buffer{})
	station.Register(stats)

	station.SetMeasurements(20, 50, 1000)
	station.SetMeasurements(20, 50, 1000)

	assert.Equal(t, 2, stats.Count())
}

func TestStationSnapshot(t *testing.T) {
	station := newTestStation()
	station.SetMeasurements(27, 65, 1013)

	snap := station.Snapshot()
	assert.Equal(t, 27.0, station.Temperature())
	assert.Equal(t, 65.0, station.Humidity())
	assert.Equal(t, 1013.0, station.Pressure())
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), snap.RecordedAt)
}

func TestStationNoObservers(t *testing.T) {
	station := newTestStation()
	assert.NotPanics(t, func() { station.SetMeasurements(1, 2, 3) })
	assert.Equal(t, 0, station.Observers())
}

func TestStationDuplicateRegistration(t *testing.T) {
	station := newTestStation()
	panel := NewPanel("Lobby", &bytes.Buffer{})

	station.Register(panel)
	station.Register(panel)
	station.Remove(NewPanel("Lobby", &bytes.Buffer{}))

	assert.Equal(t, 1, station.Observers())

	station.SetMeasurements(1, 2, 3)
	assert.Equal(t, 1, panel.Updates())
}

func TestStationIgnoresNilPanel(t *testing.T) {
	station := newTestStation()
	var missing *Panel

	station.Register(missing)
	assert.Equal(t, 0, station.Observers())
	assert.NotPanics(t, func() { station.SetMeasurements(27, 65, 1013) })
}

func TestStationLogsOnlyActualRemovals(t *testing.T) {
	var logs bytes.Buffer
	station := NewStation(zerolog.New(&logs).Level(zerolog.DebugLevel))
	panel := NewPanel("Lobby", &bytes.Buffer{})
	station.Register(panel)

	logs.Reset()
	station.Remove(NewPanel("Hall", &bytes.Buffer{}))
	assert.NotContains(t, logs.String(), "observer removed")

	station.Remove(panel)
	assert.Contains(t, logs.String(), "observer removed")
	assert.Equal(t, 0, station.Observers())
}

func TestCurrentConditions(t *testing.T) {
	var out bytes.Buffer
	d := NewCurrentConditions(&out)

	d.Update(Measurements{Temperature: 27, Humidity: 65, Pressure: 1013})

	assert.Equal(t, "Current conditions: 27°C and 65% humidity\n", out.String())
	assert.Equal(t, 27.0, d.Last().Temperature)
}

func TestStatisticsAverages(t *testing.T) {
	var out bytes.Buffer
	d := NewStatistics(&out)

	temp, humidity, pressure := d.Averages()
	assert.Zero(t, temp+humidity+pressure)

	d.Update(Measurements{Temperature: 27, Humidity: 65, Pressure: 1013})
	d.Update(Measurements{Temperature: 28, Humidity: 70, Pressure: 1014})

	temp, humidity, pressure = d.Averages()
	assert.InDelta(t, 27.5, temp, 1e-9)
	assert.InDelta(t, 67.5, humidity, 1e-9)
	assert.InDelta(t, 1013.5, pressure, 1e-9)
	assert.Contains(t, out.String(), "Avg temperature: 27.5°C, Avg humidity: 67.5%, Avg pressure: 1013.5 hPa")
}

func TestForecastTrend(t *testing.T) {
	tests := []struct {
		name      string
		pressures []float64
		want      string
	}{
		{"first reading", []float64{1013}, ForecastImproving},
		{"rising", []float64{1013, 1014}, ForecastImproving},
		{"steady", []float64{1013, 1013}, ForecastSteady},
		{"falling", []float64{1014, 1010}, ForecastWorsening},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			d := NewForecast(&out)
			for _, p := range tt.pressures {
				d.Update(Measurements{Pressure: p})
			}
			assert.Equal(t, tt.want, d.Message())
			assert.True(t, strings.HasSuffix(out.String(), "Forecast: "+tt.want+"\n"))
		})
	}
}

func TestPanelOutput(t *testing.T) {
	var out bytes.Buffer
	p := NewPanel("Mobile", &out)

	p.Update(Measurements{Temperature: 22.5, Humidity: 40, Pressure: 1005})

	assert.Equal(t, "Mobile", p.Name())
	assert.Equal(t, "\nMobile Display:\nTemperature: 22.5°C\nHumidity: 40%\nPressure: 1005 hPa\n", out.String())
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		m    Measurements
		want []string
	}{
		{"calm", Measurements{Temperature: 20, Humidity: 50, Pressure: 1013}, nil},
		{"heat", Measurements{Temperature: 31, Humidity: 50, Pressure: 1013}, []string{WarnHeat}},
		{"boundary heat", Measurements{Temperature: 30, Humidity: 50, Pressure: 1013}, nil},
		{"frost", Measurements{Temperature: -1, Humidity: 50, Pressure: 1013}, []string{WarnFrost}},
		{"humid", Measurements{Temperature: 20, Humidity: 95, Pressure: 1013}, []string{WarnHighHumidity}},
		{"dry", Measurements{Temperature: 20, Humidity: 10, Pressure: 1013}, []string{WarnLowHumidity}},
		{"storm", Measurements{Temperature: 20, Humidity: 50, Pressure: 960}, []string{WarnStorm}},
		{"high pressure", Measurements{Temperature: 20, Humidity: 50, Pressure: 1045}, []string{WarnHighPressure}},
		{"everything", Measurements{Temperature: 35, Humidity: 95, Pressure: 950},
			[]string{WarnHeat, WarnHighHumidity, WarnStorm}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.m))
		})
	}
}

func TestAlertsPrintsOnlyWithWarnings(t *testing.T) {
	var out bytes.Buffer
	a := NewAlerts(&out)

	a.Update(Measurements{Temperature: 20, Humidity: 50, Pressure: 1013})
	assert.Empty(t, out.String())
	assert.Empty(t, a.Warnings())

	a.Update(Measurements{Temperature: -5, Humidity: 50, Pressure: 1013})
	assert.Equal(t, "\nWEATHER ALERTS:\n - "+WarnFrost+"\n", out.String())
	assert.Equal(t, []string{WarnFrost}, a.Warnings())
}

func TestRecorderJournalsSnapshots(t *testing.T) {
	station := newTestStation()
	j := &journal{}
	station.Register(NewCurrentConditions(&bytes.Buffer{}))
	station.Register(NewRecorder(j, station))

	station.SetMeasurements(27, 65, 1013)

	require.Len(t, j.events, 1)
	e := j.events[0]
	assert.Equal(t, log.PatternObserver, e.Pattern)
	assert.Equal(t, log.CategoryNotification, e.Category)
	assert.Equal(t, RecorderSource, e.Source)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), e.Timestamp)
	require.NotNil(t, e.Measurement)
	assert.Equal(t, log.MeasurementEvent{Temperature: 27, Humidity: 65, Pressure: 1013, Subscribers: 2}, *e.Measurement)
}

func TestRecorderNilJournal(t *testing.T) {
	r := NewRecorder(nil, nil)
	assert.NotPanics(t, func() { r.Update(Measurements{Temperature: 1}) })
}

func TestObserverPanicStopsDelivery(t *testing.T) {
	station := newTestStation()
	bad := &stubObserver{}
	bad.On("Update", mock.Anything).Panic("display failure")
	after := NewStatistics(&bytes.Buffer{})

	station.Register(bad)
	station.Register(after)

	assert.PanicsWithValue(t, "display failure", func() { station.SetMeasurements(1, 2, 3) })
	assert.Equal(t, 0, after.Count())
	assert.Equal(t, 2, station.Observers())
}
