package weather

import (
	"fmt"
	"io"
	"sync"

	"github.com/patterns-go/patterns/pkg/observer"
)

// Forecast messages.
const (
	ForecastImproving = "Improving weather on the way!"
	ForecastSteady    = "More of the same"
	ForecastWorsening = "Watch out for cooler, rainy weather"
)

// CurrentConditions prints the latest temperature and humidity.
type CurrentConditions struct {
	out io.Writer

	mu   sync.Mutex
	last Measurements
}

// NewCurrentConditions creates a display writing to out.
func NewCurrentConditions(out io.Writer) *CurrentConditions {
	return &CurrentConditions{out: out}
}

// Update implements observer.Observer.
func (d *CurrentConditions) Update(m Measurements) {
	d.mu.Lock()
	d.last = m
	d.mu.Unlock()

	fmt.Fprintf(d.out, "Current conditions: %g°C and %g%% humidity\n", m.Temperature, m.Humidity)
}

// Last returns the most recent snapshot received.
func (d *CurrentConditions) Last() Measurements {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Statistics keeps running averages of every reading.
type Statistics struct {
	out io.Writer

	mu          sync.Mutex
	count       int
	sumTemp     float64
	sumHumidity float64
	sumPressure float64
}

// NewStatistics creates a statistics display writing to out.
func NewStatistics(out io.Writer) *Statistics {
	return &Statistics{out: out}
}

// Update implements observer.Observer.
func (d *Statistics) Update(m Measurements) {
	d.mu.Lock()
	d.count++
	d.sumTemp += m.Temperature
	d.sumHumidity += m.Humidity
	d.sumPressure += m.Pressure
	d.mu.Unlock()

	temp, humidity, pressure := d.Averages()
	fmt.Fprintf(d.out, "Weather Statistics - Avg temperature: %.1f°C, Avg humidity: %.1f%%, Avg pressure: %.1f hPa\n",
		temp, humidity, pressure)
}

// Averages returns the mean temperature, humidity and pressure.
// All averages are zero before the first update.
func (d *Statistics) Averages() (temperature, humidity, pressure float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.count == 0 {
		return 0, 0, 0
	}
	n := float64(d.count)
	return d.sumTemp / n, d.sumHumidity / n, d.sumPressure / n
}

// Count returns the number of snapshots received.
func (d *Statistics) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count
}

// Forecast predicts the weather from the pressure trend.
type Forecast struct {
	out io.Writer

	mu           sync.Mutex
	lastPressure float64
	current      float64
	message      string
}

// NewForecast creates a forecast display writing to out.
// The initial reference pressure is zero, so the first reading always
// reports improving weather.
func NewForecast(out io.Writer) *Forecast {
	return &Forecast{out: out}
}

// Update implements observer.Observer.
func (d *Forecast) Update(m Measurements) {
	d.mu.Lock()
	d.lastPressure = d.current
	d.current = m.Pressure

	switch {
	case d.current > d.lastPressure:
		d.message = ForecastImproving
	case d.current == d.lastPressure:
		d.message = ForecastSteady
	default:
		d.message = ForecastWorsening
	}
	msg := d.message
	d.mu.Unlock()

	fmt.Fprintf(d.out, "Forecast: %s\n", msg)
}

// Message returns the latest forecast, or "" before the first update.
func (d *Forecast) Message() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.message
}

// Panel is a named display that prints all three readings.
type Panel struct {
	name string
	out  io.Writer

	mu      sync.Mutex
	updates int
}

// NewPanel creates a named display writing to out.
func NewPanel(name string, out io.Writer) *Panel {
	return &Panel{name: name, out: out}
}

// Name returns the display name.
func (d *Panel) Name() string { return d.name }

// Update implements observer.Observer.
func (d *Panel) Update(m Measurements) {
	d.mu.Lock()
	d.updates++
	d.mu.Unlock()

	fmt.Fprintf(d.out, "\n%s Display:\n", d.name)
	fmt.Fprintf(d.out, "Temperature: %g°C\n", m.Temperature)
	fmt.Fprintf(d.out, "Humidity: %g%%\n", m.Humidity)
	fmt.Fprintf(d.out, "Pressure: %g hPa\n", m.Pressure)
}

// Updates returns the number of snapshots displayed.
func (d *Panel) Updates() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updates
}

// Compile-time interface satisfaction checks.
var (
	_ observer.Observer[Measurements] = (*CurrentConditions)(nil)
	_ observer.Observer[Measurements] = (*Statistics)(nil)
	_ observer.Observer[Measurements] = (*Forecast)(nil)
	_ observer.Observer[Measurements] = (*Panel)(nil)
)
