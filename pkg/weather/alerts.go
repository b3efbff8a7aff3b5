package weather

import (
	"fmt"
	"io"
	"sync"

	"github.com/patterns-go/patterns/pkg/observer"
)

// Alert thresholds.
const (
	HeatThreshold         = 30.0
	FrostThreshold        = 0.0
	HighHumidityThreshold = 90.0
	LowHumidityThreshold  = 20.0
	StormPressure         = 970.0
	HighPressure          = 1040.0
)

// Alert warning texts.
const (
	WarnHeat         = "HEAT WARNING: Temperature above 30°C"
	WarnFrost        = "FROST WARNING: Temperature below 0°C"
	WarnHighHumidity = "HIGH HUMIDITY WARNING: Humidity above 90%"
	WarnLowHumidity  = "LOW HUMIDITY WARNING: Very dry conditions"
	WarnStorm        = "STORM WARNING: Low pressure system"
	WarnHighPressure = "HIGH PRESSURE: Stable weather system"
)

// Alerts prints warnings when readings cross critical values.
// Nothing is printed for a snapshot without warnings.
type Alerts struct {
	out io.Writer

	mu       sync.Mutex
	warnings []string
}

// NewAlerts creates an alert system writing to out.
func NewAlerts(out io.Writer) *Alerts {
	return &Alerts{out: out}
}

// Update implements observer.Observer.
func (a *Alerts) Update(m Measurements) {
	warnings := Evaluate(m)

	a.mu.Lock()
	a.warnings = warnings
	a.mu.Unlock()

	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(a.out, "\nWEATHER ALERTS:")
	for _, w := range warnings {
		fmt.Fprintf(a.out, " - %s\n", w)
	}
}

// Warnings returns the warnings raised by the latest snapshot.
func (a *Alerts) Warnings() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]string, len(a.warnings))
	copy(out, a.warnings)
	return out
}

// Evaluate returns the warnings for m. At most one warning is raised per
// reading, in temperature, humidity, pressure order.
func Evaluate(m Measurements) []string {
	var warnings []string

	switch {
	case m.Temperature > HeatThreshold:
		warnings = append(warnings, WarnHeat)
	case m.Temperature < FrostThreshold:
		warnings = append(warnings, WarnFrost)
	}

	switch {
	case m.Humidity > HighHumidityThreshold:
		warnings = append(warnings, WarnHighHumidity)
	case m.Humidity < LowHumidityThreshold:
		warnings = append(warnings, WarnLowHumidity)
	}

	switch {
	case m.Pressure < StormPressure:
		warnings = append(warnings, WarnStorm)
	case m.Pressure > HighPressure:
		warnings = append(warnings, WarnHighPressure)
	}

	return warnings
}

// Compile-time interface satisfaction check.
var _ observer.Observer[Measurements] = (*Alerts)(nil)
