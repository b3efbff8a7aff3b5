package demo

import (
	"context"
	"fmt"

	"github.com/patterns-go/patterns/pkg/weather"
)

// Observer walks through a weather station publishing to its displays.
func Observer(_ context.Context, env Env) error {
	env.heading("Observer: Weather Station")

	station := weather.NewStation(env.Logger)

	current := weather.NewCurrentConditions(env.Out)
	stats := weather.NewStatistics(env.Out)
	forecast := weather.NewForecast(env.Out)
	station.Register(current)
	station.Register(stats)
	station.Register(forecast)
	station.Register(weather.NewRecorder(env.journal(), station))

	fmt.Fprintln(env.Out, "Weather Update 1:")
	station.SetMeasurements(27, 65, 1013)

	fmt.Fprintln(env.Out, "\nWeather Update 2:")
	station.SetMeasurements(28, 70, 1014)

	station.Remove(forecast)
	fmt.Fprintln(env.Out, "\nWeather Update 3 (without forecast):")
	station.SetMeasurements(26, 75, 1010)

	station.Remove(current)
	station.Remove(stats)
	station.Register(weather.NewPanel("Mobile App", env.Out))
	station.Register(weather.NewAlerts(env.Out))

	fmt.Fprintln(env.Out, "\nWeather Update 4 (storm front):")
	station.SetMeasurements(35, 95, 960)

	return nil
}
