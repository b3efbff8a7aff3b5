// Package weather is a publish/subscribe domain built on package observer.
//
// A Station holds three readings (temperature, humidity and pressure). Every
// call to SetMeasurements replaces the readings and unconditionally notifies
// all registered observers with a Measurements snapshot. There is no batching
// and no change detection: setting the same values twice notifies twice.
//
// # Subscribers
//
// The package ships with the following observers:
//
//   - CurrentConditions: prints temperature and humidity
//   - Statistics: running averages of all three readings
//   - Forecast: compares pressure with the previous reading
//   - Panel: a named display printing all three readings
//   - Alerts: threshold warnings for heat, frost, humidity and pressure
//   - Recorder: writes every snapshot to a pattern journal (see package log)
//
// Display observers write to an io.Writer supplied at construction and keep
// the last rendered state so callers can inspect it without parsing output.
//
// # Example
//
//	station := weather.NewStation(zerolog.Nop())
//	station.Register(weather.NewCurrentConditions(os.Stdout))
//	station.Register(weather.NewForecast(os.Stdout))
//	station.SetMeasurements(27, 65, 1013)
package weather
