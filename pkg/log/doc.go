// Package log provides the pattern event journal.
//
// Demonstrations emit Events when something observable happens: a weather
// station publishing a snapshot, a factory manufacturing a variant, a
// singleton changing state, a beverage being ordered. The journal is separate
// from operational logging (zerolog); it is a machine-readable trace that can
// be replayed and filtered afterwards.
//
// # Basic Usage
//
//	// Console only
//	journal := log.NewConsoleAdapter(zerolog.New(os.Stdout))
//
//	// Binary file
//	journal, _ := log.NewFileLogger("weather.plog")
//
//	// Both
//	journal := log.NewMultiLogger(console, file)
//
// # Event Types
//
// Every Event carries the pattern and category that produced it. Exactly one
// payload is set:
//   - Measurement: a weather snapshot delivered to observers
//   - Order: a beverage assembled from a wrapper chain
//   - StateChange: a singleton or connection changing state
//   - Error: a failure reported by a demonstration
//
// # File Format
//
// Journal files are a stream of CBOR-encoded events (.plog). `patterns
// journal view` renders them.
package log
