// Package logging builds the console logger used by the patterns command.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	// Out receives debug, info and warning messages.
	Out io.Writer

	// Err receives error and fatal messages. Nil means Out.
	Err io.Writer

	// Level is the minimum level written.
	Level zerolog.Level

	// NoColor disables ANSI colors.
	NoColor bool

	// NoTimestamp omits the timestamp column.
	NoTimestamp bool
}

// New returns a console logger that splits output by level.
func New(opts Options) zerolog.Logger {
	if opts.Err == nil {
		opts.Err = opts.Out
	}

	console := func(w io.Writer) zerolog.ConsoleWriter {
		cw := zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    opts.NoColor,
			TimeFormat: time.Kitchen,
		}
		if opts.NoTimestamp {
			cw.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		return cw
	}

	writer := zerolog.MultiLevelWriter(
		LevelWriter{
			Writer: console(opts.Out),
			Levels: []zerolog.Level{zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel},
		},
		LevelWriter{
			Writer: console(opts.Err),
			Levels: []zerolog.Level{zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel},
		},
	)

	ctx := zerolog.New(writer).Level(opts.Level).With()
	if !opts.NoTimestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// ParseLevel parses a zerolog level name. The empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}

// LevelWriter forwards only the listed levels to Writer.
type LevelWriter struct {
	io.Writer
	Levels []zerolog.Level
}

// WriteLevel implements zerolog.LevelWriter.
func (w LevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	for _, l := range w.Levels {
		if l == level {
			return w.Write(p)
		}
	}
	return len(p), nil
}

// Compile-time interface satisfaction check.
var _ zerolog.LevelWriter = LevelWriter{}
