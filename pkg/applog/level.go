package applog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrInvalidLevel is returned for unknown level names.
var ErrInvalidLevel = errors.New("applog: invalid level")

// Level is a message severity.
type Level uint8

const (
	LevelDebug    Level = 1
	LevelInfo     Level = 2
	LevelWarning  Level = 3
	LevelError    Level = 4
	LevelCritical Level = 5
)

// Levels returns every level in ascending severity.
func Levels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical}
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel returns the level for a case-insensitive name.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels() {
		if strings.EqualFold(l.String(), s) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (choose from DEBUG, INFO, WARNING, ERROR, CRITICAL)", ErrInvalidLevel, s)
}

// zerologLevel maps l onto the zerolog level used for output.
// CRITICAL is written at fatal severity without exiting.
func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelCritical:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}
