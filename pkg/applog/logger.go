package applog

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/patterns-go/patterns/pkg/singleton"
)

// Defaults for Options.
const (
	DefaultLevel = LevelInfo
	DefaultFile  = "app.log"
)

// Options configures a Logger.
type Options struct {
	// Level is the minimum accepted level. Zero means DefaultLevel.
	Level Level

	// File is the nominal log file name. Empty means DefaultFile.
	File string

	// Output receives accepted messages.
	Output zerolog.Logger
}

// Entry is one accepted message.
type Entry struct {
	Seq     int
	Time    time.Time
	Level   Level
	Message string
}

// String formats the entry as "[LEVEL] message".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Level, e.Message)
}

// Logger is a leveled, in-memory application logger.
// It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	level   Level
	file    string
	out     zerolog.Logger
	entries []Entry

	// now is overridable for tests.
	now func() time.Time
}

// New creates a Logger.
func New(opts Options) *Logger {
	if opts.Level == 0 {
		opts.Level = DefaultLevel
	}
	if opts.File == "" {
		opts.File = DefaultFile
	}
	return &Logger{
		level: opts.Level,
		file:  opts.File,
		out:   opts.Output.With().Str("file", opts.File).Logger(),
		now:   time.Now,
	}
}

// NewHolder creates a holder that builds a Logger on first access.
func NewHolder() *singleton.Holder[Logger, Options] {
	return singleton.New(New, Options{})
}

var shared = NewHolder()

// Shared returns the process-wide Logger. opts only apply on the first call.
func Shared(opts ...Options) *Logger {
	return shared.Get(opts...)
}

// Log records msg at level. It returns false if the message was dropped
// because level is below the logger's level.
func (l *Logger) Log(level Level, msg string) bool {
	l.mu.Lock()
	if level < l.level {
		l.mu.Unlock()
		return false
	}
	e := Entry{
		Seq:     len(l.entries) + 1,
		Time:    l.now(),
		Level:   level,
		Message: msg,
	}
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	l.out.WithLevel(level.zerologLevel()).
		Int("seq", e.Seq).
		Str("severity", level.String()).
		Msg(msg)
	return true
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string) { l.Log(LevelDebug, msg) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string) { l.Log(LevelInfo, msg) }

// Warn logs at LevelWarning.
func (l *Logger) Warn(msg string) { l.Log(LevelWarning, msg) }

// Error logs at LevelError.
func (l *Logger) Error(msg string) { l.Log(LevelError, msg) }

// Critical logs at LevelCritical.
func (l *Logger) Critical(msg string) { l.Log(LevelCritical, msg) }

// Printf logs a formatted message at LevelInfo.
func (l *Logger) Printf(format string, args ...any) {
	l.Log(LevelInfo, fmt.Sprintf(format, args...))
}

// SetLevel changes the minimum accepted level.
func (l *Logger) SetLevel(level Level) error {
	if level < LevelDebug || level > LevelCritical {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
	return nil
}

// SetLevelName changes the level by name.
func (l *Logger) SetLevelName(name string) error {
	level, err := ParseLevel(name)
	if err != nil {
		return err
	}
	return l.SetLevel(level)
}

// Level returns the minimum accepted level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// File returns the nominal log file name.
func (l *Logger) File() string {
	return l.file
}

// Count returns the number of accepted messages.
func (l *Logger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the accepted messages in order.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
