package applog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"Warning", LevelWarning, false},
		{"error", LevelError, false},
		{"CRITICAL", LevelCritical, false},
		{"verbose", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	l := New(Options{})
	assert.Equal(t, LevelInfo, l.Level())
	assert.Equal(t, "app.log", l.File())
	assert.Zero(t, l.Count())
}

func TestLevelFiltering(t *testing.T) {
	l := New(Options{Level: LevelWarning})

	assert.False(t, l.Log(LevelDebug, "debug"))
	assert.False(t, l.Log(LevelInfo, "info"))
	assert.True(t, l.Log(LevelWarning, "warning"))
	l.Error("error")
	l.Critical("critical")

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "[WARNING] warning", entries[0].String())
	assert.Equal(t, "[ERROR] error", entries[1].String())
	assert.Equal(t, "[CRITICAL] critical", entries[2].String())
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Seq, entries[1].Seq, entries[2].Seq})
}

func TestSetLevel(t *testing.T) {
	l := New(Options{Level: LevelDebug})
	l.Debug("Loading configuration...")

	require.NoError(t, l.SetLevel(LevelError))
	l.Debug("This debug message might not be logged due to log level")
	l.Error("This error will still be logged")

	assert.Equal(t, 2, l.Count())
	assert.ErrorIs(t, l.SetLevel(Level(9)), ErrInvalidLevel)
	assert.ErrorIs(t, l.SetLevelName("LOUD"), ErrInvalidLevel)
	assert.Equal(t, LevelError, l.Level())

	require.NoError(t, l.SetLevelName("debug"))
	assert.Equal(t, LevelDebug, l.Level())
}

func TestHolderFirstOptionsWin(t *testing.T) {
	h := NewHolder()

	logger1 := h.Get(Options{Level: LevelDebug, File: "app-debug.log"})
	logger2 := h.Get()

	assert.Same(t, logger1, logger2)
	assert.Equal(t, "app-debug.log", logger2.File())
	assert.Equal(t, LevelDebug, logger2.Level())

	logger1.Info("Application started")
	logger2.Warn("Configuration file not found, using defaults")
	assert.Equal(t, 2, logger1.Count())
}

func TestZerologOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Output: zerolog.New(&buf)})

	l.Info("Application started")
	l.Critical("disk on fire")

	var lines []map[string]any
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		lines = append(lines, line)
	}
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "Application started", lines[0]["message"])
	assert.Equal(t, "app.log", lines[0]["file"])
	assert.Equal(t, float64(1), lines[0]["seq"])

	assert.Equal(t, "fatal", lines[1]["level"])
	assert.Equal(t, "CRITICAL", lines[1]["severity"])
}

func TestPrintf(t *testing.T) {
	l := New(Options{})
	l.Printf("user %s logged in %d times", "ada", 3)

	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "user ada logged in 3 times", entries[0].Message)
	assert.Equal(t, LevelInfo, entries[0].Level)
}

func TestSharedIsStable(t *testing.T) {
	assert.Same(t, Shared(), Shared(Options{Level: LevelCritical}))
}
