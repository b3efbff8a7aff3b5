package appconfig

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/patterns-go/patterns/pkg/singleton"
)

// ErrKeyNotFound is returned by Get for keys that are not set.
var ErrKeyNotFound = errors.New("appconfig: key not found")

// DefaultSource is the source name used when none is given.
const DefaultSource = "defaults.yaml"

//go:embed defaults.yaml
var defaultsYAML []byte

// defaultSettings holds the parsed embedded defaults.
var defaultSettings map[string]any

func init() {
	if err := yaml.Unmarshal(defaultsYAML, &defaultSettings); err != nil {
		panic(fmt.Sprintf("failed to parse embedded defaults: %v", err))
	}
}

// Defaults returns a copy of the default settings.
func Defaults() map[string]any {
	return maps.Clone(defaultSettings)
}

// Options configures a Config. Only the options passed on first access of a
// Holder take effect.
type Options struct {
	// Source names where the settings came from.
	Source string

	// Logger receives a message for every change.
	Logger zerolog.Logger
}

// Config is a mutable key/value settings store.
// It is safe for concurrent use.
type Config struct {
	mu       sync.RWMutex
	settings map[string]any
	source   string
	logger   zerolog.Logger
}

// New creates a Config seeded with the defaults.
func New(opts Options) *Config {
	if opts.Source == "" {
		opts.Source = DefaultSource
	}
	c := &Config{
		settings: Defaults(),
		source:   opts.Source,
		logger:   opts.Logger.With().Str("component", "appconfig").Logger(),
	}
	c.logger.Info().Str("source", c.source).Msg("Application configuration initialized with default settings")
	return c
}

// NewHolder creates a holder that builds a Config on first access.
func NewHolder() *singleton.Holder[Config, Options] {
	return singleton.New(New, Options{})
}

var shared = NewHolder()

// Shared returns the process-wide Config. opts only apply on the first call.
func Shared(opts ...Options) *Config {
	return shared.Get(opts...)
}

// Get returns the value for key.
func (c *Config) Get(key string) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.settings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// String returns the value for key formatted as a string.
func (c *Config) String(key string) (string, error) {
	v, err := c.Get(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(v), nil
}

// Set stores value under key.
func (c *Config) Set(key string, value any) {
	c.mu.Lock()
	c.settings[key] = value
	c.mu.Unlock()

	c.logger.Info().Str("key", key).Interface("value", value).Msg("Configuration updated")
}

// Has reports whether key is set.
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.settings[key]
	return ok
}

// Reset discards all settings and restores the defaults.
func (c *Config) Reset() {
	c.mu.Lock()
	c.settings = Defaults()
	c.mu.Unlock()

	c.logger.Info().Msg("Configuration reset to defaults")
}

// All returns a copy of every setting.
func (c *Config) All() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.settings)
}

// Keys returns the setting names in sorted order.
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.settings))
	for k := range c.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Source returns the source name given on construction.
func (c *Config) Source() string {
	return c.source
}

// WriteYAML writes every setting to w as a YAML document.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.All()); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return enc.Close()
}
