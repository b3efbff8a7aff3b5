package demo

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patterns-go/patterns/pkg/log"
)

type journal struct {
	mu     sync.Mutex
	events []log.Event
}

func (j *journal) Log(e log.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, e)
}

func (j *journal) count(p log.Pattern) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	n := 0
	for _, e := range j.events {
		if e.Pattern == p {
			n++
		}
	}
	return n
}

func newEnv() (Env, *bytes.Buffer, *journal) {
	var out bytes.Buffer
	j := &journal{}
	return Env{Out: &out, Logger: zerolog.Nop(), Journal: j}, &out, j
}

func TestObserver(t *testing.T) {
	env, out, j := newEnv()
	require.NoError(t, Observer(context.Background(), env))

	s := out.String()
	assert.Contains(t, s, "Current conditions: 27°C and 65% humidity")
	assert.Contains(t, s, "Forecast: Improving weather on the way!")
	assert.Equal(t, 2, strings.Count(s, "Forecast:"), "forecast is removed before update 3")
	assert.Contains(t, s, "Mobile App Display:")
	assert.Contains(t, s, "STORM WARNING")
	assert.Equal(t, 4, j.count(log.PatternObserver))
}

func TestFactory(t *testing.T) {
	env, out, j := newEnv()
	require.NoError(t, Factory(context.Background(), env))

	s := out.String()
	assert.Contains(t, s, `Car info: {"type":"Car","passengerCapacity":5,"maxSpeed":180,"fuelType":"Gasoline"}`)
	assert.Contains(t, s, `Error: vehicle: unsupported variant: "submarine"`)
	assert.Contains(t, s, "A new Bus has been manufactured and is ready for delivery!")
	assert.Contains(t, s, "Urban passenger transport: Bus with capacity for 50 passengers")
	assert.Contains(t, s, "Created a Motorcycle that can go up to 220 km/h")
	assert.Equal(t, 1, j.count(log.PatternFactory))
}

func TestSingleton(t *testing.T) {
	env, out, j := newEnv()
	require.NoError(t, Singleton(context.Background(), env))

	s := out.String()
	assert.Contains(t, s, "Are db1 and db2 the same instance? true")
	assert.Contains(t, s, "id=1 name=Result 1")
	assert.Contains(t, s, "Theme setting via config1: dark")
	assert.Contains(t, s, "Language setting via config1: fr")
	assert.Contains(t, s, "After reset via config1, config2 shows: {language: en, notifications: true, theme: light}")
	assert.Contains(t, s, "Are logger1 and logger2 the same instance? true")
	assert.Contains(t, s, "5 messages accepted")
	assert.Contains(t, s, "Instances built: 1")

	// connect, disconnect and config reset
	assert.Equal(t, 3, j.count(log.PatternSingleton))
}

func TestSingletonRepeatable(t *testing.T) {
	env, _, _ := newEnv()
	require.NoError(t, Singleton(context.Background(), env))
	require.NoError(t, Singleton(context.Background(), env))
}

func TestDecorator(t *testing.T) {
	env, out, j := newEnv()
	require.NoError(t, Decorator(context.Background(), env))

	s := out.String()
	assert.Contains(t, s, "Description: Simple Coffee, Milk, Whipped Cream\nCost: $8.50")
	assert.Contains(t, s, "Description: Espresso, Vanilla, Caramel, Whipped Cream\nCost: $12.80")
	assert.Contains(t, s, "Description: Large Decaf Coffee, Milk\nCost: $8.40")
	assert.Contains(t, s, "Printing receipt for: Large Espresso, Milk, Caramel, Cost: $12.60")
	assert.Equal(t, 9, j.count(log.PatternDecorator))
}

func TestFunctions(t *testing.T) {
	env, out, _ := newEnv()
	require.NoError(t, Functions(context.Background(), env))

	s := out.String()
	assert.Contains(t, s, "fibonacci(10) = 55")
	assert.Contains(t, s, "fibonacci(10) again = 55")
	assert.Contains(t, s, "factorial(5) = 120")
	assert.Contains(t, s, "Caught error: decorate: invalid argument for factorial: -1")
	assert.Contains(t, s, "Success after 3 attempts: Data from https://example.com/api")
}

func TestAllNilJournal(t *testing.T) {
	var out bytes.Buffer
	env := Env{Out: &out, Logger: zerolog.Nop()}

	require.NoError(t, All(context.Background(), env))
	for _, r := range Runners() {
		assert.NotEmpty(t, r.Short, r.Name)
	}
}
