package coffee

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/patterns-go/patterns/pkg/log"
)

// Order errors.
var (
	ErrUnknownBase  = errors.New("coffee: unknown base")
	ErrUnknownLayer = errors.New("coffee: unknown layer")
)

// bases maps order names to base constructors.
var bases = map[string]func() Beverage{
	"simple":     SimpleCoffee,
	"dark-roast": DarkRoast,
	"decaf":      Decaf,
	"espresso":   Espresso,
}

// layers maps order names to additive layer constructors.
var layers = map[string]func(Beverage) Beverage{
	"milk":      Milk,
	"whip":      WhippedCream,
	"caramel":   Caramel,
	"vanilla":   Vanilla,
	"chocolate": Chocolate,
	"shot":      EspressoShot,
	"soy":       Soy,
}

// BaseNames returns the names Build accepts as a base.
func BaseNames() []string {
	return sortedKeys(bases)
}

// LayerNames returns the names Build accepts as a layer, excluding sizes
// and "extra[:N]".
func LayerNames() []string {
	return sortedKeys(layers)
}

// Build assembles a beverage from a base name and layer names, applied in
// order. Besides the names from LayerNames, a layer may be a size (small,
// medium, large) or "extra[:N]" for N extra shots.
func Build(baseName string, layerNames ...string) (Beverage, error) {
	newBase, ok := bases[strings.ToLower(strings.TrimSpace(baseName))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBase, baseName)
	}

	b := newBase()
	for _, name := range layerNames {
		var err error
		if b, err = applyLayer(b, strings.ToLower(strings.TrimSpace(name))); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func applyLayer(b Beverage, name string) (Beverage, error) {
	if wrap, ok := layers[name]; ok {
		return wrap(b), nil
	}
	if size, err := ParseSize(name); err == nil {
		return Sized(b, size), nil
	}
	if name == "extra" {
		return ExtraShots(b, 1), nil
	}
	if count, ok := strings.CutPrefix(name, "extra:"); ok {
		n, err := strconv.Atoi(count)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %q: shot count must be a positive integer", ErrUnknownLayer, name)
		}
		return ExtraShots(b, n), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

// NewOrderEvent returns a journal event describing b.
func NewOrderEvent(source string, b Beverage) log.Event {
	event := log.NewEvent(log.PatternDecorator, log.CategoryConstruction, source)
	event.Order = &log.OrderEvent{
		Description: b.Description(),
		Cost:        b.Cost(),
		Layers:      Layers(b),
	}
	return event
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
