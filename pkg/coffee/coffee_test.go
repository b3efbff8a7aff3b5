package coffee

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patterns-go/patterns/pkg/log"
)

const delta = 1e-9

func TestBases(t *testing.T) {
	tests := []struct {
		b    Beverage
		desc string
		cost float64
	}{
		{SimpleCoffee(), "Simple Coffee", 5},
		{DarkRoast(), "Dark Roast Coffee", 6},
		{Decaf(), "Decaf Coffee", 5.5},
		{Espresso(), "Espresso", 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.desc, tt.b.Description())
			assert.InDelta(t, tt.cost, tt.b.Cost(), delta)
			assert.Zero(t, Layers(tt.b))
		})
	}
}

func TestAdditiveLayersSum(t *testing.T) {
	for _, b := range []Beverage{SimpleCoffee(), DarkRoast(), Decaf(), Espresso()} {
		wrapped := WhippedCream(Milk(b))
		assert.InDelta(t, b.Cost()+1.5+2.0, wrapped.Cost(), delta, b.Description())
	}
}

func TestDescriptionOrder(t *testing.T) {
	b := Vanilla(WhippedCream(Milk(SimpleCoffee())))

	assert.Equal(t, "Simple Coffee, Milk, Whipped Cream, Vanilla", b.Description())
	assert.Equal(t, 3, Layers(b))
	assert.Equal(t, SimpleCoffee(), Base(b))
}

func TestLayerFragments(t *testing.T) {
	tests := []struct {
		wrap     func(Beverage) Beverage
		fragment string
		price    float64
	}{
		{Milk, "Milk", 1.5},
		{WhippedCream, "Whipped Cream", 2.0},
		{Caramel, "Caramel", 2.5},
		{Vanilla, "Vanilla", 1.8},
		{Chocolate, "Chocolate", 2.2},
		{EspressoShot, "Extra Espresso Shot", 3.0},
		{Soy, "Soy Milk", 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			b := tt.wrap(Espresso())
			assert.Equal(t, "Espresso, "+tt.fragment, b.Description())
			assert.InDelta(t, 6.5+tt.price, b.Cost(), delta)
		})
	}
}

func TestExtraShots(t *testing.T) {
	one := ExtraShots(SimpleCoffee(), 1)
	assert.Equal(t, "Simple Coffee, extra shot", one.Description())
	assert.InDelta(t, 5.6, one.Cost(), delta)

	two := ExtraShots(SimpleCoffee(), 2)
	assert.Equal(t, "Simple Coffee, 2 extra shots", two.Description())
	assert.InDelta(t, 6.2, two.Cost(), delta)

	assert.Equal(t, one.Description(), ExtraShots(SimpleCoffee(), 0).Description())
}

func TestSizeOutsideAdditiveLayers(t *testing.T) {
	tests := []struct {
		size       Size
		multiplier float64
	}{
		{Small, 0.8},
		{Medium, 1.0},
		{Large, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			b := Sized(Caramel(Milk(SimpleCoffee())), tt.size)
			assert.InDelta(t, (5+1.5+2.5)*tt.multiplier, b.Cost(), delta)
			assert.Equal(t, tt.size.String()+" Simple Coffee, Milk, Caramel", b.Description())
		})
	}
}

func TestSizeInsideAdditiveLayers(t *testing.T) {
	b := Milk(Sized(SimpleCoffee(), Large))

	assert.Equal(t, "Large Simple Coffee, Milk", b.Description())
	assert.InDelta(t, 5*1.2+1.5, b.Cost(), delta)
}

func TestParseSize(t *testing.T) {
	s, err := ParseSize("LARGE")
	require.NoError(t, err)
	assert.Equal(t, Large, s)

	_, err = ParseSize("venti")
	assert.ErrorIs(t, err, ErrUnknownSize)
	assert.Equal(t, 1.0, Size(9).Multiplier())
}

func TestReceipt(t *testing.T) {
	r := Receipt(WhippedCream(Milk(SimpleCoffee())))

	var p Printable = r
	var buf bytes.Buffer
	require.NoError(t, p.Print(&buf))

	assert.Equal(t, "Printing receipt for: Simple Coffee, Milk, Whipped Cream, Cost: $8.50\n", buf.String())
	assert.Equal(t, "Simple Coffee, Milk, Whipped Cream", r.Description())
	assert.InDelta(t, 8.5, r.Cost(), delta)

	// The extension still composes with additive layers.
	assert.Equal(t, "Simple Coffee, Milk, Whipped Cream, Caramel", Caramel(r).Description())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("paper jam") }

func TestReceiptWriteError(t *testing.T) {
	err := Receipt(SimpleCoffee()).Print(failingWriter{})
	assert.EqualError(t, err, "paper jam")
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		layers []string
		desc   string
		cost   float64
	}{
		{"plain", "simple", nil, "Simple Coffee", 5},
		{"case insensitive", " Espresso ", []string{"VANILLA", "caramel", "whip"},
			"Espresso, Vanilla, Caramel, Whipped Cream", 6.5 + 1.8 + 2.5 + 2.0},
		{"sized", "dark-roast", []string{"milk", "large"}, "Large Dark Roast Coffee, Milk", (6 + 1.5) * 1.2},
		{"extra shots", "decaf", []string{"extra", "extra:3"},
			"Decaf Coffee, extra shot, 3 extra shots", 5.5 + 0.6 + 1.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Build(tt.base, tt.layers...)
			require.NoError(t, err)
			assert.Equal(t, tt.desc, b.Description())
			assert.InDelta(t, tt.cost, b.Cost(), delta)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	_, err := Build("latte")
	assert.ErrorIs(t, err, ErrUnknownBase)

	_, err = Build("simple", "milk", "sprinkles")
	assert.ErrorIs(t, err, ErrUnknownLayer)

	_, err = Build("simple", "extra:0")
	assert.ErrorIs(t, err, ErrUnknownLayer)

	_, err = Build("simple", "extra:lots")
	assert.ErrorIs(t, err, ErrUnknownLayer)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"dark-roast", "decaf", "espresso", "simple"}, BaseNames())
	assert.Contains(t, LayerNames(), "milk")
	assert.NotContains(t, LayerNames(), "large")
}

func TestNewOrderEvent(t *testing.T) {
	b := Sized(Milk(SimpleCoffee()), Small)
	e := NewOrderEvent("barista", b)

	assert.Equal(t, log.PatternDecorator, e.Pattern)
	assert.Equal(t, log.CategoryConstruction, e.Category)
	require.NotNil(t, e.Order)
	assert.Equal(t, "Small Simple Coffee, Milk", e.Order.Description)
	assert.InDelta(t, 6.5*0.8, e.Order.Cost, delta)
	assert.Equal(t, 2, e.Order.Layers)
}
