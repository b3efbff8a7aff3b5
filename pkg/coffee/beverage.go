package coffee

// Beverage is the capability interface shared by bases and wrappers.
type Beverage interface {
	Description() string
	Cost() float64
}

// Wrapper is a Beverage that wraps another one.
type Wrapper interface {
	Beverage

	// Unwrap returns the wrapped beverage.
	Unwrap() Beverage
}

// Layers returns the number of wrappers around the innermost beverage.
func Layers(b Beverage) int {
	n := 0
	for {
		w, ok := b.(Wrapper)
		if !ok {
			return n
		}
		n++
		b = w.Unwrap()
	}
}

// Base returns the innermost beverage of a chain.
func Base(b Beverage) Beverage {
	for {
		w, ok := b.(Wrapper)
		if !ok {
			return b
		}
		b = w.Unwrap()
	}
}

// base is a beverage with fixed description and cost.
type base struct {
	description string
	cost        float64
}

func (b base) Description() string { return b.description }
func (b base) Cost() float64 { return b.cost }

// SimpleCoffee returns the house coffee.
func SimpleCoffee() Beverage { return base{"Simple Coffee", 5} }

// DarkRoast returns a dark roast coffee.
func DarkRoast() Beverage { return base{"Dark Roast Coffee", 6} }

// Decaf returns a decaffeinated coffee.
func Decaf() Beverage { return base{"Decaf Coffee", 5.5} }

// Espresso returns an espresso.
func Espresso() Beverage { return base{"Espresso", 6.5} }
