package coffee

import "fmt"

// Layer prices.
const (
	MilkPrice         = 1.5
	WhippedCreamPrice = 2.0
	CaramelPrice      = 2.5
	VanillaPrice      = 1.8
	ChocolatePrice    = 2.2
	EspressoShotPrice = 3.0
	SoyPrice          = 0.4
	ExtraShotPrice    = 0.6
)

// addition appends a fragment to the description and adds a price.
type addition struct {
	inner    Beverage
	fragment string
	price    float64
}

func (a addition) Description() string { return a.inner.Description() + ", " + a.fragment }
func (a addition) Cost() float64 { return a.inner.Cost() + a.price }
func (a addition) Unwrap() Beverage { return a.inner }

// Add wraps b with a custom additive layer.
func Add(b Beverage, fragment string, price float64) Beverage {
	return addition{inner: b, fragment: fragment, price: price}
}

// Milk adds milk.
func Milk(b Beverage) Beverage { return Add(b, "Milk", MilkPrice) }

// WhippedCream adds whipped cream.
func WhippedCream(b Beverage) Beverage { return Add(b, "Whipped Cream", WhippedCreamPrice) }

// Caramel adds caramel.
func Caramel(b Beverage) Beverage { return Add(b, "Caramel", CaramelPrice) }

// Vanilla adds vanilla.
func Vanilla(b Beverage) Beverage { return Add(b, "Vanilla", VanillaPrice) }

// Chocolate adds chocolate.
func Chocolate(b Beverage) Beverage { return Add(b, "Chocolate", ChocolatePrice) }

// EspressoShot adds an extra espresso shot.
func EspressoShot(b Beverage) Beverage { return Add(b, "Extra Espresso Shot", EspressoShotPrice) }

// Soy adds soy milk.
func Soy(b Beverage) Beverage { return Add(b, "Soy Milk", SoyPrice) }

// ExtraShots adds n extra shots. n below 1 is treated as 1.
func ExtraShots(b Beverage, n int) Beverage {
	if n < 1 {
		n = 1
	}
	fragment := "extra shot"
	if n > 1 {
		fragment = fmt.Sprintf("%d extra shots", n)
	}
	return Add(b, fragment, ExtraShotPrice*float64(n))
}

// Compile-time interface satisfaction check.
var _ Wrapper = addition{}
