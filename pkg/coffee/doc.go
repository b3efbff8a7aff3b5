// Package coffee composes beverages from a base and layers of wrappers.
//
// Every wrapper holds exactly one inner Beverage and implements Beverage
// itself, so wrappers nest to any depth:
//
//	b := coffee.Sized(coffee.WhippedCream(coffee.Milk(coffee.SimpleCoffee())), coffee.Large)
//	b.Description() // "Large Simple Coffee, Milk, Whipped Cream"
//	b.Cost()        // (5 + 1.5 + 2.0) * 1.2
//
// Additive layers append ", <fragment>" to the inner description and add a
// fixed price. The size layer prefixes the inner description and multiplies
// the inner cost, so it is normally applied last. Nesting order is chosen by
// the caller; nothing in the package reorders layers.
//
// Beverages are immutable. A wrapper never inspects the concrete type of
// what it wraps.
//
// Receipt adds a Print operation on top of Beverage without changing the
// Beverage interface. Build assembles a beverage from names, which is how
// the interactive barista takes orders.
package coffee
