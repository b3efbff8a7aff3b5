package demo

import (
	"context"
	"fmt"

	"github.com/patterns-go/patterns/pkg/coffee"
)

// Decorator walks through building coffee orders from wrapper layers.
func Decorator(_ context.Context, env Env) error {
	env.heading("Coffee Shop Menu System Using Decorator Pattern")

	order := func(title string, b coffee.Beverage) {
		fmt.Fprintf(env.Out, "%s:\n", title)
		fmt.Fprintf(env.Out, "Description: %s\n", b.Description())
		fmt.Fprintf(env.Out, "Cost: $%.2f\n\n", b.Cost())
		env.journal().Log(coffee.NewOrderEvent("coffee-shop", b))
	}

	b := coffee.SimpleCoffee()
	order("Ordering a simple coffee", b)

	b = coffee.Milk(b)
	order("Adding milk to the coffee", b)

	b = coffee.WhippedCream(b)
	order("Adding whipped cream to the coffee with milk", b)

	order("Creating a vanilla caramel espresso with whipped cream",
		coffee.WhippedCream(coffee.Caramel(coffee.Vanilla(coffee.Espresso()))))

	order("Creating a dark roast with chocolate and an extra espresso shot",
		coffee.EspressoShot(coffee.Chocolate(coffee.DarkRoast())))

	for _, size := range []coffee.Size{coffee.Small, coffee.Medium, coffee.Large} {
		order(fmt.Sprintf("Ordering a %s decaf with milk", size),
			coffee.Sized(coffee.Milk(coffee.Decaf()), size))
	}

	order("Complex order", coffee.Sized(
		coffee.Caramel(coffee.ExtraShots(coffee.WhippedCream(coffee.Soy(coffee.SimpleCoffee())), 2)),
		coffee.Large))

	fmt.Fprintln(env.Out, "Using the printable extension:")
	receipt := coffee.Receipt(coffee.Sized(coffee.Caramel(coffee.Milk(coffee.Espresso())), coffee.Large))
	return receipt.Print(env.Out)
}
