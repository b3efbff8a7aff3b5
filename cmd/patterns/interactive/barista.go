// Package interactive provides the interactive coffee counter of the
// patterns command.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/patterns-go/patterns/pkg/coffee"
	"github.com/patterns-go/patterns/pkg/log"
)

// JournalSource identifies orders taken at the counter in the journal.
const JournalSource = "barista"

// Barista handles interactive ordering.
type Barista struct {
	rl      *readline.Instance
	out     io.Writer
	journal log.Logger
	orders  []coffee.Beverage
}

// New creates an interactive barista reading from the terminal.
// A nil journal disables journaling.
func New(journal log.Logger) (*Barista, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "barista> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	b := newBarista(rl.Stdout(), journal)
	b.rl = rl
	return b, nil
}

func newBarista(out io.Writer, journal log.Logger) *Barista {
	if journal == nil {
		journal = log.NoopLogger{}
	}
	return &Barista{out: out, journal: journal}
}

func completer() *readline.PrefixCompleter {
	layerItems := func(string) []string {
		return append(coffee.LayerNames(), "small", "medium", "large", "extra")
	}
	bases := make([]readline.PrefixCompleterInterface, 0, len(coffee.BaseNames()))
	for _, name := range coffee.BaseNames() {
		bases = append(bases, readline.PcItem(name, readline.PcItemDynamic(layerItems)))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("menu"),
		readline.PcItem("order", bases...),
		readline.PcItem("history"),
		readline.PcItem("quit"),
	)
}

// Run starts the interactive command loop.
func (b *Barista) Run(ctx context.Context) {
	defer b.rl.Close()

	b.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := b.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(b.out, "Exiting...")
			return
		}

		if !b.Execute(line) {
			return
		}
	}
}

// Execute runs one command line and reports whether the loop should
// continue.
func (b *Barista) Execute(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		b.printHelp()
	case "menu", "m":
		b.cmdMenu()
	case "order", "o":
		b.cmdOrder(args)
	case "history", "h":
		b.cmdHistory()
	case "quit", "exit", "q":
		fmt.Fprintln(b.out, "Exiting...")
		return false
	default:
		fmt.Fprintf(b.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (b *Barista) printHelp() {
	fmt.Fprintln(b.out, `
Coffee Counter Commands:
  menu                       - Show bases, layers and prices
  order <base> [layer ...]   - Order a beverage; layers apply left to right
  history                    - Show orders taken so far
  help                       - Show this help
  quit                       - Leave the counter

  Layers:
    milk whip caramel vanilla chocolate shot soy
    small medium large         - resize everything ordered so far
    extra | extra:N            - add one or N extra shots`)
}

// cmdMenu prints every base and layer with its price.
func (b *Barista) cmdMenu() {
	fmt.Fprintln(b.out, "Bases:")
	for _, name := range coffee.BaseNames() {
		bev, _ := coffee.Build(name)
		fmt.Fprintf(b.out, "  %-12s %-20s $%.2f\n", name, bev.Description(), bev.Cost())
	}
	fmt.Fprintln(b.out, "Layers:")
	for _, name := range coffee.LayerNames() {
		bev, _ := coffee.Build("simple", name)
		fmt.Fprintf(b.out, "  %-12s +$%.2f\n", name, bev.Cost()-coffee.SimpleCoffee().Cost())
	}
	fmt.Fprintln(b.out, "Sizes:")
	for _, s := range []coffee.Size{coffee.Small, coffee.Medium, coffee.Large} {
		fmt.Fprintf(b.out, "  %-12s x%.1f\n", strings.ToLower(s.String()), s.Multiplier())
	}
}

// cmdOrder builds a beverage, prints its receipt and journals it.
func (b *Barista) cmdOrder(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(b.out, "Usage: order <base> [layer ...]")
		return
	}

	bev, err := coffee.Build(args[0], args[1:]...)
	if err != nil {
		fmt.Fprintf(b.out, "Error: %v\n", err)
		return
	}

	if err := coffee.Receipt(bev).Print(b.out); err != nil {
		fmt.Fprintf(b.out, "Error: %v\n", err)
		return
	}
	b.orders = append(b.orders, bev)
	b.journal.Log(coffee.NewOrderEvent(JournalSource, bev))
}

// cmdHistory lists the orders taken so far with a running total.
func (b *Barista) cmdHistory() {
	if len(b.orders) == 0 {
		fmt.Fprintln(b.out, "No orders yet.")
		return
	}

	var total float64
	for i, bev := range b.orders {
		fmt.Fprintf(b.out, "  %d. %s  $%.2f\n", i+1, bev.Description(), bev.Cost())
		total += bev.Cost()
	}
	fmt.Fprintf(b.out, "Total: $%.2f\n", total)
}
