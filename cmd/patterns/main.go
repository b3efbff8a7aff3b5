// Command patterns runs narrated walkthroughs of the observer, factory,
// singleton and decorator patterns and inspects the journals they write.
//
// Usage:
//
//	patterns <command> [flags]
//
// Examples:
//
//	# Run every walkthrough
//	patterns all
//
//	# Run the weather station and journal its notifications
//	patterns observer --journal weather.cbor
//
//	# Show journaled decorator events
//	patterns journal view --pattern decorator weather.cbor
//
//	# Order coffee interactively
//	patterns barista
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
