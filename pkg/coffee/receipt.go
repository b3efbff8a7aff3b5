package coffee

import (
	"fmt"
	"io"
)

// Printable is a Beverage that can print a receipt.
type Printable interface {
	Beverage
	Print(w io.Writer) error
}

// ReceiptPrinter extends a beverage with receipt printing.
type ReceiptPrinter struct {
	inner Beverage
}

// Receipt wraps b with receipt printing.
func Receipt(b Beverage) *ReceiptPrinter {
	return &ReceiptPrinter{inner: b}
}

// Description implements Beverage.
func (r *ReceiptPrinter) Description() string { return r.inner.Description() }

// Cost implements Beverage.
func (r *ReceiptPrinter) Cost() float64 { return r.inner.Cost() }

// Unwrap implements Wrapper.
func (r *ReceiptPrinter) Unwrap() Beverage { return r.inner }

// Print writes a one-line receipt to w.
func (r *ReceiptPrinter) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Printing receipt for: %s, Cost: $%.2f\n", r.Description(), r.Cost())
	return err
}

// Compile-time interface satisfaction checks.
var (
	_ Printable = (*ReceiptPrinter)(nil)
	_ Wrapper   = (*ReceiptPrinter)(nil)
)
