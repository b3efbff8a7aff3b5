package coffee

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSize is returned by ParseSize for unknown names.
var ErrUnknownSize = errors.New("coffee: unknown size")

// Size is a cup size.
type Size uint8

const (
	Small  Size = 1
	Medium Size = 2
	Large  Size = 3
)

// String returns the size name.
func (s Size) String() string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return fmt.Sprintf("Size(%d)", uint8(s))
	}
}

// Multiplier returns the cost factor for the size. Unknown sizes cost
// the same as Medium.
func (s Size) Multiplier() float64 {
	switch s {
	case Small:
		return 0.8
	case Large:
		return 1.2
	default:
		return 1.0
	}
}

// ParseSize returns the size for a case-insensitive name.
func ParseSize(name string) (Size, error) {
	for _, s := range []Size{Small, Medium, Large} {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}

// sized prefixes the size and multiplies the inner cost.
type sized struct {
	inner Beverage
	size  Size
}

func (s sized) Description() string { return s.size.String() + " " + s.inner.Description() }
func (s sized) Cost() float64 { return s.inner.Cost() * s.size.Multiplier() }
func (s sized) Unwrap() Beverage { return s.inner }

// Sized wraps b in a size layer.
func Sized(b Beverage, size Size) Beverage {
	return sized{inner: b, size: size}
}

// Compile-time interface satisfaction check.
var _ Wrapper = sized{}
