package vehicle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedVariant is returned when a discriminator names no known vehicle.
var ErrUnsupportedVariant = errors.New("vehicle: unsupported variant")

// Vehicle is the capability interface every variant implements.
type Vehicle interface {
	// Drive describes the vehicle in motion.
	Drive() string

	// Info returns the descriptive contract of the vehicle.
	Info() Info
}

// Info describes a vehicle.
type Info struct {
	Kind              Kind   `json:"type"`
	PassengerCapacity int    `json:"passengerCapacity"`
	MaxSpeed          int    `json:"maxSpeed"`
	FuelType          string `json:"fuelType"`
}

// String returns a one-line summary.
func (i Info) String() string {
	return fmt.Sprintf("%s: %d passengers, %d km/h, %s", i.Kind, i.PassengerCapacity, i.MaxSpeed, i.FuelType)
}

// Kind identifies a vehicle variant.
type Kind uint8

const (
	KindCar        Kind = 1
	KindMotorcycle Kind = 2
	KindTruck      Kind = 3
	KindBus        Kind = 4
	KindBicycle    Kind = 5
)

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindCar, KindMotorcycle, KindTruck, KindBus, KindBicycle}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCar:
		return "Car"
	case KindMotorcycle:
		return "Motorcycle"
	case KindTruck:
		return "Truck"
	case KindBus:
		return "Bus"
	case KindBicycle:
		return "Bicycle"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind returns the kind for a case-insensitive name.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for _, k := range Kinds() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVariant, name)
}
