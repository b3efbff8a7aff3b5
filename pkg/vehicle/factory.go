package vehicle

import "fmt"

// constructors maps each kind to its variant.
var constructors = map[Kind]func() Vehicle{
	KindCar:        func() Vehicle { return Car{} },
	KindMotorcycle: func() Vehicle { return Motorcycle{} },
	KindTruck:      func() Vehicle { return Truck{} },
	KindBus:        func() Vehicle { return Bus{} },
	KindBicycle:    func() Vehicle { return Bicycle{} },
}

// New returns the vehicle named by kind. Matching is case-insensitive.
// Unknown names return an error wrapping ErrUnsupportedVariant.
func New(kind string) (Vehicle, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return NewKind(k)
}

// NewKind returns the vehicle for k.
func NewKind(k Kind) (Vehicle, error) {
	build, ok := constructors[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVariant, k)
	}
	return build(), nil
}
