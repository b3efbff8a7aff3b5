package vehicle

import "fmt"

// Creator manufactures one fixed kind of vehicle. Use NewCreator or
// Creators to obtain one; the zero value has no kind and every operation on
// it returns an error wrapping ErrUnsupportedVariant.
type Creator struct {
	kind Kind
}

// NewCreator returns a creator for k.
func NewCreator(k Kind) (*Creator, error) {
	if _, ok := constructors[k]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVariant, k)
	}
	return &Creator{kind: k}, nil
}

// Creators returns a creator for every supported kind.
func Creators() []*Creator {
	out := make([]*Creator, 0, len(constructors))
	for _, k := range Kinds() {
		out = append(out, &Creator{kind: k})
	}
	return out
}

// Kind returns the kind this creator manufactures.
func (c *Creator) Kind() Kind { return c.kind }

// Create returns a new vehicle of the creator's kind.
func (c *Creator) Create() (Vehicle, error) {
	return NewKind(c.kind)
}

// Deliver manufactures a vehicle and reports it ready.
func (c *Creator) Deliver() (string, error) {
	v, err := c.Create()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("A new %s has been manufactured and is ready for delivery!", v.Info().Kind), nil
}

// DeliverySteps manufactures a vehicle and returns the steps taken.
func (c *Creator) DeliverySteps() ([]string, error) {
	v, err := c.Create()
	if err != nil {
		return nil, err
	}
	return []string{
		fmt.Sprintf("Creating a new %s", v.Info().Kind),
		"Performing quality checks",
		v.Drive(),
		"Vehicle is ready for delivery",
	}, nil
}
