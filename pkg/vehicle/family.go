package vehicle

// Family creates vehicles meant to be used together.
type Family interface {
	// Name identifies the family.
	Name() string

	// Passenger returns the family's passenger vehicle.
	Passenger() Vehicle

	// Cargo returns the family's cargo vehicle.
	Cargo() Vehicle
}

// Urban is the public transport family: Bus and Truck.
type Urban struct{}

// Name implements Family.
func (Urban) Name() string { return "Urban" }

// Passenger implements Family.
func (Urban) Passenger() Vehicle { return Bus{} }

// Cargo implements Family.
func (Urban) Cargo() Vehicle { return Truck{} }

// Personal is the private transport family: Car and Truck.
type Personal struct{}

// Name implements Family.
func (Personal) Name() string { return "Personal" }

// Passenger implements Family.
func (Personal) Passenger() Vehicle { return Car{} }

// Cargo implements Family.
func (Personal) Cargo() Vehicle { return Truck{} }

// Families returns every transport family.
func Families() []Family {
	return []Family{Urban{}, Personal{}}
}

// Compile-time interface satisfaction checks.
var (
	_ Family = Urban{}
	_ Family = Personal{}
)
