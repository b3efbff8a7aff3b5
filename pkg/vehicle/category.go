package vehicle

// LuxuryVehicle is a premium model.
type LuxuryVehicle interface {
	Features() string
}

// EconomyVehicle is a budget model.
type EconomyVehicle interface {
	Efficiency() string
}

// CategoryFamily creates a luxury and an economy model of the same vehicle type.
type CategoryFamily interface {
	Luxury() LuxuryVehicle
	Economy() EconomyVehicle
}

// LuxuryCar is the premium car.
type LuxuryCar struct{}

// Features implements LuxuryVehicle.
func (LuxuryCar) Features() string {
	return "Leather seats, premium sound system, advanced navigation"
}

// EconomyCar is the budget car.
type EconomyCar struct{}

// Efficiency implements EconomyVehicle.
func (EconomyCar) Efficiency() string {
	return "35 miles per gallon, low maintenance cost"
}

// LuxuryMotorcycle is the premium motorcycle.
type LuxuryMotorcycle struct{}

// Features implements LuxuryVehicle.
func (LuxuryMotorcycle) Features() string {
	return "Carbon fiber body, digital dashboard, premium suspension"
}

// EconomyMotorcycle is the budget motorcycle.
type EconomyMotorcycle struct{}

// Efficiency implements EconomyVehicle.
func (EconomyMotorcycle) Efficiency() string {
	return "60 miles per gallon, affordable parts"
}

// CarCategory creates cars.
type CarCategory struct{}

// Luxury implements CategoryFamily.
func (CarCategory) Luxury() LuxuryVehicle { return LuxuryCar{} }

// Economy implements CategoryFamily.
func (CarCategory) Economy() EconomyVehicle { return EconomyCar{} }

// MotorcycleCategory creates motorcycles.
type MotorcycleCategory struct{}

// Luxury implements CategoryFamily.
func (MotorcycleCategory) Luxury() LuxuryVehicle { return LuxuryMotorcycle{} }

// Economy implements CategoryFamily.
func (MotorcycleCategory) Economy() EconomyVehicle { return EconomyMotorcycle{} }

// Compile-time interface satisfaction checks.
var (
	_ CategoryFamily = CarCategory{}
	_ CategoryFamily = MotorcycleCategory{}
)
