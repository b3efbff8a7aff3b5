package vehicle

import "fmt"

// Car is a passenger car.
type Car struct{}

// Drive implements Vehicle.
func (Car) Drive() string { return "Driving a car on the road." }

// Info implements Vehicle.
func (Car) Info() Info {
	return Info{Kind: KindCar, PassengerCapacity: 5, MaxSpeed: 180, FuelType: "Gasoline"}
}

// Park parks the car.
func (Car) Park() string { return "Parking the car in a parking space." }

// Motorcycle is a two-seat motorcycle.
type Motorcycle struct{}

// Drive implements Vehicle.
func (Motorcycle) Drive() string { return "Riding a motorcycle at high speed." }

// Info implements Vehicle.
func (Motorcycle) Info() Info {
	return Info{Kind: KindMotorcycle, PassengerCapacity: 2, MaxSpeed: 220, FuelType: "Gasoline"}
}

// Wheelie performs a wheelie.
func (Motorcycle) Wheelie() string { return "Performing a wheelie!" }

// Truck is a cargo truck.
type Truck struct{}

// Drive implements Vehicle.
func (Truck) Drive() string { return "Operating a truck to transport cargo." }

// Info implements Vehicle.
func (Truck) Info() Info {
	return Info{Kind: KindTruck, PassengerCapacity: 3, MaxSpeed: 140, FuelType: "Diesel"}
}

// LoadCargo loads cargo into the truck.
func (Truck) LoadCargo(cargo string) string {
	return fmt.Sprintf("Loading %s into the truck.", cargo)
}

// Bus is a passenger bus.
type Bus struct{}

// Drive implements Vehicle.
func (Bus) Drive() string { return "Driving a bus with many passengers." }

// Info implements Vehicle.
func (Bus) Info() Info {
	return Info{Kind: KindBus, PassengerCapacity: 50, MaxSpeed: 120, FuelType: "Diesel"}
}

// Bicycle is a human-powered bicycle.
type Bicycle struct{}

// Drive implements Vehicle.
func (Bicycle) Drive() string { return "Pedaling a bicycle on the bike path." }

// Info implements Vehicle.
func (Bicycle) Info() Info {
	return Info{Kind: KindBicycle, PassengerCapacity: 1, MaxSpeed: 30, FuelType: "Human power"}
}

// RingBell rings the bell.
func (Bicycle) RingBell() string { return "Ring ring!" }

// Compile-time interface satisfaction checks.
var (
	_ Vehicle = Car{}
	_ Vehicle = Motorcycle{}
	_ Vehicle = Truck{}
	_ Vehicle = Bus{}
	_ Vehicle = Bicycle{}
)
