package demo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/patterns-go/patterns/pkg/log"
	"github.com/patterns-go/patterns/pkg/vehicle"
)

// Factory walks through the three vehicle construction strategies.
func Factory(_ context.Context, env Env) error {
	env.heading("Simple Factory")
	for _, name := range []string{"car", "motorcycle", "truck", "bicycle"} {
		v, err := vehicle.New(name)
		if err != nil {
			return err
		}
		info, err := json.Marshal(v.Info())
		if err != nil {
			return fmt.Errorf("encode info: %w", err)
		}
		fmt.Fprintln(env.Out, v.Drive())
		fmt.Fprintf(env.Out, "%s info: %s\n", v.Info().Kind, info)
	}

	fmt.Fprintf(env.Out, "Car specific: %s\n", vehicle.Car{}.Park())
	fmt.Fprintf(env.Out, "Motorcycle specific: %s\n", vehicle.Motorcycle{}.Wheelie())
	fmt.Fprintf(env.Out, "Truck specific: %s\n", vehicle.Truck{}.LoadCargo("furniture"))
	fmt.Fprintf(env.Out, "Bicycle specific: %s\n", vehicle.Bicycle{}.RingBell())

	if _, err := vehicle.New("submarine"); err != nil {
		fmt.Fprintf(env.Out, "Error: %v\n", err)
		e := log.NewEvent(log.PatternFactory, log.CategoryError, "simple-factory")
		e.Error = &log.ErrorEventData{Message: err.Error(), Context: "create submarine"}
		env.journal().Log(e)
	}

	env.heading("Factory Method")
	for _, c := range vehicle.Creators() {
		msg, err := c.Deliver()
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Out, msg)
	}
	bikes, err := vehicle.NewCreator(vehicle.KindBicycle)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Out, "\nBicycle Factory:")
	steps, err := bikes.DeliverySteps()
	if err != nil {
		return err
	}
	for _, step := range steps {
		fmt.Fprintln(env.Out, step)
	}
	motorcycle, err := vehicle.Creators()[1].Create()
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "Created a %s that can go up to %d km/h\n", motorcycle.Info().Kind, motorcycle.Info().MaxSpeed)

	env.heading("Abstract Factory")
	for _, f := range vehicle.Families() {
		passenger, cargo := f.Passenger(), f.Cargo()
		fmt.Fprintf(env.Out, "%s passenger transport: %s with capacity for %d passengers\n",
			f.Name(), passenger.Info().Kind, passenger.Info().PassengerCapacity)
		fmt.Fprintf(env.Out, "%s cargo transport: %s\n", f.Name(), cargo.Info().Kind)
	}

	cars, motorcycles := vehicle.CarCategory{}, vehicle.MotorcycleCategory{}
	fmt.Fprintf(env.Out, "Luxury Car Features: %s\n", cars.Luxury().Features())
	fmt.Fprintf(env.Out, "Economy Car Efficiency: %s\n", cars.Economy().Efficiency())
	fmt.Fprintf(env.Out, "Luxury Motorcycle Features: %s\n", motorcycles.Luxury().Features())
	fmt.Fprintf(env.Out, "Economy Motorcycle Efficiency: %s\n", motorcycles.Economy().Efficiency())

	return nil
}
