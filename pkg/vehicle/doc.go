// Package vehicle builds interchangeable vehicles behind a single
// capability interface.
//
// Three construction strategies are provided. All of them return values
// that satisfy Vehicle, and callers never inspect the concrete type to
// dispatch:
//
//   - Discriminator: New("car") maps a case-insensitive name to a variant.
//     Unknown names return an error wrapping ErrUnsupportedVariant.
//   - Method: a Creator is bound to one Kind. Its Create method returns that
//     variant and Deliver is a template operation built on top of Create.
//   - Family: a Family returns a passenger and a cargo vehicle meant to be
//     used together (Urban: Bus and Truck, Personal: Car and Truck).
//     CategoryFamily does the same for luxury and economy models.
//
// Info is the read-only descriptive contract. It is used for display only.
package vehicle
