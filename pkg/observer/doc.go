// Package observer implements a generic publish/subscribe registry.
//
// A Registry holds a set of Observers and fans out a snapshot value to each
// of them when Notify is called. The snapshot type S is chosen by the
// subject that owns the registry; it is passed by value so observers can
// never mutate the subject's state through it.
//
// # Registration
//
// Observers are compared by interface equality. For pointer observers (the
// normal case) this is identity: registering the same pointer twice keeps a
// single entry, and removing a pointer that was never registered does
// nothing. Observers whose dynamic type is not comparable (func values,
// structs holding slices or maps) cannot be registered; use TryRegister to
// detect this.
//
// # Delivery
//
// Notify is synchronous. Observers are called in registration order on the
// caller's goroutine. The observer list is copied under the lock and the
// callbacks run without holding it, so an observer may register or remove
// observers (including itself) from inside Update; the change applies to the
// next notification.
//
// # Failures
//
// Update has no error result. A panic raised by an observer propagates out
// of Notify and the remaining observers are not called for that snapshot.
// The registry itself is left unchanged.
package observer
