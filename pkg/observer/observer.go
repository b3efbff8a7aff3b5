package observer

import (
	"errors"
	"reflect"
	"sync"
)

// ErrNotComparable is returned by TryRegister for observers whose dynamic
// type cannot be compared for identity.
var ErrNotComparable = errors.New("observer: observer type is not comparable")

// Observer receives snapshots from a subject.
type Observer[S any] interface {
	// Update is called once per notification with a copy of the subject's state.
	Update(snapshot S)
}

// Subject is the registration side of a publisher.
type Subject[S any] interface {
	Register(o Observer[S])
	Remove(o Observer[S])
	NotifyObservers()
}

// Registry is an ordered set of observers. The zero value is ready to use.
// It is safe for concurrent use.
type Registry[S any] struct {
	mu        sync.RWMutex
	observers []Observer[S]
}

// NewRegistry creates an empty registry.
func NewRegistry[S any]() *Registry[S] {
	return &Registry[S]{}
}

// Register adds o if it is not already present. Registering the same
// observer twice is a no-op. Nil observers, including nil pointers of a
// concrete type, and non-comparable observers are ignored.
func (r *Registry[S]) Register(o Observer[S]) {
	_, _ = r.TryRegister(o)
}

// TryRegister behaves like Register but reports observers that cannot be
// registered. It returns true if o was added by this call.
func (r *Registry[S]) TryRegister(o Observer[S]) (bool, error) {
	if isNil(o) {
		return false, nil
	}
	if !reflect.TypeOf(o).Comparable() {
		return false, ErrNotComparable
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(o) >= 0 {
		return false, nil
	}
	r.observers = append(r.observers, o)
	return true, nil
}

// Remove deletes o from the registry and reports whether it was present.
// Removing an absent observer does nothing.
func (r *Registry[S]) Remove(o Observer[S]) bool {
	if !identifiable(o) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(o)
	if i < 0 {
		return false
	}
	// Copy into a fresh slice so snapshots handed out by Notify stay intact.
	next := make([]Observer[S], 0, len(r.observers)-1)
	next = append(next, r.observers[:i]...)
	next = append(next, r.observers[i+1:]...)
	r.observers = next
	return true
}

// Contains reports whether o is registered.
func (r *Registry[S]) Contains(o Observer[S]) bool {
	if !identifiable(o) {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(o) >= 0
}

// Len returns the number of registered observers.
func (r *Registry[S]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.observers)
}

// Observers returns a copy of the registered observers in registration order.
func (r *Registry[S]) Observers() []Observer[S] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Observer[S], len(r.observers))
	copy(out, r.observers)
	return out
}

// Notify delivers snapshot to every registered observer in registration order.
func (r *Registry[S]) Notify(snapshot S) {
	for _, o := range r.Observers() {
		o.Update(snapshot)
	}
}

// Clear removes all observers.
func (r *Registry[S]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = nil
}

// indexOf returns the position of o or -1. Caller must hold r.mu.
func (r *Registry[S]) indexOf(o Observer[S]) int {
	for i, existing := range r.observers {
		if existing == o {
			return i
		}
	}
	return -1
}

// isNil reports whether o is nil or holds a nil pointer or channel.
func isNil(o any) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// identifiable reports whether o can be matched by identity.
func identifiable(o any) bool {
	return !isNil(o) && reflect.TypeOf(o).Comparable()
}
