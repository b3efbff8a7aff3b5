package singleton

import (
	"sync"
	"sync/atomic"
)

// Holder lazily builds and then holds a single *T.
// P is the type of the construction parameters.
type Holder[T any, P any] struct {
	build    func(P) *T
	defaults P

	once     sync.Once
	instance *T
	params   P
	ready    atomic.Bool
}

// New creates a holder that builds its instance with build. defaults are
// used when the first Get call passes no parameters.
func New[T any, P any](build func(P) *T, defaults P) *Holder[T, P] {
	return &Holder[T, P]{build: build, defaults: defaults}
}

// Get returns the held instance, building it on first use.
//
// Only the first call's params are used. On every later call params are
// silently ignored, even if they differ from the ones the instance was built
// with. Only params[0] is considered.
//
// If build panics, the panic reaches the first caller and the holder stays
// empty: later calls return nil.
func (h *Holder[T, P]) Get(params ...P) *T {
	h.once.Do(func() {
		p := h.defaults
		if len(params) > 0 {
			p = params[0]
		}
		h.params = p
		h.instance = h.build(p)
		h.ready.Store(true)
	})
	return h.instance
}

// Initialized reports whether the instance has been built.
func (h *Holder[T, P]) Initialized() bool {
	return h.ready.Load()
}

// Params returns the parameters the instance was built with.
// ok is false until the instance has been built.
func (h *Holder[T, P]) Params() (params P, ok bool) {
	if !h.ready.Load() {
		return params, false
	}
	return h.params, true
}
