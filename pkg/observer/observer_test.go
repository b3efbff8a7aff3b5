package observer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reading struct {
	A, B, C int
}

type stubObserver struct{ mock.Mock }

func (s *stubObserver) Update(snapshot reading) { s.Called(snapshot) }

// recorder keeps every snapshot it receives.
type recorder struct {
	mu   sync.Mutex
	got  []reading
	name string
	log  *[]string
}

func (r *recorder) Update(snapshot reading) {
	r.mu.Lock()
	r.got = append(r.got, snapshot)
	r.mu.Unlock()
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

type funcObserver func(reading)

func (f funcObserver) Update(s reading) { f(s) }

func TestRegistryFanOut(t *testing.T) {
	reg := NewRegistry[reading]()

	a, b, c := &stubObserver{}, &stubObserver{}, &stubObserver{}
	first := reading{27, 65, 1013}
	second := reading{26, 75, 1010}

	a.On("Update", first).Once()
	b.On("Update", first).Once()
	c.On("Update", first).Once()
	a.On("Update", second).Once()
	b.On("Update", second).Once()

	reg.Register(a)
	reg.Register(b)
	reg.Register(c)
	reg.Notify(first)

	reg.Remove(c)
	reg.Notify(second)

	a.AssertExpectations(t)
	b.AssertExpectations(t)
	c.AssertExpectations(t)
	c.AssertNotCalled(t, "Update", second)
}

func TestRegistryRegisterIsIdempotent(t *testing.T) {
	reg := NewRegistry[reading]()
	o := &recorder{}

	reg.Register(o)
	reg.Register(o)

	assert.Equal(t, 1, reg.Len())

	reg.Notify(reading{1, 2, 3})
	assert.Len(t, o.got, 1, "duplicate registration must not duplicate delivery")
}

func TestRegistryRemoveAbsent(t *testing.T) {
	reg := NewRegistry[reading]()
	registered := &recorder{}
	stranger := &recorder{}
	reg.Register(registered)

	assert.False(t, reg.Remove(stranger))
	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Contains(registered))
	assert.False(t, reg.Contains(stranger))

	assert.True(t, reg.Remove(registered))
	assert.False(t, reg.Remove(registered), "second removal finds nothing")
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryNotifyWithoutObservers(t *testing.T) {
	var reg Registry[reading]
	assert.NotPanics(t, func() { reg.Notify(reading{}) })
}

func TestRegistryOrder(t *testing.T) {
	var order []string
	reg := NewRegistry[reading]()
	for _, name := range []string{"first", "second", "third"} {
		reg.Register(&recorder{name: name, log: &order})
	}

	reg.Notify(reading{})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestRegistrySequences(t *testing.T) {
	a, b, c, d := &recorder{}, &recorder{}, &recorder{}, &recorder{}

	tests := []struct {
		name string
		ops  func(r *Registry[reading])
		want []Observer[reading]
	}{
		{
			name: "AddAll",
			ops: func(r *Registry[reading]) {
				r.Register(a)
				r.Register(b)
				r.Register(c)
			},
			want: []Observer[reading]{a, b, c},
		},
		{
			name: "RemoveMiddle",
			ops: func(r *Registry[reading]) {
				r.Register(a)
				r.Register(b)
				r.Register(c)
				r.Remove(b)
			},
			want: []Observer[reading]{a, c},
		},
		{
			name: "ReRegisterAfterRemove",
			ops: func(r *Registry[reading]) {
				r.Register(a)
				r.Register(b)
				r.Remove(a)
				r.Register(a)
			},
			want: []Observer[reading]{b, a},
		},
		{
			name: "DuplicatesAndStrangers",
			ops: func(r *Registry[reading]) {
				r.Register(d)
				r.Register(d)
				r.Remove(c)
				r.Register(a)
				r.Register(d)
			},
			want: []Observer[reading]{d, a},
		},
		{
			name: "Clear",
			ops: func(r *Registry[reading]) {
				r.Register(a)
				r.Register(b)
				r.Clear()
			},
			want: []Observer[reading]{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry[reading]()
			tt.ops(reg)
			assert.Equal(t, tt.want, reg.Observers())
		})
	}
}

func TestRegistryNilAndNonComparable(t *testing.T) {
	reg := NewRegistry[reading]()

	reg.Register(nil)
	assert.Equal(t, 0, reg.Len())

	var missing *recorder
	added, err := reg.TryRegister(missing)
	assert.False(t, added)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
	assert.False(t, reg.Contains(missing))
	assert.False(t, reg.Remove(missing))
	assert.NotPanics(t, func() { reg.Notify(reading{1, 2, 3}) })

	added, err = reg.TryRegister(funcObserver(func(reading) {}))
	assert.False(t, added)
	require.ErrorIs(t, err, ErrNotComparable)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistryPanicPropagates(t *testing.T) {
	reg := NewRegistry[reading]()
	before := &recorder{}
	after := &recorder{}
	faulty := &stubObserver{}
	faulty.On("Update", mock.Anything).Panic("display broken")

	reg.Register(before)
	reg.Register(faulty)
	reg.Register(after)

	assert.Panics(t, func() { reg.Notify(reading{1, 1, 1}) })
	assert.Len(t, before.got, 1)
	assert.Empty(t, after.got, "observers after a panicking one are skipped")
	assert.Equal(t, 3, reg.Len(), "registry is unchanged by a failed delivery")
}

// selfRemover unregisters itself on the first update.
type selfRemover struct {
	reg   *Registry[reading]
	calls int
}

func (s *selfRemover) Update(reading) {
	s.calls++
	s.reg.Remove(s)
}

func TestRegistryMutationDuringNotify(t *testing.T) {
	reg := NewRegistry[reading]()
	s := &selfRemover{reg: reg}
	tail := &recorder{}
	reg.Register(s)
	reg.Register(tail)

	reg.Notify(reading{})
	reg.Notify(reading{})

	assert.Equal(t, 1, s.calls)
	assert.Len(t, tail.got, 2, "current delivery completes after removal")
}

func TestRegistryConcurrentUse(t *testing.T) {
	reg := NewRegistry[reading]()
	observers := make([]*recorder, 32)
	for i := range observers {
		observers[i] = &recorder{}
	}

	var wg sync.WaitGroup
	for _, o := range observers {
		wg.Add(1)
		go func(o *recorder) {
			defer wg.Done()
			reg.Register(o)
			reg.Notify(reading{A: 1})
		}(o)
	}
	wg.Wait()

	assert.Equal(t, len(observers), reg.Len())
}
