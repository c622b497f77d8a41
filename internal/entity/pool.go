// internal/entity/pool.go
package entity

type slotState uint8

const (
	slotFree slotState = iota
	slotReserved
	slotActive
)

type slot[T any] struct {
	value      *T
	generation uint32
	state      slotState
	activePos  int
}

// Pool recycles instances of T. Instances are allocated once and never
// freed; the pool grows on demand when the free list is empty.
//
// A slot is free (in the pool), reserved (acquired but not yet activated) or
// active. Only active slots are visited by Each and resolved by Get.
type Pool[T any] struct {
	slots  []slot[T]
	free   []uint32
	active []uint32

	newFn      func() *T
	deactivate func(*T)

	// iteration snapshots, one per nesting level of Each
	iterBufs [][]Handle
	depth    int
}

// NewPool creates a pool. newFn allocates a fresh instance; deactivate, if
// not nil, runs on every release before the slot returns to the free list.
func NewPool[T any](newFn func() *T, deactivate func(*T)) *Pool[T] {
	if newFn == nil {
		newFn = func() *T { return new(T) }
	}
	return &Pool[T]{
		newFn:      newFn,
		deactivate: deactivate,
	}
}

// Warm pre-allocates n free instances.
func (p *Pool[T]) Warm(n int) {
	for i := 0; i < n; i++ {
		idx := p.grow()
		p.free = append(p.free, idx)
	}
}

func (p *Pool[T]) grow() uint32 {
	idx := uint32(len(p.slots))
	p.slots = append(p.slots, slot[T]{
		value:      p.newFn(),
		generation: 1,
		state:      slotFree,
		activePos:  -1,
	})
	return idx
}

// Acquire reserves an instance and returns its handle. The instance is not
// active yet: the caller initializes it and then calls Activate.
func (p *Pool[T]) Acquire() (Handle, *T) {
	var idx uint32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		idx = p.grow()
	}
	s := &p.slots[idx]
	s.state = slotReserved
	return Handle{Index: idx, Generation: s.generation}, s.value
}

// Activate makes a reserved instance visible to Get and Each.
// It returns false for stale handles or slots that are not reserved.
func (p *Pool[T]) Activate(h Handle) bool {
	s := p.slot(h)
	if s == nil || s.state != slotReserved {
		return false
	}
	s.state = slotActive
	s.activePos = len(p.active)
	p.active = append(p.active, h.Index)
	return true
}

// Release returns the instance behind h to the pool. Releasing a stale
// handle or an instance that is already free is a no-op and returns false.
func (p *Pool[T]) Release(h Handle) bool {
	s := p.slot(h)
	if s == nil || s.state == slotFree {
		return false
	}
	if s.state == slotActive {
		p.removeActive(s)
	}
	s.state = slotFree
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	if p.deactivate != nil {
		p.deactivate(s.value)
	}
	p.free = append(p.free, h.Index)
	return true
}

func (p *Pool[T]) removeActive(s *slot[T]) {
	pos := s.activePos
	last := len(p.active) - 1
	if pos != last {
		moved := p.active[last]
		p.active[pos] = moved
		p.slots[moved].activePos = pos
	}
	p.active = p.active[:last]
	s.activePos = -1
}

func (p *Pool[T]) slot(h Handle) *slot[T] {
	if h.IsNil() || int(h.Index) >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.Index]
	if s.generation != h.Generation {
		return nil
	}
	return s
}

// Get resolves an active handle.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	s := p.slot(h)
	if s == nil || s.state != slotActive {
		return nil, false
	}
	return s.value, true
}

// Reserved resolves a handle that was acquired but not activated yet.
func (p *Pool[T]) Reserved(h Handle) (*T, bool) {
	s := p.slot(h)
	if s == nil || s.state != slotReserved {
		return nil, false
	}
	return s.value, true
}

// Alive reports whether h refers to an active instance.
func (p *Pool[T]) Alive(h Handle) bool {
	_, ok := p.Get(h)
	return ok
}

// Each visits active instances. The set of visited slots is fixed when Each
// starts; instances released during the walk are skipped, and instances
// activated during the walk are not visited. Returning false stops the walk.
func (p *Pool[T]) Each(fn func(h Handle, v *T) bool) {
	if p.depth == len(p.iterBufs) {
		p.iterBufs = append(p.iterBufs, nil)
	}
	buf := p.iterBufs[p.depth][:0]
	for _, idx := range p.active {
		buf = append(buf, Handle{Index: idx, Generation: p.slots[idx].generation})
	}
	p.iterBufs[p.depth] = buf
	p.depth++
	defer func() { p.depth-- }()

	for _, h := range buf {
		v, ok := p.Get(h)
		if !ok {
			continue
		}
		if !fn(h, v) {
			return
		}
	}
}

// Clear releases every active and reserved instance.
func (p *Pool[T]) Clear() int {
	n := 0
	for i := range p.slots {
		s := &p.slots[i]
		if s.state == slotFree {
			continue
		}
		if p.Release(Handle{Index: uint32(i), Generation: s.generation}) {
			n++
		}
	}
	return n
}

// Len returns the number of active instances.
func (p *Pool[T]) Len() int { return len(p.active) }

// Cap returns the number of instances ever allocated.
func (p *Pool[T]) Cap() int { return len(p.slots) }

// Free returns the number of instances waiting in the free list.
func (p *Pool[T]) Free() int { return len(p.free) }
