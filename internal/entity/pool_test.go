// internal/entity/pool_test.go
package entity

import "testing"

type probe struct {
	hp     float64
	timer  float64
	active bool
}

func newProbePool() *Pool[probe] {
	return NewPool(func() *probe { return &probe{} }, func(p *probe) {
		p.active = false
		p.timer = 0
	})
}

func TestAcquireIsReservedUntilActivated(t *testing.T) {
	p := newProbePool()
	h, v := p.Acquire()
	if v == nil {
		t.Fatal("Acquire returned nil instance")
	}
	if _, ok := p.Get(h); ok {
		t.Fatal("reserved instance must not resolve through Get")
	}
	if _, ok := p.Reserved(h); !ok {
		t.Fatal("reserved instance must resolve through Reserved")
	}
	if !p.Activate(h) {
		t.Fatal("Activate failed on reserved handle")
	}
	if p.Activate(h) {
		t.Fatal("second Activate must fail")
	}
	if got, ok := p.Get(h); !ok || got != v {
		t.Fatalf("Get after Activate: got %p,%v want %p,true", got, ok, v)
	}
	if p.Len() != 1 {
		t.Fatalf("Len: got %d want 1", p.Len())
	}
}

func TestNoAliasingBetweenActiveInstances(t *testing.T) {
	p := newProbePool()
	seen := map[*probe]bool{}
	for i := 0; i < 64; i++ {
		h, v := p.Acquire()
		p.Activate(h)
		if seen[v] {
			t.Fatalf("instance %p handed out twice", v)
		}
		seen[v] = true
	}
	if p.Cap() != 64 || p.Len() != 64 {
		t.Fatalf("Cap/Len: got %d/%d want 64/64", p.Cap(), p.Len())
	}
}

func TestDoubleReleaseIsNoOp(t *testing.T) {
	released := 0
	p := NewPool(func() *probe { return &probe{} }, func(*probe) { released++ })
	h, _ := p.Acquire()
	p.Activate(h)

	if !p.Release(h) {
		t.Fatal("first Release must succeed")
	}
	if p.Release(h) {
		t.Fatal("second Release must be a no-op")
	}
	if released != 1 {
		t.Fatalf("deactivate calls: got %d want 1", released)
	}
	if p.Free() != 1 {
		t.Fatalf("free list: got %d want 1", p.Free())
	}

	// the slot is reused; the stale handle must not release the new occupant
	h2, _ := p.Acquire()
	p.Activate(h2)
	if h2.Index != h.Index {
		t.Fatalf("expected slot reuse, got index %d want %d", h2.Index, h.Index)
	}
	if p.Release(h) {
		t.Fatal("stale handle released a reused slot")
	}
	if !p.Alive(h2) {
		t.Fatal("new occupant was disturbed by stale release")
	}
}

func TestStaleHandleFailsValidation(t *testing.T) {
	p := newProbePool()
	h, _ := p.Acquire()
	p.Activate(h)
	p.Release(h)
	if _, ok := p.Get(h); ok {
		t.Fatal("released handle still resolves")
	}
	if _, ok := p.Get(Nil); ok {
		t.Fatal("nil handle resolves")
	}
	if _, ok := p.Get(Handle{Index: 99, Generation: 1}); ok {
		t.Fatal("out-of-range handle resolves")
	}
}

func TestReleaseThenReacquireRunsDeactivate(t *testing.T) {
	p := newProbePool()
	h, v := p.Acquire()
	v.timer = 3
	v.active = true
	p.Activate(h)
	p.Release(h)

	_, v2 := p.Acquire()
	if v2 != v {
		t.Fatal("expected the same instance back")
	}
	if v2.timer != 0 || v2.active {
		t.Fatalf("stale state leaked: %+v", *v2)
	}
}

func TestEachSkipsReleasedDuringIteration(t *testing.T) {
	p := newProbePool()
	var hs []Handle
	for i := 0; i < 5; i++ {
		h, v := p.Acquire()
		v.hp = float64(i)
		p.Activate(h)
		hs = append(hs, h)
	}

	visited := 0
	p.Each(func(h Handle, v *probe) bool {
		visited++
		// release everyone else on the first visit
		if visited == 1 {
			for _, o := range hs {
				if o != h {
					p.Release(o)
				}
			}
			// new activations during the walk are not visited
			nh, _ := p.Acquire()
			p.Activate(nh)
		}
		return true
	})
	if visited != 1 {
		t.Fatalf("visited: got %d want 1", visited)
	}
	if p.Len() != 2 {
		t.Fatalf("Len after walk: got %d want 2", p.Len())
	}
}

func TestEachNested(t *testing.T) {
	p := newProbePool()
	for i := 0; i < 3; i++ {
		h, _ := p.Acquire()
		p.Activate(h)
	}
	pairs := 0
	p.Each(func(Handle, *probe) bool {
		p.Each(func(Handle, *probe) bool {
			pairs++
			return true
		})
		return true
	})
	if pairs != 9 {
		t.Fatalf("pairs: got %d want 9", pairs)
	}
}

func TestClearReleasesEverything(t *testing.T) {
	p := newProbePool()
	p.Warm(4)
	if p.Free() != 4 || p.Len() != 0 {
		t.Fatalf("after Warm: free %d len %d", p.Free(), p.Len())
	}
	for i := 0; i < 3; i++ {
		h, _ := p.Acquire()
		p.Activate(h)
	}
	p.Acquire() // reserved only
	if n := p.Clear(); n != 4 {
		t.Fatalf("Clear: got %d want 4", n)
	}
	if p.Len() != 0 || p.Free() != 4 {
		t.Fatalf("after Clear: len %d free %d", p.Len(), p.Free())
	}
}
