// internal/spatial/grid_test.go
package spatial

import (
	"testing"

	"go-survivors/internal/entity"
	"go-survivors/pkg/geom"
)

type dot struct {
	pos geom.Vec2
}

type fakeSource struct {
	pool *entity.Pool[dot]
}

func newFakeSource() *fakeSource {
	return &fakeSource{pool: entity.NewPool[dot](nil, nil)}
}

func (f *fakeSource) add(x, y float64) entity.Handle {
	h, d := f.pool.Acquire()
	d.pos = geom.V(x, y)
	f.pool.Activate(h)
	return h
}

func (f *fakeSource) EachOnLayer(layer Layer, fn func(entity.Handle, geom.Vec2) bool) {
	if layer != LayerEnemy {
		return
	}
	f.pool.Each(func(h entity.Handle, d *dot) bool { return fn(h, d.pos) })
}

func (f *fakeSource) PositionOf(layer Layer, h entity.Handle) (geom.Vec2, bool) {
	if layer != LayerEnemy {
		return geom.Vec2{}, false
	}
	d, ok := f.pool.Get(h)
	if !ok {
		return geom.Vec2{}, false
	}
	return d.pos, true
}

func queriers(src Source) map[string]Querier {
	return map[string]Querier{
		"scan": Scan{Src: src},
		"grid": NewGrid(src, 2),
	}
}

func TestQueryRadiusFiltersByDistance(t *testing.T) {
	src := newFakeSource()
	in := src.add(1, 0)
	src.add(3, 3)
	edge := src.add(0, -2)

	for name, q := range queriers(src) {
		got := q.QueryRadius(LayerEnemy, geom.V(0, 0), 2, make([]entity.Handle, 0, 8))
		if len(got) != 2 {
			t.Fatalf("%s: got %d handles want 2", name, len(got))
		}
		found := map[entity.Handle]bool{}
		for _, h := range got {
			found[h] = true
		}
		if !found[in] || !found[edge] {
			t.Fatalf("%s: missing expected handles in %v", name, got)
		}
	}
}

func TestQueryRadiusIsBoundedByBuffer(t *testing.T) {
	src := newFakeSource()
	for i := 0; i < 10; i++ {
		src.add(float64(i)*0.1, 0)
	}
	for name, q := range queriers(src) {
		got := q.QueryRadius(LayerEnemy, geom.V(0, 0), 5, make([]entity.Handle, 0, 3))
		if len(got) != 3 {
			t.Fatalf("%s: got %d want 3", name, len(got))
		}
	}
}

func TestReleasedEntityInvisibleSameTick(t *testing.T) {
	src := newFakeSource()
	h := src.add(0.5, 0.5)
	g := NewGrid(src, 2)
	g.Rebuild(LayerEnemy)

	src.pool.Release(h)
	if got := g.QueryRadius(LayerEnemy, geom.V(0, 0), 3, make([]entity.Handle, 0, 4)); len(got) != 0 {
		t.Fatalf("released entity returned: %v", got)
	}
}

func TestGridOrderIsDeterministic(t *testing.T) {
	src := newFakeSource()
	for i := 0; i < 20; i++ {
		src.add(float64(i%5)-2, float64(i/5)-2)
	}
	g := NewGrid(src, 1.5)
	first := append([]entity.Handle(nil), g.QueryRadius(LayerEnemy, geom.V(0, 0), 4, make([]entity.Handle, 0, 32))...)
	for n := 0; n < 5; n++ {
		g.MarkDirty(LayerEnemy)
		got := g.QueryRadius(LayerEnemy, geom.V(0, 0), 4, make([]entity.Handle, 0, 32))
		if len(got) != len(first) {
			t.Fatalf("run %d: len %d want %d", n, len(got), len(first))
		}
		for i := range got {
			if got[i] != first[i] {
				t.Fatalf("run %d: order differs at %d", n, i)
			}
		}
	}
}

func TestUnknownLayerIsEmpty(t *testing.T) {
	src := newFakeSource()
	src.add(0, 0)
	for name, q := range queriers(src) {
		if got := q.QueryRadius(layerCount, geom.V(0, 0), 10, make([]entity.Handle, 0, 4)); len(got) != 0 {
			t.Fatalf("%s: unknown layer returned %v", name, got)
		}
	}
}

func TestRebuildDropsEmptyCells(t *testing.T) {
	src := newFakeSource()
	h := src.add(0, 0)
	g := NewGrid(src, 2)
	for i := 1; i <= 50; i++ {
		d, _ := src.pool.Get(h)
		d.pos = geom.V(float64(i)*10, float64(-i)*10)
		g.Rebuild(LayerEnemy)
	}
	if n := len(g.layers[LayerEnemy].cells); n != 1 {
		t.Fatalf("cells after wandering: got %d want 1", n)
	}
}

func TestFullBufferKeepsCentreCell(t *testing.T) {
	src := newFakeSource()
	for i := 0; i < 8; i++ {
		src.add(-0.5-float64(i)*0.05, -0.5)
	}
	near := src.add(1.2, 1)
	g := NewGrid(src, 2)
	got := g.QueryRadius(LayerEnemy, geom.V(1, 1), 3, make([]entity.Handle, 0, 1))
	if len(got) != 1 || got[0] != near {
		t.Fatalf("got %v want [%v]", got, near)
	}
}
