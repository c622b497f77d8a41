// internal/spatial/grid.go
package spatial

import (
	"math"

	"go-survivors/internal/entity"
	"go-survivors/pkg/geom"
)

type cellKey struct {
	X, Y int32
}

type layerIndex struct {
	cells map[cellKey][]entity.Handle
	dirty bool
}

// Grid is a uniform bucket index over an unbounded plane. Buckets are
// rebuilt from the Source; candidates are re-validated against the Source at
// query time, so released entities never appear in results and positions
// are always current. An entity that crossed a cell border since the last
// rebuild can be missed until the next Rebuild.
type Grid struct {
	src      Source
	cellSize float64
	layers   [layerCount]layerIndex
}

func NewGrid(src Source, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 4
	}
	g := &Grid{src: src, cellSize: cellSize}
	for i := range g.layers {
		g.layers[i] = layerIndex{cells: make(map[cellKey][]entity.Handle), dirty: true}
	}
	return g
}

func (g *Grid) key(p geom.Vec2) cellKey {
	return cellKey{
		X: int32(math.Floor(p.X / g.cellSize)),
		Y: int32(math.Floor(p.Y / g.cellSize)),
	}
}

// MarkDirty forces a rebuild of layer before its next query.
func (g *Grid) MarkDirty(layer Layer) {
	if layer < layerCount {
		g.layers[layer].dirty = true
	}
}

// Rebuild re-buckets every active entity on layer.
func (g *Grid) Rebuild(layer Layer) {
	if layer >= layerCount {
		return
	}
	li := &g.layers[layer]
	for k, bucket := range li.cells {
		li.cells[k] = bucket[:0]
	}
	g.src.EachOnLayer(layer, func(h entity.Handle, pos geom.Vec2) bool {
		k := g.key(pos)
		li.cells[k] = append(li.cells[k], h)
		return true
	})
	// арена не ограничена: пустые ячейки удаляются
	for k, bucket := range li.cells {
		if len(bucket) == 0 {
			delete(li.cells, k)
		}
	}
	li.dirty = false
}

func (g *Grid) QueryRadius(layer Layer, center geom.Vec2, radius float64, buf []entity.Handle) []entity.Handle {
	out := buf[:0]
	if layer >= layerCount || cap(buf) == 0 || radius < 0 {
		return out
	}
	li := &g.layers[layer]
	if li.dirty {
		g.Rebuild(layer)
	}

	c := g.key(center)
	lo := g.key(geom.V(center.X-radius, center.Y-radius))
	hi := g.key(geom.V(center.X+radius, center.Y+radius))
	rings := max(c.X-lo.X, hi.X-c.X, c.Y-lo.Y, hi.Y-c.Y)

	// ячейки обходятся кольцами от центра, чтобы при полном buf
	// в результат попали ближайшие
	for r := int32(0); r <= rings; r++ {
		for y := c.Y - r; y <= c.Y+r; y++ {
			if y < lo.Y || y > hi.Y {
				continue
			}
			step := int32(1)
			if r > 0 && y != c.Y-r && y != c.Y+r {
				step = 2 * r
			}
			for x := c.X - r; x <= c.X+r; x += step {
				if x < lo.X || x > hi.X {
					continue
				}
				for _, h := range li.cells[cellKey{x, y}] {
					pos, ok := g.src.PositionOf(layer, h)
					if !ok || !geom.Within(center, pos, radius) {
						continue
					}
					out = append(out, h)
					if len(out) == cap(out) {
						return out
					}
				}
			}
		}
	}
	return out
}
