// internal/spatial/spatial.go
package spatial

import (
	"go-survivors/internal/entity"
	"go-survivors/pkg/geom"
)

// Layer filters queries to one population.
type Layer uint8

const (
	LayerEnemy Layer = iota
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Querier answers point/radius overlap queries.
//
// QueryRadius appends to buf[:0] the handles on layer whose current position
// lies within radius of center and returns the result. At most cap(buf)
// handles are returned. Enumeration order is deterministic for a given
// population.
type Querier interface {
	QueryRadius(layer Layer, center geom.Vec2, radius float64, buf []entity.Handle) []entity.Handle
}

// Source exposes the live populations to an index.
type Source interface {
	// EachOnLayer visits every active entity on layer.
	EachOnLayer(layer Layer, fn func(h entity.Handle, pos geom.Vec2) bool)
	// PositionOf returns the current position of an active entity; ok is
	// false once the entity has been released.
	PositionOf(layer Layer, h entity.Handle) (geom.Vec2, bool)
}

// Scan is a linear Querier over a Source.
type Scan struct {
	Src Source
}

func (s Scan) QueryRadius(layer Layer, center geom.Vec2, radius float64, buf []entity.Handle) []entity.Handle {
	out := buf[:0]
	if s.Src == nil || cap(buf) == 0 || radius < 0 {
		return out
	}
	s.Src.EachOnLayer(layer, func(h entity.Handle, pos geom.Vec2) bool {
		if geom.Within(center, pos, radius) {
			out = append(out, h)
		}
		return len(out) < cap(out)
	})
	return out
}
