// internal/system/targeting.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/internal/spatial"
	"go-survivors/internal/utils"
	"go-survivors/pkg/geom"
)

// Targeter runs bounded enemy queries and the selection strategies over
// their results.
type Targeter struct {
	w   *World
	buf []entity.Handle
}

func NewTargeter(w *World) *Targeter {
	return &Targeter{w: w}
}

// InRange returns at most limit live enemies within radius of origin. The
// slice is reused by the next call.
func (t *Targeter) InRange(origin geom.Vec2, radius float64, limit int) []entity.Handle {
	if limit <= 0 || t.w.Query == nil {
		return nil
	}
	if cap(t.buf) < limit {
		t.buf = make([]entity.Handle, 0, limit)
	}
	return t.w.Query.QueryRadius(spatial.LayerEnemy, origin, radius, t.buf[:0:limit])
}

// Nearest returns the candidate with the smallest squared distance to
// origin. Ties go to the first candidate found.
func Nearest(src spatial.Source, candidates []entity.Handle, origin geom.Vec2) (entity.Handle, bool) {
	best := entity.Nil
	bestDist := 0.0
	for _, h := range candidates {
		pos, ok := src.PositionOf(spatial.LayerEnemy, h)
		if !ok {
			continue
		}
		d := geom.DistSq(origin, pos)
		if best.IsNil() || d < bestDist {
			best, bestDist = h, d
		}
	}
	return best, !best.IsNil()
}

// RandomValid picks a live candidate uniformly.
func RandomValid(src spatial.Source, rng *utils.PRNGService, candidates []entity.Handle) (entity.Handle, bool) {
	n := 0
	for _, h := range candidates {
		if _, ok := src.PositionOf(spatial.LayerEnemy, h); ok {
			n++
		}
	}
	if n == 0 {
		return entity.Nil, false
	}
	pick := rng.Intn(n)
	for _, h := range candidates {
		if _, ok := src.PositionOf(spatial.LayerEnemy, h); !ok {
			continue
		}
		if pick == 0 {
			return h, true
		}
		pick--
	}
	return entity.Nil, false
}
