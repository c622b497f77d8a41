// internal/component/projectile.go
package component

import (
	"go-survivors/internal/entity"
	"go-survivors/pkg/geom"
)

// Shot carries everything a weapon hands to a projectile on fire.
type Shot struct {
	Weapon         string
	Origin         geom.Vec2
	Direction      geom.Vec2
	Speed          float64
	Damage         float64
	CritChance     float64
	CritMultiplier float64
	Knockback      float64
	Lifetime       float64
	HitRadius      float64
	Pierce         int
	Target         entity.Handle // nil for straight shots
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	Weapon         string
	Position       geom.Vec2
	Direction      geom.Vec2 // единичный вектор
	Speed          float64
	Damage         float64
	CritChance     float64
	CritMultiplier float64
	Knockback      float64
	Remaining      float64
	HitRadius      float64
	Pierce         int // extra enemies it may pass through
	Homing         bool
	Target         entity.Handle // weak
	hits           []entity.Handle
}

func (p *Projectile) Activate(s Shot) {
	hits := p.hits[:0]
	*p = Projectile{
		Weapon:         s.Weapon,
		Position:       s.Origin,
		Direction:      s.Direction.Norm(),
		Speed:          s.Speed,
		Damage:         s.Damage,
		CritChance:     s.CritChance,
		CritMultiplier: s.CritMultiplier,
		Knockback:      s.Knockback,
		Remaining:      s.Lifetime,
		HitRadius:      s.HitRadius,
		Pierce:         s.Pierce,
		Homing:         !s.Target.IsNil(),
		Target:         s.Target,
		hits:           hits,
	}
}

func (p *Projectile) Deactivate() {
	hits := p.hits[:0]
	*p = Projectile{hits: hits}
}

// HasHit reports whether h was already struck by this projectile.
func (p *Projectile) HasHit(h entity.Handle) bool {
	for _, x := range p.hits {
		if x == h {
			return true
		}
	}
	return false
}

func (p *Projectile) MarkHit(h entity.Handle) {
	p.hits = append(p.hits, h)
}

// HitCount is the number of distinct enemies struck.
func (p *Projectile) HitCount() int { return len(p.hits) }
