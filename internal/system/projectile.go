// internal/system/projectile.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/spatial"
	"go-survivors/pkg/geom"
)

// hitQueryBuffer bounds how many overlaps one projectile resolves per tick.
const hitQueryBuffer = 8

// ProjectileSystem moves projectiles and resolves their hits.
type ProjectileSystem struct {
	w      *World
	combat *CombatSystem
	buf    []entity.Handle
}

func NewProjectileSystem(w *World, combat *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{w: w, combat: combat, buf: make([]entity.Handle, 0, hitQueryBuffer)}
}

func (s *ProjectileSystem) Update(dt float64) {
	s.w.Projectiles.Each(func(h entity.Handle, p *component.Projectile) bool {
		p.Remaining -= dt
		if p.Remaining <= 0 {
			s.w.Projectiles.Release(h)
			return true
		}

		if p.Homing {
			// weak target: never steer toward a recycled enemy
			tp, ok := s.w.PositionOf(spatial.LayerEnemy, p.Target)
			if !ok {
				s.w.Projectiles.Release(h)
				return true
			}
			if d := tp.Sub(p.Position); !d.IsZero() {
				p.Direction = d.Norm()
			}
		}
		p.Position = p.Position.Add(p.Direction.Scale(p.Speed * dt))

		if s.resolveHits(p) {
			s.w.Projectiles.Release(h)
		}
		return true
	})
}

// resolveHits damages overlapped enemies and reports whether the projectile
// is spent.
func (s *ProjectileSystem) resolveHits(p *component.Projectile) bool {
	reach := p.HitRadius + s.w.maxEnemyRadius
	for _, eh := range s.w.Query.QueryRadius(spatial.LayerEnemy, p.Position, reach, s.buf[:0]) {
		if p.HasHit(eh) {
			continue
		}
		e, ok := s.w.Enemies.Get(eh)
		if !ok || e.Dead || !geom.Within(p.Position, e.Position, p.HitRadius+e.Radius) {
			continue
		}
		p.MarkHit(eh)
		s.combat.Hit(eh, p.Damage, p.CritChance, p.CritMultiplier, p.Knockback, p.Position.Sub(p.Direction))
		if p.HitCount() > p.Pierce {
			return true
		}
	}
	return false
}
