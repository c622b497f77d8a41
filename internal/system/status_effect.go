// internal/system/status_effect.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
)

// StatusEffectSystem ticks curses. A curse dies with its enemy: the pool
// resets it on release, so a recycled owner never takes more ticks.
type StatusEffectSystem struct {
	w      *World
	damage *DamageSystem
}

func NewStatusEffectSystem(w *World, damage *DamageSystem) *StatusEffectSystem {
	return &StatusEffectSystem{w: w, damage: damage}
}

func (s *StatusEffectSystem) Update(dt float64) {
	s.w.Enemies.Each(func(h entity.Handle, e *component.Enemy) bool {
		if e.Dead || !e.Curse.Active {
			return true
		}
		dmg := e.Curse.Damage
		ticks := e.Curse.Advance(dt)
		for i := 0; i < ticks; i++ {
			if s.damage.TakeDamage(h, dmg, false) {
				break // released; e is no longer ours
			}
		}
		return true
	})
}
