// internal/system/enemy_system.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/spatial"
	"go-survivors/pkg/geom"
)

// Impulser applies a knockback impulse to a body.
type Impulser interface {
	ApplyImpulse(h entity.Handle, impulse geom.Vec2)
}

// EnemySystem runs pursuit, knockback, contact damage and the distance
// cleanup sweep.
type EnemySystem struct {
	w            *World
	player       *PlayerSystem
	cleanupTimer float64
}

func NewEnemySystem(w *World, player *PlayerSystem) *EnemySystem {
	return &EnemySystem{w: w, player: player}
}

func (s *EnemySystem) Update(dt float64) {
	cfg := s.w.Cfg.Enemy
	playerPos, hasPlayer := s.w.PlayerPos()
	damping := 1 - cfg.KnockbackDamping*dt
	if damping < 0 {
		damping = 0
	}

	s.w.Enemies.Each(func(h entity.Handle, e *component.Enemy) bool {
		if e.FlashTimer > 0 {
			e.FlashTimer -= dt
		}
		if !e.Knockback.IsZero() {
			e.Position = e.Position.Add(e.Knockback.Scale(dt))
			e.Knockback = e.Knockback.Scale(damping)
			if e.Knockback.LenSq() < 1e-4 {
				e.Knockback = geom.Vec2{}
			}
		}
		if !hasPlayer {
			return true
		}

		dir := playerPos.Sub(e.Position).Norm()
		e.Position = e.Position.Add(dir.Scale(e.MoveSpeed * dt))
		if dir.X > 0 {
			e.FacingLeft = false
		} else if dir.X < 0 {
			e.FacingLeft = true
		}

		if s.player != nil && geom.Within(e.Position, playerPos, cfg.ContactRadius+e.Radius) {
			s.player.TakeDamage(e.ContactDamage)
		}
		return true
	})
	s.w.Grid.Rebuild(spatial.LayerEnemy)

	s.cleanupTimer += dt
	if s.cleanupTimer >= cfg.CleanupInterval {
		s.cleanupTimer = 0
		s.Sweep()
	}
}

// Sweep recycles enemies farther than the configured distance from the
// player. No XP is granted for them.
func (s *EnemySystem) Sweep() int {
	playerPos, ok := s.w.PlayerPos()
	if !ok {
		return 0
	}
	limit := s.w.Cfg.Enemy.MaxDistanceFromPlayer
	removed := 0
	s.w.Enemies.Each(func(h entity.Handle, e *component.Enemy) bool {
		if e.Boss {
			return true
		}
		if !geom.Within(e.Position, playerPos, limit) && s.w.ReleaseEnemy(h, false) {
			removed++
		}
		return true
	})
	if removed > 0 {
		s.w.Log.Debug("EnemySystem: recycled distant enemies", "count", removed)
	}
	return removed
}

// ApplyImpulse implements Impulser; stale handles are ignored.
func (s *EnemySystem) ApplyImpulse(h entity.Handle, impulse geom.Vec2) {
	if e, ok := s.w.Enemies.Get(h); ok && !e.Dead {
		e.Knockback = e.Knockback.Add(impulse)
	}
}

// ResetTimers restarts the cleanup cadence.
func (s *EnemySystem) ResetTimers() { s.cleanupTimer = 0 }
