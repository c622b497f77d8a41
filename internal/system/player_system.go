// internal/system/player_system.go
package system

import (
	"go-survivors/internal/clock"
	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/pkg/geom"
)

// PlayerSystem moves the player and owns its health.
type PlayerSystem struct {
	w *World
}

func NewPlayerSystem(w *World) *PlayerSystem {
	return &PlayerSystem{w: w}
}

// Spawn places a fresh player at pos holding the primary weapon.
func (s *PlayerSystem) Spawn(pos geom.Vec2, primary defs.WeaponDefinition) *component.Player {
	cfg := s.w.Cfg.Player
	p := &component.Player{
		Position:     pos,
		Facing:       geom.V(1, 0),
		MoveSpeed:    cfg.MoveSpeed,
		Acceleration: cfg.Acceleration,
		Deceleration: cfg.Deceleration,
		Health:       cfg.MaxHealth,
		MaxHealth:    cfg.MaxHealth,
		Alive:        true,
		Weapons:      []*component.Weapon{component.NewWeapon(primary)},
	}
	s.w.Player = p
	return p
}

// SetInput records the desired movement direction; it is normalized.
func (s *PlayerSystem) SetInput(dir geom.Vec2) {
	if p := s.w.Player; p != nil {
		p.Input = dir.Norm()
	}
}

func (s *PlayerSystem) Update(dt float64) {
	p := s.w.Player
	if p == nil || !p.Alive {
		return
	}
	if p.HurtTimer > 0 {
		p.HurtTimer -= dt
	}

	target := p.Input.Scale(p.MoveSpeed)
	rate := p.Deceleration
	if !p.Input.IsZero() {
		rate = p.Acceleration
		p.Facing = p.Input
	}
	p.Velocity = geom.MoveTowards(p.Velocity, target, rate*dt)
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}

// TakeDamage applies contact damage, gated by the hurt cooldown. It returns
// true when the damage was applied.
func (s *PlayerSystem) TakeDamage(amount float64) bool {
	p := s.w.Player
	if p == nil || !p.Alive || amount <= 0 || p.HurtTimer > 0 {
		return false
	}
	p.HurtTimer = s.w.Cfg.Player.HurtCooldown
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	s.w.Events.Dispatch(event.Event{
		Type: event.PlayerDamaged,
		Data: event.PlayerDamagedData{Amount: amount, Health: p.Health},
	})
	if p.Health <= 0 {
		s.die()
	}
	return true
}

func (s *PlayerSystem) die() {
	p := s.w.Player
	p.Alive = false
	p.Velocity = geom.Vec2{}
	s.w.Clock.Pause(clock.ReasonGameOver)
	s.w.Log.Info("PlayerSystem: player died", "wave", s.w.Spawn.Wave, "level", s.w.Progress.Level, "kills", s.w.Kills)
	s.w.Events.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{
			Wave:     s.w.Spawn.Wave,
			Level:    s.w.Progress.Level,
			Kills:    s.w.Kills,
			Survived: s.w.Now(),
		},
	})
}

func (s *PlayerSystem) Heal(amount float64) {
	p := s.w.Player
	if p == nil || !p.Alive || amount <= 0 {
		return
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// IncreaseMaxHealth raises the maximum and heals by the same amount.
func (s *PlayerSystem) IncreaseMaxHealth(amount float64) {
	p := s.w.Player
	if p == nil || !p.Alive {
		return
	}
	p.MaxHealth += amount
	p.Health += amount
}
