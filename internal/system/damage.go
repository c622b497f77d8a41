// internal/system/damage.go
package system

import (
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/pkg/geom"
)

// XPDropper receives the reward of a dead enemy.
type XPDropper interface {
	DropXP(pos geom.Vec2, value int, boss bool)
}

// DamageSystem resolves hits and the death transition of enemies.
type DamageSystem struct {
	w     *World
	drops XPDropper
}

func NewDamageSystem(w *World, drops XPDropper) *DamageSystem {
	return &DamageSystem{w: w, drops: drops}
}

// RollDamage applies an independent crit trial to base.
func (s *DamageSystem) RollDamage(base, critChance, critMultiplier float64) (float64, bool) {
	if s.w.Rng.Chance(critChance) {
		return base * critMultiplier, true
	}
	return base, false
}

// TakeDamage damages the enemy behind h. A dead or recycled enemy absorbs
// the call. It returns true when this call killed the enemy.
func (s *DamageSystem) TakeDamage(h entity.Handle, amount float64, crit bool) bool {
	e, ok := s.w.Enemies.Get(h)
	if !ok || e.Dead || amount <= 0 {
		return false
	}
	e.Health -= amount
	e.FlashTimer = s.w.Cfg.Enemy.FlashDuration
	s.w.Events.Post(event.Event{
		Type: event.DamageDealt,
		Data: event.DamageDealtData{Target: h, Position: e.Position, Amount: amount, Crit: crit},
	})
	if e.Health > 0 {
		return false
	}

	e.Health = 0
	e.Dead = true
	killed := event.EnemyKilledData{
		Enemy:    h,
		Kind:     e.Kind,
		Position: e.Position,
		XP:       e.XPReward,
		Boss:     e.Boss,
	}
	if s.drops != nil && killed.XP > 0 {
		s.drops.DropXP(killed.Position, killed.XP, killed.Boss)
	}
	s.OnEnemyKilled(killed)
	// release last: nothing may touch e after this
	s.w.ReleaseEnemy(h, true)
	return true
}

// OnEnemyKilled counts the kill and notifies listeners.
func (s *DamageSystem) OnEnemyKilled(data event.EnemyKilledData) {
	s.w.Kills++
	s.w.Events.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
}
