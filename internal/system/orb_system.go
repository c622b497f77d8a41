// internal/system/orb_system.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/pkg/geom"
)

// XPSink receives collected experience.
type XPSink interface {
	GainXP(amount float64) int
}

// OrbSystem spawns, attracts and collects XP orbs.
type OrbSystem struct {
	w            *World
	sink         XPSink
	cleanupTimer float64
}

func NewOrbSystem(w *World, sink XPSink) *OrbSystem {
	return &OrbSystem{w: w, sink: sink}
}

// SpawnXPOrb drops one orb near pos.
func (s *OrbSystem) SpawnXPOrb(pos geom.Vec2, value int) entity.Handle {
	cfg := s.w.Cfg.Orb
	h, o := s.w.Orbs.Acquire()
	o.Activate(s.w.Rng.InsideCircle(pos, cfg.SpawnRadius), value, cfg.Lifetime)
	s.w.Orbs.Activate(h)
	return h
}

// SpawnXPOrbs drops count orbs of value each, spread evenly on a circle.
func (s *OrbSystem) SpawnXPOrbs(pos geom.Vec2, value, count int) {
	if count <= 0 {
		return
	}
	r := s.w.Cfg.Orb.SpawnRadius
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		s.SpawnXPOrb(pos.Add(geom.FromAngle(angle).Scale(r)), value)
	}
}

// DropXP implements XPDropper. Bosses split their reward over several orbs.
func (s *OrbSystem) DropXP(pos geom.Vec2, value int, boss bool) {
	n := s.w.Cfg.Spawn.BossOrbCount
	if !boss || n <= 1 {
		s.SpawnXPOrb(pos, value)
		return
	}
	per, rest := value/n, value%n
	if per < 1 {
		per, rest = 1, 0
	}
	r := s.w.Cfg.Orb.SpawnRadius
	for i := 0; i < n; i++ {
		v := per
		if i == 0 {
			v += rest
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		s.SpawnXPOrb(pos.Add(geom.FromAngle(angle).Scale(r)), v)
	}
}

func (s *OrbSystem) Update(dt float64) {
	cfg := s.w.Cfg.Orb
	playerPos, hasPlayer := s.w.PlayerPos()

	s.w.Orbs.Each(func(h entity.Handle, o *component.XPOrb) bool {
		o.Age += dt
		o.Remaining -= dt
		if o.Remaining <= 0 {
			s.w.Orbs.Release(h)
			return true
		}
		if !hasPlayer {
			return true
		}

		dsq := geom.DistSq(o.Position, playerPos)
		if o.State == component.OrbAttracted || dsq <= cfg.AttractRange*cfg.AttractRange {
			speed := cfg.MoveSpeed
			if o.State == component.OrbAttracted {
				speed = cfg.AttractSpeed
			}
			o.Position = geom.MoveTowards(o.Position, playerPos, speed*dt)
			dsq = geom.DistSq(o.Position, playerPos)
		}
		if dsq <= cfg.CollectRange*cfg.CollectRange {
			s.collect(h, o)
		}
		return true
	})

	s.cleanupTimer += dt
	if s.cleanupTimer >= cfg.CleanupInterval {
		s.cleanupTimer = 0
		s.Sweep()
	}
}

func (s *OrbSystem) collect(h entity.Handle, o *component.XPOrb) {
	if o.Collected {
		return
	}
	o.Collected = true
	value := o.Value
	s.w.Orbs.Release(h)
	s.w.Events.Post(event.Event{Type: event.XPCollected, Data: event.XPCollectedData{Amount: value}})
	if s.sink != nil {
		s.sink.GainXP(float64(value))
	}
}

// Sweep recycles orbs too far from the player.
func (s *OrbSystem) Sweep() int {
	playerPos, ok := s.w.PlayerPos()
	if !ok {
		return 0
	}
	limit := s.w.Cfg.Orb.CleanupDistance
	removed := 0
	s.w.Orbs.Each(func(h entity.Handle, o *component.XPOrb) bool {
		if !geom.Within(o.Position, playerPos, limit) && s.w.Orbs.Release(h) {
			removed++
		}
		return true
	})
	return removed
}

// AttractAll pulls every active orb toward the player.
func (s *OrbSystem) AttractAll() {
	s.w.Orbs.Each(func(_ entity.Handle, o *component.XPOrb) bool {
		o.State = component.OrbAttracted
		return true
	})
}

// ClearAll returns every orb to the pool without granting XP.
func (s *OrbSystem) ClearAll() int {
	return s.w.Orbs.Clear()
}

func (s *OrbSystem) ActiveCount() int { return s.w.Orbs.Len() }

func (s *OrbSystem) ResetTimers() { s.cleanupTimer = 0 }
