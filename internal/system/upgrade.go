// internal/system/upgrade.go
package system

import (
	"go-survivors/internal/clock"
	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
)

// fallback values when a definition leaves Value at zero
var defaultUpgradeValue = map[defs.UpgradeKind]float64{
	defs.UpgradeDamage:   1.2,
	defs.UpgradeFireRate: 1.3,
	defs.UpgradeRange:    2,
	defs.UpgradeSpeed:    1.15,
	defs.UpgradeHealth:   20,
}

// UpgradeSystem runs the level-up choice flow: one offer per queued
// level-up, shown one at a time while the simulation clock is held.
type UpgradeSystem struct {
	w      *World
	prog   *ProgressionSystem
	player *PlayerSystem
	combat *CombatSystem
	offer  []component.Upgrade
}

func NewUpgradeSystem(w *World, prog *ProgressionSystem, player *PlayerSystem, combat *CombatSystem) *UpgradeSystem {
	return &UpgradeSystem{w: w, prog: prog, player: player, combat: combat}
}

// Open shows the next offer if none is showing and a level-up is queued.
func (s *UpgradeSystem) Open() bool {
	if s.offer != nil {
		return true
	}
	for s.prog.takePending() {
		opts := s.RollOptions(s.w.Cfg.Progression.UpgradeChoices)
		if len(opts) == 0 {
			s.w.Log.Warn("UpgradeSystem: upgrade pool is empty, level-up skipped")
			continue
		}
		s.offer = opts
		s.w.Clock.Pause(clock.ReasonUpgrade)

		data := event.UpgradeOfferedData{
			Level:   s.w.Progress.Level - s.prog.Pending(),
			Pending: s.prog.Pending(),
		}
		for _, u := range opts {
			data.Options = append(data.Options, event.UpgradeOption{Name: u.Name, Description: u.Description, Kind: u.Kind})
		}
		s.w.Events.Dispatch(event.Event{Type: event.UpgradeOffered, Data: data})
		return true
	}
	return false
}

// Offer returns the options currently shown, or nil.
func (s *UpgradeSystem) Offer() []component.Upgrade { return s.offer }

// Select applies option i of the current offer and moves on to the next
// queued level-up, or resumes the simulation.
func (s *UpgradeSystem) Select(i int) bool {
	if s.offer == nil || i < 0 || i >= len(s.offer) {
		return false
	}
	u := s.offer[i]
	s.offer = nil
	if s.Apply(u) {
		s.w.Events.Dispatch(event.Event{
			Type: event.UpgradeApplied,
			Data: event.UpgradeAppliedData{Option: event.UpgradeOption{Name: u.Name, Description: u.Description, Kind: u.Kind}},
		})
	}
	if !s.Open() {
		s.w.Clock.Resume(clock.ReasonUpgrade)
	}
	return true
}

// RollOptions draws up to n distinct upgrades: the pool is shuffled and the
// first n are taken.
func (s *UpgradeSystem) RollOptions(n int) []component.Upgrade {
	var pool []component.Upgrade
	for _, d := range s.w.Defs.Upgrades {
		if d.Kind == defs.UpgradeSecondaryWeapon && len(s.unownedSecondaries()) == 0 {
			continue
		}
		pool = append(pool, component.Upgrade{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Kind:        string(d.Kind),
			Value:       d.Value,
		})
	}
	s.w.Rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

// Apply mutates player or weapon stats in place. Unknown kinds are logged
// and not applied.
func (s *UpgradeSystem) Apply(u component.Upgrade) bool {
	p := s.w.Player
	if p == nil {
		return false
	}
	kind := defs.UpgradeKind(u.Kind)
	v := u.Value
	if v == 0 {
		v = defaultUpgradeValue[kind]
	}

	switch kind {
	case defs.UpgradeDamage:
		for _, w := range p.Weapons {
			w.UpgradeDamage(v)
		}
	case defs.UpgradeFireRate:
		for _, w := range p.Weapons {
			w.UpgradeFireRate(v)
		}
	case defs.UpgradeRange:
		for _, w := range p.Weapons {
			w.UpgradeRange(v)
		}
	case defs.UpgradeSpeed:
		p.MoveSpeed *= v
	case defs.UpgradeHealth:
		s.player.IncreaseMaxHealth(v)
	case defs.UpgradeSecondaryWeapon:
		choices := s.unownedSecondaries()
		if len(choices) == 0 {
			s.w.Log.Warn("UpgradeSystem: no secondary weapon left to grant")
			return false
		}
		def := choices[s.w.Rng.Intn(len(choices))]
		s.combat.AddSecondaryWeapon(def)
		s.w.Log.Info("UpgradeSystem: secondary weapon granted", "weapon", def.ID)
	default:
		s.w.Log.Warn("UpgradeSystem: unknown upgrade type", "kind", u.Kind, "name", u.Name)
		return false
	}
	s.w.Log.Debug("UpgradeSystem: applied upgrade", "name", u.Name)
	return true
}

func (s *UpgradeSystem) unownedSecondaries() []defs.WeaponDefinition {
	var out []defs.WeaponDefinition
	for _, d := range s.w.Defs.Secondaries() {
		if s.w.Player == nil || !s.w.Player.HasWeapon(d.ID) {
			out = append(out, d)
		}
	}
	return out
}

// Reset drops the current offer.
func (s *UpgradeSystem) Reset() { s.offer = nil }
