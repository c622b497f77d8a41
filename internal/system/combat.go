// internal/system/combat.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/spatial"
	"go-survivors/pkg/geom"
)

const defaultHitRadius = 0.3

// CombatSystem управляет атакой оружия игрока.
type CombatSystem struct {
	w        *World
	damage   *DamageSystem
	impulser Impulser
	target   *Targeter
	warned   map[string]bool
}

func NewCombatSystem(w *World, damage *DamageSystem, impulser Impulser) *CombatSystem {
	return &CombatSystem{
		w:        w,
		damage:   damage,
		impulser: impulser,
		target:   NewTargeter(w),
		warned:   make(map[string]bool),
	}
}

func (s *CombatSystem) Update(now float64) {
	p := s.w.Player
	if p == nil || !p.Alive {
		return
	}
	for _, wpn := range p.Weapons {
		if wpn.CanAttack(now) && s.attack(p, wpn) {
			wpn.MarkFired(now)
		}
	}
}

// attack runs one cadence tick of wpn and reports whether an attack was
// executed.
func (s *CombatSystem) attack(p *component.Player, wpn *component.Weapon) bool {
	origin := p.Position
	switch wpn.Archetype {
	case defs.ArchetypeMelee:
		slash := origin.Add(p.Facing.Norm().Scale(wpn.MeleeReach))
		for _, h := range s.target.InRange(slash, wpn.Range, wpn.QueryBuffer) {
			s.Hit(h, wpn.Damage, wpn.CritChance, wpn.CritMultiplier, wpn.Knockback, origin)
		}
		return true

	case defs.ArchetypeAOE:
		for _, h := range s.target.InRange(origin, wpn.Range, wpn.QueryBuffer) {
			s.Hit(h, wpn.Damage, wpn.CritChance, wpn.CritMultiplier, wpn.Knockback, origin)
		}
		return true

	case defs.ArchetypeDOT:
		for _, h := range s.target.InRange(origin, wpn.Range, wpn.QueryBuffer) {
			if e, ok := s.w.Enemies.Get(h); ok && !e.Dead {
				e.Curse.Apply(wpn.CurseDuration, wpn.CurseDamage, wpn.CurseInterval)
			}
		}
		return true

	case defs.ArchetypeRanged:
		cands := s.target.InRange(origin, wpn.Range, wpn.QueryBuffer)
		h, ok := Nearest(s.w, cands, origin)
		if !ok {
			return false
		}
		pos, _ := s.w.PositionOf(spatial.LayerEnemy, h)
		s.fire(wpn, origin, pos.Sub(origin), entity.Nil)
		return true

	case defs.ArchetypeHoming:
		cands := s.target.InRange(origin, wpn.Range, wpn.QueryBuffer)
		h, ok := RandomValid(s.w, s.w.Rng, cands)
		if !ok {
			return false
		}
		pos, _ := s.w.PositionOf(spatial.LayerEnemy, h)
		s.fire(wpn, origin, pos.Sub(origin), h)
		return true

	case defs.ArchetypeMultiMissile:
		cands := s.target.InRange(origin, wpn.Range, wpn.QueryBuffer)
		if len(cands) == 0 {
			return false
		}
		fired := false
		for i := 0; i < wpn.Missiles; i++ {
			h, ok := RandomValid(s.w, s.w.Rng, cands)
			if !ok {
				break
			}
			pos, _ := s.w.PositionOf(spatial.LayerEnemy, h)
			s.fire(wpn, origin, pos.Sub(origin), h)
			fired = true
		}
		return fired

	default:
		if !s.warned[wpn.ID] {
			s.warned[wpn.ID] = true
			s.w.Log.Warn("CombatSystem: weapon has no configured archetype", "weapon", wpn.ID, "archetype", string(wpn.Archetype))
		}
		return false
	}
}

func (s *CombatSystem) fire(wpn *component.Weapon, origin, dir geom.Vec2, target entity.Handle) {
	if dir.IsZero() {
		dir = geom.V(1, 0)
	}
	radius := wpn.HitRadius
	if radius <= 0 {
		radius = defaultHitRadius
	}
	h, pr := s.w.Projectiles.Acquire()
	pr.Activate(component.Shot{
		Weapon:         wpn.ID,
		Origin:         origin,
		Direction:      dir,
		Speed:          wpn.ProjectileSpeed,
		Damage:         wpn.Damage,
		CritChance:     wpn.CritChance,
		CritMultiplier: wpn.CritMultiplier,
		Knockback:      wpn.Knockback,
		Lifetime:       wpn.ProjectileLifetime,
		HitRadius:      radius,
		Pierce:         wpn.Pierce,
		Target:         target,
	})
	s.w.Projectiles.Activate(h)
}

// Hit rolls damage for one hit on h and applies knockback away from `from`.
func (s *CombatSystem) Hit(h entity.Handle, base, critChance, critMult, knockback float64, from geom.Vec2) {
	pos, ok := s.w.PositionOf(spatial.LayerEnemy, h)
	if !ok {
		return
	}
	amount, crit := s.damage.RollDamage(base, critChance, critMult)
	killed := s.damage.TakeDamage(h, amount, crit)
	if !killed && knockback > 0 && s.impulser != nil {
		s.impulser.ApplyImpulse(h, pos.Sub(from).Norm().Scale(knockback))
	}
}

// SetPrimaryWeapon swaps the primary weapon, keeping secondaries.
func (s *CombatSystem) SetPrimaryWeapon(def defs.WeaponDefinition) bool {
	p := s.w.Player
	if p == nil {
		return false
	}
	wpn := component.NewWeapon(def)
	if len(p.Weapons) == 0 {
		p.Weapons = append(p.Weapons, wpn)
	} else {
		p.Weapons[0] = wpn
	}
	return true
}

// AddSecondaryWeapon gives the player another weapon.
func (s *CombatSystem) AddSecondaryWeapon(def defs.WeaponDefinition) bool {
	p := s.w.Player
	if p == nil {
		return false
	}
	wpn := component.NewWeapon(def)
	wpn.NextFireTime = s.w.Now()
	p.Weapons = append(p.Weapons, wpn)
	return true
}
