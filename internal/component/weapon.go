// internal/component/weapon.go
package component

import "go-survivors/internal/defs"

// Weapon is a weapon instance owned by the player. Stats start from a
// definition and are upgraded in place.
type Weapon struct {
	ID             string
	Name           string
	Archetype      defs.Archetype
	Damage         float64
	FireRate       float64 // attacks per second
	Range          float64
	CritChance     float64
	CritMultiplier float64
	Knockback      float64
	QueryBuffer    int

	ProjectileSpeed    float64
	ProjectileLifetime float64
	HitRadius          float64
	Pierce             int
	Missiles           int
	MeleeReach         float64
	CurseDuration      float64
	CurseDamage        float64
	CurseInterval      float64

	NextFireTime float64
}

const defaultQueryBuffer = 50

func NewWeapon(def defs.WeaponDefinition) *Weapon {
	w := &Weapon{
		ID:             def.ID,
		Name:           def.Name,
		Archetype:      def.Archetype,
		Damage:         def.Damage,
		FireRate:       def.FireRate,
		Range:          def.Range,
		CritChance:     def.CritChance,
		CritMultiplier: def.CritMultiplier,
		Knockback:      def.Knockback,
		QueryBuffer:    def.QueryBuffer,
		Missiles:       def.Missiles,
	}
	if w.QueryBuffer <= 0 {
		w.QueryBuffer = defaultQueryBuffer
	}
	if w.CritMultiplier == 0 {
		w.CritMultiplier = 1
	}
	if p := def.Projectile; p != nil {
		w.ProjectileSpeed = p.Speed
		w.ProjectileLifetime = p.Lifetime
		w.HitRadius = p.HitRadius
		w.Pierce = p.Pierce
	}
	if m := def.Melee; m != nil {
		w.MeleeReach = m.Reach
	}
	if c := def.Curse; c != nil {
		w.CurseDuration = c.Duration
		w.CurseDamage = c.Damage
		w.CurseInterval = c.Interval
	}
	return w
}

// CanAttack is the cadence gate.
func (w *Weapon) CanAttack(now float64) bool {
	return now >= w.NextFireTime
}

// Interval is the time between attacks at the current fire rate.
func (w *Weapon) Interval() float64 {
	if w.FireRate <= 0 {
		return 0
	}
	return 1 / w.FireRate
}

// MarkFired schedules the next attack from now using the current rate.
func (w *Weapon) MarkFired(now float64) {
	w.NextFireTime = now + w.Interval()
}

func (w *Weapon) UpgradeDamage(mult float64)   { w.Damage *= mult }
func (w *Weapon) UpgradeFireRate(mult float64) { w.FireRate *= mult }
func (w *Weapon) UpgradeRange(add float64)     { w.Range += add }
