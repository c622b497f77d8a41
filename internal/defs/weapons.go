// internal/defs/weapons.go
package defs

// WeaponDefinition holds the base stats of a weapon. Fields that an
// archetype does not use are ignored by it.
type WeaponDefinition struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Archetype      Archetype `json:"archetype" yaml:"archetype"`
	Damage         float64   `json:"damage" yaml:"damage"`
	FireRate       float64   `json:"fire_rate" yaml:"fire_rate"` // attacks per second
	Range          float64   `json:"range" yaml:"range"`
	CritChance     float64   `json:"crit_chance" yaml:"crit_chance"`
	CritMultiplier float64   `json:"crit_multiplier" yaml:"crit_multiplier"`
	Knockback      float64   `json:"knockback" yaml:"knockback"`
	QueryBuffer    int       `json:"query_buffer" yaml:"query_buffer"`
	Secondary      bool      `json:"secondary" yaml:"secondary"`

	Projectile *ProjectileParams `json:"projectile,omitempty" yaml:"projectile,omitempty"`
	Melee      *MeleeParams      `json:"melee,omitempty" yaml:"melee,omitempty"`
	Curse      *CurseParams      `json:"curse,omitempty" yaml:"curse,omitempty"`
	Missiles   int               `json:"missiles" yaml:"missiles"`
}

// ProjectileParams defines parameters for projectile-based archetypes.
type ProjectileParams struct {
	Speed     float64 `json:"speed" yaml:"speed"`
	Lifetime  float64 `json:"lifetime" yaml:"lifetime"`
	Pierce    int     `json:"pierce" yaml:"pierce"`
	HitRadius float64 `json:"hit_radius" yaml:"hit_radius"`
}

// MeleeParams places the slash point ahead of the wielder.
type MeleeParams struct {
	Reach float64 `json:"reach" yaml:"reach"`
}

// CurseParams defines a damage-over-time effect.
type CurseParams struct {
	Duration float64 `json:"duration" yaml:"duration"`
	Damage   float64 `json:"damage" yaml:"damage"`
	Interval float64 `json:"interval" yaml:"interval"`
}
