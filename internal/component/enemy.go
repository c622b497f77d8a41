// internal/component/enemy.go
package component

import (
	"go-survivors/internal/defs"
	"go-survivors/pkg/geom"
)

// Enemy представляет вражескую сущность из пула.
type Enemy struct {
	Kind          string // ID из definitions
	Boss          bool
	Position      geom.Vec2
	Knockback     geom.Vec2 // затухающая скорость отбрасывания
	Health        float64
	MaxHealth     float64
	MoveSpeed     float64
	ContactDamage float64
	XPReward      int
	Radius        float64
	FacingLeft    bool
	FlashTimer    float64
	Dead          bool
	Curse         Curse
}

// Activate reinitializes every mutable field from def.
func (e *Enemy) Activate(def defs.EnemyDefinition, pos geom.Vec2) {
	*e = Enemy{
		Kind:          def.ID,
		Boss:          def.Boss,
		Position:      pos,
		Health:        def.Health,
		MaxHealth:     def.Health,
		MoveSpeed:     def.Speed,
		ContactDamage: def.ContactDamage,
		XPReward:      def.XPReward,
		Radius:        def.Visuals.Radius,
	}
}

func (e *Enemy) Deactivate() {
	*e = Enemy{}
}

// Flashing reports whether the hit flash is showing.
func (e *Enemy) Flashing() bool { return e.FlashTimer > 0 }
