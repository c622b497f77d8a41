// internal/component/player.go
package component

import "go-survivors/pkg/geom"

// Player хранит тело игрока, здоровье и оружие.
type Player struct {
	Position     geom.Vec2
	Velocity     geom.Vec2
	Input        geom.Vec2 // желаемое направление, задаётся снаружи
	Facing       geom.Vec2 // last non-zero move direction
	MoveSpeed    float64
	Acceleration float64
	Deceleration float64
	Health       float64
	MaxHealth    float64
	HurtTimer    float64
	Alive        bool
	Weapons      []*Weapon // [0] is the primary
}

// HasWeapon reports whether a weapon with id is owned.
func (p *Player) HasWeapon(id string) bool {
	for _, w := range p.Weapons {
		if w.ID == id {
			return true
		}
	}
	return false
}
