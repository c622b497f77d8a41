// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Health        float64 `json:"health" yaml:"health"`
	Speed         float64 `json:"speed" yaml:"speed"`
	ContactDamage float64 `json:"contact_damage" yaml:"contact_damage"`
	XPReward      int     `json:"xp_reward" yaml:"xp_reward"`
	Weight        int     `json:"weight" yaml:"weight"`
	Boss          bool    `json:"boss" yaml:"boss"`
	Visuals       Visuals `json:"visuals" yaml:"visuals"`
}

// GetWeight makes enemy definitions usable in weighted draws.
func (d EnemyDefinition) GetWeight() int { return d.Weight }
