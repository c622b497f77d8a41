// internal/component/game_state.go
package component

import "math"

// Progression is the player's level state.
type Progression struct {
	Level    int
	XP       float64
	XPToNext float64
	Base     float64
	Growth   float64
	MaxLevel int
}

func NewProgression(base, growth float64, maxLevel int) Progression {
	p := Progression{Level: 1, Base: base, Growth: growth, MaxLevel: maxLevel}
	p.XPToNext = p.Threshold(1)
	return p
}

// Threshold is the XP needed to leave level.
func (p Progression) Threshold(level int) float64 {
	return p.Base * math.Pow(p.Growth, float64(level-1))
}

// AtMax reports whether the level cap is reached.
func (p Progression) AtMax() bool { return p.Level >= p.MaxLevel }

// SpawnState is the wave engine state.
type SpawnState struct {
	Wave        int
	SpawnRate   float64 // admissions per second
	MaxEnemies  int
	Elapsed     float64
	NextSpawnAt float64
	NextWaveAt  float64
	Active      int
}

// Upgrade is the descriptor shown to the player in an upgrade offer.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Kind        string
	Value       float64
}
