// internal/component/status_effect.go
package component

const tickEpsilon = 1e-9

// Curse is a damage-over-time effect owned by an enemy.
type Curse struct {
	Active    bool
	Remaining float64 // How much time is left for the effect.
	Damage    float64 // Damage per tick.
	Interval  float64
	Timer     float64 // Time since the last tick.
}

// Apply starts the curse or refreshes its duration. The tick phase of a
// running curse is kept.
func (c *Curse) Apply(duration, damage, interval float64) {
	if interval <= 0 {
		interval = 1
	}
	if !c.Active {
		c.Timer = 0
	}
	c.Active = true
	c.Remaining = duration
	c.Damage = damage
	c.Interval = interval
}

// Advance moves the effect by dt and returns how many damage ticks fell due.
func (c *Curse) Advance(dt float64) int {
	if !c.Active {
		return 0
	}
	step := dt
	if step > c.Remaining {
		step = c.Remaining
	}
	c.Remaining -= dt
	c.Timer += step
	ticks := 0
	for c.Timer >= c.Interval-tickEpsilon {
		c.Timer -= c.Interval
		ticks++
	}
	if c.Remaining <= 0 {
		*c = Curse{}
	}
	return ticks
}
