// internal/component/orb.go
package component

import "go-survivors/pkg/geom"

type OrbState uint8

const (
	OrbIdle OrbState = iota
	OrbAttracted
)

func (s OrbState) String() string {
	if s == OrbAttracted {
		return "attracted"
	}
	return "idle"
}

// XPOrb is a pickup dropped by a dead enemy.
type XPOrb struct {
	Position  geom.Vec2
	Value     int
	State     OrbState
	Remaining float64
	Lifetime  float64
	Age       float64
	Collected bool
}

func (o *XPOrb) Activate(pos geom.Vec2, value int, lifetime float64) {
	*o = XPOrb{
		Position:  pos,
		Value:     value,
		Remaining: lifetime,
		Lifetime:  lifetime,
	}
}

func (o *XPOrb) Deactivate() {
	*o = XPOrb{}
}

// Alpha returns draw opacity, fading linearly over the last fade seconds.
func (o *XPOrb) Alpha(fade float64) float64 {
	if fade <= 0 || o.Remaining >= fade {
		return 1
	}
	if o.Remaining <= 0 {
		return 0
	}
	return o.Remaining / fade
}

// GrowScale is the pop-in scale for the first d seconds after spawning.
func (o *XPOrb) GrowScale(d float64) float64 {
	if d <= 0 || o.Age >= d {
		return 1
	}
	return o.Age / d
}
