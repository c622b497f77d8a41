// internal/clock/clock.go
package clock

// Reason identifies who holds a pause. The scaled clock is stopped while any
// reason is held, so a player pause and an upgrade menu do not resume each
// other.
type Reason uint8

const (
	ReasonUser Reason = 1 << iota
	ReasonUpgrade
	ReasonGameOver
)

// Clock tracks two timelines advanced by ticks: scaled simulation time and
// unscaled presentation time.
type Clock struct {
	scale    float64
	held     Reason
	now      float64
	unscaled float64
	paused   float64 // unscaled seconds spent with scale 0
}

func New() *Clock {
	return &Clock{scale: 1}
}

// Tick advances both timelines by realDt and returns the scaled delta.
func (c *Clock) Tick(realDt float64) float64 {
	if realDt <= 0 {
		return 0
	}
	c.unscaled += realDt
	dt := realDt * c.Scale()
	if dt == 0 {
		c.paused += realDt
		return 0
	}
	c.now += dt
	return dt
}

// Scale returns the effective scale: zero while paused.
func (c *Clock) Scale() float64 {
	if c.held != 0 {
		return 0
	}
	return c.scale
}

// SetScale sets the base time scale. Zero stops the scaled clock.
func (c *Clock) SetScale(s float64) {
	if s < 0 {
		s = 0
	}
	c.scale = s
}

func (c *Clock) Pause(r Reason)  { c.held |= r }
func (c *Clock) Resume(r Reason) { c.held &^= r }

// Holding reports whether r currently holds the clock paused.
func (c *Clock) Holding(r Reason) bool { return c.held&r != 0 }

// Paused reports whether scaled time is stopped.
func (c *Clock) Paused() bool { return c.Scale() == 0 }

// Now is scaled simulation time in seconds.
func (c *Clock) Now() float64 { return c.now }

// Unscaled is presentation time in seconds; it keeps running while paused.
func (c *Clock) Unscaled() float64 { return c.unscaled }

// PausedTotal is the unscaled time spent with the scaled clock stopped.
func (c *Clock) PausedTotal() float64 { return c.paused }

// Reset rewinds both timelines and clears every pause.
func (c *Clock) Reset() {
	*c = Clock{scale: 1}
}
