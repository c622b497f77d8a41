// internal/system/progression.go
package system

import (
	"go-survivors/internal/event"
)

// ProgressionSystem grants XP and counts level-ups waiting for an upgrade
// choice.
type ProgressionSystem struct {
	w       *World
	pending int
}

func NewProgressionSystem(w *World) *ProgressionSystem {
	return &ProgressionSystem{w: w}
}

// GainXP adds amount and levels up as many times as it covers. Every level
// gained queues one upgrade choice. It returns the number of levels gained.
func (s *ProgressionSystem) GainXP(amount float64) int {
	p := &s.w.Progress
	if amount <= 0 || p.AtMax() {
		return 0
	}
	p.XP += amount

	gained := 0
	for p.XP >= p.XPToNext && p.Level < p.MaxLevel {
		p.XP -= p.XPToNext
		p.Level++
		p.XPToNext = p.Threshold(p.Level)
		gained++
		s.pending++
		s.w.Events.Dispatch(event.Event{
			Type: event.LevelUp,
			Data: event.LevelUpData{Level: p.Level, XPToNext: p.XPToNext},
		})
	}
	if gained > 0 {
		s.w.Log.Debug("ProgressionSystem: level up", "level", p.Level, "gained", gained, "xp", p.XP)
	}
	return gained
}

func (s *ProgressionSystem) CurrentLevel() int { return s.w.Progress.Level }

// Progress is the fill ratio of the XP bar.
func (s *ProgressionSystem) Progress() float64 {
	p := s.w.Progress
	if p.XPToNext <= 0 {
		return 0
	}
	return p.XP / p.XPToNext
}

// Pending is the number of level-ups without a chosen upgrade.
func (s *ProgressionSystem) Pending() int { return s.pending }

// takePending consumes one queued level-up.
func (s *ProgressionSystem) takePending() bool {
	if s.pending == 0 {
		return false
	}
	s.pending--
	return true
}

func (s *ProgressionSystem) Reset() { s.pending = 0 }
