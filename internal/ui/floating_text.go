// internal/ui/floating_text.go
package ui

import (
	"strconv"

	"go-survivors/internal/config"
	"go-survivors/internal/event"
	"go-survivors/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxFloatingTexts = 128

// Projector maps world points to screen pixels.
type Projector interface {
	ToScreen(p geom.Vec2) (float32, float32)
}

type floatingText struct {
	pos  geom.Vec2
	text string
	crit bool
	age  float64
}

// FloatingTexts shows damage numbers rising above hit enemies.
type FloatingTexts struct {
	items []floatingText
}

func NewFloatingTexts(dispatcher *event.Dispatcher) *FloatingTexts {
	f := &FloatingTexts{items: make([]floatingText, 0, maxFloatingTexts)}
	dispatcher.Subscribe(event.DamageDealt, f)
	return f
}

// OnEvent реализует интерфейс event.Listener.
func (f *FloatingTexts) OnEvent(e event.Event) {
	d, ok := e.Data.(event.DamageDealtData)
	if !ok {
		return
	}
	if len(f.items) == maxFloatingTexts {
		// вытесняем самый старый
		copy(f.items, f.items[1:])
		f.items = f.items[:len(f.items)-1]
	}
	label := strconv.Itoa(int(d.Amount + 0.5))
	if d.Crit {
		label += "!"
	}
	f.items = append(f.items, floatingText{pos: d.Position, text: label, crit: d.Crit})
}

// Update ages the texts with unscaled time, so they keep rising while the
// simulation is paused.
func (f *FloatingTexts) Update(realDt float64) {
	live := f.items[:0]
	for _, it := range f.items {
		it.age += realDt
		if it.age >= config.FloatingTextLifetime {
			continue
		}
		it.pos.Y -= config.FloatingTextRise * realDt
		live = append(live, it)
	}
	f.items = live
}

func (f *FloatingTexts) Draw(screen *ebiten.Image, proj Projector) {
	for _, it := range f.items {
		x, y := proj.ToScreen(it.pos)
		clr := config.TextLightColor
		if it.crit {
			clr = config.CritTextColor
		}
		clr.A = uint8(255 * (1 - it.age/config.FloatingTextLifetime))
		DrawCentered(screen, it.text, DefaultFace, int(x), int(y), clr)
	}
}

func (f *FloatingTexts) Clear() { f.items = f.items[:0] }

func (f *FloatingTexts) Len() int { return len(f.items) }
