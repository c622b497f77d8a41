// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton показывает множитель скорости двумя треугольниками.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, StateColors: stateColors}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float32{0, offset} {
		var path vector.Path
		path.MoveTo(b.X-width+dx, b.Y-height/2)
		path.LineTo(b.X+dx, b.Y)
		path.LineTo(b.X-width+dx, b.Y+height/2)
		path.Close()
		fillPath(screen, &path, clr)
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// круг, так как форма сложная
	dx, dy := float64(float32(x)-b.X), float64(float32(y)-b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size)*1.5
}

// SetState syncs the button with the game's speed state.
func (b *SpeedButton) SetState(state int) {
	if state != b.CurrentState {
		b.LastClickTime = time.Now()
	}
	b.CurrentState = state
}
