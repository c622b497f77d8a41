// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	cardPadding    = 12
	cardLineHeight = 16
	animationSpeed = 10.0
)

var dimColor = color.RGBA{0, 0, 0, 140}

// UpgradePanel shows the level-up choices as a row of cards. It listens for
// UpgradeOffered to animate in.
type UpgradePanel struct {
	IsVisible bool
	Level     int
	Pending   int
	cards     []image.Rectangle
	slide     float64 // 0 = off screen, 1 = in place
}

func NewUpgradePanel(dispatcher *event.Dispatcher) *UpgradePanel {
	p := &UpgradePanel{}
	dispatcher.Subscribe(event.UpgradeOffered, p)
	dispatcher.Subscribe(event.UpgradeApplied, p)
	return p
}

// OnEvent реализует интерфейс event.Listener.
func (p *UpgradePanel) OnEvent(e event.Event) {
	switch e.Type {
	case event.UpgradeOffered:
		if d, ok := e.Data.(event.UpgradeOfferedData); ok {
			p.IsVisible = true
			p.Level = d.Level
			p.Pending = d.Pending
			p.slide = 0
		}
	case event.UpgradeApplied:
		p.IsVisible = false
	}
}

// Layout places n cards centered on the screen.
func (p *UpgradePanel) Layout(n int) []image.Rectangle {
	p.cards = p.cards[:0]
	total := n*config.UpgradeCardW + (n-1)*config.UpgradeCardGap
	x := (config.ScreenWidth - total) / 2
	y := (config.ScreenHeight - config.UpgradeCardH) / 2
	for i := 0; i < n; i++ {
		p.cards = append(p.cards, image.Rect(x, y, x+config.UpgradeCardW, y+config.UpgradeCardH))
		x += config.UpgradeCardW + config.UpgradeCardGap
	}
	return p.cards
}

// HitTest returns the index of the card under (x, y), or -1.
func (p *UpgradePanel) HitTest(x, y int) int {
	pt := image.Pt(x, y)
	for i, r := range p.cards {
		if pt.In(r) {
			return i
		}
	}
	return -1
}

// Update advances the slide-in with unscaled time.
func (p *UpgradePanel) Update(realDt float64) {
	if !p.IsVisible {
		return
	}
	p.slide += (1 - p.slide) * animationSpeed * realDt
	if p.slide > 0.999 {
		p.slide = 1
	}
}

func (p *UpgradePanel) Draw(screen *ebiten.Image, offer []component.Upgrade, hover int) {
	if len(offer) == 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, dimColor, false)

	title := fmt.Sprintf("LEVEL %d", p.Level)
	if p.Pending > 0 {
		title += fmt.Sprintf("  (+%d more)", p.Pending)
	}
	cards := p.Layout(len(offer))
	DrawCentered(screen, title, DefaultFace, config.ScreenWidth/2, cards[0].Min.Y-30, config.TextLightColor)

	lift := int((1 - p.slide) * config.UpgradeCardH)
	for i, u := range offer {
		r := cards[i].Add(image.Pt(0, lift))
		b := NewButton(r, "")
		b.Draw(screen, i == hover)

		x := r.Min.X + cardPadding
		y := r.Min.Y + cardPadding + cardLineHeight
		text.Draw(screen, fmt.Sprintf("%d. %s", i+1, u.Name), DefaultFace, x, y, config.CritTextColor)
		for _, line := range wrap(u.Description, (config.UpgradeCardW-2*cardPadding)/7) {
			y += cardLineHeight
			text.Draw(screen, line, DefaultFace, x, y, config.TextLightColor)
		}
	}
}

// wrap splits s into lines of at most width characters on word boundaries.
func wrap(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
