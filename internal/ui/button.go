// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	BgColor    color.RGBA
	HoverColor color.RGBA
	Face       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		BgColor:    config.PanelColor,
		HoverColor: color.RGBA{60, 60, 90, 240},
		Face:       DefaultFace,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; hover подсвечивает её.
func (b *Button) Draw(screen *ebiten.Image, hover bool) {
	bg := b.BgColor
	if hover {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.PanelStroke, false)
	c := b.Rect.Min.Add(b.Rect.Size().Div(2))
	DrawCentered(screen, b.Text, b.Face, c.X, c.Y, config.TextLightColor)
}
