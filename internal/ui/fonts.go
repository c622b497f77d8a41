// internal/ui/fonts.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — встроенный растровый шрифт, не требует файлов.
var DefaultFace font.Face = basicfont.Face7x13

// DrawCentered рисует строку с центром в (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b, _ := font.BoundString(face, s)
	w := (b.Max.X - b.Min.X).Ceil()
	h := (b.Max.Y - b.Min.Y).Ceil()
	text.Draw(screen, s, face, cx-w/2, cy+h/2, clr)
}

// DrawOutlined рисует текст с обводкой толщиной thickness пикселей.
func DrawOutlined(screen *ebiten.Image, s string, face font.Face, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, face, x, y, clr)
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
