// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const borderWidth = 1

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор. progress — доля опыта до следующего уровня, от 0 до 1.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level int, progress float64, pending int) {
	w, h := float32(config.HUDBarWidth), float32(config.HUDBarHeight)
	// 1. Рисуем белую обводку для полосы опыта
	vector.StrokeRect(screen, i.X, i.Y, w, h, borderWidth, config.PanelStroke, true)

	// 2. Рисуем заполненную часть полосы опыта
	if progress > 1 {
		progress = 1
	}
	fillWidth := float32(float64(w-borderWidth*2) * progress)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, h-borderWidth*2, config.XPBarColor, true)
	}

	// 3. Подпись уровня справа от полосы
	label := fmt.Sprintf("LV %d", level)
	if pending > 0 {
		label += fmt.Sprintf(" (+%d)", pending)
	}
	text.Draw(screen, label, DefaultFace, int(i.X+w)+8, int(i.Y+h), config.TextLightColor)
}
