// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float64) {
	w, h := float32(config.HUDBarWidth), float32(config.HUDBarHeight)
	vector.DrawFilledRect(screen, i.X, i.Y, w, h, config.PanelColor, false)
	if maxHealth > 0 && health > 0 {
		ratio := health / maxHealth
		if ratio > 1 {
			ratio = 1
		}
		vector.DrawFilledRect(screen, i.X, i.Y, w*float32(ratio), h, config.HealthBarColor, false)
	}
	vector.StrokeRect(screen, i.X, i.Y, w, h, borderWidth, config.PanelStroke, true)

	// Текстовое отображение здоровья справа
	healthText := strconv.Itoa(int(health+0.5)) + "/" + strconv.Itoa(int(maxHealth+0.5))
	text.Draw(screen, healthText, DefaultFace, int(i.X+w)+8, int(i.Y+h), config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 { return config.HUDBarHeight }
