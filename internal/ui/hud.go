// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-survivors/internal/app"
	"go-survivors/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// HUD собирает индикаторы игрока, волны и кнопки.
type HUD struct {
	Health *PlayerHealthIndicator
	Level  *PlayerLevelIndicator
	Wave   *WaveIndicator
	Pause  *PauseButton
	Speed  *SpeedButton
}

var speedColors = []color.RGBA{config.PanelStroke, config.XPBarColor, config.CritTextColor}

func NewHUD(g *app.Game) *HUD {
	m := float32(config.HUDMargin)
	return &HUD{
		Health: NewPlayerHealthIndicator(m, m),
		Level:  NewPlayerLevelIndicator(m, m+config.HUDBarHeight+8),
		Wave:   NewWaveIndicator(config.ScreenWidth/2, config.HUDMargin+12, g.World.Cfg.Spawn.BossWaveEvery),
		Pause:  NewPauseButton(config.ScreenWidth-m-14, m+14, 10, config.PanelStroke, config.OrbColor),
		Speed:  NewSpeedButton(config.ScreenWidth-m-64, m+14, 10, speedColors),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, g *app.Game) {
	if p := g.Player(); p != nil {
		h.Health.Draw(screen, p.Health, p.MaxHealth)
	}
	h.Level.Draw(screen, g.CurrentLevel(), g.LevelProgress(), g.PendingUpgrades())
	h.Wave.Draw(screen, g.CurrentWave())

	h.Pause.SetPaused(g.IsPaused())
	h.Pause.Draw(screen)
	h.Speed.SetState(g.SpeedState())
	h.Speed.Draw(screen)

	stats := fmt.Sprintf("TIME %s  KILLS %d  ENEMIES %d", clockString(g.GameTime()), g.Kills(), g.EnemyCount())
	text.Draw(screen, stats, DefaultFace, config.HUDMargin, config.ScreenHeight-config.HUDMargin, config.TextLightColor)
}

func clockString(sec float64) string {
	s := int(sec)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
