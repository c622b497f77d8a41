// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-survivors/internal/config"
	"go-survivors/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог забега; R начинает заново.
type GameOverState struct {
	sm   *StateMachine
	play *GameState
}

func NewGameOverState(sm *StateMachine, play *GameState) *GameOverState {
	return &GameOverState{sm: sm, play: play}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	// всплывающие цифры досматриваем
	s.play.texts.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.play.Restart()
		s.sm.SetState(s.play)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)

	sum := s.play.game.Summary()
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, "GAME OVER", ui.DefaultFace, cx, cy-40, config.FlashColor)
	line := fmt.Sprintf("wave %d   level %d   kills %d   %.0fs", sum.Wave, sum.Level, sum.Kills, sum.Survived)
	ui.DrawCentered(screen, line, ui.DefaultFace, cx, cy, config.TextLightColor)
	ui.DrawCentered(screen, "press R to restart", ui.DefaultFace, cx, cy+40, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
