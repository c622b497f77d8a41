// internal/state/game_state.go
package state

import (
	"go-survivors/internal/app"
	"go-survivors/internal/render"
	"go-survivors/internal/ui"
	"go-survivors/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var upgradeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// GameState — состояние игры: ввод, симуляция и отрисовка одного забега.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.WorldRenderer
	hud      *ui.HUD
	panel    *ui.UpgradePanel
	texts    *ui.FloatingTexts
	hover    int
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	return &GameState{
		sm:       sm,
		game:     g,
		renderer: render.NewWorldRenderer(g),
		hud:      ui.NewHUD(g),
		panel:    ui.NewUpgradePanel(g.EventDispatcher),
		texts:    ui.NewFloatingTexts(g.EventDispatcher),
		hover:    -1,
	}
}

// GetGame returns the run behind this state.
func (g *GameState) GetGame() *app.Game { return g.game }

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	g.texts.Update(deltaTime)
	g.panel.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.game.HandleSpeedClick()
	}

	if offer := g.game.UpgradeOffer(); len(offer) > 0 {
		g.handleUpgradeInput(len(offer))
	} else {
		g.game.SetInput(readMovement())
		g.handleClick()
	}

	g.game.Update(deltaTime)

	if g.game.IsGameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g))
	}
}

func (g *GameState) handleUpgradeInput(n int) {
	g.game.SetInput(geom.Vec2{})
	for i, k := range upgradeKeys {
		if i < n && inpututil.IsKeyJustPressed(k) {
			g.game.SelectUpgrade(i)
			return
		}
	}
	x, y := ebiten.CursorPosition()
	g.hover = g.panel.HitTest(x, y)
	if g.hover >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.game.SelectUpgrade(g.hover)
		g.hover = -1
	}
}

// handleClick обрабатывает клики по кнопкам HUD.
func (g *GameState) handleClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	switch {
	case g.hud.Pause.IsClicked(x, y):
		g.game.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
	case g.hud.Speed.IsClicked(x, y):
		g.game.HandleSpeedClick()
	}
}

func readMovement() geom.Vec2 {
	var dir geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X++
	}
	return dir
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game)
	g.texts.Draw(screen, g.renderer.Camera)
	g.hud.Draw(screen, g.game)
	g.panel.Draw(screen, g.game.UpgradeOffer(), g.hover)
}

// Restart начинает новый забег в том же состоянии.
func (g *GameState) Restart() {
	g.game.Restart()
	g.texts.Clear()
	g.panel.IsVisible = false
	g.hover = -1
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
