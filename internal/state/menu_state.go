// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	weaponButtonW   = 150
	weaponButtonH   = 40
	weaponButtonGap = 16
)

var weaponKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// MenuState — стартовый экран с выбором основного оружия.
type MenuState struct {
	sm      *StateMachine
	game    *app.Game
	ids     []string
	buttons []*ui.Button
	hover   int
}

func NewMenuState(sm *StateMachine, g *app.Game) *MenuState {
	m := &MenuState{sm: sm, game: g, hover: -1}
	weapons := g.PrimaryWeapons()
	if len(weapons) > len(weaponKeys) {
		weapons = weapons[:len(weaponKeys)]
	}
	total := len(weapons)*weaponButtonW + (len(weapons)-1)*weaponButtonGap
	x := (config.ScreenWidth - total) / 2
	y := config.ScreenHeight/2 + 20
	for i, w := range weapons {
		name := w.Name
		if name == "" {
			name = w.ID
		}
		rect := image.Rect(x, y, x+weaponButtonW, y+weaponButtonH)
		m.ids = append(m.ids, w.ID)
		m.buttons = append(m.buttons, ui.NewButton(rect, fmt.Sprintf("%d  %s", i+1, name)))
		x += weaponButtonW + weaponButtonGap
	}
	return m
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	mx, my := ebiten.CursorPosition()
	m.hover = -1
	for i, b := range m.buttons {
		if b.Contains(mx, my) {
			m.hover = i
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && m.hover >= 0 {
		m.start(m.ids[m.hover])
		return
	}
	for i := range m.ids {
		if inpututil.IsKeyJustPressed(weaponKeys[i]) {
			m.start(m.ids[i])
			return
		}
	}
	// SPACE — текущее оружие
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.start(m.game.PrimaryWeapon())
	}
}

func (m *MenuState) start(id string) {
	if err := m.game.SetPrimaryWeapon(id); err != nil {
		m.game.Log.Warn("MenuState: weapon not selectable", "weapon", id, "err", err)
		return
	}
	m.sm.SetState(NewGameState(m.sm, m.game))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	ui.DrawCentered(screen, "GO SURVIVORS", ui.DefaultFace, cx, cy-80, config.CritTextColor)
	ui.DrawCentered(screen, "WASD move   1-3 upgrade   P pause   F speed", ui.DefaultFace, cx, cy-40, config.TextLightColor)
	ui.DrawCentered(screen, "choose your weapon", ui.DefaultFace, cx, cy, config.TextLightColor)
	for i, b := range m.buttons {
		b.Draw(screen, i == m.hover || m.ids[i] == m.game.PrimaryWeapon())
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
