// internal/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"go-survivors/internal/app"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	gridStep     = 2.0 // world units between grid lines
	playerRadius = 0.45
	orbRadius    = 0.18
	shotRadius   = 0.12
	orbGrowTime  = 0.15
)

// WorldRenderer рисует мир вокруг игрока.
type WorldRenderer struct {
	Camera *Camera
	colors map[string]color.RGBA // цвет врага по Kind
}

func NewWorldRenderer(g *app.Game) *WorldRenderer {
	r := &WorldRenderer{Camera: NewCamera(), colors: make(map[string]color.RGBA)}
	for _, e := range g.World.Defs.EnemyList {
		r.colors[e.ID] = e.Visuals.Color
	}
	return r
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(config.BackgroundColor)
	if p := g.Player(); p != nil {
		r.Camera.Center = p.Position
	}
	r.drawGrid(screen)

	w := g.World
	fade := w.Cfg.Orb.FadeTime
	w.Orbs.Each(func(_ entity.Handle, o *component.XPOrb) bool {
		if !r.Camera.Visible(o.Position, orbRadius) {
			return true
		}
		clr := config.OrbColor
		clr.A = uint8(255 * o.Alpha(fade))
		x, y := r.Camera.ToScreen(o.Position)
		vector.DrawFilledCircle(screen, x, y, r.px(orbRadius*o.GrowScale(orbGrowTime)), clr, true)
		return true
	})

	w.Enemies.Each(func(_ entity.Handle, e *component.Enemy) bool {
		if !r.Camera.Visible(e.Position, e.Radius) {
			return true
		}
		r.drawEnemy(screen, e)
		return true
	})

	w.Projectiles.Each(func(_ entity.Handle, p *component.Projectile) bool {
		x, y := r.Camera.ToScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, r.px(shotRadius), config.ProjectileColor, true)
		return true
	})

	if p := g.Player(); p != nil {
		r.drawPlayer(screen, p, w.Clock.Unscaled())
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	x, y := r.Camera.ToScreen(e.Position)
	radius := r.px(e.Radius)
	clr, ok := r.colors[e.Kind]
	if !ok {
		clr = color.RGBA{200, 80, 80, 255}
	}
	if e.Flashing() {
		clr = config.FlashColor
	}
	if e.Boss {
		vector.DrawFilledCircle(screen, x, y, radius+2, config.PanelStroke, true)
	}
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	if e.Curse.Active {
		vector.StrokeCircle(screen, x, y, radius+3, 2, config.CurseColor, true)
	}

	// глаз показывает направление
	eye := float32(1)
	if e.FacingLeft {
		eye = -1
	}
	vector.DrawFilledCircle(screen, x+eye*radius*0.45, y-radius*0.25, radius*0.18, config.BackgroundColor, true)

	if e.Health < e.MaxHealth && e.MaxHealth > 0 {
		ratio := float32(e.Health / e.MaxHealth)
		bw := radius * 2
		vector.DrawFilledRect(screen, x-radius, y-radius-6, bw, 3, config.PanelColor, false)
		vector.DrawFilledRect(screen, x-radius, y-radius-6, bw*ratio, 3, config.HealthBarColor, false)
	}
}

func (r *WorldRenderer) drawPlayer(screen *ebiten.Image, p *component.Player, t float64) {
	x, y := r.Camera.ToScreen(p.Position)
	clr := config.PlayerColor
	if p.HurtTimer > 0 && math.Mod(t*20, 2) < 1 {
		clr = config.FlashColor
	}
	if !p.Alive {
		clr = color.RGBA{90, 90, 90, 255}
	}
	radius := r.px(playerRadius)
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	fx, fy := r.Camera.ToScreen(p.Position.Add(p.Facing.Norm().Scale(playerRadius * 1.6)))
	vector.StrokeLine(screen, x, y, fx, fy, 2, config.TextLightColor, true)
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image) {
	c := r.Camera
	topLeft := c.ToWorld(0, 0)
	bottomRight := c.ToWorld(c.W, c.H)
	for gx := math.Floor(topLeft.X/gridStep) * gridStep; gx <= bottomRight.X; gx += gridStep {
		x, _ := c.ToScreen(geom.V(gx, 0))
		vector.StrokeLine(screen, x, 0, x, float32(c.H), 1, config.GridColor, false)
	}
	for gy := math.Floor(topLeft.Y/gridStep) * gridStep; gy <= bottomRight.Y; gy += gridStep {
		_, y := c.ToScreen(geom.V(0, gy))
		vector.StrokeLine(screen, 0, y, float32(c.W), y, 1, config.GridColor, false)
	}
}

func (r *WorldRenderer) px(units float64) float32 { return float32(units * r.Camera.Scale) }
