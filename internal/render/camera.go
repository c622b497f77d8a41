// internal/render/camera.go
package render

import (
	"go-survivors/internal/config"
	"go-survivors/pkg/geom"
)

// Camera maps world units to screen pixels, centered on Center.
type Camera struct {
	Center geom.Vec2
	Scale  float64 // pixels per unit
	W, H   float64
}

func NewCamera() *Camera {
	return &Camera{Scale: config.PixelsPerUnit, W: config.ScreenWidth, H: config.ScreenHeight}
}

// ToScreen converts a world point to screen pixels.
func (c *Camera) ToScreen(p geom.Vec2) (float32, float32) {
	return float32((p.X-c.Center.X)*c.Scale + c.W/2), float32((p.Y-c.Center.Y)*c.Scale + c.H/2)
}

// ToWorld is the inverse of ToScreen.
func (c *Camera) ToWorld(x, y float64) geom.Vec2 {
	return geom.V((x-c.W/2)/c.Scale+c.Center.X, (y-c.H/2)/c.Scale+c.Center.Y)
}

// Visible reports whether a circle of radius r around p touches the screen.
func (c *Camera) Visible(p geom.Vec2, r float64) bool {
	x, y := c.ToScreen(p)
	pr := float32(r * c.Scale)
	return x+pr >= 0 && y+pr >= 0 && x-pr <= float32(c.W) && y-pr <= float32(c.H)
}
