// internal/system/world.go
package system

import (
	"log/slog"

	"go-survivors/internal/clock"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/spatial"
	"go-survivors/internal/utils"
	"go-survivors/pkg/geom"
)

// World owns every pool and piece of shared state of one run. Systems hold
// a pointer to it; nothing in here is safe for concurrent use.
type World struct {
	Cfg    config.Config
	Defs   *defs.Library
	Clock  *clock.Clock
	Rng    *utils.PRNGService
	Events *event.Dispatcher
	Log    *slog.Logger

	Enemies     *entity.Pool[component.Enemy]
	Projectiles *entity.Pool[component.Projectile]
	Orbs        *entity.Pool[component.XPOrb]

	Grid  *spatial.Grid
	Query spatial.Querier

	Player   *component.Player // nil until spawned
	Progress component.Progression
	Spawn    component.SpawnState
	Kills    int

	maxEnemyRadius float64
}

// NewWorld builds pools and the spatial index. The player is not spawned.
func NewWorld(cfg config.Config, lib *defs.Library, rng *utils.PRNGService, events *event.Dispatcher, log *slog.Logger) *World {
	w := &World{
		Cfg:    cfg,
		Defs:   lib,
		Clock:  clock.New(),
		Rng:    rng,
		Events: events,
		Log:    log,
		Enemies: entity.NewPool(func() *component.Enemy { return &component.Enemy{} },
			(*component.Enemy).Deactivate),
		Projectiles: entity.NewPool(func() *component.Projectile { return &component.Projectile{} },
			(*component.Projectile).Deactivate),
		Orbs: entity.NewPool(func() *component.XPOrb { return &component.XPOrb{} },
			(*component.XPOrb).Deactivate),
	}
	w.Grid = spatial.NewGrid(w, cfg.GridCell)
	w.Query = w.Grid
	w.Orbs.Warm(cfg.Orb.PoolSize)

	for _, e := range lib.EnemyList {
		if e.Visuals.Radius > w.maxEnemyRadius {
			w.maxEnemyRadius = e.Visuals.Radius
		}
	}
	w.Progress = component.NewProgression(cfg.Progression.BaseXP, cfg.Progression.Growth, cfg.Progression.MaxLevel)
	return w
}

// Now is scaled simulation time.
func (w *World) Now() float64 { return w.Clock.Now() }

// PlayerPos returns the player's position when a living player exists.
func (w *World) PlayerPos() (geom.Vec2, bool) {
	if w.Player == nil || !w.Player.Alive {
		return geom.Vec2{}, false
	}
	return w.Player.Position, true
}

// EachOnLayer implements spatial.Source.
func (w *World) EachOnLayer(layer spatial.Layer, fn func(entity.Handle, geom.Vec2) bool) {
	if layer != spatial.LayerEnemy {
		return
	}
	w.Enemies.Each(func(h entity.Handle, e *component.Enemy) bool {
		if e.Dead {
			return true
		}
		return fn(h, e.Position)
	})
}

// PositionOf implements spatial.Source.
func (w *World) PositionOf(layer spatial.Layer, h entity.Handle) (geom.Vec2, bool) {
	if layer == spatial.LayerEnemy {
		if e, ok := w.Enemies.Get(h); ok && !e.Dead {
			return e.Position, true
		}
	}
	return geom.Vec2{}, false
}

// ReleaseEnemy returns an enemy to its pool and announces the removal. It
// is a no-op for handles that are already free.
func (w *World) ReleaseEnemy(h entity.Handle, dead bool) bool {
	if !w.Enemies.Release(h) {
		return false
	}
	w.Events.Dispatch(event.Event{
		Type: event.EnemyRemoved,
		Data: event.EnemyRemovedData{Enemy: h, Dead: dead},
	})
	return true
}

// Reset clears every pool and all run state, keeping subscriptions.
func (w *World) Reset() {
	w.Enemies.Clear()
	w.Projectiles.Clear()
	w.Orbs.Clear()
	w.Grid.MarkDirty(spatial.LayerEnemy)
	w.Clock.Reset()
	w.Player = nil
	w.Kills = 0
	w.Spawn = component.SpawnState{}
	w.Progress = component.NewProgression(w.Cfg.Progression.BaseXP, w.Cfg.Progression.Growth, w.Cfg.Progression.MaxLevel)
}
