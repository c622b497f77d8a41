// internal/system/wave_test.go
package system

import (
	"testing"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/pkg/geom"
)

func TestAdmissionNeverExceedsCap(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Spawn.SpawnRate = 20
		c.Spawn.MaxEnemies = 3
		c.Spawn.BossWaveEvery = 0
	})
	h.spawnPlayer(t, geom.V(0, 0))
	for i := 0; i < 300; i++ {
		h.wave.Update(1.0 / 60)
		if h.w.Enemies.Len() > h.wave.MaxEnemies() {
			t.Fatalf("tick %d: %d active over cap %d", i, h.w.Enemies.Len(), h.wave.MaxEnemies())
		}
	}
	if h.wave.EnemyCount() != 3 {
		t.Fatalf("count: got %d want 3", h.wave.EnemyCount())
	}
}

func TestSpawnOnRingAroundPlayer(t *testing.T) {
	h := newHarness(t, nil)
	h.spawnPlayer(t, geom.V(5, -5))
	h.wave.Update(0.01)
	if h.w.Enemies.Len() != 1 {
		t.Fatalf("first tick spawns: got %d want 1", h.w.Enemies.Len())
	}
	h.w.Enemies.Each(func(_ entity.Handle, e *component.Enemy) bool {
		if d := geom.Dist(e.Position, geom.V(5, -5)); !approxEqual(d, 12) {
			t.Fatalf("spawn distance: got %v want 12", d)
		}
		return true
	})
}

func TestNoPlayerNoSpawn(t *testing.T) {
	h := newHarness(t, nil)
	for i := 0; i < 120; i++ {
		h.wave.Update(1.0 / 60)
	}
	if h.wave.EnemyCount() != 0 {
		t.Fatalf("spawned without player: %d", h.wave.EnemyCount())
	}
}

func TestWaveEscalation(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Spawn.WaveInterval = 1
		c.Spawn.SpawnRate = 2
		c.Spawn.MaxEnemies = 50
		c.Spawn.BossWaveEvery = 0
	})
	waves := record(h.events, event.WaveAdvanced)
	h.wave.Update(1)
	if h.wave.CurrentWave() != 2 || len(*waves) != 1 {
		t.Fatalf("wave: got %d (%d events) want 2", h.wave.CurrentWave(), len(*waves))
	}
	if h.wave.MaxEnemies() != 55 || !approxEqual(h.wave.SpawnRate(), 2.2) {
		t.Fatalf("escalation: cap %d rate %v", h.wave.MaxEnemies(), h.wave.SpawnRate())
	}
}

func TestBossBypassesCap(t *testing.T) {
	h := newHarness(t, func(c *config.Config) {
		c.Spawn.WaveInterval = 1
		c.Spawn.SpawnRate = 100
		c.Spawn.MaxEnemies = 2
		c.Spawn.DifficultyMultiplier = 1
		c.Spawn.BossWaveEvery = 2
	})
	h.spawnPlayer(t, geom.V(0, 0))
	bosses := record(h.events, event.BossSpawned)
	for i := 0; i < 50; i++ {
		h.wave.Update(1.0 / 60)
	}
	if h.wave.EnemyCount() != 2 {
		t.Fatalf("before boss wave: got %d want 2", h.wave.EnemyCount())
	}
	for i := 0; i < 20; i++ {
		h.wave.Update(1.0 / 60)
	}
	if h.wave.CurrentWave() != 2 || len(*bosses) != 1 {
		t.Fatalf("wave %d bosses %d", h.wave.CurrentWave(), len(*bosses))
	}
	if h.wave.EnemyCount() != 3 {
		t.Fatalf("boss did not bypass cap: count %d", h.wave.EnemyCount())
	}
}

func TestCountNeverNegative(t *testing.T) {
	h := newHarness(t, nil)
	e := h.spawnGrunt(t, geom.V(0, 0))
	h.w.ReleaseEnemy(e, false)
	h.w.ReleaseEnemy(e, false)
	h.w.Events.Dispatch(event.Event{Type: event.EnemyRemoved})
	if h.wave.EnemyCount() != 0 {
		t.Fatalf("count: got %d want 0", h.wave.EnemyCount())
	}
}

func TestSetters(t *testing.T) {
	h := newHarness(t, nil)
	h.wave.SetSpawnRate(5)
	h.wave.SetMaxEnemies(-3)
	if h.wave.SpawnRate() != 5 || h.wave.MaxEnemies() != 0 {
		t.Fatalf("setters: rate %v cap %d", h.wave.SpawnRate(), h.wave.MaxEnemies())
	}
}

func TestZeroWaveIntervalNeverEscalates(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.Spawn.WaveInterval = 0 })
	h.spawnPlayer(t, geom.V(0, 0))
	for i := 0; i < 60; i++ {
		h.wave.Update(1.0 / 60)
	}
	if h.wave.CurrentWave() != 1 {
		t.Fatalf("wave: got %d want 1", h.wave.CurrentWave())
	}
}
