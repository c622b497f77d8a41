// internal/system/enemy_system_test.go
package system

import (
	"testing"

	"go-survivors/internal/event"
	"go-survivors/pkg/geom"
)

func TestEnemyPursuesPlayerAndFlips(t *testing.T) {
	h := newHarness(t, nil)
	h.spawnPlayer(t, geom.V(0, 0))
	e := h.spawnGrunt(t, geom.V(10, 0))
	h.enemies.Update(0.5)
	en, _ := h.w.Enemies.Get(e)
	if !approxEqual(en.Position.X, 9) || !en.FacingLeft {
		t.Fatalf("pursuit: pos %v facingLeft %v", en.Position, en.FacingLeft)
	}
}

func TestEnemyIdleWithoutPlayer(t *testing.T) {
	h := newHarness(t, nil)
	e := h.spawnGrunt(t, geom.V(3, 4))
	h.enemies.Update(1)
	if en, _ := h.w.Enemies.Get(e); en.Position != geom.V(3, 4) {
		t.Fatalf("enemy moved without a player: %v", en.Position)
	}
}

func TestSweepRecyclesDistantEnemies(t *testing.T) {
	h := newHarness(t, nil)
	h.spawnPlayer(t, geom.V(0, 0))
	removed := record(h.events, event.EnemyRemoved, event.EnemyKilled)
	h.spawnGrunt(t, geom.V(25, 0))
	h.spawnGrunt(t, geom.V(5, 0))
	if n := h.enemies.Sweep(); n != 1 {
		t.Fatalf("sweep: got %d want 1", n)
	}
	if len(*removed) != 1 || h.wave.EnemyCount() != 1 || h.orbs.ActiveCount() != 0 {
		t.Fatalf("after sweep: events %d count %d orbs %d", len(*removed), h.wave.EnemyCount(), h.orbs.ActiveCount())
	}
}

func TestContactDamageRespectsCooldown(t *testing.T) {
	h := newHarness(t, nil)
	h.spawnPlayer(t, geom.V(0, 0))
	h.spawnGrunt(t, geom.V(0.2, 0))
	h.enemies.Update(0.01)
	h.enemies.Update(0.01)
	if h.w.Player.Health != 99 {
		t.Fatalf("health: got %v want 99", h.w.Player.Health)
	}
}

func TestKnockbackDecays(t *testing.T) {
	h := newHarness(t, nil)
	e := h.spawnGrunt(t, geom.V(0, 0))
	h.enemies.ApplyImpulse(e, geom.V(4, 0))
	for i := 0; i < 120; i++ {
		h.enemies.Update(1.0 / 60)
	}
	en, _ := h.w.Enemies.Get(e)
	if en.Position.X <= 0 || !en.Knockback.IsZero() {
		t.Fatalf("knockback: pos %v vel %v", en.Position, en.Knockback)
	}
}
