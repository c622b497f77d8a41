// internal/component/component_test.go
package component

import (
	"math"
	"testing"

	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/pkg/geom"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestEnemyActivateResetsState(t *testing.T) {
	def := defs.EnemyDefinition{ID: "grunt", Health: 3, Speed: 2, ContactDamage: 1, XPReward: 1}
	var e Enemy
	e.Activate(def, geom.V(1, 1))
	e.Health = 0
	e.Dead = true
	e.FlashTimer = 0.1
	e.Knockback = geom.V(5, 0)
	e.Curse.Apply(5, 2, 1)

	e.Deactivate()
	e.Activate(def, geom.V(2, 2))
	if e.Dead || e.Health != 3 || e.FlashTimer != 0 || !e.Knockback.IsZero() || e.Curse.Active {
		t.Fatalf("stale state after reactivation: %+v", e)
	}
	if e.Position != geom.V(2, 2) {
		t.Fatalf("position: got %v want (2,2)", e.Position)
	}
}

func TestCurseTicksForDuration(t *testing.T) {
	var c Curse
	c.Apply(5, 2, 1)
	ticks := 0
	for i := 0; i < 600 && c.Active; i++ {
		ticks += c.Advance(0.5)
	}
	if ticks != 5 {
		t.Fatalf("ticks: got %d want 5", ticks)
	}
	if c.Active {
		t.Fatal("curse still active after duration")
	}
}

func TestCurseRefreshKeepsPhase(t *testing.T) {
	var c Curse
	c.Apply(5, 2, 1)
	c.Advance(4.5)
	c.Apply(5, 2, 1)
	if !approxEqual(c.Remaining, 5) {
		t.Fatalf("remaining: got %v want 5", c.Remaining)
	}
	if n := c.Advance(0.5); n != 1 {
		t.Fatalf("tick after refresh: got %d want 1", n)
	}
}

func TestProjectileHitSetClearedOnReuse(t *testing.T) {
	var p Projectile
	p.Activate(Shot{Direction: geom.V(2, 0), Speed: 10, Lifetime: 3})
	if p.Direction != geom.V(1, 0) {
		t.Fatalf("direction not normalized: %v", p.Direction)
	}
	h := entity.Handle{Index: 1, Generation: 1}
	p.MarkHit(h)
	p.Deactivate()
	p.Activate(Shot{Direction: geom.V(0, 1), Target: h})
	if p.HasHit(h) || p.HitCount() != 0 {
		t.Fatal("hit set leaked across reuse")
	}
	if !p.Homing {
		t.Fatal("target given but projectile not homing")
	}
}

func TestWeaponCadence(t *testing.T) {
	w := NewWeapon(defs.WeaponDefinition{ID: "w", FireRate: 2})
	if !w.CanAttack(0) {
		t.Fatal("fresh weapon must be ready")
	}
	w.MarkFired(1)
	if w.CanAttack(1.49) || !w.CanAttack(1.5) {
		t.Fatalf("next fire time: got %v want 1.5", w.NextFireTime)
	}
	w.UpgradeFireRate(2)
	if w.NextFireTime != 1.5 {
		t.Fatal("fire rate upgrade changed the pending interval")
	}
	w.MarkFired(1.5)
	if !approxEqual(w.NextFireTime, 1.75) {
		t.Fatalf("upgraded interval: got %v want 1.75", w.NextFireTime)
	}
}

func TestProgressionThreshold(t *testing.T) {
	p := NewProgression(10, 1.5, 100)
	if p.XPToNext != 10 || !approxEqual(p.Threshold(2), 15) || !approxEqual(p.Threshold(3), 22.5) {
		t.Fatalf("thresholds: %v %v %v", p.XPToNext, p.Threshold(2), p.Threshold(3))
	}
}

func TestOrbAlpha(t *testing.T) {
	var o XPOrb
	o.Activate(geom.V(0, 0), 1, 30)
	if o.Alpha(3) != 1 {
		t.Fatal("fresh orb should be opaque")
	}
	o.Remaining = 1.5
	if !approxEqual(o.Alpha(3), 0.5) {
		t.Fatalf("alpha: got %v want 0.5", o.Alpha(3))
	}
}
