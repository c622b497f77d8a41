// internal/system/progression_test.go
package system

import (
	"testing"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/pkg/geom"
)

func TestMultiLevelUpInOneGrant(t *testing.T) {
	h := newHarness(t, nil)
	ups := record(h.events, event.LevelUp)

	if got := h.prog.GainXP(25); got != 2 {
		t.Fatalf("levels gained: got %d want 2", got)
	}
	p := h.w.Progress
	if p.Level != 3 || !approxEqual(p.XP, 0) || !approxEqual(p.XPToNext, 22.5) {
		t.Fatalf("progress: level %d xp %v next %v", p.Level, p.XP, p.XPToNext)
	}
	if len(*ups) != 2 || h.prog.Pending() != 2 {
		t.Fatalf("events %d pending %d want 2/2", len(*ups), h.prog.Pending())
	}
}

func TestGainXPStopsAtMaxLevel(t *testing.T) {
	h := newHarness(t, func(c *config.Config) { c.Progression.MaxLevel = 2 })
	h.prog.GainXP(1000)
	if h.prog.CurrentLevel() != 2 {
		t.Fatalf("level: got %d want 2", h.prog.CurrentLevel())
	}
	xp := h.w.Progress.XP
	if h.prog.GainXP(50) != 0 || h.w.Progress.XP != xp {
		t.Fatal("XP granted past max level")
	}
}

func TestUpgradeFlowOneOfferPerLevel(t *testing.T) {
	h := newHarness(t, nil)
	h.spawnPlayer(t, geom.V(0, 0))
	offers := record(h.events, event.UpgradeOffered)
	h.prog.GainXP(25)

	if !h.upgrades.Open() {
		t.Fatal("no offer opened")
	}
	if !h.w.Clock.Paused() {
		t.Fatal("simulation not paused during upgrade choice")
	}
	opts := h.upgrades.Offer()
	if len(opts) != 3 {
		t.Fatalf("options: got %d want 3", len(opts))
	}
	seen := map[string]bool{}
	for _, o := range opts {
		if seen[o.ID] {
			t.Fatalf("duplicate option %q", o.ID)
		}
		seen[o.ID] = true
	}

	h.upgrades.Select(0)
	if len(*offers) != 2 || !h.w.Clock.Paused() {
		t.Fatalf("second level-up: offers %d paused %v", len(*offers), h.w.Clock.Paused())
	}
	h.upgrades.Select(2)
	if h.w.Clock.Paused() || h.upgrades.Offer() != nil {
		t.Fatal("simulation not resumed after last choice")
	}
	if h.upgrades.Select(0) {
		t.Fatal("Select without an offer succeeded")
	}
}

func TestApplyUpgradesInPlace(t *testing.T) {
	h := newHarness(t, nil)
	h.spawnPlayer(t, geom.V(0, 0))
	seeker, _ := h.w.Defs.Weapon("seeker")
	h.combat.AddSecondaryWeapon(seeker)
	p := h.w.Player
	gun, sec := p.Weapons[0], p.Weapons[1]

	apply := func(kind defs.UpgradeKind, v float64) bool {
		return h.upgrades.Apply(upgradeOf(kind, v))
	}
	apply(defs.UpgradeDamage, 1.2)
	apply(defs.UpgradeFireRate, 1.3)
	apply(defs.UpgradeRange, 2)
	apply(defs.UpgradeSpeed, 1.15)
	apply(defs.UpgradeHealth, 20)

	if !approxEqual(gun.Damage, 1.2) || !approxEqual(sec.Damage, 2.4) {
		t.Fatalf("damage: %v %v", gun.Damage, sec.Damage)
	}
	if !approxEqual(gun.FireRate, 2.6) || !approxEqual(sec.Range, 12) {
		t.Fatalf("rate %v range %v", gun.FireRate, sec.Range)
	}
	if !approxEqual(p.MoveSpeed, 5*1.15) || p.MaxHealth != 120 || p.Health != 120 {
		t.Fatalf("player: speed %v health %v/%v", p.MoveSpeed, p.Health, p.MaxHealth)
	}
	if apply("TELEPORT", 1) {
		t.Fatal("unknown upgrade applied")
	}
}

func TestSecondaryWeaponUpgrade(t *testing.T) {
	h := newHarness(t, nil)
	h.spawnPlayer(t, geom.V(0, 0))
	for i := 0; i < 5; i++ {
		if !h.upgrades.Apply(upgradeOf(defs.UpgradeSecondaryWeapon, 0)) {
			t.Fatalf("grant %d failed", i)
		}
	}
	if len(h.w.Player.Weapons) != 6 {
		t.Fatalf("weapons: got %d want 6", len(h.w.Player.Weapons))
	}
	if h.upgrades.Apply(upgradeOf(defs.UpgradeSecondaryWeapon, 0)) {
		t.Fatal("granted a duplicate secondary")
	}
	for _, o := range h.upgrades.RollOptions(10) {
		if o.Kind == string(defs.UpgradeSecondaryWeapon) {
			t.Fatal("secondary weapon offered with none left")
		}
	}
}

func upgradeOf(kind defs.UpgradeKind, v float64) component.Upgrade {
	return component.Upgrade{ID: string(kind), Name: string(kind), Kind: string(kind), Value: v}
}
