// internal/system/harness_test.go
package system

import (
	"math"
	"testing"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/logging"
	"go-survivors/internal/utils"
	"go-survivors/pkg/geom"
)

const testDefs = `
primary_weapon: gun
enemies:
  - {id: grunt, health: 3, speed: 2, contact_damage: 1, xp_reward: 2, weight: 1, visuals: {radius: 0.4}}
  - {id: boss, health: 50, speed: 1, contact_damage: 3, xp_reward: 10, boss: true, visuals: {radius: 1}}
weapons:
  - {id: gun, archetype: RANGED, damage: 1, fire_rate: 2, range: 8, crit_multiplier: 2, query_buffer: 50, projectile: {speed: 10, lifetime: 3, hit_radius: 0.3}}
  - {id: blade, archetype: MELEE, damage: 2, fire_rate: 1, range: 1.5, crit_multiplier: 2, knockback: 4, secondary: true, melee: {reach: 0.5}}
  - {id: seeker, archetype: HOMING, damage: 2, fire_rate: 1, range: 10, crit_multiplier: 2, secondary: true, projectile: {speed: 8, lifetime: 5, hit_radius: 0.3}}
  - {id: nova, archetype: AOE, damage: 1, fire_rate: 1, range: 3, crit_multiplier: 2, secondary: true}
  - {id: doll, archetype: DOT, fire_rate: 1, range: 5, secondary: true, curse: {duration: 5, damage: 2, interval: 1}}
  - {id: swarm, archetype: MULTI_MISSILE, damage: 1, fire_rate: 1, range: 9, crit_multiplier: 2, secondary: true, missiles: 3, projectile: {speed: 7, lifetime: 5, hit_radius: 0.3}}
upgrades:
  - {id: damage, name: Damage Up, kind: DAMAGE, value: 1.2}
  - {id: rate, name: Fire Rate Up, kind: FIRE_RATE, value: 1.3}
  - {id: range, name: Range Up, kind: RANGE, value: 2}
  - {id: speed, name: Speed Up, kind: SPEED, value: 1.15}
  - {id: health, name: Health Up, kind: HEALTH, value: 20}
  - {id: extra, name: New Weapon, kind: SECONDARY_WEAPON}
`

type harness struct {
	w           *World
	events      *event.Dispatcher
	prog        *ProgressionSystem
	orbs        *OrbSystem
	damage      *DamageSystem
	player      *PlayerSystem
	enemies     *EnemySystem
	combat      *CombatSystem
	projectiles *ProjectileSystem
	status      *StatusEffectSystem
	wave        *WaveSystem
	upgrades    *UpgradeSystem
}

func newHarness(t *testing.T, tweak func(*config.Config)) *harness {
	t.Helper()
	lib, err := defs.Parse([]byte(testDefs), ".yaml")
	if err != nil {
		t.Fatalf("parse defs: %v", err)
	}
	cfg := config.Default()
	if tweak != nil {
		tweak(&cfg)
	}
	events := event.NewDispatcher()
	w := NewWorld(cfg, lib, utils.NewPRNGService(1), events, logging.Discard())

	h := &harness{w: w, events: events}
	h.prog = NewProgressionSystem(w)
	h.orbs = NewOrbSystem(w, h.prog)
	h.damage = NewDamageSystem(w, h.orbs)
	h.player = NewPlayerSystem(w)
	h.enemies = NewEnemySystem(w, h.player)
	h.combat = NewCombatSystem(w, h.damage, h.enemies)
	h.projectiles = NewProjectileSystem(w, h.combat)
	h.status = NewStatusEffectSystem(w, h.damage)
	h.wave = NewWaveSystem(w)
	h.upgrades = NewUpgradeSystem(w, h.prog, h.player, h.combat)
	return h
}

func (h *harness) spawnPlayer(t *testing.T, pos geom.Vec2) {
	t.Helper()
	def, err := h.w.Defs.Weapon("gun")
	if err != nil {
		t.Fatal(err)
	}
	h.player.Spawn(pos, def)
}

func (h *harness) spawnGrunt(t *testing.T, pos geom.Vec2) entity.Handle {
	t.Helper()
	def, err := h.w.Defs.Enemy("grunt")
	if err != nil {
		t.Fatal(err)
	}
	return h.wave.SpawnEnemy(def, pos)
}

// record collects every event of the given types.
func record(d *event.Dispatcher, types ...event.EventType) *[]event.Event {
	var got []event.Event
	for _, ty := range types {
		d.SubscribeFunc(ty, func(e event.Event) { got = append(got, e) })
	}
	return &got
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
