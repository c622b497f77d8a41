// internal/defs/library.go
package defs

import (
	"fmt"

	"go-survivors/internal/logging"
)

// Library holds every definition of a run, keyed by ID. It is read-only
// after loading.
type Library struct {
	PrimaryWeapon string              `json:"primary_weapon" yaml:"primary_weapon"`
	EnemyList     []EnemyDefinition   `json:"enemies" yaml:"enemies"`
	WeaponList    []WeaponDefinition  `json:"weapons" yaml:"weapons"`
	Upgrades      []UpgradeDefinition `json:"upgrades" yaml:"upgrades"`

	enemies map[string]EnemyDefinition
	weapons map[string]WeaponDefinition
	spawn   []EnemyDefinition
	bosses  []EnemyDefinition
	mains   []WeaponDefinition
	extra   []WeaponDefinition
}

// index builds lookup tables and validates cross references.
func (l *Library) index() error {
	l.enemies = make(map[string]EnemyDefinition, len(l.EnemyList))
	l.weapons = make(map[string]WeaponDefinition, len(l.WeaponList))
	l.spawn, l.bosses, l.mains, l.extra = nil, nil, nil, nil

	for _, e := range l.EnemyList {
		if e.ID == "" {
			return fmt.Errorf("%w: enemy without id", ErrInvalidLibrary)
		}
		if _, dup := l.enemies[e.ID]; dup {
			return fmt.Errorf("%w: duplicate enemy %q", ErrInvalidLibrary, e.ID)
		}
		if e.Health <= 0 {
			return fmt.Errorf("%w: enemy %q has health %v", ErrInvalidLibrary, e.ID, e.Health)
		}
		l.enemies[e.ID] = e
		if e.Boss {
			l.bosses = append(l.bosses, e)
		} else {
			l.spawn = append(l.spawn, e)
		}
	}
	if len(l.spawn) == 0 {
		return fmt.Errorf("%w: no regular enemies", ErrInvalidLibrary)
	}

	for _, w := range l.WeaponList {
		if w.ID == "" {
			return fmt.Errorf("%w: weapon without id", ErrInvalidLibrary)
		}
		if _, dup := l.weapons[w.ID]; dup {
			return fmt.Errorf("%w: duplicate weapon %q", ErrInvalidLibrary, w.ID)
		}
		if w.FireRate <= 0 {
			return fmt.Errorf("%w: weapon %q has fire rate %v", ErrInvalidLibrary, w.ID, w.FireRate)
		}
		// неизвестный архетип не ошибка: CombatSystem пропускает такое оружие
		if !w.Archetype.Valid() {
			logging.Logger.Warn("Defs: weapon has no configured archetype", "weapon", w.ID, "archetype", string(w.Archetype))
		}
		l.weapons[w.ID] = w
		if w.Secondary {
			l.extra = append(l.extra, w)
		} else {
			l.mains = append(l.mains, w)
		}
	}
	if w, ok := l.weapons[l.PrimaryWeapon]; !ok || w.Secondary {
		return fmt.Errorf("%w: primary weapon %q", ErrUnknownWeapon, l.PrimaryWeapon)
	}
	return nil
}

// Enemy returns the definition for id.
func (l *Library) Enemy(id string) (EnemyDefinition, error) {
	d, ok := l.enemies[id]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
	}
	return d, nil
}

// Weapon returns the definition for id.
func (l *Library) Weapon(id string) (WeaponDefinition, error) {
	d, ok := l.weapons[id]
	if !ok {
		return WeaponDefinition{}, fmt.Errorf("%w: %q", ErrUnknownWeapon, id)
	}
	return d, nil
}

// Primary returns the definition for id if a run can start with it.
func (l *Library) Primary(id string) (WeaponDefinition, error) {
	d, err := l.Weapon(id)
	if err != nil {
		return d, err
	}
	if d.Secondary {
		return WeaponDefinition{}, fmt.Errorf("%w: %q is a secondary weapon", ErrUnknownWeapon, id)
	}
	return d, nil
}

// SpawnTable returns the regular enemy kinds in definition order.
func (l *Library) SpawnTable() []EnemyDefinition { return l.spawn }

// Bosses returns the boss kinds in definition order.
func (l *Library) Bosses() []EnemyDefinition { return l.bosses }

// Primaries returns the weapons a run can start with, in definition order.
func (l *Library) Primaries() []WeaponDefinition { return l.mains }

// Secondaries returns the weapons that can be granted by an upgrade.
func (l *Library) Secondaries() []WeaponDefinition { return l.extra }
