// internal/defs/types.go
package defs

import (
	"errors"
	"image/color"
)

// Archetype is the closed set of weapon behaviours.
type Archetype string

const (
	ArchetypeMelee        Archetype = "MELEE"
	ArchetypeRanged       Archetype = "RANGED"
	ArchetypeHoming       Archetype = "HOMING"
	ArchetypeAOE          Archetype = "AOE"
	ArchetypeDOT          Archetype = "DOT"
	ArchetypeMultiMissile Archetype = "MULTI_MISSILE"
)

// Archetypes lists every known archetype in table order.
var Archetypes = []Archetype{
	ArchetypeMelee, ArchetypeRanged, ArchetypeHoming,
	ArchetypeAOE, ArchetypeDOT, ArchetypeMultiMissile,
}

func (a Archetype) Valid() bool {
	for _, k := range Archetypes {
		if a == k {
			return true
		}
	}
	return false
}

// UpgradeKind tags an upgrade descriptor.
type UpgradeKind string

const (
	UpgradeDamage          UpgradeKind = "DAMAGE"
	UpgradeFireRate        UpgradeKind = "FIRE_RATE"
	UpgradeRange           UpgradeKind = "RANGE"
	UpgradeSpeed           UpgradeKind = "SPEED"
	UpgradeHealth          UpgradeKind = "HEALTH"
	UpgradeSecondaryWeapon UpgradeKind = "SECONDARY_WEAPON"
)

var (
	ErrUnknownEnemy   = errors.New("unknown enemy")
	ErrUnknownWeapon  = errors.New("unknown weapon")
	ErrUnknownFormat  = errors.New("unknown definitions format")
	ErrInvalidLibrary = errors.New("invalid definitions")
)

// Visuals contains parameters for drawing an entity.
type Visuals struct {
	Color  color.RGBA `json:"color" yaml:"color"`
	Radius float64    `json:"radius" yaml:"radius"`
}
