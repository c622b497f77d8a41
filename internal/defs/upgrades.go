// internal/defs/upgrades.go
package defs

// UpgradeDefinition describes one entry of the upgrade pool. Value is the
// multiplier for DAMAGE, FIRE_RATE and SPEED and the additive amount for
// RANGE and HEALTH.
type UpgradeDefinition struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Kind        UpgradeKind `json:"kind" yaml:"kind"`
	Value       float64     `json:"value" yaml:"value"`
}
