// internal/event/types.go
package event

import (
	"go-survivors/internal/entity"
	"go-survivors/pkg/geom"
)

const (
	EnemyKilled    EventType = "EnemyKilled"    // враг убит игроком
	EnemyRemoved   EventType = "EnemyRemoved"   // враг вернулся в пул (смерть или уборка)
	DamageDealt    EventType = "DamageDealt"    // для вспышки и всплывающего текста
	BossSpawned    EventType = "BossSpawned"
	WaveAdvanced   EventType = "WaveAdvanced"
	XPCollected    EventType = "XPCollected"
	LevelUp        EventType = "LevelUp"
	UpgradeOffered EventType = "UpgradeOffered"
	UpgradeApplied EventType = "UpgradeApplied"
	PlayerDamaged  EventType = "PlayerDamaged"
	GameOver       EventType = "GameOver"
)

type EnemyKilledData struct {
	Enemy    entity.Handle
	Kind     string
	Position geom.Vec2
	XP       int
	Boss     bool
}

type EnemyRemovedData struct {
	Enemy entity.Handle
	Dead  bool // false for distance cleanup
}

type DamageDealtData struct {
	Target   entity.Handle
	Position geom.Vec2
	Amount   float64
	Crit     bool
}

type WaveAdvancedData struct {
	Wave       int
	SpawnRate  float64
	MaxEnemies int
}

type BossSpawnedData struct {
	Enemy entity.Handle
	Kind  string
	Wave  int
}

type XPCollectedData struct {
	Amount int
}

type LevelUpData struct {
	Level    int
	XPToNext float64
}

// UpgradeOption mirrors component.Upgrade without importing it.
type UpgradeOption struct {
	Name        string
	Description string
	Kind        string
}

type UpgradeOfferedData struct {
	Level   int
	Options []UpgradeOption
	Pending int // level-ups still waiting after this one
}

type UpgradeAppliedData struct {
	Option UpgradeOption
}

type PlayerDamagedData struct {
	Amount float64
	Health float64
}

type GameOverData struct {
	Wave     int
	Level    int
	Kills    int
	Survived float64
}
