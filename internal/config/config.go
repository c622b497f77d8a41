// internal/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth   = 1200
	ScreenHeight  = 900
	PixelsPerUnit = 32.0
	MaxDeltaTime  = 0.06
	FixedStep     = 1.0 / 60.0

	HUDMargin      = 16
	HUDBarWidth    = 260
	HUDBarHeight   = 12
	UpgradeCardW   = 300
	UpgradeCardH   = 120
	UpgradeCardGap = 24

	FloatingTextLifetime = 0.8
	FloatingTextRise     = 1.2 // units per second
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridColor       = color.RGBA{40, 40, 55, 255}
	PlayerColor     = color.RGBA{80, 180, 250, 255}
	ProjectileColor = color.RGBA{250, 240, 160, 255}
	OrbColor        = color.RGBA{80, 230, 120, 255}
	FlashColor      = color.RGBA{255, 40, 40, 255}
	CurseColor      = color.RGBA{170, 60, 220, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	CritTextColor   = color.RGBA{255, 210, 40, 255}
	XPBarColor      = color.RGBA{90, 160, 255, 255}
	HealthBarColor  = color.RGBA{220, 60, 60, 255}
	PanelColor      = color.RGBA{30, 30, 45, 235}
	PanelStroke     = color.RGBA{240, 240, 240, 255}
)

var ErrInvalidConfig = errors.New("invalid config")

// Spawn tunes the wave engine.
type Spawn struct {
	SpawnRate            float64 `json:"spawn_rate" yaml:"spawn_rate"` // admissions per second
	MaxEnemies           int     `json:"max_enemies" yaml:"max_enemies"`
	SpawnDistance        float64 `json:"spawn_distance" yaml:"spawn_distance"`
	WaveInterval         float64 `json:"wave_interval" yaml:"wave_interval"`
	DifficultyMultiplier float64 `json:"difficulty_multiplier" yaml:"difficulty_multiplier"`
	BossWaveEvery        int     `json:"boss_wave_every" yaml:"boss_wave_every"`
	BossOrbCount         int     `json:"boss_orb_count" yaml:"boss_orb_count"`
}

// Enemy tunes shared enemy behaviour.
type Enemy struct {
	MaxDistanceFromPlayer float64 `json:"max_distance_from_player" yaml:"max_distance_from_player"`
	CleanupInterval       float64 `json:"cleanup_interval" yaml:"cleanup_interval"`
	FlashDuration         float64 `json:"flash_duration" yaml:"flash_duration"`
	KnockbackDamping      float64 `json:"knockback_damping" yaml:"knockback_damping"`
	ContactRadius         float64 `json:"contact_radius" yaml:"contact_radius"`
}

// Orb tunes XP pickups.
type Orb struct {
	PoolSize        int     `json:"pool_size" yaml:"pool_size"`
	Lifetime        float64 `json:"lifetime" yaml:"lifetime"`
	FadeTime        float64 `json:"fade_time" yaml:"fade_time"`
	CollectRange    float64 `json:"collect_range" yaml:"collect_range"`
	AttractRange    float64 `json:"attract_range" yaml:"attract_range"`
	MoveSpeed       float64 `json:"move_speed" yaml:"move_speed"`
	AttractSpeed    float64 `json:"attract_speed" yaml:"attract_speed"`
	SpawnRadius     float64 `json:"spawn_radius" yaml:"spawn_radius"`
	CleanupDistance float64 `json:"cleanup_distance" yaml:"cleanup_distance"`
	CleanupInterval float64 `json:"cleanup_interval" yaml:"cleanup_interval"`
}

// Player tunes the player body.
type Player struct {
	MoveSpeed    float64 `json:"move_speed" yaml:"move_speed"`
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
	Deceleration float64 `json:"deceleration" yaml:"deceleration"`
	MaxHealth    float64 `json:"max_health" yaml:"max_health"`
	HurtCooldown float64 `json:"hurt_cooldown" yaml:"hurt_cooldown"`
}

// Progression tunes the XP curve.
type Progression struct {
	BaseXP         float64 `json:"base_xp" yaml:"base_xp"`
	Growth         float64 `json:"growth" yaml:"growth"`
	MaxLevel       int     `json:"max_level" yaml:"max_level"`
	UpgradeChoices int     `json:"upgrade_choices" yaml:"upgrade_choices"`
}

// Config holds every tunable of a run.
type Config struct {
	Seed        int64       `json:"seed" yaml:"seed"`
	GridCell    float64     `json:"grid_cell" yaml:"grid_cell"`
	Spawn       Spawn       `json:"spawn" yaml:"spawn"`
	Enemy       Enemy       `json:"enemy" yaml:"enemy"`
	Orb         Orb         `json:"orb" yaml:"orb"`
	Player      Player      `json:"player" yaml:"player"`
	Progression Progression `json:"progression" yaml:"progression"`
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		GridCell: 4,
		Spawn: Spawn{
			SpawnRate:            2,
			MaxEnemies:           50,
			SpawnDistance:        12,
			WaveInterval:         30,
			DifficultyMultiplier: 1.1,
			BossWaveEvery:        5,
			BossOrbCount:         5,
		},
		Enemy: Enemy{
			MaxDistanceFromPlayer: 20,
			CleanupInterval:       2,
			FlashDuration:         0.1,
			KnockbackDamping:      8,
			ContactRadius:         0.6,
		},
		Orb: Orb{
			PoolSize:        200,
			Lifetime:        30,
			FadeTime:        3,
			CollectRange:    1.5,
			AttractRange:    8,
			MoveSpeed:       5,
			AttractSpeed:    12,
			SpawnRadius:     0.5,
			CleanupDistance: 25,
			CleanupInterval: 2,
		},
		Player: Player{
			MoveSpeed:    5,
			Acceleration: 10,
			Deceleration: 10,
			MaxHealth:    100,
			HurtCooldown: 0.5,
		},
		Progression: Progression{
			BaseXP:         10,
			Growth:         1.5,
			MaxLevel:       100,
			UpgradeChoices: 3,
		},
	}
}

// Load overlays the file at path on Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported extension %q", ErrInvalidConfig, filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first out-of-range tunable.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Spawn.SpawnRate > 0, "spawn.spawn_rate"},
		{c.Spawn.MaxEnemies >= 0, "spawn.max_enemies"},
		{c.Spawn.WaveInterval > 0, "spawn.wave_interval"},
		{c.Spawn.DifficultyMultiplier >= 1, "spawn.difficulty_multiplier"},
		{c.Spawn.BossWaveEvery >= 0, "spawn.boss_wave_every"},
		{c.Enemy.CleanupInterval > 0, "enemy.cleanup_interval"},
		{c.Orb.CleanupInterval > 0, "orb.cleanup_interval"},
		{c.Orb.CollectRange >= 0, "orb.collect_range"},
		{c.Player.MaxHealth > 0, "player.max_health"},
		{c.Progression.BaseXP > 0, "progression.base_xp"},
		{c.Progression.Growth >= 1, "progression.growth"},
		{c.Progression.MaxLevel >= 1, "progression.max_level"},
		{c.Progression.UpgradeChoices >= 1, "progression.upgrade_choices"},
		{c.GridCell > 0, "grid_cell"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.name)
		}
	}
	return nil
}
