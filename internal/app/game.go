// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"
	"math"

	"go-survivors/internal/clock"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/system"
	"go-survivors/internal/utils"
	"go-survivors/pkg/geom"

	"github.com/google/uuid"
)

const maxSpeedState = 2

// Game holds one run and every system that advances it.
type Game struct {
	RunID uuid.UUID

	World           *system.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Log             *slog.Logger

	PlayerSystem       *system.PlayerSystem
	WaveSystem         *system.WaveSystem
	EnemySystem        *system.EnemySystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	OrbSystem          *system.OrbSystem
	DamageSystem       *system.DamageSystem
	ProgressionSystem  *system.ProgressionSystem
	UpgradeSystem      *system.UpgradeSystem

	primary    string
	speedState int
	ticks      uint64
}

// NewGame wires a run from cfg and lib and spawns the player at the origin.
// An empty primary uses the library's primary weapon.
func NewGame(cfg config.Config, lib *defs.Library, primary string, log *slog.Logger) (*Game, error) {
	if lib == nil {
		return nil, fmt.Errorf("new game: %w", defs.ErrInvalidLibrary)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	if primary == "" {
		primary = lib.PrimaryWeapon
	}
	if _, err := lib.Primary(primary); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)
	w := system.NewWorld(cfg, lib, rng, dispatcher, log)

	g := &Game{
		World:           w,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Log:             log,
		primary:         primary,
	}
	g.ProgressionSystem = system.NewProgressionSystem(w)
	g.OrbSystem = system.NewOrbSystem(w, g.ProgressionSystem)
	g.DamageSystem = system.NewDamageSystem(w, g.OrbSystem)
	g.PlayerSystem = system.NewPlayerSystem(w)
	g.EnemySystem = system.NewEnemySystem(w, g.PlayerSystem)
	g.CombatSystem = system.NewCombatSystem(w, g.DamageSystem, g.EnemySystem)
	g.ProjectileSystem = system.NewProjectileSystem(w, g.CombatSystem)
	g.StatusEffectSystem = system.NewStatusEffectSystem(w, g.DamageSystem)
	g.WaveSystem = system.NewWaveSystem(w)
	g.UpgradeSystem = system.NewUpgradeSystem(w, g.ProgressionSystem, g.PlayerSystem, g.CombatSystem)

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.LevelUp, listener)
	dispatcher.Subscribe(event.BossSpawned, listener)

	g.start()
	return g, nil
}

// GameEventListener logs run milestones.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelUp:
		if d, ok := e.Data.(event.LevelUpData); ok {
			l.game.Log.Info("Game: level up", "run", l.game.RunID, "level", d.Level, "xp_to_next", d.XPToNext)
		}
	case event.BossSpawned:
		if d, ok := e.Data.(event.BossSpawnedData); ok {
			l.game.Log.Info("Game: boss wave", "run", l.game.RunID, "wave", d.Wave, "kind", d.Kind)
		}
	}
}

func (g *Game) start() {
	g.RunID = uuid.New()
	def, _ := g.World.Defs.Weapon(g.primary)
	g.PlayerSystem.Spawn(geom.Vec2{}, def)
	g.Log.Info("Game: run started", "run", g.RunID, "seed", g.Rng.Seed(), "weapon", g.primary)
}

// Update progresses the run by one frame of realDt seconds.
func (g *Game) Update(realDt float64) {
	if realDt > config.MaxDeltaTime {
		realDt = config.MaxDeltaTime
	}
	w := g.World
	if dt := w.Clock.Tick(realDt); dt > 0 {
		g.ticks++
		g.PlayerSystem.Update(dt)
		g.WaveSystem.Update(dt)
		g.EnemySystem.Update(dt)
		g.StatusEffectSystem.Update(dt)
		g.CombatSystem.Update(w.Now())
		g.ProjectileSystem.Update(dt)
		g.OrbSystem.Update(dt)
	}
	g.EventDispatcher.Flush()
	if !g.IsGameOver() {
		g.UpgradeSystem.Open()
	}
}

// Restart throws the run away and starts a new one with the same
// definitions, config and subscriptions.
func (g *Game) Restart() {
	g.World.Reset()
	g.WaveSystem.Reset()
	g.EnemySystem.ResetTimers()
	g.OrbSystem.ResetTimers()
	g.ProgressionSystem.Reset()
	g.UpgradeSystem.Reset()
	g.EventDispatcher.Drop()
	g.speedState = 0
	g.ticks = 0
	g.start()
}

func (g *Game) SetInput(dir geom.Vec2) { g.PlayerSystem.SetInput(dir) }

// SelectUpgrade picks option i of the offer on screen.
func (g *Game) SelectUpgrade(i int) bool { return g.UpgradeSystem.Select(i) }

// UpgradeOffer returns the options on screen, nil when none.
func (g *Game) UpgradeOffer() []component.Upgrade { return g.UpgradeSystem.Offer() }

// TogglePause flips the player's own pause; upgrade and game-over holds are
// untouched.
func (g *Game) TogglePause() {
	c := g.World.Clock
	if c.Holding(clock.ReasonUser) {
		c.Resume(clock.ReasonUser)
	} else {
		c.Pause(clock.ReasonUser)
	}
}

func (g *Game) IsPaused() bool { return g.World.Clock.Holding(clock.ReasonUser) }

// HandleSpeedClick cycles the time scale through 1x, 2x and 4x.
func (g *Game) HandleSpeedClick() {
	g.speedState = (g.speedState + 1) % (maxSpeedState + 1)
	g.World.Clock.SetScale(math.Pow(2, float64(g.speedState)))
}

func (g *Game) SpeedMultiplier() float64 { return math.Pow(2, float64(g.speedState)) }
func (g *Game) SpeedState() int           { return g.speedState }

// SetPrimaryWeapon swaps the primary weapon of the living player. Only
// weapons listed by Library.Primaries are accepted.
func (g *Game) SetPrimaryWeapon(id string) error {
	def, err := g.World.Defs.Primary(id)
	if err != nil {
		return err
	}
	if !g.CombatSystem.SetPrimaryWeapon(def) {
		return fmt.Errorf("set primary weapon %q: no player", id)
	}
	g.primary = id
	return nil
}

// PrimaryWeapons lists the weapons a run can start with.
func (g *Game) PrimaryWeapons() []defs.WeaponDefinition { return g.World.Defs.Primaries() }

// PrimaryWeapon is the id the current and following runs start with.
func (g *Game) PrimaryWeapon() string { return g.primary }

// --- Public Accessors & Mutators ---

func (g *Game) CurrentWave() int       { return g.WaveSystem.CurrentWave() }
func (g *Game) EnemyCount() int        { return g.WaveSystem.EnemyCount() }
func (g *Game) CurrentLevel() int      { return g.ProgressionSystem.CurrentLevel() }
func (g *Game) LevelProgress() float64 { return g.ProgressionSystem.Progress() }
func (g *Game) PendingUpgrades() int   { return g.ProgressionSystem.Pending() }
func (g *Game) Kills() int             { return g.World.Kills }
func (g *Game) GameTime() float64      { return g.World.Now() }
func (g *Game) Ticks() uint64          { return g.ticks }

func (g *Game) Player() *component.Player { return g.World.Player }

// IsGameOver reports whether the player has died.
func (g *Game) IsGameOver() bool { return g.World.Clock.Holding(clock.ReasonGameOver) }

// TakeDamage damages the enemy behind h without a crit roll.
func (g *Game) TakeDamage(h entity.Handle, amount float64) bool {
	return g.DamageSystem.TakeDamage(h, amount, false)
}

func (g *Game) GainXP(amount float64) int { return g.ProgressionSystem.GainXP(amount) }

func (g *Game) SpawnXPOrb(pos geom.Vec2, value int) entity.Handle {
	return g.OrbSystem.SpawnXPOrb(pos, value)
}

// SpawnEnemy places an enemy of kind at pos, outside the admission loop.
func (g *Game) SpawnEnemy(kind string, pos geom.Vec2) (entity.Handle, error) {
	def, err := g.World.Defs.Enemy(kind)
	if err != nil {
		return entity.Nil, err
	}
	return g.WaveSystem.SpawnEnemy(def, pos), nil
}

// Summary returns the run's end-of-run numbers.
func (g *Game) Summary() event.GameOverData {
	return event.GameOverData{
		Wave:     g.CurrentWave(),
		Level:    g.CurrentLevel(),
		Kills:    g.Kills(),
		Survived: g.GameTime(),
	}
}
