// internal/system/wave.go
package system

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/spatial"
	"go-survivors/internal/utils"
	"go-survivors/pkg/geom"
)

// maxAdmissionsPerTick bounds catch-up after a long frame.
const maxAdmissionsPerTick = 8

// WaveSystem admits enemies under the population cap and escalates waves.
type WaveSystem struct {
	w *World
}

func NewWaveSystem(w *World) *WaveSystem {
	ws := &WaveSystem{w: w}
	ws.Reset()
	w.Events.Subscribe(event.EnemyRemoved, ws)
	return ws
}

// Reset restores the initial wave state from the config.
func (s *WaveSystem) Reset() {
	cfg := s.w.Cfg.Spawn
	s.w.Spawn = component.SpawnState{
		Wave:        1,
		SpawnRate:   cfg.SpawnRate,
		MaxEnemies:  cfg.MaxEnemies,
		NextSpawnAt: 0,
		NextWaveAt:  cfg.WaveInterval,
	}
}

// OnEvent keeps the active count in step with real pool releases.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyRemoved {
		return
	}
	if s.w.Spawn.Active > 0 {
		s.w.Spawn.Active--
	}
}

func (s *WaveSystem) Update(dt float64) {
	st := &s.w.Spawn
	st.Elapsed += dt

	for n := 0; st.Elapsed >= st.NextSpawnAt && n < maxAdmissionsPerTick; n++ {
		s.admit()
		if st.SpawnRate <= 0 {
			st.NextSpawnAt = math.Inf(1)
			break
		}
		st.NextSpawnAt += 1 / st.SpawnRate
	}
	if st.Elapsed >= st.NextSpawnAt {
		// drop the backlog instead of bursting next tick
		st.NextSpawnAt = st.Elapsed + 1/st.SpawnRate
	}

	interval := s.w.Cfg.Spawn.WaveInterval
	if interval <= 0 {
		return
	}
	for st.Elapsed >= st.NextWaveAt {
		st.NextWaveAt += interval
		s.advanceWave()
	}
}

func (s *WaveSystem) admit() {
	st := &s.w.Spawn
	playerPos, ok := s.w.PlayerPos()
	if !ok || st.Active >= st.MaxEnemies {
		return
	}
	table := s.w.Defs.SpawnTable()
	i := utils.ChooseWeighted(s.w.Rng, table)
	if i < 0 {
		s.w.Log.Warn("WaveSystem: spawn table is empty")
		return
	}
	s.SpawnEnemy(table[i], s.w.Rng.PointOnCircle(playerPos, s.w.Cfg.Spawn.SpawnDistance))
}

// SpawnEnemy activates one enemy of def at pos and counts it. It does not
// check the population cap.
func (s *WaveSystem) SpawnEnemy(def defs.EnemyDefinition, pos geom.Vec2) entity.Handle {
	h, e := s.w.Enemies.Acquire()
	e.Activate(def, pos)
	s.w.Enemies.Activate(h)
	s.w.Spawn.Active++
	s.w.Grid.MarkDirty(spatial.LayerEnemy)
	return h
}

func (s *WaveSystem) advanceWave() {
	st := &s.w.Spawn
	m := s.w.Cfg.Spawn.DifficultyMultiplier
	st.Wave++
	st.SpawnRate *= m
	st.MaxEnemies = int(math.RoundToEven(float64(st.MaxEnemies) * m))
	s.w.Log.Info("WaveSystem: wave advanced", "wave", st.Wave, "spawn_rate", st.SpawnRate, "max_enemies", st.MaxEnemies)
	s.w.Events.Dispatch(event.Event{
		Type: event.WaveAdvanced,
		Data: event.WaveAdvancedData{Wave: st.Wave, SpawnRate: st.SpawnRate, MaxEnemies: st.MaxEnemies},
	})

	every := s.w.Cfg.Spawn.BossWaveEvery
	if every > 0 && st.Wave%every == 0 {
		s.spawnBoss()
	}
}

// spawnBoss bypasses the population cap.
func (s *WaveSystem) spawnBoss() {
	playerPos, ok := s.w.PlayerPos()
	if !ok {
		return
	}
	bosses := s.w.Defs.Bosses()
	if len(bosses) == 0 {
		s.w.Log.Warn("WaveSystem: no boss kinds configured", "wave", s.w.Spawn.Wave)
		return
	}
	def := bosses[utils.ChooseWeighted(s.w.Rng, bosses)]
	h := s.SpawnEnemy(def, s.w.Rng.PointOnCircle(playerPos, s.w.Cfg.Spawn.SpawnDistance))
	s.w.Log.Info("WaveSystem: boss spawned", "kind", def.ID, "wave", s.w.Spawn.Wave)
	s.w.Events.Dispatch(event.Event{
		Type: event.BossSpawned,
		Data: event.BossSpawnedData{Enemy: h, Kind: def.ID, Wave: s.w.Spawn.Wave},
	})
}

func (s *WaveSystem) CurrentWave() int   { return s.w.Spawn.Wave }
func (s *WaveSystem) EnemyCount() int    { return s.w.Spawn.Active }
func (s *WaveSystem) GameTime() float64  { return s.w.Spawn.Elapsed }
func (s *WaveSystem) MaxEnemies() int    { return s.w.Spawn.MaxEnemies }
func (s *WaveSystem) SpawnRate() float64 { return s.w.Spawn.SpawnRate }

// SetSpawnRate takes effect from the next admission.
func (s *WaveSystem) SetSpawnRate(rate float64) {
	if rate < 0 {
		rate = 0
	}
	s.w.Spawn.SpawnRate = rate
	if rate > 0 && math.IsInf(s.w.Spawn.NextSpawnAt, 1) {
		s.w.Spawn.NextSpawnAt = s.w.Spawn.Elapsed + 1/rate
	}
}

func (s *WaveSystem) SetMaxEnemies(n int) {
	if n < 0 {
		n = 0
	}
	s.w.Spawn.MaxEnemies = n
}
