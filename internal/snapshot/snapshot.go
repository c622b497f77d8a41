// internal/snapshot/snapshot.go
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-survivors/internal/app"
	"go-survivors/internal/component"
	"go-survivors/internal/entity"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const Version = 1

var ErrVersion = errors.New("snapshot: unsupported version")

type Vec struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

type Player struct {
	Pos       Vec      `msgpack:"pos"`
	Health    float64  `msgpack:"hp"`
	MaxHealth float64  `msgpack:"max_hp"`
	MoveSpeed float64  `msgpack:"speed"`
	Weapons   []string `msgpack:"weapons"`
	Alive     bool     `msgpack:"alive"`
}

type Enemy struct {
	Kind   string  `msgpack:"kind"`
	Pos    Vec     `msgpack:"pos"`
	Health float64 `msgpack:"hp"`
	Boss   bool    `msgpack:"boss,omitempty"`
	Cursed bool    `msgpack:"cursed,omitempty"`
}

type Orb struct {
	Pos   Vec `msgpack:"pos"`
	Value int `msgpack:"value"`
}

// Snapshot is a read-only picture of a run, taken between ticks.
type Snapshot struct {
	Version int    `msgpack:"version"`
	RunID   string `msgpack:"run_id"`
	Seed    int64  `msgpack:"seed"`
	Ticks   uint64 `msgpack:"ticks"`

	Time     float64 `msgpack:"time"`
	Wave     int     `msgpack:"wave"`
	Level    int     `msgpack:"level"`
	XP       float64 `msgpack:"xp"`
	XPToNext float64 `msgpack:"xp_to_next"`
	Kills    int     `msgpack:"kills"`
	GameOver bool    `msgpack:"game_over"`

	Player      Player  `msgpack:"player"`
	Enemies     []Enemy `msgpack:"enemies"`
	Orbs        []Orb   `msgpack:"orbs"`
	Projectiles int     `msgpack:"projectiles"`
}

// Capture copies the observable state of g.
func Capture(g *app.Game) Snapshot {
	w := g.World
	s := Snapshot{
		Version:     Version,
		RunID:       g.RunID.String(),
		Seed:        g.Rng.Seed(),
		Ticks:       g.Ticks(),
		Time:        g.GameTime(),
		Wave:        g.CurrentWave(),
		Level:       w.Progress.Level,
		XP:          w.Progress.XP,
		XPToNext:    w.Progress.XPToNext,
		Kills:       g.Kills(),
		GameOver:    g.IsGameOver(),
		Projectiles: w.Projectiles.Len(),
	}
	if p := g.Player(); p != nil {
		s.Player = Player{
			Pos:       Vec{p.Position.X, p.Position.Y},
			Health:    p.Health,
			MaxHealth: p.MaxHealth,
			MoveSpeed: p.MoveSpeed,
			Alive:     p.Alive,
		}
		for _, wpn := range p.Weapons {
			s.Player.Weapons = append(s.Player.Weapons, wpn.ID)
		}
	}
	w.Enemies.Each(func(_ entity.Handle, e *component.Enemy) bool {
		s.Enemies = append(s.Enemies, Enemy{
			Kind:   e.Kind,
			Pos:    Vec{e.Position.X, e.Position.Y},
			Health: e.Health,
			Boss:   e.Boss,
			Cursed: e.Curse.Active,
		})
		return true
	})
	w.Orbs.Each(func(_ entity.Handle, o *component.XPOrb) bool {
		s.Orbs = append(s.Orbs, Orb{Pos: Vec{o.Position.X, o.Position.Y}, Value: o.Value})
		return true
	})
	return s
}

func Encode(s Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses data and checks the version and run id.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != Version {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}
	if _, err := uuid.Parse(s.RunID); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: run id: %w", err)
	}
	return s, nil
}

// WriteFile encodes s to path, creating parent directories.
func WriteFile(path string, s Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(data)
}
