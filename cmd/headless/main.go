// cmd/headless/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/logging"
	"go-survivors/internal/snapshot"
	"go-survivors/pkg/geom"
)

func main() {
	seed := flag.Int64("seed", 1, "PRNG seed")
	seconds := flag.Float64("seconds", 300, "simulated seconds to run")
	defsPath := flag.String("defs", "", "definitions file (yaml or json)")
	cfgPath := flag.String("config", "", "config overlay (yaml or json)")
	weapon := flag.String("weapon", "", "primary weapon id")
	snapPath := flag.String("snapshot", "", "write a msgpack snapshot of the final state here")
	flag.Parse()

	logger := logging.Setup(os.Stderr, os.Getenv("LOG_LEVEL"))

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	cfg.Seed = *seed

	lib, err := defs.Default()
	if *defsPath != "" {
		lib, err = defs.Load(*defsPath)
	}
	if err != nil {
		log.Fatal(err)
	}
	g, err := app.NewGame(cfg, lib, *weapon, logger)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, g, *seconds); err != nil {
		logging.Warnf("headless: run stopped early: %v", err)
	}

	sum := g.Summary()
	fmt.Printf("run %s seed %d\n", g.RunID, g.Rng.Seed())
	fmt.Printf("survived %.1fs  wave %d  level %d  kills %d  game over %v\n",
		sum.Survived, sum.Wave, sum.Level, sum.Kills, g.IsGameOver())
	if p := g.Player(); p != nil {
		fmt.Printf("health %.0f/%.0f  weapons %d\n", p.Health, p.MaxHealth, len(p.Weapons))
	}

	if *snapPath != "" {
		if err := snapshot.WriteFile(*snapPath, snapshot.Capture(g)); err != nil {
			log.Fatal(err)
		}
		logging.Infof("headless: snapshot written to %s", *snapPath)
	}
}

// run steps g at the fixed step until the time budget is spent, the player
// dies or ctx is cancelled. Upgrades always take the first option; the
// player walks a slow circle.
func run(ctx context.Context, g *app.Game, seconds float64) error {
	steps := 0
	for g.GameTime() < seconds && !g.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(g.UpgradeOffer()) > 0 {
			g.SelectUpgrade(0)
		}
		if steps%60 == 0 {
			g.SetInput(geom.FromAngle(g.GameTime() / 8))
		}
		g.Update(config.FixedStep)
		steps++
		if steps%(600*60) == 0 {
			logging.Debugf("headless: t=%.0f wave=%d enemies=%d", g.GameTime(), g.CurrentWave(), g.EnemyCount())
		}
	}
	return nil
}
