// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/logging"
	"go-survivors/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed (0 = time based)")
	defsPath := flag.String("defs", "", "definitions file (yaml or json); embedded defaults when empty")
	cfgPath := flag.String("config", "", "config overlay (yaml or json)")
	weapon := flag.String("weapon", "", "primary weapon id")
	skipMenu := flag.Bool("play", false, "start the run without the title screen")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger := logging.Setup(os.Stderr, os.Getenv("LOG_LEVEL"))
	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	lib, err := loadDefs(*defsPath)
	if err != nil {
		log.Fatal(err)
	}
	g, err := app.NewGame(cfg, lib, *weapon, logger)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, g))
	} else {
		sm.SetState(state.NewMenuState(sm, g))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Go Survivors")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

func loadDefs(path string) (*defs.Library, error) {
	if path == "" {
		return defs.Default()
	}
	return defs.Load(path)
}
