package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/solidstep/sim"
	"github.com/sirupsen/logrus"
)

func main() {
	debug := flag.Bool("debug", false, "draw collider and contact overlay, log at debug level")
	levelName := flag.String("level", "demo.json", "level file (disk path or embedded name)")
	tps := flag.Int("tps", 0, "physics ticks per second (0 uses physics.yaml)")
	broadphase := flag.Bool("broadphase", true, "filter solids by swept bounds before stepping (overrides physics.yaml)")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	if *debug {
		log.Level = logrus.DebugLevel
	}

	opts := sim.Options{Level: *levelName, TPS: *tps}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "broadphase" {
			opts.Broadphase = broadphase
		}
	})

	game, err := NewGame(opts, *debug, log)
	if err != nil {
		log.WithError(err).Fatal("start game")
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("solidstep")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("run game")
	}
}
