package main

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/solidstep/ecs/render"
	"github.com/milk9111/solidstep/prefabs"
	"github.com/milk9111/solidstep/sim"
	"github.com/sirupsen/logrus"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	log     *logrus.Logger
	sim     *sim.Sim
	watcher *prefabs.Watcher
	debug   bool
}

func NewGame(opts sim.Options, debug bool, log *logrus.Logger) (*Game, error) {
	opts.Log = log
	opts.Input = NewInputSystem()
	s, err := sim.New(opts)
	if err != nil {
		return nil, err
	}

	g := &Game{log: log, sim: s, debug: debug}
	watcher, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
	if err != nil {
		log.WithError(err).Warn("prefab hot reload disabled")
	} else {
		g.watcher = watcher
	}

	ebiten.SetTPS(s.Spec.TPS)
	return g, nil
}

func (g *Game) Update() error {
	g.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Reset(); err != nil {
			g.log.WithError(err).Error("reset failed")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.sim.Step()
	return nil
}

// drainReloads applies pending prefab edits between ticks.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.sim.Reload(change); err != nil {
				g.log.WithError(err).WithField("file", change.Path).Warn("reload failed")
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.WithError(err).Warn("prefab watcher")
			}
		default:
			return
		}
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawWorld(g.sim.World, screen)
	if g.debug {
		render.DrawPhysicsDebug(g.sim.World, g.sim.Contacts, screen)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f    FPS: %.2f", ebiten.ActualTPS(), ebiten.ActualFPS()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
