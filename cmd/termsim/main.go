// Command termsim runs a level in the terminal, or headless for a fixed number
// of ticks to print the resulting state hash.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/solidstep/ecs"
	"github.com/milk9111/solidstep/ecs/component"
	"github.com/milk9111/solidstep/sim"
	"github.com/sirupsen/logrus"
)

func main() {
	levelName := flag.String("level", "demo.json", "level file (disk path or embedded name)")
	ticks := flag.Int("ticks", 0, "run this many ticks without a screen and print the state hash")
	tps := flag.Int("tps", 0, "physics ticks per second (0 uses physics.yaml)")
	broadphase := flag.Bool("broadphase", true, "filter solids by swept bounds before stepping (overrides physics.yaml)")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.WarnLevel
	if *debug {
		log.Level = logrus.DebugLevel
	}

	input := &termInput{}
	opts := sim.Options{Level: *levelName, TPS: *tps, Log: log, Input: input}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "broadphase" {
			opts.Broadphase = broadphase
		}
	})

	s, err := sim.New(opts)
	if err != nil {
		log.WithError(err).Fatal("start")
	}

	if *ticks > 0 {
		for i := 0; i < *ticks; i++ {
			s.Step()
		}
		fmt.Printf("ticks=%d hash=%016x\n", *ticks, s.Hash())
		return
	}

	if err := run(s, input); err != nil {
		log.WithError(err).Fatal("run")
	}
}

// holdTicks is how long a key press keeps the player moving; terminals do
// not report key releases.
const holdTicks = 8

type termInput struct {
	moveX       float64
	hold        int
	jumpPressed bool
}

func (t *termInput) press(dir float64) {
	t.moveX = dir
	t.hold = holdTicks
}

func (t *termInput) Update(w *ecs.World) {
	if t.hold > 0 {
		t.hold--
	} else {
		t.moveX = 0
	}
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		in.MoveX = t.moveX
		in.Jump = t.jumpPressed
		in.JumpPressed = t.jumpPressed
	})
	t.jumpPressed = false
}

func run(s *sim.Sim, input *termInput) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termsim: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termsim: init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(s.Spec.TPS, 1)))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if quit := handleKey(s, input, ev); quit {
					return nil
				}
			}
		case <-ticker.C:
			s.Step()
			draw(screen, s)
		}
	}
}

func handleKey(s *sim.Sim, input *termInput, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		input.press(-1)
	case tcell.KeyRight:
		input.press(1)
	case tcell.KeyUp:
		input.jumpPressed = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'a':
			input.press(-1)
		case 'd':
			input.press(1)
		case ' ', 'w':
			input.jumpPressed = true
		case 'r':
			_ = s.Reset()
		}
	}
	return false
}
