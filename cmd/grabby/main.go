package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mittubose/Grabby-Hand-rat-killer/audio"
	"github.com/mittubose/Grabby-Hand-rat-killer/config"
	"github.com/mittubose/Grabby-Hand-rat-killer/engine"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/game"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
)

var (
	debugFlag      = flag.Bool("debug", false, "Write logs/grabby.log")
	configFlag     = flag.String("config", "", "YAML file overriding the embedded configuration")
	difficultyFlag = flag.String("difficulty", "", "Difficulty preset: easy, normal, hard")
	seedFlag       = flag.Int64("seed", 0, "Random seed, 0 picks one")
	muteFlag       = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()
	if err := start(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// start owns every deferred teardown so that failures unwind before main exits
func start() (err error) {
	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	// Panic recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRABBY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			log.Printf("crash: %v", r)
			err = fmt.Errorf("crashed: %v", r)
		}
	}()
	defer screen.Fini()

	cues := audio.NewCuePlayer()
	if !*muteFlag {
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer cues.Cleanup()

	return run(screen, cfg, cues)
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return nil, err
	}
	if *difficultyFlag != "" {
		cfg.Difficulty = *difficultyFlag
	}
	return cfg, nil
}

// run owns the session loop until the player quits; after a result, any key but q starts a new session
func run(screen tcell.Screen, cfg *config.Config, cues *audio.CuePlayer) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		sim, err := game.New(cfg, game.Options{
			Seed:     *seedFlag,
			Logger:   log.Default(),
			Handlers: []event.Handler{cues},
		})
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
		log.Printf("session %s started, seed %d, difficulty %s", sim.ID, sim.Seed, cfg.Difficulty)
		if !play(screen, sim, events) {
			return nil
		}
	}
}

// play drives one session and reports whether a new one was requested
func play(screen tcell.Screen, sim *game.Simulation, events <-chan tcell.Event) bool {
	v := &view{screen: screen}
	ctl := &controls{debug: *debugFlag}
	items := sim.Store().Catalog().Items()
	runner := engine.NewRunner(engine.NewMonotonicTimeProvider(), sim)

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	snap := sim.Snapshot()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if sim.Over() {
					return ev.Key() != tcell.KeyCtrlC && ev.Rune() != 'q' && ev.Key() != tcell.KeyEscape
				}
				acts, quit := ctl.key(ev, snap, items, time.Now())
				if quit {
					return false
				}
				for _, a := range acts {
					if err := sim.Apply(a); err != nil {
						log.Printf("%s: %v", a.Kind, err)
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			for _, a := range ctl.idle(time.Now()) {
				_ = sim.Apply(a)
			}
			runner.Pump()
			snap = sim.Snapshot()
			v.draw(snap, sim.Scene(), items)
		}
	}
}
