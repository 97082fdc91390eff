package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/pong/arena"
	"github.com/plus3/pong/config"
	"github.com/plus3/pong/logger"
	"github.com/plus3/pong/render/term"
)

func main() {
	configPath := flag.String("config", "", "YAML or TOML config file.")
	logFile := flag.String("log", "pong-term.log", "Log file; the terminal itself is the game surface.")
	flag.Parse()

	if err := run(*configPath, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "pong-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logFile string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = logFile
	}

	closer, err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logger.L().With("frontend", "term")

	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	tracker, err := NewTracker(bindings)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	driver := arena.NewDriver(arena.NewWorld(cfg.Setup()), nil, log)
	log.Info("Starting pong", "tps", cfg.Window.TPS)

	loop(screen, driver, tracker, time.Second/time.Duration(cfg.Window.TPS))

	log.Info("Pong closed", "frames", driver.Frames(), "player", driver.World().Score.Player, "enemy", driver.World().Score.Enemy)
	return nil
}

func loop(screen tcell.Screen, driver *arena.Driver, tracker *Tracker, interval time.Duration) {
	canvas := term.NewCanvas(screen)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return
				}
				tracker.Press(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			driver.Once(tracker.Poll(), canvas)
			screen.Show()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}
