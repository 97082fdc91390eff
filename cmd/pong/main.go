package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/arena"
	"github.com/plus3/pong/arena/debugui"
	debugui_ebiten "github.com/plus3/pong/arena/debugui/ebiten"
	"github.com/plus3/pong/config"
	"github.com/plus3/pong/logger"
	"github.com/plus3/pong/render/screen"
)

func main() {
	configPath := flag.String("config", "", "YAML or TOML config file.")
	overlay := flag.Bool("overlay", false, "Show the debug overlay (F1 toggles it).")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("Failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	closer, err := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closer.Close()
	log := logger.L()

	bindings, err := cfg.Bindings()
	if err != nil {
		log.Error("Invalid key bindings", "error", err)
		os.Exit(1)
	}
	keys, err := NewKeyMap(bindings)
	if err != nil {
		log.Error("Invalid key bindings", "error", err)
		os.Exit(1)
	}

	driver := arena.NewDriver(arena.NewWorld(cfg.Setup()), nil, log.With("frontend", "window"))
	app := &App{
		driver: driver,
		canvas: screen.NewCanvas(),
		keys:   keys,
	}

	if *overlay || cfg.Debug.Overlay {
		app.overlay = debugui_ebiten.NewImguiBackend(debugui.NewOverlay(driver), cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	} else {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetScreenClearedEveryFrame(false)

	log.Info("Starting pong", "width", cfg.Window.Width, "height", cfg.Window.Height, "overlay", app.overlay != nil)
	if err := ebiten.RunGame(app); err != nil {
		log.Error("Game stopped", "error", err)
		os.Exit(1)
	}
	log.Info("Pong closed", "frames", driver.Frames(), "player", driver.World().Score.Player, "enemy", driver.World().Score.Enemy)
}
