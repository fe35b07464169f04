package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/avickers/tapedeck/internal/app"
	"github.com/avickers/tapedeck/internal/catalog"
	"github.com/avickers/tapedeck/internal/config"
	"github.com/avickers/tapedeck/internal/mpris"
	"github.com/avickers/tapedeck/internal/notify"
	"github.com/avickers/tapedeck/internal/playback"
	"github.com/avickers/tapedeck/internal/player"
	"github.com/avickers/tapedeck/internal/ui"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(log)

	engine, err := player.NewEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	scanner := catalog.NewScanner(cfg.MusicDir, log)
	machine := playback.New(engine, scanner, log)
	defer machine.Close()

	machine.SetCatalog(scanner.Scan())
	machine.SetVolume(cfg.Volume)

	bridge := mpris.NewBridge()
	if !cfg.DisableMPRIS {
		remote := mpris.NewServer(bridge, log)
		remote.Start()
		defer remote.Stop()
	}

	notifier := notify.Disabled()
	if !cfg.DisableNotifications {
		if n, err := notify.New(); err == nil {
			notifier = n
		}
	}

	ebiten.SetWindowSize(ui.Width, ui.Height)
	ebiten.SetWindowTitle("tapedeck")
	return ebiten.RunGame(app.New(machine, bridge, notifier, log))
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
