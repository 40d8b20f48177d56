package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"DriftBoard/internal/audio"
	"DriftBoard/internal/config"
	"DriftBoard/internal/geom"
	"DriftBoard/internal/sim"
	"DriftBoard/internal/tui"
	"DriftBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	terminal := flag.Bool("tui", false, "run in the terminal instead of a window")
	seed := flag.Int64("seed", 0, "velocity seed (0 picks one from the clock)")
	sound := flag.Bool("sound", false, "play collision sounds")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *terminal {
		cfg.Frontend = config.FrontendTerminal
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *sound {
		cfg.Sound.Enabled = true
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// the terminal front end owns stdout and stderr
	if cfg.Frontend == config.FrontendTerminal {
		logPath := filepath.Join(os.TempDir(), "driftboard.log")
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	rng := rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)>>1))
	world := sim.NewWorld(geom.Size{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}, rng)
	log.Printf("Starting DriftBoard (%s, seed %d)", cfg.Frontend, cfg.Seed)

	var player *audio.Player
	if cfg.Sound.Enabled {
		player = audio.NewPlayer(cfg.Sound.Volume)
		if err := player.Initialize(); err != nil {
			log.Printf("[AUDIO] Sound disabled: %v", err)
			player = nil
		} else {
			defer player.Close()
		}
	}

	switch cfg.Frontend {
	case config.FrontendTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := tui.Run(ctx, cfg, world, player); err != nil && ctx.Err() == nil {
			log.Printf("Terminal front end failed: %v", err)
		}
	default:
		ui.RunApp(cfg, world, player)
	}
}
