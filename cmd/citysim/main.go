// Command citysim runs the Pixel City simulation server.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/pixel-city/internal/api"
	"github.com/talgya/pixel-city/internal/engine"
	"github.com/talgya/pixel-city/internal/persistence"
	"github.com/talgya/pixel-city/internal/tuning"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "tuning config path")
		seed       = flag.Int64("seed", 42, "terrain and RNG seed for new cities")
		slot       = flag.Int("slot", 1, "save slot to load and autosave into")
		fresh      = flag.Bool("fresh", false, "ignore any save in the slot and start over")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := tuning.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Load or Generate City ─────────────────────────────────────────
	var sim *engine.Simulation

	snap, err := db.LoadSlot(*slot)
	switch {
	case *fresh || errors.Is(err, persistence.ErrSlotEmpty):
		slog.Info("starting new city", "seed", *seed, "slot", *slot)
		sim = engine.NewSimulation(cfg, *seed)
	case err != nil:
		slog.Error("failed to load save", "slot", *slot, "error", err)
		os.Exit(1)
	default:
		sim = engine.Restore(cfg, snap)
		applied := sim.ApplyOffline(snap.SavedAt, time.Now())
		slog.Info("city restored",
			"slot", *slot,
			"city_level", snap.CityLevel,
			"saved_at", humanize.Time(snap.SavedAt),
			"offline_ticks", applied,
		)
	}

	// ── Simulation Loop ───────────────────────────────────────────────
	runner := engine.NewRunner(sim, time.Duration(cfg.TickIntervalMs)*time.Millisecond)
	runner.OnTick = func(tick uint64) {
		if cfg.AutosaveIntervalTicks > 0 && tick%uint64(cfg.AutosaveIntervalTicks) == 0 {
			if err := db.SaveSlot(*slot, sim.Snapshot()); err != nil {
				slog.Error("autosave failed", "error", err)
			}
		}
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	adminKey := os.Getenv("CITYSIM_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("CITYSIM_ADMIN_KEY not set, control POST endpoints will be disabled")
	}

	apiServer := &api.Server{
		Sim:         sim,
		Runner:      runner,
		DB:          db,
		Port:        cfg.APIPort,
		AdminKey:    adminKey,
		ActionLimit: cfg.ActionsPerMinute,
	}
	apiServer.Start()

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		runner.Stop()
	}()

	fmt.Printf("Pixel City is running: level %d, slot %d.\n", sim.Snapshot().CityLevel, *slot)
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.APIPort)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	runner.Run()

	slog.Info("final save...")
	if err := db.SaveSlot(*slot, sim.Snapshot()); err != nil {
		slog.Error("final save failed", "error", err)
	}

	fmt.Println("Simulation stopped. City saved.")
}
