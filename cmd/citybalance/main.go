// Command citybalance runs a scripted city headlessly and prints an
// economy report, for checking tuning changes without a client.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/engine"
	"github.com/talgya/pixel-city/internal/tuning"
	"github.com/talgya/pixel-city/internal/world"
)

func main() {
	var (
		seed  = flag.Int64("seed", 42, "terrain and RNG seed")
		ticks = flag.Int("ticks", 600, "simulated seconds to run")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := tuning.Default()
	sim := engine.NewSimulation(cfg, *seed)

	placed := buildStarterCity(sim)
	fmt.Printf("Starter city: %d buildings placed on seed %d\n", placed, *seed)

	before := sim.Snapshot()
	sim.AdvanceTicks(*ticks)
	after := sim.Snapshot()

	fmt.Printf("\nAfter %s ticks:\n", humanize.Comma(int64(*ticks)))
	fmt.Printf("  population  %d\n", int(after.Population))
	fmt.Printf("  happiness   %d\n", after.Happiness)
	fmt.Printf("  issues      %d\n", sim.IssueCount())

	fmt.Println("\nResource deltas:")
	var ids []string
	for id := range after.Resources {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	for _, id := range ids {
		res := after.Resources[economy.ResourceID(id)]
		delta := res - before.Resources[economy.ResourceID(id)]
		if delta == 0 && res == 0 {
			continue
		}
		fmt.Printf("  %-10s %10s  (%+.1f)\n", id, humanize.CommafWithDigits(res, 1), delta)
	}
}

// buildStarterCity lays out a small road spine with farms, production, and
// housing around it. Skips any tile the terrain rejects.
func buildStarterCity(sim *engine.Simulation) int {
	center := 32
	placed := 0

	place := func(t world.BuildingType, x, y int) {
		if err := sim.Place(t, x, y); err == nil {
			placed++
		}
	}

	for dx := -4; dx <= 4; dx++ {
		place(catalog.Road, center+dx, center)
	}
	place(catalog.Farm, center-3, center-1)
	place(catalog.Farm, center-2, center-1)
	place(catalog.Lumber, center-1, center-1)
	place(catalog.Quarry, center+1, center-1)
	place(catalog.Hut, center-3, center+1)
	place(catalog.Hut, center-2, center+1)
	place(catalog.Hut, center-1, center+1)
	place(catalog.Market, center+2, center+1)
	place(catalog.Power, center+3, center-1)
	place(catalog.WaterTower, center+3, center+1)
	place(catalog.Park, center, center+2)

	return placed
}
