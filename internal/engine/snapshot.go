package engine

import (
	"time"

	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/tuning"
	"github.com/talgya/pixel-city/internal/world"
)

// snapshotVersion bumps when the snapshot shape changes incompatibly.
const snapshotVersion = 1

// Snapshot is the full serializable state of a city. It marshals to JSON
// for persistence; every field tolerates absence on restore so older or
// partial saves still load.
type Snapshot struct {
	Version               int                `json:"version"`
	Seed                  int64              `json:"seed"`
	CityLevel             int                `json:"cityLevel"`
	PrestigeStars         int                `json:"prestigeStars"`
	PrestigeCount         int                `json:"prestigeCount"`
	Resources             economy.Bundle     `json:"resources"`
	Caps                  economy.Bundle     `json:"caps"`
	Population            float64            `json:"population"`
	Happiness             int                `json:"happiness"`
	Grid                  [][]*world.Cell    `json:"grid"`
	Terrain               [][]world.Terrain  `json:"terrain,omitempty"`
	Buffs                 []Buff             `json:"buffs,omitempty"`
	ActiveEventID         string             `json:"activeEvent,omitempty"`
	EventTimer            int                `json:"eventTimer"`
	HappinessPenaltyTicks int                `json:"happinessPenaltyTicks,omitempty"`
	Wins                  WinFlags           `json:"wins"`
	Stats                 Stats              `json:"stats"`
	Journal               []JournalEntry     `json:"journal,omitempty"`
	RNG                   []byte             `json:"rng,omitempty"`
	SavedAt               time.Time          `json:"savedAt"`
}

// Snapshot captures the complete current state. Everything it returns is
// detached from the live simulation: serializing or mutating a snapshot
// while ticks keep running is safe.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.Stats
	stats.History = append([]StatSample(nil), s.Stats.History...)

	return Snapshot{
		Version:               snapshotVersion,
		Seed:                  s.seed,
		CityLevel:             s.CityLevel,
		PrestigeStars:         s.PrestigeStars,
		PrestigeCount:         s.PrestigeCount,
		Resources:             s.Ledger.Amounts.Clone(),
		Caps:                  s.Ledger.Caps.Clone(),
		Population:            s.Population,
		Happiness:             s.Happiness,
		Grid:                  cloneCells(s.Grid.Cells),
		Terrain:               cloneTerrain(s.Grid.Terrain),
		Buffs:                 append([]Buff(nil), s.Buffs...),
		ActiveEventID:         s.ActiveEventID,
		EventTimer:            s.EventTimer,
		HappinessPenaltyTicks: s.HappinessPenaltyTicks,
		Wins:                  s.Wins,
		Stats:                 stats,
		Journal:               append([]JournalEntry(nil), s.Journal...),
		RNG:                   s.rng.State(),
		SavedAt:               time.Now().UTC(),
	}
}

// Restore builds a simulation from a snapshot. Missing pieces fall back
// sensibly: absent resources merge over the starting stockpile, absent
// terrain regenerates from the seed, an absent RNG state reseeds.
func Restore(cfg tuning.Tuning, snap Snapshot) *Simulation {
	s := NewSimulation(cfg, snap.Seed)

	if snap.CityLevel > 0 {
		s.CityLevel = snap.CityLevel
	}
	s.PrestigeStars = snap.PrestigeStars
	s.PrestigeCount = snap.PrestigeCount

	if len(snap.Resources) > 0 {
		for res, v := range snap.Resources {
			s.Ledger.Amounts[res] = v
		}
	}
	if len(snap.Caps) > 0 {
		for res, v := range snap.Caps {
			s.Ledger.Caps[res] = v
		}
	}

	if len(snap.Grid) > 0 {
		s.Grid = restoreGrid(cfg.GridSize, snap.Grid)
	}
	if len(snap.Terrain) == len(snap.Grid) && len(snap.Terrain) > 0 {
		s.Grid.Terrain = snap.Terrain
	} else {
		s.Grid.Terrain = world.GenerateTerrain(cfg.GridSize, snap.Seed)
	}

	s.Population = snap.Population
	if snap.Happiness != 0 {
		s.Happiness = snap.Happiness
	}
	s.Buffs = snap.Buffs
	s.ActiveEventID = snap.ActiveEventID
	if snap.EventTimer > 0 {
		s.EventTimer = snap.EventTimer
	}
	s.HappinessPenaltyTicks = snap.HappinessPenaltyTicks
	s.Wins = snap.Wins
	s.Stats = snap.Stats
	s.Journal = snap.Journal

	if len(snap.RNG) > 0 {
		s.rng.Restore(snap.RNG)
	}

	s.updateCaps()
	popCap, happiness, _ := s.passiveStats()
	s.PopulationCap = popCap
	s.Happiness = happiness
	return s
}

// cloneCells copies the cell matrix, cell values included, so the snapshot
// never aliases live cells the engine mutates.
func cloneCells(cells [][]*world.Cell) [][]*world.Cell {
	out := make([][]*world.Cell, len(cells))
	for y, row := range cells {
		out[y] = make([]*world.Cell, len(row))
		for x, c := range row {
			if c != nil {
				cp := *c
				out[y][x] = &cp
			}
		}
	}
	return out
}

func cloneTerrain(terrain [][]world.Terrain) [][]world.Terrain {
	out := make([][]world.Terrain, len(terrain))
	for y, row := range terrain {
		out[y] = append([]world.Terrain(nil), row...)
	}
	return out
}

// restoreGrid rebuilds a grid of the configured size from saved cells,
// dropping anything out of range if the size shrank.
func restoreGrid(size int, cells [][]*world.Cell) *world.Grid {
	g := world.NewGrid(size)
	for y := 0; y < len(cells) && y < size; y++ {
		for x := 0; x < len(cells[y]) && x < size; x++ {
			if cells[y][x] != nil {
				g.Cells[y][x] = cells[y][x]
			}
		}
	}
	return g
}
