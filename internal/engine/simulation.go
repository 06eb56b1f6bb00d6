// Package engine implements the city simulation core: the per-tick
// production/consumption resolution, spatial synergy bonuses, building
// actions, progression, and the event system.
package engine

import (
	"sync"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/entropy"
	"github.com/talgya/pixel-city/internal/tuning"
	"github.com/talgya/pixel-city/internal/world"
)

// Buff is a time-limited global modifier to production or happiness.
type Buff struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Remaining      int     `json:"remaining"`
	ProductionMult float64 `json:"productionMult"`
	HappinessAdd   float64 `json:"happinessAdd"`
}

// WinFlags are set-once milestones. Once true they never revert, across
// any number of ticks, actions, or prestige resets.
type WinFlags struct {
	MaxLevel      bool `json:"maxLevel"`      // reached the top city level
	PrestigeCycle bool `json:"prestigeCycle"` // completed at least one prestige
	StarFame      bool `json:"starFame"`      // 3+ stars and 1000+ fame
	Ultimate      bool `json:"ultimate"`      // all three held at once
}

// StatSample is one point of the periodic history series.
type StatSample struct {
	T     uint64 `json:"t"`
	Pop   int    `json:"pop"`
	Happy int    `json:"happy"`
	Coins int    `json:"coins"`
	Food  int    `json:"food"`
}

// Stats tracks lifetime aggregates and a bounded history ring.
type Stats struct {
	TotalCoinsEarned     float64      `json:"totalCoinsEarned"`
	TotalFoodProduced    float64      `json:"totalFoodProduced"`
	TotalBuildingsPlaced int          `json:"totalBuildingsPlaced"`
	TotalUpgradesDone    int          `json:"totalUpgradesDone"`
	PlayTimeSeconds      uint64       `json:"playTimeSeconds"`
	History              []StatSample `json:"history"`
}

// historyEvery controls history sampling cadence; historyMax bounds the ring.
const (
	historyEvery = 30
	historyMax   = 200
)

// JournalEntry is a notable occurrence, kept for observation endpoints.
type JournalEntry struct {
	Tick        uint64 `json:"tick"`
	Description string `json:"description"`
	Category    string `json:"category"` // "build", "issue", "event", "progress"
}

const journalMax = 1000

// Simulation owns the complete city state. All engine functions operate on
// an explicit *Simulation, so independent instances (tests, multiple games)
// coexist freely. A single mutex serializes ticks, player actions, and
// snapshotting; within one goroutine the simulation is strictly sequential.
type Simulation struct {
	mu  sync.Mutex
	cfg tuning.Tuning
	rng *entropy.Source

	Grid   *world.Grid
	Ledger *economy.Ledger

	CityLevel     int
	PrestigeStars int
	PrestigeCount int

	Population    float64
	PopulationCap int
	Happiness     int

	Buffs                 []Buff
	ActiveEventID         string // "" when no offer is pending
	EventTimer            int
	HappinessPenaltyTicks int

	Selected *world.Coord

	Wins    WinFlags
	Stats   Stats
	Journal []JournalEntry

	seed int64
}

// NewSimulation creates a fresh city: generated terrain, starting stock,
// level 1, neutral happiness. The seed fixes terrain and the random stream.
func NewSimulation(cfg tuning.Tuning, seed int64) *Simulation {
	grid := world.NewGrid(cfg.GridSize)
	grid.Terrain = world.GenerateTerrain(cfg.GridSize, seed)

	return &Simulation{
		cfg:        cfg,
		rng:        entropy.NewSource(seed),
		Grid:       grid,
		Ledger:     economy.NewLedger(),
		CityLevel:  1,
		Happiness:  60,
		EventTimer: 30,
		seed:       seed,
	}
}

// CityLevelName returns the display name of the current city level.
func (s *Simulation) CityLevelName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e := catalog.LevelEntry(s.CityLevel); e != nil {
		return e.Name
	}
	return "Unknown"
}

// Tick advances the simulation by one simulated second.
func (s *Simulation) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick(true)
}

// AdvanceTicks runs n consecutive ticks, for deterministic testing and
// scripted fast-forwarding. Issue generation stays enabled.
func (s *Simulation) AdvanceTicks(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.tick(true)
	}
}

// record appends to the journal, trimming the oldest entries past the cap.
func (s *Simulation) record(category, description string) {
	s.Journal = append(s.Journal, JournalEntry{
		Tick:        s.Stats.PlayTimeSeconds,
		Description: description,
		Category:    category,
	})
	if len(s.Journal) > journalMax {
		s.Journal = s.Journal[len(s.Journal)-journalMax:]
	}
}

// RecentJournal returns up to limit most recent journal entries.
func (s *Simulation) RecentJournal(limit int) []JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := 0
	if len(s.Journal) > limit {
		start = len(s.Journal) - limit
	}
	out := make([]JournalEntry, len(s.Journal)-start)
	copy(out, s.Journal[start:])
	return out
}
