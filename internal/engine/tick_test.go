package engine

import (
	"math"
	"testing"
	"time"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/world"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFarmProducesWithTerrainBonus(t *testing.T) {
	s := newTestSim(t)
	s.Place(catalog.Farm, 5, 5)
	food := s.Ledger.Get(economy.Food)

	s.Tick()

	// Field yields 2 food; grass adds a 0.2 terrain bonus.
	want := food + 2*1.2
	if got := s.Ledger.Get(economy.Food); !almostEqual(got, want) {
		t.Errorf("food = %v, want %v", got, want)
	}
	if s.Stats.TotalFoodProduced == 0 {
		t.Error("food stat should accumulate")
	}
}

func TestConsumptionIsAllOrNothing(t *testing.T) {
	s := newTestSim(t)
	// Craft Shed consumes 1 wood + 0.5 stone per tick.
	s.Grid.Place(5, 5, &world.Cell{Type: catalog.Workshop, Level: 1})
	s.Grid.Place(5, 6, &world.Cell{Type: catalog.Road, Level: 1})
	s.Ledger.Amounts[economy.Wood] = 0.5
	s.Ledger.Amounts[economy.Stone] = 10
	s.Ledger.Amounts[economy.Tools] = 0

	s.Tick()

	if got := s.Ledger.Get(economy.Tools); got != 0 {
		t.Errorf("tools = %v, starved workshop must not produce", got)
	}
	if got := s.Ledger.Get(economy.Stone); got != 10 {
		t.Errorf("stone = %v, starved workshop must not consume", got)
	}
}

func TestBankInterest(t *testing.T) {
	s := newTestSim(t)
	s.Grid.Place(5, 5, &world.Cell{Type: catalog.Bank, Level: 1})
	s.Grid.Place(5, 6, &world.Cell{Type: catalog.Road, Level: 1})
	s.Ledger.Amounts[economy.Coins] = 600

	s.Tick()

	// Interest alone is balance * 0.02 / 60 = 0.2 on 600 coins; the bank's
	// base yield comes on top.
	if got := s.Ledger.Get(economy.Coins); got < 600.2 {
		t.Errorf("coins = %v, want at least 600.2", got)
	}
}

func TestAutoSellFoodOverflow(t *testing.T) {
	s := newTestSim(t)
	s.Grid.Place(5, 5, &world.Cell{Type: catalog.Farm, Level: 5}) // Hydro Farm
	cap := s.Ledger.Cap(economy.Food)
	s.Ledger.Amounts[economy.Food] = cap
	coins := s.Ledger.Get(economy.Coins)

	s.Tick()

	if got := s.Ledger.Get(economy.Food); got > cap*0.95+1e-9 {
		t.Errorf("food = %v, want at most 95%% of cap %v", got, cap)
	}
	if got := s.Ledger.Get(economy.Coins); got <= coins {
		t.Errorf("coins = %v, autosell should pay out above %v", got, coins)
	}
}

func TestPopulationGrowthNeedsFoodAndCapacity(t *testing.T) {
	s := newTestSim(t)
	s.Grid.Place(5, 5, &world.Cell{Type: catalog.Hut, Level: 1})
	s.Grid.Place(5, 6, &world.Cell{Type: catalog.Road, Level: 1})
	s.Grid.Place(6, 5, &world.Cell{Type: catalog.WaterTower, Level: 1})

	s.Tick()
	if s.Population <= 0 {
		t.Fatalf("population = %v, want growth with food and capacity", s.Population)
	}

	grown := s.Population
	s.Ledger.Amounts[economy.Food] = 0
	s.Tick()
	if s.Population > grown {
		t.Errorf("population grew to %v with no food", s.Population)
	}
}

func TestPopulationDecaysAboveCapacity(t *testing.T) {
	s := newTestSim(t)
	s.Population = 10 // no housing at all

	s.Tick()

	if !almostEqual(s.Population, 9.8) {
		t.Errorf("population = %v, want 9.8 after decay over zero cap", s.Population)
	}
}

func TestBuffDecay(t *testing.T) {
	s := newTestSim(t)
	s.Buffs = []Buff{{ID: "x", Remaining: 2, ProductionMult: 0.2}}

	s.Tick()
	if len(s.Buffs) != 1 || s.Buffs[0].Remaining != 1 {
		t.Fatalf("buffs after one tick = %+v", s.Buffs)
	}
	s.Tick()
	if len(s.Buffs) != 0 {
		t.Errorf("buff should expire after its duration, got %+v", s.Buffs)
	}
}

func TestDeterministicRuns(t *testing.T) {
	build := func() *Simulation {
		s := newTestSim(t)
		s.Place(catalog.Road, 5, 5)
		s.Place(catalog.Farm, 4, 5)
		s.Place(catalog.Hut, 6, 5)
		s.Place(catalog.Lumber, 5, 4)
		return s
	}

	a, b := build(), build()
	a.AdvanceTicks(500)
	b.AdvanceTicks(500)

	for _, id := range []economy.ResourceID{economy.Wood, economy.Food, economy.Coins} {
		if a.Ledger.Get(id) != b.Ledger.Get(id) {
			t.Errorf("%s diverged: %v vs %v", id, a.Ledger.Get(id), b.Ledger.Get(id))
		}
	}
	if a.Population != b.Population || a.Happiness != b.Happiness {
		t.Error("population or happiness diverged between identical runs")
	}
	if a.ActiveEventID != b.ActiveEventID || a.EventTimer != b.EventTimer {
		t.Error("event state diverged between identical runs")
	}
}

func TestHistorySampling(t *testing.T) {
	s := newTestSim(t)
	s.AdvanceTicks(90)

	if len(s.Stats.History) != 3 {
		t.Errorf("history samples = %d, want 3 after 90 ticks", len(s.Stats.History))
	}
	if s.Stats.PlayTimeSeconds != 90 {
		t.Errorf("play time = %d, want 90", s.Stats.PlayTimeSeconds)
	}
}

func TestOfflineProgress(t *testing.T) {
	s := newTestSim(t)
	s.cfg.MaxOfflineSeconds = 120
	s.Place(catalog.Farm, 5, 5)
	food := s.Ledger.Get(economy.Food)

	// Short gaps are ignored.
	if n := s.ApplyOffline(time.Now().Add(-10*time.Second), time.Now()); n != 0 {
		t.Errorf("applied %d ticks for a 10s gap, want 0", n)
	}

	// Long gaps are capped.
	n := s.ApplyOffline(time.Now().Add(-24*time.Hour), time.Now())
	if n != 120 {
		t.Errorf("applied %d ticks, want the 120 cap", n)
	}
	if got := s.Ledger.Get(economy.Food); got <= food {
		t.Error("offline ticks should still produce")
	}

	// Issue generation stays off during catch-up.
	if s.IssueCount() != 0 {
		t.Errorf("issues = %d after offline catch-up, want 0", s.IssueCount())
	}
}
