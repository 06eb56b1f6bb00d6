package engine

import (
	"errors"
	"testing"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/tuning"
	"github.com/talgya/pixel-city/internal/world"
)

// newTestSim builds a small simulation on all-grass terrain so placement
// tests are independent of the generated map.
func newTestSim(t *testing.T) *Simulation {
	t.Helper()
	cfg := tuning.Default()
	cfg.GridSize = 16
	s := NewSimulation(cfg, 7)
	for y := 0; y < cfg.GridSize; y++ {
		for x := 0; x < cfg.GridSize; x++ {
			s.Grid.Terrain[y][x] = world.TerrainGrass
		}
	}
	return s
}

// grant tops up the ledger without cap clamping getting in the way.
func grant(s *Simulation, b economy.Bundle) {
	for id, v := range b {
		s.Ledger.Amounts[id] = v
		if !economy.StorageExempt(id) && s.Ledger.Cap(id) < v {
			s.Ledger.Caps[id] = v
		}
	}
}

func TestPlaceDebitsCost(t *testing.T) {
	s := newTestSim(t)
	wood := s.Ledger.Get(economy.Wood)

	if err := s.Place(catalog.Farm, 5, 5); err != nil {
		t.Fatalf("place farm: %v", err)
	}
	if got := s.Ledger.Get(economy.Wood); got != wood-10 {
		t.Errorf("wood = %v, want %v", got, wood-10)
	}
	c := s.Grid.At(5, 5)
	if c == nil || c.Type != catalog.Farm || c.Level != 1 {
		t.Errorf("cell = %+v, want level 1 farm", c)
	}
	if s.Stats.TotalBuildingsPlaced != 1 {
		t.Errorf("placements = %d, want 1", s.Stats.TotalBuildingsPlaced)
	}
}

func TestPlaceRejectionsLeaveStateUntouched(t *testing.T) {
	s := newTestSim(t)
	s.Place(catalog.Farm, 5, 5)
	wood := s.Ledger.Get(economy.Wood)

	if err := s.Place(catalog.Farm, 5, 5); err != ErrTileOccupied {
		t.Errorf("occupied tile: got %v, want ErrTileOccupied", err)
	}
	if err := s.Place(catalog.Apartment, 6, 5); err == nil || !errors.Is(err, ErrBuildingLocked) {
		t.Errorf("locked building: got %v, want ErrBuildingLocked", err)
	}
	if err := s.Place("castle", 6, 5); err != ErrUnknownBuilding {
		t.Errorf("unknown type: got %v, want ErrUnknownBuilding", err)
	}
	if err := s.Place(catalog.Farm, -1, 5); err != ErrOutOfBounds {
		t.Errorf("out of bounds: got %v, want ErrOutOfBounds", err)
	}

	s.Grid.Terrain[5][6] = world.TerrainWater
	if err := s.Place(catalog.Farm, 6, 5); err != ErrUnbuildable {
		t.Errorf("water tile: got %v, want ErrUnbuildable", err)
	}

	s.Ledger.Amounts[economy.Wood] = 0
	if err := s.Place(catalog.Farm, 7, 5); err == nil || !errors.Is(err, ErrInsufficient) {
		t.Errorf("broke city: got %v, want ErrInsufficient", err)
	}

	if got := s.Ledger.Get(economy.Wood); got != 0 {
		t.Errorf("wood = %v, rejections must not spend", got)
	}
	if wood == 0 {
		t.Error("sanity: wood should have been positive before the drain")
	}
	if s.Grid.Occupied() != 1 {
		t.Errorf("occupied = %d, want just the first farm", s.Grid.Occupied())
	}
}

func TestTerrainInflatesBuildCost(t *testing.T) {
	s := newTestSim(t)
	s.Grid.Terrain[5][5] = world.TerrainRock

	cost, err := s.BuildCost(catalog.Farm, 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	// Farm costs 10 wood; rock doubles it.
	if cost[economy.Wood] != 20 {
		t.Errorf("rock farm cost = %v wood, want 20", cost[economy.Wood])
	}

	s.Grid.Terrain[6][5] = world.TerrainHill
	cost, _ = s.BuildCost(catalog.Quarry, 5, 6)
	// Quarry costs 20 coins, 10 wood; hill multiplies by 1.5.
	if cost[economy.Coins] != 30 || cost[economy.Wood] != 15 {
		t.Errorf("hill quarry cost = %v, want 30 coins, 15 wood", cost)
	}
}

func TestUpgradeFlow(t *testing.T) {
	s := newTestSim(t)
	s.Place(catalog.Farm, 5, 5)
	grant(s, economy.Bundle{economy.Coins: 1000, economy.Wood: 1000})

	if err := s.Upgrade(5, 5); err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if c := s.Grid.At(5, 5); c.Level != 2 {
		t.Errorf("level = %d, want 2", c.Level)
	}
	// Barn Farm costs 50 coins, 20 wood.
	if got := s.Ledger.Get(economy.Coins); got != 950 {
		t.Errorf("coins = %v, want 950", got)
	}
	if s.Stats.TotalUpgradesDone != 1 {
		t.Errorf("upgrades = %d, want 1", s.Stats.TotalUpgradesDone)
	}
}

func TestUpgradeBlockedByIssueAndMaxLevel(t *testing.T) {
	s := newTestSim(t)
	s.Place(catalog.Farm, 5, 5)
	grant(s, economy.Bundle{economy.Coins: 1e6, economy.Wood: 1e6, economy.Planks: 1e6,
		economy.Stone: 1e6, economy.Bricks: 1e6, economy.Tools: 1e6,
		economy.Metal: 1e6, economy.Glass: 1e6})

	c := s.Grid.At(5, 5)
	c.Issue = world.IssueMaintenance
	if err := s.Upgrade(5, 5); err != ErrHasIssue {
		t.Fatalf("issue block: got %v, want ErrHasIssue", err)
	}
	c.Issue = ""

	for c.Level < catalog.MaxLevel(catalog.Farm) {
		if err := s.Upgrade(5, 5); err != nil {
			t.Fatalf("upgrade to %d: %v", c.Level+1, err)
		}
	}
	if err := s.Upgrade(5, 5); err != ErrMaxLevel {
		t.Errorf("past max: got %v, want ErrMaxLevel", err)
	}
}

func TestWorkshopDiscountsUpgrades(t *testing.T) {
	s := newTestSim(t)
	s.Place(catalog.Farm, 5, 5)
	s.Grid.Place(6, 5, &world.Cell{Type: catalog.Workshop, Level: 2})

	cost, err := s.UpgradeCost(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	// Tier 2 farm costs 50 coins at a 10% discount.
	if cost[economy.Coins] != 45 {
		t.Errorf("discounted coins = %v, want 45", cost[economy.Coins])
	}
}

func TestRepair(t *testing.T) {
	s := newTestSim(t)
	s.Place(catalog.Farm, 5, 5)
	c := s.Grid.At(5, 5)

	if err := s.Repair(5, 5); err != ErrNoIssue {
		t.Fatalf("intact building: got %v, want ErrNoIssue", err)
	}

	c.Issue = world.IssueSupply
	c.Level = 3
	s.Ledger.Amounts[economy.Coins] = 0
	if err := s.Repair(5, 5); err == nil || !errors.Is(err, ErrInsufficient) {
		t.Fatalf("broke repair: got %v, want ErrInsufficient", err)
	}
	if c.Issue == "" {
		t.Fatal("failed repair must not clear the issue")
	}

	grant(s, economy.Bundle{economy.Coins: 100, economy.Tools: 10})
	if err := s.Repair(5, 5); err != nil {
		t.Fatalf("repair: %v", err)
	}
	if c.Issue != "" {
		t.Error("issue should be cleared")
	}
	// Level 3: 36 coins and max(2, floor(36/8)) = 4 tools.
	if got := s.Ledger.Get(economy.Coins); got != 64 {
		t.Errorf("coins = %v, want 64", got)
	}
	if got := s.Ledger.Get(economy.Tools); got != 6 {
		t.Errorf("tools = %v, want 6", got)
	}
}

func TestBulldozeClearsSelection(t *testing.T) {
	s := newTestSim(t)
	s.Place(catalog.Farm, 5, 5)
	s.Select(5, 5)

	if err := s.Bulldoze(5, 5); err != nil {
		t.Fatal(err)
	}
	if s.Selected != nil {
		t.Error("selection should clear when its building is demolished")
	}
	if err := s.Bulldoze(5, 5); err != ErrTileEmpty {
		t.Errorf("empty tile: got %v, want ErrTileEmpty", err)
	}
}
