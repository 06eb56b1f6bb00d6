package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/world"
)

// Rejection sentinels for player actions. Rejections never mutate state.
var (
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrTileOccupied     = errors.New("tile occupied")
	ErrTileEmpty        = errors.New("tile empty")
	ErrUnbuildable      = errors.New("terrain unbuildable")
	ErrBuildingLocked   = errors.New("building locked")
	ErrUnknownBuilding  = errors.New("unknown building type")
	ErrInsufficient     = errors.New("insufficient resources")
	ErrMaxLevel         = errors.New("max level reached")
	ErrHasIssue         = errors.New("building has unresolved issue")
	ErrNoIssue          = errors.New("building has no issue")
)

// BuildCost returns the terrain-adjusted cost of placing a building at
// (x, y). Rough ground inflates every resource, rounded up per resource.
func (s *Simulation) BuildCost(t world.BuildingType, x, y int) (economy.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildCost(t, x, y)
}

func (s *Simulation) buildCost(t world.BuildingType, x, y int) (economy.Bundle, error) {
	def := catalog.Get(t)
	if def == nil {
		return nil, ErrUnknownBuilding
	}
	if !s.Grid.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	return def.BuildCost.Scale(world.BuildCostMultiplier(s.Grid.TerrainAt(x, y))), nil
}

// Place constructs a level 1 building at (x, y), debiting the
// terrain-adjusted build cost atomically.
func (s *Simulation) Place(t world.BuildingType, x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	def := catalog.Get(t)
	if def == nil {
		return ErrUnknownBuilding
	}
	if !s.Grid.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if s.Grid.At(x, y) != nil {
		return ErrTileOccupied
	}
	terr := s.Grid.TerrainAt(x, y)
	if !world.Buildable(terr) {
		return ErrUnbuildable
	}
	if def.UnlockLevel > s.CityLevel {
		return fmt.Errorf("%w: %s needs city level %d", ErrBuildingLocked, def.Label, def.UnlockLevel)
	}

	cost := def.BuildCost.Scale(world.BuildCostMultiplier(terr))
	if !s.Ledger.Has(cost) {
		return fmt.Errorf("%w: need %s", ErrInsufficient, cost)
	}
	s.Ledger.Spend(cost)
	s.Grid.Place(x, y, &world.Cell{Type: t, Level: 1})
	s.Stats.TotalBuildingsPlaced++
	s.record("build", fmt.Sprintf("Placed %s at (%d, %d)", def.Label, x, y))
	return nil
}

// Bulldoze removes the building at (x, y). No refund.
func (s *Simulation) Bulldoze(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Grid.InBounds(x, y) {
		return ErrOutOfBounds
	}
	c := s.Grid.At(x, y)
	if c == nil {
		return ErrTileEmpty
	}
	s.Grid.Remove(x, y)
	if s.Selected != nil && s.Selected.X == x && s.Selected.Y == y {
		s.Selected = nil
	}
	s.record("build", fmt.Sprintf("Demolished %s at (%d, %d)", c.Type, x, y))
	return nil
}

// Select marks a tile as the current selection; out-of-bounds clears it.
func (s *Simulation) Select(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Grid.InBounds(x, y) {
		s.Selected = nil
		return
	}
	s.Selected = &world.Coord{X: x, Y: y}
}

// UpgradeCost returns the workshop-discounted cost of raising the building
// at (x, y) one level.
func (s *Simulation) UpgradeCost(x, y int) (economy.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upgradeCost(x, y)
}

func (s *Simulation) upgradeCost(x, y int) (economy.Bundle, error) {
	if !s.Grid.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	c := s.Grid.At(x, y)
	if c == nil {
		return nil, ErrTileEmpty
	}
	next := catalog.NextLevel(c)
	if next == nil {
		return nil, ErrMaxLevel
	}

	discount := s.upgradeDiscount(x, y)
	cost := economy.Bundle{}
	for res, v := range next.Cost {
		cost[res] = math.Max(0, economy.Round1(v*(1-discount)))
	}
	return cost, nil
}

// Upgrade raises the building at (x, y) one level, atomically. Buildings
// with an open issue must be repaired first.
func (s *Simulation) Upgrade(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.Grid.At(x, y)
	if c == nil {
		if !s.Grid.InBounds(x, y) {
			return ErrOutOfBounds
		}
		return ErrTileEmpty
	}
	if c.Issue != "" {
		return ErrHasIssue
	}
	cost, err := s.upgradeCost(x, y)
	if err != nil {
		return err
	}
	if !s.Ledger.Has(cost) {
		return fmt.Errorf("%w: need %s", ErrInsufficient, cost)
	}
	s.Ledger.Spend(cost)
	c.Level++
	s.Stats.TotalUpgradesDone++
	s.record("build", fmt.Sprintf("Upgraded %s at (%d, %d) to level %d", c.Type, x, y, c.Level))
	return nil
}

// RepairCost scales with the broken building's level.
func RepairCost(level int) economy.Bundle {
	coins := float64(12 * level)
	return economy.Bundle{
		economy.Coins: coins,
		economy.Tools: math.Max(2, math.Floor(coins/8)),
	}
}

// Repair clears the issue on the building at (x, y), debiting the repair
// cost atomically.
func (s *Simulation) Repair(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Grid.InBounds(x, y) {
		return ErrOutOfBounds
	}
	c := s.Grid.At(x, y)
	if c == nil {
		return ErrTileEmpty
	}
	if c.Issue == "" {
		return ErrNoIssue
	}
	cost := RepairCost(c.Level)
	if !s.Ledger.Has(cost) {
		return fmt.Errorf("%w: need %s", ErrInsufficient, cost)
	}
	s.Ledger.Spend(cost)
	issue := c.Issue
	c.Issue = ""
	s.record("issue", fmt.Sprintf("Repaired %s issue on %s at (%d, %d)", issue, c.Type, x, y))
	return nil
}
