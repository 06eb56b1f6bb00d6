// Synergy resolution: every spatial and contextual multiplier affecting a
// cell's production. Bonuses are additive over a base of 1.0; the road,
// water, and issue penalties scale the accumulated total multiplicatively.
package engine

import (
	"math"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/world"
)

// Aggregate clamps on stacked aura bonuses.
const (
	maxFoodAura        = 0.5
	maxPowerAura       = 0.6
	maxUpgradeDiscount = 0.45
)

// Outer search radii for aura queries. Each source still applies its own
// declared radius; the outer bound only caps the scan.
const (
	farmAuraSearchRadius  = 4
	powerAuraSearchRadius = 10
	waterSearchRadius     = 14
	workshopSearchRadius  = 4
	parkAuraSearchRadius  = 6
)

func (s *Simulation) prestigeProductionBonus() float64 {
	return float64(s.PrestigeStars) * 0.05
}

func (s *Simulation) prestigeHappinessBonus() float64 {
	return float64(s.PrestigeStars) * 0.02
}

// cityLevelProductionBonus is a step function of city level.
func (s *Simulation) cityLevelProductionBonus() float64 {
	switch {
	case s.CityLevel >= 7:
		return 1
	case s.CityLevel == 6:
		return 0.5
	case s.CityLevel == 5:
		return 0.35
	case s.CityLevel == 4:
		return 0.2
	case s.CityLevel == 3:
		return 0.1
	default:
		return 0
	}
}

func (s *Simulation) buffProductionBonus() float64 {
	sum := 0.0
	for _, b := range s.Buffs {
		sum += b.ProductionMult
	}
	return sum
}

func (s *Simulation) buffHappinessBonus() float64 {
	sum := 0.0
	for _, b := range s.Buffs {
		sum += b.HappinessAdd
	}
	return sum
}

func (s *Simulation) terrainBonus(t world.BuildingType, x, y int) float64 {
	b := catalog.Get(t)
	if b == nil || b.TerrainBonus == nil {
		return 0
	}
	return b.TerrainBonus[s.Grid.TerrainAt(x, y)]
}

// roadBoost returns the adjacency bonus from neighboring roads: the boost
// of the highest-level adjacent road, once per adjacent road cell.
func (s *Simulation) roadBoost(x, y int) float64 {
	roadCount := 0
	bestLevel := 1
	for _, p := range s.Grid.Adjacent(x, y) {
		c := s.Grid.At(p.X, p.Y)
		if c != nil && c.Type == world.BuildingRoad {
			roadCount++
			if c.Level > bestLevel {
				bestLevel = c.Level
			}
		}
	}
	if roadCount == 0 {
		return 0
	}
	return catalog.Buildings[catalog.Road].Levels[bestLevel-1].RoadBoost * float64(roadCount)
}

// marketResidentialBoost sums adjacent markets' residential coin synergy.
func (s *Simulation) marketResidentialBoost(x, y int) float64 {
	boost := 0.0
	for _, p := range s.Grid.Adjacent(x, y) {
		c := s.Grid.At(p.X, p.Y)
		if c == nil || c.Type != catalog.Market {
			continue
		}
		if ld := catalog.LevelData(c); ld != nil && ld.Synergy != nil {
			boost += ld.Synergy.ResidentialCoins
		}
	}
	return boost
}

// farmAuraBoost sums food auras from level-3+ farms whose declared radius
// covers (x, y), clamped to maxFoodAura.
func (s *Simulation) farmAuraBoost(x, y int) float64 {
	boost := 0.0
	farms := s.Grid.WithinRadius(x, y, farmAuraSearchRadius, func(c *world.Cell, _, _ int) bool {
		return c.Type == catalog.Farm && c.Level >= 3
	})
	for _, ref := range farms {
		ld := catalog.LevelData(ref.Cell)
		if ld == nil || ld.Synergy == nil {
			continue
		}
		r := ld.Synergy.Radius
		if r == 0 {
			r = 3
		}
		dx, dy := x-ref.X, y-ref.Y
		if dx*dx+dy*dy <= r*r {
			boost += ld.Synergy.AuraFood
		}
	}
	return economy.Clamp(boost, 0, maxFoodAura)
}

// powerAuraBoost sums boosts from level-2+ power plants in range, clamped
// to maxPowerAura.
func (s *Simulation) powerAuraBoost(x, y int) float64 {
	boost := 0.0
	plants := s.Grid.WithinRadius(x, y, powerAuraSearchRadius, func(c *world.Cell, _, _ int) bool {
		return c.Type == catalog.Power && c.Level >= 2
	})
	for _, ref := range plants {
		ld := catalog.LevelData(ref.Cell)
		if ld == nil || ld.Synergy == nil {
			continue
		}
		r := ld.Synergy.Radius
		if r == 0 {
			r = 6
		}
		dx, dy := x-ref.X, y-ref.Y
		if dx*dx+dy*dy <= r*r {
			boost += ld.Synergy.Powered
		}
	}
	return economy.Clamp(boost, 0, maxPowerAura)
}

// waterCovered reports whether any water tower's declared radius reaches
// (x, y).
func (s *Simulation) waterCovered(x, y int) bool {
	towers := s.Grid.WithinRadius(x, y, waterSearchRadius, func(c *world.Cell, _, _ int) bool {
		return c.Type == catalog.WaterTower
	})
	for _, ref := range towers {
		ld := catalog.LevelData(ref.Cell)
		if ld == nil || ld.Synergy == nil {
			continue
		}
		r := ld.Synergy.WaterRadius
		if r == 0 {
			r = 4
		}
		dx, dy := x-ref.X, y-ref.Y
		if dx*dx+dy*dy <= r*r {
			return true
		}
	}
	return false
}

// upgradeDiscount sums nearby level-2+ workshops' discount synergy,
// clamped to maxUpgradeDiscount.
func (s *Simulation) upgradeDiscount(x, y int) float64 {
	discount := 0.0
	shops := s.Grid.WithinRadius(x, y, workshopSearchRadius, func(c *world.Cell, _, _ int) bool {
		return c.Type == catalog.Workshop && c.Level >= 2
	})
	for _, ref := range shops {
		ld := catalog.LevelData(ref.Cell)
		if ld == nil || ld.Synergy == nil {
			continue
		}
		r := ld.Synergy.Radius
		if r == 0 {
			r = 3
		}
		dx, dy := x-ref.X, y-ref.Y
		if dx*dx+dy*dy <= r*r {
			discount += ld.Synergy.UpgradeDiscount
		}
	}
	return economy.Clamp(discount, 0, maxUpgradeDiscount)
}

// ProductionMultiplier resolves the full multiplier for one output resource
// of the cell at (x, y). Additive terms accumulate in a fixed order, then
// the road-requirement, water-coverage, and issue penalties scale the total.
// Never negative.
func (s *Simulation) ProductionMultiplier(c *world.Cell, x, y int, res economy.ResourceID) float64 {
	mult := 1.0
	mult += s.cityLevelProductionBonus()
	mult += s.prestigeProductionBonus()
	mult += s.buffProductionBonus()
	mult += s.terrainBonus(c.Type, x, y)

	if c.Type != world.BuildingRoad {
		mult += s.roadBoost(x, y)
	}
	if res == economy.Food {
		mult += s.farmAuraBoost(x, y)
	}
	if res == economy.Coins && catalog.IsResidential(c.Type) {
		mult += s.marketResidentialBoost(x, y)
	}
	if c.Type != catalog.Power && c.Type != world.BuildingRoad {
		mult += s.powerAuraBoost(x, y)
	}

	// Lumber mills boost adjacent farms.
	if c.Type == catalog.Farm {
		for _, p := range s.Grid.Adjacent(x, y) {
			n := s.Grid.At(p.X, p.Y)
			if n == nil || n.Type != catalog.Lumber || n.Level < 2 {
				continue
			}
			if ld := catalog.LevelData(n); ld != nil && ld.Synergy != nil {
				mult += ld.Synergy.FarmAdj
			}
		}
	}

	// Penalties scale the whole accumulated multiplier. They apply
	// uniformly, even to outputs that would not seem road- or
	// water-dependent; storage-only buildings produce nothing so the
	// question is moot for them.
	b := catalog.Get(c.Type)
	if b != nil && b.RequiresRoad && !s.Grid.IsRoadConnected(x, y) {
		mult *= 0.3
	}
	if catalog.IsResidential(c.Type) && !s.waterCovered(x, y) {
		mult *= 0.6
	}
	if c.Issue != "" {
		mult *= 0.5
	}

	return math.Max(0, mult)
}
