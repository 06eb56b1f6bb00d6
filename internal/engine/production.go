// Per-tick production resolution: capacity recomputation, all-or-nothing
// consumption gating, multiplier application, interest, and food autosell.
package engine

import (
	"math"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/world"
)

// autosellThreshold and autosellRate govern hydro-farm overflow conversion.
const (
	autosellThreshold = 0.95
	autosellRate      = 1.2
)

// updateCaps recomputes the active capacity table from base caps plus the
// aggregate storage of warehouse tiers, then re-clamps the ledger.
func (s *Simulation) updateCaps() {
	storageBonus := 0.0
	s.Grid.Each(func(c *world.Cell, _, _ int) {
		if c.Type != catalog.Warehouse {
			return
		}
		if ld := catalog.LevelData(c); ld != nil {
			storageBonus += ld.Storage
		}
	})

	caps := economy.BaseCaps()
	for id := range caps {
		if !economy.StorageExempt(id) {
			caps[id] += storageBonus
		}
	}
	s.Ledger.SetCaps(caps)
}

// canOperate reports whether the cell's consumption bundle is affordable.
// Production is all-or-nothing: a cell that cannot cover its inputs skips
// the whole tick.
func (s *Simulation) canOperate(c *world.Cell) bool {
	ld := catalog.LevelData(c)
	if ld == nil {
		return false
	}
	return ld.Consumes == nil || s.Ledger.Has(ld.Consumes)
}

// applyProduction runs one cell's production for this tick: consume inputs,
// produce each output scaled by its resolved multiplier, and add bank
// interest on a positive coin balance.
func (s *Simulation) applyProduction(c *world.Cell, x, y int) {
	ld := catalog.LevelData(c)
	if ld == nil || !s.canOperate(c) {
		return
	}
	if ld.Consumes != nil {
		s.Ledger.Spend(ld.Consumes)
	}

	produced := economy.Bundle{}
	for res, base := range ld.Produces {
		produced[res] += base * s.ProductionMultiplier(c, x, y, res)
	}

	if ld.InterestPerMin > 0 {
		if coins := s.Ledger.Get(economy.Coins); coins > 0 {
			produced[economy.Coins] += coins * ld.InterestPerMin / 60
		}
	}

	s.Ledger.Add(produced)

	if v := produced[economy.Coins]; v > 0 {
		s.Stats.TotalCoinsEarned += v
	}
	if v := produced[economy.Food]; v > 0 {
		s.Stats.TotalFoodProduced += v
	}
}

// resolveAutoSellFood converts food above 95% of capacity into coins at
// 1.2x, when any farm with the autosell synergy exists.
func (s *Simulation) resolveAutoSellFood() {
	hasAutoSell := false
	s.Grid.Each(func(c *world.Cell, _, _ int) {
		if c.Type != catalog.Farm {
			return
		}
		if ld := catalog.LevelData(c); ld != nil && ld.Synergy != nil && ld.Synergy.AutoSellFood {
			hasAutoSell = true
		}
	})
	if !hasAutoSell {
		return
	}

	cap := s.Ledger.Cap(economy.Food)
	threshold := cap * autosellThreshold
	excess := s.Ledger.Get(economy.Food) - threshold
	if excess <= 0 {
		return
	}
	s.Ledger.Spend(economy.Bundle{economy.Food: excess})
	s.Ledger.Add(economy.Bundle{economy.Coins: excess * autosellRate})
}

// passiveStats recomputes population capacity, happiness, and the open
// issue count from the whole board.
func (s *Simulation) passiveStats() (popCap int, happiness int, issues int) {
	cap := 0
	happy := 50.0

	s.Grid.Each(func(c *world.Cell, x, y int) {
		ld := catalog.LevelData(c)
		if ld == nil {
			return
		}
		cap += ld.Population
		happy += ld.Happiness
		if c.Issue != "" {
			issues++
			happy -= 2
		}

		// Park auras lift every non-park building in range.
		if c.Type != catalog.Park {
			parks := s.Grid.WithinRadius(x, y, parkAuraSearchRadius, func(pc *world.Cell, _, _ int) bool {
				return pc.Type == catalog.Park
			})
			for _, ref := range parks {
				pl := catalog.LevelData(ref.Cell)
				if pl == nil || pl.Synergy == nil {
					continue
				}
				r := pl.Synergy.Radius
				if r == 0 {
					r = 4
				}
				dx, dy := x-ref.X, y-ref.Y
				if dx*dx+dy*dy <= r*r {
					happy += pl.Synergy.HappinessAura * 10
				}
			}
		}
	})

	happy += s.buffHappinessBonus()
	happy += s.prestigeHappinessBonus() * 100
	if s.HappinessPenaltyTicks > 0 {
		happy -= 8
	}

	if cap < 0 {
		cap = 0
	}
	return cap, int(economy.Clamp(math.Round(happy), 0, 250)), issues
}
