package engine

import (
	"fmt"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/world"
)

// maybeCreateIssue rolls each intact building for a new issue. The chance
// per building per tick grows with building level; the issue kind is drawn
// from whatever actually ails the site (missing road, power, water), with
// maintenance always on the table.
func (s *Simulation) maybeCreateIssue() {
	s.Grid.Each(func(c *world.Cell, x, y int) {
		if c.Type == world.BuildingRoad || c.Issue != "" {
			return
		}
		chance := 0.001 + float64(c.Level)*0.00035
		if s.rng.Float() >= chance {
			return
		}

		def := catalog.Get(c.Type)
		if def == nil {
			return
		}

		var kinds []world.IssueKind
		if def.RequiresRoad && !s.Grid.IsRoadConnected(x, y) {
			kinds = append(kinds, world.IssueTraffic)
		}
		if c.Type != catalog.Power && s.powerAuraBoost(x, y) == 0 {
			kinds = append(kinds, world.IssuePower)
		}
		if catalog.IsResidential(c.Type) && !s.waterCovered(x, y) {
			kinds = append(kinds, world.IssueWater)
		}
		kinds = append(kinds, world.IssueMaintenance)
		if c.Level >= 2 {
			kinds = append(kinds, world.IssueSupply)
		}

		c.Issue = kinds[s.rng.IntN(len(kinds))]
		s.record("issue", fmt.Sprintf("%s issue on %s at (%d, %d)", c.Issue, c.Type, x, y))
	})
}

// forceIssues draws n non-road buildings uniformly and marks each with an
// emergency issue. Buildings drawn while already broken keep their existing
// issue, so the effective damage shrinks when the city is already hurting.
// Callers hold s.mu.
func (s *Simulation) forceIssues(n int) {
	var candidates []*world.Cell
	s.Grid.Each(func(c *world.Cell, x, y int) {
		if c.Type != world.BuildingRoad {
			candidates = append(candidates, c)
		}
	})
	if len(candidates) == 0 {
		return
	}
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	hit := 0
	for _, c := range candidates[:n] {
		if c.Issue != "" {
			continue
		}
		c.Issue = world.IssueEmergency
		hit++
	}
	s.record("issue", fmt.Sprintf("%d buildings hit by emergency damage", hit))
}

// IssueCount returns the number of open issues on the grid.
func (s *Simulation) IssueCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	s.Grid.Each(func(c *world.Cell, x, y int) {
		if c.Issue != "" {
			n++
		}
	})
	return n
}
