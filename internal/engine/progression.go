package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/world"
)

var (
	ErrMaxCityLevel    = errors.New("max city level reached")
	ErrRequirementsNot = errors.New("level requirements not met")
	ErrNoPrestigeGain  = errors.New("no prestige to gain")
)

// CanLevelUp reports whether the next city level's requirements are met.
func (s *Simulation) CanLevelUp() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := catalog.NextLevelEntry(s.CityLevel)
	if next == nil {
		return false
	}
	return s.Ledger.Has(next.Requirements)
}

// LevelUp advances the city one level, debiting requirements and crediting
// the reward. One level per call.
func (s *Simulation) LevelUp() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := catalog.NextLevelEntry(s.CityLevel)
	if next == nil {
		return ErrMaxCityLevel
	}
	if !s.Ledger.Has(next.Requirements) {
		return fmt.Errorf("%w: need %s", ErrRequirementsNot, next.Requirements)
	}
	s.Ledger.Spend(next.Requirements)
	s.Ledger.Add(next.Reward)
	s.CityLevel = next.Level
	s.record("progress", fmt.Sprintf("City advanced to level %d: %s", next.Level, next.Name))
	return nil
}

// PrestigeGain returns the stars a reset would award right now. Zero until
// the city reaches the final level.
func (s *Simulation) PrestigeGain() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prestigeGain()
}

func (s *Simulation) prestigeGain() int {
	if s.CityLevel < catalog.MaxCityLevel {
		return 0
	}
	fame := s.Ledger.Get(economy.Fame)
	science := s.Ledger.Get(economy.Science)
	return 1 + int(math.Floor(fame/2000)) + int(math.Floor(science/5000))
}

// Prestige resets the city in exchange for permanent stars: fresh terrain,
// starting resources padded per star, everything else back to day one.
// Stars and lifetime stats persist.
func (s *Simulation) Prestige() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gain := s.prestigeGain()
	if gain <= 0 {
		return 0, ErrNoPrestigeGain
	}

	s.PrestigeStars += gain
	s.PrestigeCount++
	s.Wins.PrestigeCycle = true

	s.seed = s.rng.Int63()
	s.Grid = world.NewGrid(s.cfg.GridSize)
	s.Grid.Terrain = world.GenerateTerrain(s.cfg.GridSize, s.seed)

	s.Ledger = economy.NewLedger()
	s.Ledger.Add(s.starBonus())

	s.CityLevel = 1
	s.Population = 0
	s.PopulationCap = 0
	s.Happiness = 60
	s.Buffs = nil
	s.ActiveEventID = ""
	s.EventTimer = 60
	s.HappinessPenaltyTicks = 0
	s.Selected = nil

	s.record("progress", fmt.Sprintf("Prestiged for %d stars (total %d)", gain, s.PrestigeStars))
	return gain, nil
}

// starBonus is the per-star starting stockpile added after a reset.
func (s *Simulation) starBonus() economy.Bundle {
	stars := float64(s.PrestigeStars)
	return economy.Bundle{
		economy.Wood:  stars * 10,
		economy.Stone: stars * 8,
		economy.Food:  stars * 8,
		economy.Coins: stars * 60,
	}
}

// evaluateWinConditions latches achievement flags. Flags only ever flip on.
func (s *Simulation) evaluateWinConditions() {
	if s.CityLevel >= catalog.MaxCityLevel && !s.Wins.MaxLevel {
		s.Wins.MaxLevel = true
		s.record("progress", "Reached the final city level")
	}
	if s.PrestigeStars >= 3 && s.Ledger.Get(economy.Fame) >= 1000 && !s.Wins.StarFame {
		s.Wins.StarFame = true
		s.record("progress", "Earned 3 stars and 1000 fame")
	}
	if s.Wins.MaxLevel && s.Wins.PrestigeCycle && s.Wins.StarFame && !s.Wins.Ultimate {
		s.Wins.Ultimate = true
		s.record("progress", "Every milestone achieved")
	}
}
