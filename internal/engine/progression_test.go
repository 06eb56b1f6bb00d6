package engine

import (
	"errors"
	"testing"

	"github.com/talgya/pixel-city/internal/catalog"
	"github.com/talgya/pixel-city/internal/economy"
)

func TestLevelUpChecksRequirements(t *testing.T) {
	s := newTestSim(t)

	if s.CanLevelUp() {
		t.Error("a fresh city cannot afford level 2")
	}
	if err := s.LevelUp(); !errors.Is(err, ErrRequirementsNot) {
		t.Fatalf("got %v, want ErrRequirementsNot", err)
	}
	if s.CityLevel != 1 {
		t.Error("failed level up must not advance")
	}

	grant(s, economy.Bundle{economy.Food: 100, economy.Wood: 150, economy.Stone: 100, economy.Coins: 50})
	if !s.CanLevelUp() {
		t.Fatal("requirements granted, CanLevelUp should pass")
	}
	if err := s.LevelUp(); err != nil {
		t.Fatal(err)
	}
	if s.CityLevel != 2 {
		t.Errorf("city level = %d, want 2", s.CityLevel)
	}
	// Requirements debited, village reward (250 coins) credited.
	if got := s.Ledger.Get(economy.Coins); got != 250 {
		t.Errorf("coins = %v, want 250", got)
	}
	if got := s.Ledger.Get(economy.Food); got != 0 {
		t.Errorf("food = %v, requirements should be spent", got)
	}
}

func TestLevelUpStopsAtMax(t *testing.T) {
	s := newTestSim(t)
	s.CityLevel = catalog.MaxCityLevel
	if err := s.LevelUp(); !errors.Is(err, ErrMaxCityLevel) {
		t.Errorf("got %v, want ErrMaxCityLevel", err)
	}
}

func TestPrestigeGain(t *testing.T) {
	s := newTestSim(t)

	if got := s.PrestigeGain(); got != 0 {
		t.Errorf("gain below max level = %d, want 0", got)
	}

	s.CityLevel = catalog.MaxCityLevel
	grant(s, economy.Bundle{economy.Fame: 4200, economy.Science: 10500})
	// 1 base + floor(4200/2000) + floor(10500/5000) = 1 + 2 + 2.
	if got := s.PrestigeGain(); got != 5 {
		t.Errorf("gain = %d, want 5", got)
	}
}

func TestPrestigeResets(t *testing.T) {
	s := newTestSim(t)

	if _, err := s.Prestige(); !errors.Is(err, ErrNoPrestigeGain) {
		t.Fatalf("got %v, want ErrNoPrestigeGain", err)
	}

	s.Place(catalog.Farm, 5, 5)
	s.CityLevel = catalog.MaxCityLevel
	s.Population = 300
	s.Buffs = []Buff{{ID: "x", Remaining: 99}}
	s.ActiveEventID = "wanderer"
	s.HappinessPenaltyTicks = 30
	s.Select(5, 5)
	grant(s, economy.Bundle{economy.Fame: 2000})

	gain, err := s.Prestige()
	if err != nil {
		t.Fatal(err)
	}
	if gain != 2 || s.PrestigeStars != 2 || s.PrestigeCount != 1 {
		t.Errorf("gain=%d stars=%d count=%d, want 2/2/1", gain, s.PrestigeStars, s.PrestigeCount)
	}

	if s.Grid.Occupied() != 0 {
		t.Error("grid should be empty after prestige")
	}
	if s.CityLevel != 1 || s.Population != 0 || s.Happiness != 60 {
		t.Errorf("level=%d pop=%v happy=%d, want fresh-city values", s.CityLevel, s.Population, s.Happiness)
	}
	if len(s.Buffs) != 0 || s.ActiveEventID != "" || s.HappinessPenaltyTicks != 0 || s.Selected != nil {
		t.Error("transient state should clear on prestige")
	}
	if s.EventTimer != 60 {
		t.Errorf("event timer = %d, want the post-prestige 60", s.EventTimer)
	}

	// Starting stock plus the 2-star bonus.
	if got := s.Ledger.Get(economy.Wood); got != 50+2*10 {
		t.Errorf("wood = %v, want 70", got)
	}
	if got := s.Ledger.Get(economy.Coins); got != 100+2*60 {
		t.Errorf("coins = %v, want 220", got)
	}
	if !s.Wins.PrestigeCycle {
		t.Error("prestige win flag should latch")
	}
}

func TestWinFlagsAreMonotonic(t *testing.T) {
	s := newTestSim(t)

	s.CityLevel = catalog.MaxCityLevel
	s.Tick()
	if !s.Wins.MaxLevel {
		t.Fatal("max level flag should latch")
	}

	s.CityLevel = 1
	s.Tick()
	if !s.Wins.MaxLevel {
		t.Error("flags never revert")
	}

	s.PrestigeStars = 3
	s.Wins.PrestigeCycle = true
	grant(s, economy.Bundle{economy.Fame: 1500})
	s.Tick()
	if !s.Wins.StarFame {
		t.Error("star+fame flag should latch")
	}
	if !s.Wins.Ultimate {
		t.Error("ultimate flag should follow the other three")
	}
}
