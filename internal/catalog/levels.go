package catalog

import "github.com/talgya/pixel-city/internal/economy"

// CityLevel is one rung of the city progression ladder.
type CityLevel struct {
	Level        int
	Name         string
	Requirements economy.Bundle // nil for the first level
	Reward       economy.Bundle
}

// MaxCityLevel is the top of the ladder; prestige unlocks here.
const MaxCityLevel = 7

// CityLevels is the ordered ladder, first to last.
var CityLevels = []CityLevel{
	{Level: 1, Name: "Settlement", Reward: economy.Bundle{economy.Coins: 100}},
	{Level: 2, Name: "Village",
		Requirements: economy.Bundle{economy.Food: 100, economy.Wood: 150, economy.Stone: 100, economy.Coins: 50},
		Reward:       economy.Bundle{economy.Coins: 250, economy.Planks: 50}},
	{Level: 3, Name: "Town",
		Requirements: economy.Bundle{economy.Food: 500, economy.Planks: 300, economy.Bricks: 250, economy.Tools: 100, economy.Coins: 500},
		Reward:       economy.Bundle{economy.Coins: 1000, economy.Metal: 100}},
	{Level: 4, Name: "Large City",
		Requirements: economy.Bundle{economy.Food: 1000, economy.Metal: 500, economy.Glass: 400, economy.Tools: 200, economy.Coins: 2000},
		Reward:       economy.Bundle{economy.Coins: 3000, economy.Energy: 300, economy.Science: 50}},
	{Level: 5, Name: "Metropolis",
		Requirements: economy.Bundle{economy.Food: 2000, economy.Metal: 1000, economy.Energy: 800, economy.Science: 300, economy.Coins: 5000},
		Reward:       economy.Bundle{economy.Coins: 10000, economy.Energy: 500, economy.Science: 200, economy.Fame: 100}},
	{Level: 6, Name: "Megapolis",
		Requirements: economy.Bundle{economy.Food: 5000, economy.Metal: 2500, economy.Energy: 2000, economy.Science: 1000, economy.Culture: 500, economy.Coins: 20000},
		Reward:       economy.Bundle{economy.Coins: 50000, economy.Fame: 500}},
	{Level: 7, Name: "Futuristic City",
		Requirements: economy.Bundle{economy.Wood: 10000, economy.Stone: 10000, economy.Food: 10000, economy.Coins: 100000, economy.Energy: 5000, economy.Science: 3000, economy.Culture: 1500, economy.Fame: 500},
		Reward:       economy.Bundle{economy.Fame: 1000, economy.Science: 500}},
}

// LevelEntry returns the ladder entry for a level, nil if out of range.
func LevelEntry(level int) *CityLevel {
	for i := range CityLevels {
		if CityLevels[i].Level == level {
			return &CityLevels[i]
		}
	}
	return nil
}

// NextLevelEntry returns the entry above the given level, nil at the top.
func NextLevelEntry(level int) *CityLevel {
	return LevelEntry(level + 1)
}
