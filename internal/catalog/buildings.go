// Package catalog holds the static game data: building definitions with
// their level tiers, the city-level ladder, and the event catalog. All
// entries are immutable; the engine reads them, never writes.
package catalog

import (
	"github.com/talgya/pixel-city/internal/economy"
	"github.com/talgya/pixel-city/internal/world"
)

// Building type identifiers. Road is declared in the world package because
// the grid's connectivity queries need it.
const (
	Hut        world.BuildingType = "hut"
	Apartment  world.BuildingType = "apartment"
	Farm       world.BuildingType = "farm"
	Lumber     world.BuildingType = "lumber"
	Quarry     world.BuildingType = "quarry"
	Workshop   world.BuildingType = "workshop"
	Foundry    world.BuildingType = "foundry"
	Market     world.BuildingType = "market"
	Bank       world.BuildingType = "bank"
	Park       world.BuildingType = "park"
	Library    world.BuildingType = "library"
	Theater    world.BuildingType = "theater"
	Power      world.BuildingType = "power"
	WaterTower world.BuildingType = "water_tower"
	Road       world.BuildingType = world.BuildingRoad
	Warehouse  world.BuildingType = "warehouse"
	Research   world.BuildingType = "research"
	Wonder     world.BuildingType = "wonder"
)

// Categories in display order.
var Categories = []string{"Residential", "Production", "Commercial", "Culture", "Infrastructure", "Advanced"}

// Synergy describes the spatial bonus a level tier grants to its
// surroundings. Fields are effect-specific; unused ones stay zero.
type Synergy struct {
	Radius           int     // effect radius in tiles (Euclidean)
	AuraFood         float64 // farm: additive food multiplier within radius
	FarmAdj          float64 // lumber mill: additive boost to adjacent farms
	UpgradeDiscount  float64 // workshop: upgrade cost discount within radius
	ResidentialCoins float64 // market: coin boost for adjacent residences
	Powered          float64 // power plant: additive boost within radius
	HappinessAura    float64 // park: happiness contribution within radius
	WaterRadius      int     // water tower: residential coverage radius
	AutoSellFood     bool    // farm: overflow food converts to coins
}

// LevelTier is one upgrade stage of a building.
type LevelTier struct {
	Stage          string
	Cost           economy.Bundle // upgrade cost to reach this tier; nil for tier 1
	Produces       economy.Bundle
	Consumes       economy.Bundle
	Population     int
	Happiness      float64
	Storage        float64 // warehouse capacity contribution
	InterestPerMin float64 // bank: coin interest per simulated minute
	RoadBoost      float64 // road: adjacency bonus granted per adjacent road
	Synergy        *Synergy
}

// Building is a static catalog entry for one building type.
type Building struct {
	Label        string
	Category     string
	UnlockLevel  int
	BuildCost    economy.Bundle
	RequiresRoad bool
	Network      string // "power" or "water" for utility buildings
	TerrainBonus map[world.Terrain]float64
	Levels       []LevelTier
}

// Get returns the catalog entry for a building type, nil if unknown.
func Get(t world.BuildingType) *Building {
	return Buildings[t]
}

// LevelData returns the tier a cell currently operates at.
func LevelData(c *world.Cell) *LevelTier {
	b := Buildings[c.Type]
	if b == nil || c.Level < 1 || c.Level > len(b.Levels) {
		return nil
	}
	return &b.Levels[c.Level-1]
}

// NextLevel returns the tier above the cell's current one, nil at max.
func NextLevel(c *world.Cell) *LevelTier {
	b := Buildings[c.Type]
	if b == nil || c.Level >= len(b.Levels) {
		return nil
	}
	return &b.Levels[c.Level]
}

// MaxLevel returns the number of tiers a building type has.
func MaxLevel(t world.BuildingType) int {
	if b := Buildings[t]; b != nil {
		return len(b.Levels)
	}
	return 0
}

// IsResidential reports whether the type houses population and is subject
// to water-coverage rules and market synergy.
func IsResidential(t world.BuildingType) bool {
	return t == Hut || t == Apartment
}

// Buildings is the full catalog, keyed by type.
var Buildings = map[world.BuildingType]*Building{
	Hut: {
		Label: "Hut", Category: "Residential", UnlockLevel: 1,
		BuildCost:    economy.Bundle{economy.Wood: 25, economy.Stone: 10},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Hut", Produces: economy.Bundle{economy.Coins: 0.5}, Consumes: economy.Bundle{economy.Food: 0.5}, Population: 2, Happiness: 1},
			{Stage: "House", Cost: economy.Bundle{economy.Coins: 50, economy.Planks: 40, economy.Bricks: 30}, Produces: economy.Bundle{economy.Coins: 1}, Consumes: economy.Bundle{economy.Food: 0.6}, Population: 5, Happiness: 2},
			{Stage: "Cottage", Cost: economy.Bundle{economy.Coins: 150, economy.Planks: 80, economy.Bricks: 60, economy.Cloth: 30}, Produces: economy.Bundle{economy.Coins: 2}, Consumes: economy.Bundle{economy.Food: 0.7}, Population: 10, Happiness: 5},
			{Stage: "Mansion", Cost: economy.Bundle{economy.Coins: 400, economy.Bricks: 100, economy.Metal: 80, economy.Glass: 50}, Produces: economy.Bundle{economy.Coins: 5}, Consumes: economy.Bundle{economy.Food: 0.9}, Population: 20, Happiness: 12},
			{Stage: "Villa", Cost: economy.Bundle{economy.Coins: 1000, economy.Metal: 200, economy.Glass: 150, economy.Energy: 100}, Produces: economy.Bundle{economy.Coins: 12, economy.Culture: 0.5}, Consumes: economy.Bundle{economy.Food: 1}, Population: 35, Happiness: 24},
		},
	},
	Apartment: {
		Label: "Apartment", Category: "Residential", UnlockLevel: 4,
		BuildCost:    economy.Bundle{economy.Coins: 200, economy.Bricks: 100, economy.Metal: 80},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Low-rise", Produces: economy.Bundle{economy.Coins: 1}, Consumes: economy.Bundle{economy.Food: 2, economy.Energy: 0.5}, Population: 15, Happiness: 3},
			{Stage: "Tower", Cost: economy.Bundle{economy.Coins: 400, economy.Metal: 150, economy.Glass: 100}, Produces: economy.Bundle{economy.Coins: 2}, Consumes: economy.Bundle{economy.Food: 2.5, economy.Energy: 0.8}, Population: 30, Happiness: 4},
			{Stage: "Complex", Cost: economy.Bundle{economy.Coins: 800, economy.Metal: 250, economy.Glass: 200, economy.Energy: 150}, Produces: economy.Bundle{economy.Coins: 4}, Consumes: economy.Bundle{economy.Food: 3.5, economy.Energy: 1.2}, Population: 50, Happiness: 6},
			{Stage: "Skyblock", Cost: economy.Bundle{economy.Coins: 1600, economy.Metal: 400, economy.Glass: 300, economy.Energy: 250}, Produces: economy.Bundle{economy.Coins: 8}, Consumes: economy.Bundle{economy.Food: 4.5, economy.Energy: 1.8}, Population: 80, Happiness: 8},
			{Stage: "Megablock", Cost: economy.Bundle{economy.Coins: 3200, economy.Metal: 600, economy.Energy: 500, economy.Science: 100}, Produces: economy.Bundle{economy.Coins: 15}, Consumes: economy.Bundle{economy.Food: 5.5, economy.Energy: 2.6}, Population: 120, Happiness: 12},
		},
	},
	Farm: {
		Label: "Farm", Category: "Production", UnlockLevel: 1,
		BuildCost:    economy.Bundle{economy.Wood: 10},
		TerrainBonus: map[world.Terrain]float64{world.TerrainGrass: 0.2, world.TerrainSand: -0.1},
		Levels: []LevelTier{
			{Stage: "Field", Produces: economy.Bundle{economy.Food: 2}},
			{Stage: "Barn Farm", Cost: economy.Bundle{economy.Coins: 50, economy.Wood: 20}, Produces: economy.Bundle{economy.Food: 3}},
			{Stage: "Mill Farm", Cost: economy.Bundle{economy.Coins: 100, economy.Planks: 30, economy.Stone: 20}, Produces: economy.Bundle{economy.Food: 5}, Synergy: &Synergy{AuraFood: 0.05, Radius: 3}},
			{Stage: "Greenhouse", Cost: economy.Bundle{economy.Coins: 200, economy.Bricks: 50, economy.Tools: 30}, Produces: economy.Bundle{economy.Food: 8}, Synergy: &Synergy{AuraFood: 0.07, Radius: 3}},
			{Stage: "Hydro Farm", Cost: economy.Bundle{economy.Coins: 500, economy.Metal: 100, economy.Glass: 50}, Produces: economy.Bundle{economy.Food: 15}, Synergy: &Synergy{AuraFood: 0.1, Radius: 4, AutoSellFood: true}},
		},
	},
	Lumber: {
		Label: "Lumber Mill", Category: "Production", UnlockLevel: 1,
		BuildCost:    economy.Bundle{economy.Coins: 15},
		TerrainBonus: map[world.Terrain]float64{world.TerrainForest: 0.5},
		Levels: []LevelTier{
			{Stage: "Yard", Produces: economy.Bundle{economy.Wood: 1}},
			{Stage: "Saw Mill", Cost: economy.Bundle{economy.Coins: 40, economy.Wood: 30}, Produces: economy.Bundle{economy.Wood: 2, economy.Planks: 0.5}, Synergy: &Synergy{FarmAdj: 0.1}},
			{Stage: "Timber Plant", Cost: economy.Bundle{economy.Coins: 80, economy.Planks: 50, economy.Stone: 30}, Produces: economy.Bundle{economy.Wood: 3, economy.Planks: 1}, Synergy: &Synergy{FarmAdj: 0.12}},
			{Stage: "Industrial Lumber", Cost: economy.Bundle{economy.Coins: 150, economy.Bricks: 40, economy.Tools: 20}, Produces: economy.Bundle{economy.Wood: 5, economy.Planks: 2}, Synergy: &Synergy{FarmAdj: 0.14}},
			{Stage: "Auto Forestry", Cost: economy.Bundle{economy.Coins: 400, economy.Metal: 80}, Produces: economy.Bundle{economy.Wood: 8, economy.Planks: 4}, Synergy: &Synergy{FarmAdj: 0.15}},
		},
	},
	Quarry: {
		Label: "Quarry", Category: "Production", UnlockLevel: 1,
		BuildCost:    economy.Bundle{economy.Coins: 20, economy.Wood: 10},
		TerrainBonus: map[world.Terrain]float64{world.TerrainRock: 0.4, world.TerrainHill: 0.2},
		Levels: []LevelTier{
			{Stage: "Pit", Produces: economy.Bundle{economy.Stone: 1}},
			{Stage: "Stone Yard", Cost: economy.Bundle{economy.Coins: 60, economy.Wood: 40}, Produces: economy.Bundle{economy.Stone: 2, economy.Bricks: 0.3}},
			{Stage: "Brickworks", Cost: economy.Bundle{economy.Coins: 120, economy.Planks: 60, economy.Food: 40}, Produces: economy.Bundle{economy.Stone: 3, economy.Bricks: 0.8}},
			{Stage: "Deep Quarry", Cost: economy.Bundle{economy.Coins: 250, economy.Bricks: 50, economy.Tools: 30}, Produces: economy.Bundle{economy.Stone: 5, economy.Bricks: 1.5}},
			{Stage: "Mega Quarry", Cost: economy.Bundle{economy.Coins: 600, economy.Metal: 100, economy.Energy: 50}, Produces: economy.Bundle{economy.Stone: 10, economy.Bricks: 3, economy.Glass: 0.2}},
		},
	},
	Workshop: {
		Label: "Workshop", Category: "Production", UnlockLevel: 2,
		BuildCost:    economy.Bundle{economy.Coins: 50, economy.Wood: 30, economy.Stone: 20},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Craft Shed", Produces: economy.Bundle{economy.Tools: 0.5}, Consumes: economy.Bundle{economy.Wood: 1, economy.Stone: 0.5}},
			{Stage: "Tool House", Cost: economy.Bundle{economy.Coins: 100, economy.Planks: 40, economy.Bricks: 30}, Produces: economy.Bundle{economy.Tools: 1}, Consumes: economy.Bundle{economy.Wood: 1.2, economy.Stone: 0.6}, Synergy: &Synergy{UpgradeDiscount: 0.1, Radius: 3}},
			{Stage: "Mechanic Hall", Cost: economy.Bundle{economy.Coins: 200, economy.Planks: 60, economy.Bricks: 40, economy.Tools: 20}, Produces: economy.Bundle{economy.Tools: 2, economy.Cloth: 1}, Consumes: economy.Bundle{economy.Wood: 1.5, economy.Stone: 0.8}, Synergy: &Synergy{UpgradeDiscount: 0.12, Radius: 3}},
			{Stage: "Automation Yard", Cost: economy.Bundle{economy.Coins: 400, economy.Metal: 80, economy.Tools: 40}, Produces: economy.Bundle{economy.Tools: 4, economy.Cloth: 2}, Consumes: economy.Bundle{economy.Wood: 1.8, economy.Stone: 1}, Synergy: &Synergy{UpgradeDiscount: 0.14, Radius: 4}},
			{Stage: "Nano Workshop", Cost: economy.Bundle{economy.Coins: 800, economy.Metal: 150, economy.Glass: 80}, Produces: economy.Bundle{economy.Tools: 8, economy.Cloth: 3}, Consumes: economy.Bundle{economy.Wood: 2, economy.Stone: 1.2}, Synergy: &Synergy{UpgradeDiscount: 0.16, Radius: 4}},
		},
	},
	Foundry: {
		Label: "Foundry", Category: "Production", UnlockLevel: 3,
		BuildCost:    economy.Bundle{economy.Coins: 150, economy.Bricks: 80, economy.Tools: 40},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Smelter", Produces: economy.Bundle{economy.Metal: 0.3}, Consumes: economy.Bundle{economy.Stone: 2, economy.Tools: 0.3}},
			{Stage: "Furnace", Cost: economy.Bundle{economy.Coins: 300, economy.Bricks: 100, economy.Tools: 60}, Produces: economy.Bundle{economy.Metal: 0.8}, Consumes: economy.Bundle{economy.Stone: 2.4, economy.Tools: 0.4}},
			{Stage: "Refinery", Cost: economy.Bundle{economy.Coins: 600, economy.Metal: 80, economy.Cloth: 40}, Produces: economy.Bundle{economy.Metal: 1.5, economy.Glass: 0.5}, Consumes: economy.Bundle{economy.Stone: 2.8, economy.Energy: 0.3}},
			{Stage: "Steel Plant", Cost: economy.Bundle{economy.Coins: 1200, economy.Metal: 150, economy.Glass: 100}, Produces: economy.Bundle{economy.Metal: 3, economy.Glass: 1.2}, Consumes: economy.Bundle{economy.Stone: 3.2, economy.Energy: 0.6}},
			{Stage: "Fusion Forge", Cost: economy.Bundle{economy.Coins: 2500, economy.Metal: 300, economy.Energy: 200}, Produces: economy.Bundle{economy.Metal: 6, economy.Glass: 3}, Consumes: economy.Bundle{economy.Stone: 4, economy.Energy: 1.2}},
		},
	},
	Market: {
		Label: "Market", Category: "Commercial", UnlockLevel: 2,
		BuildCost:    economy.Bundle{economy.Coins: 80, economy.Planks: 50, economy.Bricks: 30},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Bazaar", Produces: economy.Bundle{economy.Coins: 2}, Synergy: &Synergy{ResidentialCoins: 0.15}},
			{Stage: "Town Market", Cost: economy.Bundle{economy.Coins: 160, economy.Planks: 80, economy.Bricks: 60}, Produces: economy.Bundle{economy.Coins: 4}, Synergy: &Synergy{ResidentialCoins: 0.2}},
			{Stage: "Trade Hall", Cost: economy.Bundle{economy.Coins: 320, economy.Metal: 100, economy.Glass: 80}, Produces: economy.Bundle{economy.Coins: 7}, Synergy: &Synergy{ResidentialCoins: 0.3}},
			{Stage: "Grand Exchange", Cost: economy.Bundle{economy.Coins: 640, economy.Metal: 200, economy.Glass: 150}, Produces: economy.Bundle{economy.Coins: 12}, Synergy: &Synergy{ResidentialCoins: 0.4}},
			{Stage: "Global Market", Cost: economy.Bundle{economy.Coins: 1280, economy.Metal: 300, economy.Glass: 250, economy.Energy: 100}, Produces: economy.Bundle{economy.Coins: 20}, Synergy: &Synergy{ResidentialCoins: 0.5}},
		},
	},
	Bank: {
		Label: "Bank", Category: "Commercial", UnlockLevel: 5,
		BuildCost:    economy.Bundle{economy.Coins: 500, economy.Bricks: 150, economy.Metal: 100, economy.Glass: 80},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Credit Office", Produces: economy.Bundle{economy.Coins: 5}, InterestPerMin: 0.02},
			{Stage: "Regional Bank", Cost: economy.Bundle{economy.Coins: 1000, economy.Metal: 200, economy.Glass: 150}, Produces: economy.Bundle{economy.Coins: 10}, InterestPerMin: 0.03},
			{Stage: "National Bank", Cost: economy.Bundle{economy.Coins: 2000, economy.Metal: 350, economy.Glass: 250, economy.Energy: 200}, Produces: economy.Bundle{economy.Coins: 18}, InterestPerMin: 0.05},
			{Stage: "Central Reserve", Cost: economy.Bundle{economy.Coins: 4000, economy.Metal: 500, economy.Energy: 400, economy.Science: 150}, Produces: economy.Bundle{economy.Coins: 30}, InterestPerMin: 0.08},
			{Stage: "Hyperbank", Cost: economy.Bundle{economy.Coins: 8000, economy.Metal: 800, economy.Energy: 600, economy.Science: 300}, Produces: economy.Bundle{economy.Coins: 50}, InterestPerMin: 0.12},
		},
	},
	Park: {
		Label: "Park", Category: "Culture", UnlockLevel: 3,
		BuildCost: economy.Bundle{economy.Coins: 100, economy.Planks: 60, economy.Food: 40},
		Levels: []LevelTier{
			{Stage: "Park", Produces: economy.Bundle{economy.Culture: 0.5}, Happiness: 10, Synergy: &Synergy{HappinessAura: 0.15, Radius: 4}},
			{Stage: "City Garden", Cost: economy.Bundle{economy.Coins: 200, economy.Planks: 100, economy.Cloth: 60}, Produces: economy.Bundle{economy.Culture: 1}, Happiness: 20, Synergy: &Synergy{HappinessAura: 0.2, Radius: 4}},
			{Stage: "Recreation Zone", Cost: economy.Bundle{economy.Coins: 400, economy.Bricks: 150, economy.Cloth: 100, economy.Metal: 80}, Produces: economy.Bundle{economy.Culture: 2}, Happiness: 35, Synergy: &Synergy{HappinessAura: 0.25, Radius: 5}},
			{Stage: "Grand Park", Cost: economy.Bundle{economy.Coins: 800, economy.Metal: 200, economy.Glass: 150, economy.Energy: 100}, Produces: economy.Bundle{economy.Culture: 4}, Happiness: 55, Synergy: &Synergy{HappinessAura: 0.3, Radius: 5}},
			{Stage: "National Park", Cost: economy.Bundle{economy.Coins: 1600, economy.Glass: 300, economy.Energy: 250, economy.Science: 100}, Produces: economy.Bundle{economy.Culture: 7}, Happiness: 80, Synergy: &Synergy{HappinessAura: 0.35, Radius: 6}},
		},
	},
	Library: {
		Label: "Library", Category: "Culture", UnlockLevel: 4,
		BuildCost:    economy.Bundle{economy.Coins: 250, economy.Planks: 150, economy.Bricks: 100},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Library", Produces: economy.Bundle{economy.Science: 0.5, economy.Culture: 1}},
			{Stage: "Research Library", Cost: economy.Bundle{economy.Coins: 500, economy.Bricks: 200, economy.Cloth: 150}, Produces: economy.Bundle{economy.Science: 1.2, economy.Culture: 2}},
			{Stage: "Academy", Cost: economy.Bundle{economy.Coins: 1000, economy.Metal: 250, economy.Glass: 200, economy.Cloth: 150}, Produces: economy.Bundle{economy.Science: 2.5, economy.Culture: 4}},
			{Stage: "Knowledge Hub", Cost: economy.Bundle{economy.Coins: 2000, economy.Metal: 400, economy.Glass: 350, economy.Energy: 250}, Produces: economy.Bundle{economy.Science: 5, economy.Culture: 7}},
			{Stage: "Archive Nexus", Cost: economy.Bundle{economy.Coins: 4000, economy.Metal: 600, economy.Energy: 500, economy.Science: 200}, Produces: economy.Bundle{economy.Science: 10, economy.Culture: 12}},
		},
	},
	Theater: {
		Label: "Theater", Category: "Culture", UnlockLevel: 5,
		BuildCost:    economy.Bundle{economy.Coins: 400, economy.Bricks: 200, economy.Cloth: 150, economy.Glass: 100},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Theater", Produces: economy.Bundle{economy.Culture: 3, economy.Fame: 0.3}, Happiness: 25},
			{Stage: "Opera Hall", Cost: economy.Bundle{economy.Coins: 800, economy.Metal: 300, economy.Glass: 200}, Produces: economy.Bundle{economy.Culture: 6, economy.Fame: 0.6}, Happiness: 40},
			{Stage: "Arts Center", Cost: economy.Bundle{economy.Coins: 1600, economy.Metal: 500, economy.Glass: 400, economy.Energy: 300}, Produces: economy.Bundle{economy.Culture: 10, economy.Fame: 1}, Happiness: 60},
			{Stage: "Grand Theater", Cost: economy.Bundle{economy.Coins: 3200, economy.Energy: 800, economy.Science: 300}, Produces: economy.Bundle{economy.Culture: 18, economy.Fame: 2}, Happiness: 90},
			{Stage: "Cultural Capital", Cost: economy.Bundle{economy.Coins: 6400, economy.Energy: 1200, economy.Science: 600, economy.Fame: 200}, Produces: economy.Bundle{economy.Culture: 30, economy.Fame: 4}, Happiness: 130},
		},
	},
	Power: {
		Label: "Power Plant", Category: "Infrastructure", UnlockLevel: 4,
		BuildCost:    economy.Bundle{economy.Coins: 300, economy.Bricks: 150, economy.Metal: 100},
		RequiresRoad: true,
		Network:      "power",
		Levels: []LevelTier{
			{Stage: "Plant", Produces: economy.Bundle{economy.Energy: 2}, Consumes: economy.Bundle{economy.Stone: 1, economy.Metal: 0.5}},
			{Stage: "Grid Plant", Cost: economy.Bundle{economy.Coins: 600, economy.Metal: 250, economy.Tools: 150}, Produces: economy.Bundle{economy.Energy: 4}, Consumes: economy.Bundle{economy.Stone: 1.2, economy.Metal: 0.6}, Synergy: &Synergy{Powered: 0.1, Radius: 6}},
			{Stage: "Solar Station", Cost: economy.Bundle{economy.Coins: 1200, economy.Metal: 400, economy.Glass: 300}, Produces: economy.Bundle{economy.Energy: 7}, Synergy: &Synergy{Powered: 0.12, Radius: 7}},
			{Stage: "Fusion Plant", Cost: economy.Bundle{economy.Coins: 2400, economy.Metal: 600, economy.Glass: 500, economy.Science: 200}, Produces: economy.Bundle{economy.Energy: 12}, Synergy: &Synergy{Powered: 0.15, Radius: 8}},
			{Stage: "Reactor", Cost: economy.Bundle{economy.Coins: 4800, economy.Metal: 1000, economy.Energy: 800, economy.Science: 400}, Produces: economy.Bundle{economy.Energy: 20}, Synergy: &Synergy{Powered: 0.2, Radius: 10}},
		},
	},
	WaterTower: {
		Label: "Water Tower", Category: "Infrastructure", UnlockLevel: 2,
		BuildCost: economy.Bundle{economy.Coins: 60, economy.Stone: 40, economy.Wood: 20},
		Network:   "water",
		Levels: []LevelTier{
			{Stage: "Well", Produces: economy.Bundle{economy.Water: 3}, Synergy: &Synergy{WaterRadius: 4}},
			{Stage: "Cistern", Cost: economy.Bundle{economy.Coins: 120, economy.Bricks: 60, economy.Tools: 20}, Produces: economy.Bundle{economy.Water: 6}, Synergy: &Synergy{WaterRadius: 6}},
			{Stage: "Tower", Cost: economy.Bundle{economy.Coins: 300, economy.Metal: 100, economy.Bricks: 80}, Produces: economy.Bundle{economy.Water: 12}, Synergy: &Synergy{WaterRadius: 8}},
			{Stage: "Treatment Plant", Cost: economy.Bundle{economy.Coins: 700, economy.Metal: 200, economy.Glass: 100, economy.Energy: 50}, Produces: economy.Bundle{economy.Water: 20}, Synergy: &Synergy{WaterRadius: 10}},
			{Stage: "Purification Hub", Cost: economy.Bundle{economy.Coins: 1500, economy.Metal: 400, economy.Energy: 200, economy.Science: 80}, Produces: economy.Bundle{economy.Water: 35}, Synergy: &Synergy{WaterRadius: 14}},
		},
	},
	Road: {
		Label: "Road", Category: "Infrastructure", UnlockLevel: 1,
		BuildCost: economy.Bundle{economy.Coins: 5, economy.Stone: 3},
		Levels: []LevelTier{
			{Stage: "Dirt", RoadBoost: 0.05},
			{Stage: "Stone", Cost: economy.Bundle{economy.Coins: 10, economy.Stone: 8}, RoadBoost: 0.08},
			{Stage: "Paved", Cost: economy.Bundle{economy.Coins: 25, economy.Bricks: 20}, RoadBoost: 0.12},
			{Stage: "Asphalt", Cost: economy.Bundle{economy.Coins: 50, economy.Metal: 30}, RoadBoost: 0.18},
			{Stage: "Highway", Cost: economy.Bundle{economy.Coins: 100, economy.Metal: 60, economy.Energy: 40}, RoadBoost: 0.25},
		},
	},
	Warehouse: {
		Label: "Warehouse", Category: "Infrastructure", UnlockLevel: 2,
		BuildCost:    economy.Bundle{economy.Coins: 150, economy.Planks: 100, economy.Bricks: 80},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Storage", Storage: 1000},
			{Stage: "Depot", Cost: economy.Bundle{economy.Coins: 300, economy.Planks: 150, economy.Metal: 120}, Storage: 2500},
			{Stage: "Mega Depot", Cost: economy.Bundle{economy.Coins: 600, economy.Metal: 200, economy.Glass: 150}, Storage: 5000},
			{Stage: "Logistics Hub", Cost: economy.Bundle{economy.Coins: 1200, economy.Metal: 350, economy.Energy: 250}, Storage: 10000},
			{Stage: "Quantum Storage", Cost: economy.Bundle{economy.Coins: 2400, economy.Metal: 500, economy.Energy: 400, economy.Science: 150}, Storage: 20000},
		},
	},
	Research: {
		Label: "Research Center", Category: "Advanced", UnlockLevel: 6,
		BuildCost:    economy.Bundle{economy.Coins: 3000, economy.Metal: 700, economy.Glass: 500, economy.Energy: 400},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Lab", Produces: economy.Bundle{economy.Science: 15, economy.Fame: 0.5}, Consumes: economy.Bundle{economy.Energy: 2}},
			{Stage: "Institute", Cost: economy.Bundle{economy.Coins: 6000, economy.Metal: 900, economy.Energy: 700, economy.Science: 300}, Produces: economy.Bundle{economy.Science: 25, economy.Fame: 1}, Consumes: economy.Bundle{economy.Energy: 3}},
			{Stage: "Innovation Core", Cost: economy.Bundle{economy.Coins: 12000, economy.Metal: 1400, economy.Energy: 1200, economy.Science: 800}, Produces: economy.Bundle{economy.Science: 40, economy.Fame: 2}, Consumes: economy.Bundle{economy.Energy: 4}},
		},
	},
	Wonder: {
		Label: "Wonder", Category: "Advanced", UnlockLevel: 6,
		BuildCost:    economy.Bundle{economy.Coins: 8000, economy.Metal: 1500, economy.Glass: 900, economy.Culture: 400},
		RequiresRoad: true,
		Levels: []LevelTier{
			{Stage: "Wonder", Produces: economy.Bundle{economy.Fame: 3, economy.Culture: 10}, Happiness: 150},
			{Stage: "Grand Wonder", Cost: economy.Bundle{economy.Coins: 16000, economy.Energy: 1500, economy.Science: 800, economy.Fame: 400}, Produces: economy.Bundle{economy.Fame: 6, economy.Culture: 20}, Happiness: 220},
			{Stage: "World Wonder", Cost: economy.Bundle{economy.Coins: 30000, economy.Energy: 2500, economy.Science: 1600, economy.Fame: 900}, Produces: economy.Bundle{economy.Fame: 12, economy.Culture: 35}, Happiness: 320},
		},
	},
}
