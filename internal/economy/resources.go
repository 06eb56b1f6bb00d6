// Package economy provides the resource ledger: typed resource identifiers,
// cost/production bundles, and capacity-clamped amount tracking.
package economy

// ResourceID identifies one tracked resource type.
type ResourceID string

const (
	Wood    ResourceID = "wood"
	Stone   ResourceID = "stone"
	Food    ResourceID = "food"
	Coins   ResourceID = "coins"
	Planks  ResourceID = "planks"
	Bricks  ResourceID = "bricks"
	Tools   ResourceID = "tools"
	Cloth   ResourceID = "cloth"
	Metal   ResourceID = "metal"
	Glass   ResourceID = "glass"
	Energy  ResourceID = "energy"
	Science ResourceID = "science"
	Culture ResourceID = "culture"
	Fame    ResourceID = "fame"
	Water   ResourceID = "water_res"
)

// Unbounded is the capacity used for resources without a meaningful cap.
const Unbounded = 999999

// ResourceInfo carries presentation metadata for one resource.
type ResourceInfo struct {
	ID    ResourceID `json:"id"`
	Label string     `json:"label"`
	Icon  string     `json:"icon"`
}

// Resources lists every resource in display order.
var Resources = []ResourceInfo{
	{Wood, "Wood", "W"},
	{Stone, "Stone", "S"},
	{Food, "Food", "F"},
	{Coins, "Coins", "$"},
	{Planks, "Planks", "P"},
	{Bricks, "Bricks", "B"},
	{Tools, "Tools", "T"},
	{Cloth, "Cloth", "C"},
	{Metal, "Metal", "M"},
	{Glass, "Glass", "G"},
	{Energy, "Energy", "E"},
	{Science, "Science", "R"},
	{Culture, "Culture", "A"},
	{Fame, "Fame", "!"},
	{Water, "Water Supply", "~"},
}

// StartingResources returns the stock a fresh city begins with.
func StartingResources() Bundle {
	return Bundle{
		Wood: 50, Stone: 30, Food: 20, Coins: 100,
		Planks: 0, Bricks: 0, Tools: 0, Cloth: 0,
		Metal: 0, Glass: 0, Energy: 0, Science: 0,
		Culture: 0, Fame: 0, Water: 0,
	}
}

// BaseCaps returns the storage capacity of a city with no warehouses.
// Coins, fame, and water supply are effectively unbounded.
func BaseCaps() map[ResourceID]float64 {
	return map[ResourceID]float64{
		Wood: 300, Stone: 300, Food: 300, Coins: Unbounded,
		Planks: 150, Bricks: 150, Tools: 120, Cloth: 120,
		Metal: 120, Glass: 120, Energy: 200, Science: 200,
		Culture: 200, Fame: Unbounded, Water: Unbounded,
	}
}

// StorageExempt reports whether warehouse storage bonuses do not apply to
// the given resource.
func StorageExempt(id ResourceID) bool {
	return id == Coins || id == Fame || id == Water
}
