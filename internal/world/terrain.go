package world

// Terrain types for grid tiles. Numeric values are part of the snapshot
// format and must stay stable.
type Terrain uint8

const (
	TerrainGrass  Terrain = 0
	TerrainWater  Terrain = 1
	TerrainSand   Terrain = 2
	TerrainHill   Terrain = 3
	TerrainForest Terrain = 4
	TerrainRock   Terrain = 5
)

// TerrainName returns a human-readable label for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainGrass:
		return "Grass"
	case TerrainWater:
		return "Water"
	case TerrainSand:
		return "Sand"
	case TerrainHill:
		return "Hill"
	case TerrainForest:
		return "Forest"
	case TerrainRock:
		return "Rock"
	default:
		return "Unknown"
	}
}

// Buildable reports whether buildings may be placed on the terrain.
func Buildable(t Terrain) bool {
	return t != TerrainWater
}

// BuildCostMultiplier returns the terrain surcharge applied to build costs.
func BuildCostMultiplier(t Terrain) float64 {
	switch t {
	case TerrainHill:
		return 1.5
	case TerrainRock:
		return 2.0
	case TerrainForest:
		return 1.3
	case TerrainSand:
		return 1.1
	default:
		return 1.0
	}
}
