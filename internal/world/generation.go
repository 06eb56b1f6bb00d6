// Terrain generation using layered simplex noise: an island-shaped elevation
// field plus moisture and forest layers, with a cleared grass circle at the
// center so every new city has buildable starting ground.
package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// clearRadius is the radius of the guaranteed-grass starting area.
const clearRadius = 6

// GenerateTerrain produces a size×size terrain matrix. Deterministic for a
// given seed; prestige resets call this with a fresh seed.
func GenerateTerrain(size int, seed int64) [][]Terrain {
	elevNoise := opensimplex.New(seed)
	moistNoise := opensimplex.New(seed + 1337)
	forestNoise := opensimplex.New(seed + 7777)

	terrain := make([][]Terrain, size)
	for y := range terrain {
		terrain[y] = make([]Terrain, size)
	}

	cx := float64(size) / 2
	cy := float64(size) / 2
	maxDist := float64(size) * 0.45

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			nx := float64(x) / float64(size)
			ny := float64(y) / float64(size)

			elev := fbm(elevNoise, nx*4, ny*4, 5, 2.0, 0.5)
			moist := fbm(moistNoise, nx*3+10, ny*3+10, 4, 2.0, 0.5)
			forest := fbm(forestNoise, nx*6+20, ny*6+20, 3, 2.0, 0.5)

			// Island falloff: elevation sinks toward the map edge so the
			// city sits on a landmass surrounded by water.
			dx := (float64(x) - cx) / maxDist
			dy := (float64(y) - cy) / maxDist
			falloff := math.Max(0, 1-(dx*dx+dy*dy))
			h := elev * falloff

			switch {
			case h < -0.1:
				terrain[y][x] = TerrainWater
			case h < -0.02:
				terrain[y][x] = TerrainSand
			case h > 0.35:
				terrain[y][x] = TerrainRock
			case h > 0.2:
				terrain[y][x] = TerrainHill
			case forest > 0.15 && moist > -0.05 && h > 0.02:
				terrain[y][x] = TerrainForest
			default:
				terrain[y][x] = TerrainGrass
			}
		}
	}

	// Clear the starting area.
	for y := int(cy) - clearRadius; y <= int(cy)+clearRadius; y++ {
		for x := int(cx) - clearRadius; x <= int(cx)+clearRadius; x++ {
			if x < 0 || x >= size || y < 0 || y >= size {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= clearRadius*clearRadius {
				terrain[y][x] = TerrainGrass
			}
		}
	}

	return terrain
}

// fbm layers multiple octaves of noise for natural-looking features.
func fbm(noise opensimplex.Noise, x, y float64, octaves int, lacunarity, gain float64) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := 1.0
	max := 0.0
	for i := 0; i < octaves; i++ {
		value += noise.Eval2(x*frequency, y*frequency) * amplitude
		max += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}
	return value / max
}

// TerrainCounts summarizes terrain distribution, for logging at startup.
func TerrainCounts(terrain [][]Terrain) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, row := range terrain {
		for _, t := range row {
			counts[t]++
		}
	}
	return counts
}
