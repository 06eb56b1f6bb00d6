package world

import "testing"

func TestGenerateTerrainDeterministic(t *testing.T) {
	a := GenerateTerrain(64, 42)
	b := GenerateTerrain(64, 42)

	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("terrain differs at (%d, %d) for the same seed", x, y)
			}
		}
	}
}

func TestGenerateTerrainSeedVariation(t *testing.T) {
	a := GenerateTerrain(64, 1)
	b := GenerateTerrain(64, 2)

	same := 0
	total := 0
	for y := range a {
		for x := range a[y] {
			total++
			if a[y][x] == b[y][x] {
				same++
			}
		}
	}
	if same == total {
		t.Error("different seeds produced identical terrain")
	}
}

func TestCenterIsBuildable(t *testing.T) {
	terrain := GenerateTerrain(64, 42)
	c := 32

	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			tt := terrain[c+dy][c+dx]
			if !Buildable(tt) {
				t.Errorf("center tile (%d, %d) is %s, want buildable",
					c+dx, c+dy, TerrainName(tt))
			}
		}
	}
}

func TestTerrainQuantities(t *testing.T) {
	terrain := GenerateTerrain(64, 42)
	counts := TerrainCounts(terrain)

	land := 0
	for tt, n := range counts {
		if tt != TerrainWater {
			land += n
		}
	}
	if land == 0 {
		t.Fatal("map has no land")
	}
	// The island falloff guarantees water at the edges.
	if counts[TerrainWater] == 0 {
		t.Error("map has no water at all")
	}
}

func TestBuildCostMultiplier(t *testing.T) {
	cases := []struct {
		terrain Terrain
		want    float64
	}{
		{TerrainGrass, 1.0},
		{TerrainSand, 1.1},
		{TerrainForest, 1.3},
		{TerrainHill, 1.5},
		{TerrainRock, 2.0},
	}
	for _, c := range cases {
		if got := BuildCostMultiplier(c.terrain); got != c.want {
			t.Errorf("BuildCostMultiplier(%s) = %v, want %v", TerrainName(c.terrain), got, c.want)
		}
	}
}
