// Package world provides the square building grid, terrain layer, and
// spatial queries (adjacency, radius, road connectivity).
package world

import "fmt"

// BuildingType identifies a building kind. The full catalog lives in the
// catalog package; the grid only needs the identifier, plus knowledge of
// roads for connectivity queries.
type BuildingType string

// BuildingRoad is the one type the grid itself understands: road masks and
// road-connectivity checks are grid-level concerns.
const BuildingRoad BuildingType = "road"

// IssueKind is a transient malfunction on a building cell.
type IssueKind string

const (
	IssueTraffic     IssueKind = "Traffic"
	IssuePower       IssueKind = "Power"
	IssueWater       IssueKind = "Water"
	IssueMaintenance IssueKind = "Maintenance"
	IssueSupply      IssueKind = "Supply"
	IssueEmergency   IssueKind = "Emergency"
)

// Cell is one occupied grid entry. Created on placement, mutated on upgrade
// and repair, removed on bulldoze. An empty Issue means the building is
// operating normally.
type Cell struct {
	Type  BuildingType `json:"type"`
	Level int          `json:"level"`
	Issue IssueKind    `json:"issue,omitempty"`
}

// Coord is a grid position.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellRef pairs a cell with its position, for radius query results.
type CellRef struct {
	Cell *Cell
	X, Y int
}

// Grid is a fixed-size square board of building cells over an immutable
// terrain layer. Dimensions never change for the life of a session; the
// terrain is regenerated only on prestige.
type Grid struct {
	Size    int         `json:"size"`
	Cells   [][]*Cell   `json:"cells"`
	Terrain [][]Terrain `json:"terrain"`
}

// NewGrid creates an empty grid with all-grass terrain.
func NewGrid(size int) *Grid {
	g := &Grid{Size: size}
	g.Cells = make([][]*Cell, size)
	g.Terrain = make([][]Terrain, size)
	for y := 0; y < size; y++ {
		g.Cells[y] = make([]*Cell, size)
		g.Terrain[y] = make([]Terrain, size)
	}
	return g
}

// InBounds reports whether (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// At returns the cell at (x, y), or nil if empty or out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.Cells[y][x]
}

// TerrainAt returns the terrain under (x, y). Out-of-bounds reads as grass.
func (g *Grid) TerrainAt(x, y int) Terrain {
	if !g.InBounds(x, y) {
		return TerrainGrass
	}
	return g.Terrain[y][x]
}

// Place puts a cell at (x, y). Returns false if the coordinate is out of
// bounds or already occupied; a coordinate holds at most one cell.
func (g *Grid) Place(x, y int, c *Cell) bool {
	if !g.InBounds(x, y) || g.Cells[y][x] != nil {
		return false
	}
	g.Cells[y][x] = c
	return true
}

// Remove clears the cell at (x, y) and returns it, or nil if empty.
func (g *Grid) Remove(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	c := g.Cells[y][x]
	g.Cells[y][x] = nil
	return c
}

// Adjacent returns the 4-connected neighbors of (x, y), clipped to bounds.
func (g *Grid) Adjacent(x, y int) []Coord {
	dirs := [4]Coord{{x, y - 1}, {x + 1, y}, {x, y + 1}, {x - 1, y}}
	out := make([]Coord, 0, 4)
	for _, d := range dirs {
		if g.InBounds(d.X, d.Y) {
			out = append(out, d)
		}
	}
	return out
}

// CountAdjacent returns how many 4-neighbors hold a building of type t.
func (g *Grid) CountAdjacent(t BuildingType, x, y int) int {
	n := 0
	for _, p := range g.Adjacent(x, y) {
		if c := g.Cells[p.Y][p.X]; c != nil && c.Type == t {
			n++
		}
	}
	return n
}

// Each visits every occupied cell in row-major order. Iteration order is
// fixed so tick resolution stays deterministic.
func (g *Grid) Each(fn func(c *Cell, x, y int)) {
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if c := g.Cells[y][x]; c != nil {
				fn(c, x, y)
			}
		}
	}
}

// WithinRadius returns occupied cells with Euclidean distance² ≤ r² from
// (cx, cy) that satisfy pred. Linear in occupied cells, which is fine at a
// 1 Hz tick over a bounded board.
func (g *Grid) WithinRadius(cx, cy, r int, pred func(c *Cell, x, y int) bool) []CellRef {
	var out []CellRef
	g.Each(func(c *Cell, x, y int) {
		dx, dy := x-cx, y-cy
		if dx*dx+dy*dy <= r*r && pred(c, x, y) {
			out = append(out, CellRef{Cell: c, X: x, Y: y})
		}
	})
	return out
}

// RoadMask returns a 4-bit mask of cardinal neighbors holding roads:
// bit 1 = north, 2 = east, 4 = south, 8 = west. Used by renderers to pick
// road sprites and by the resolver for connectivity.
func (g *Grid) RoadMask(x, y int) int {
	mask := 0
	if c := g.At(x, y-1); c != nil && c.Type == BuildingRoad {
		mask |= 1
	}
	if c := g.At(x+1, y); c != nil && c.Type == BuildingRoad {
		mask |= 2
	}
	if c := g.At(x, y+1); c != nil && c.Type == BuildingRoad {
		mask |= 4
	}
	if c := g.At(x-1, y); c != nil && c.Type == BuildingRoad {
		mask |= 8
	}
	return mask
}

// IsRoadConnected reports whether the cell at (x, y) is a road or has at
// least one road among its 4-neighbors. Empty cells are not connected.
func (g *Grid) IsRoadConnected(x, y int) bool {
	c := g.At(x, y)
	if c == nil {
		return false
	}
	if c.Type == BuildingRoad {
		return true
	}
	return g.RoadMask(x, y) != 0
}

// Occupied returns the number of placed cells.
func (g *Grid) Occupied() int {
	n := 0
	g.Each(func(*Cell, int, int) { n++ })
	return n
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(size=%d, occupied=%d)", g.Size, g.Occupied())
}
