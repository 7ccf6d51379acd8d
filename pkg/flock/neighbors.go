package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Neighbors returns every *other* agent whose Euclidean distance to me
// is strictly less than radius. Self is excluded by the distance > 0
// condition, which also skips agents sitting exactly on top of me.
// This is the reference O(N) query; Grid.Within must return the same
// set.
func Neighbors(me *Agent, agents []*Agent, radius float64) []*Agent {
	radiusSq := radius * radius
	var result []*Agent
	for _, other := range agents {
		distSq := me.Pos.DistanceSquaredTo(other.Pos)
		if distSq > 0 && distSq < radiusSq {
			result = append(result, other)
		}
	}
	return result
}

type gridKey struct {
	x, y int
}

// Grid is a uniform spatial hash over agent positions, rebuilt once
// per tick and queried twice per agent. It replaces the brute-force
// scan as the production neighbor query: with cell size >= the largest
// query radius, a radius query only has to visit the cells overlapping
// the query circle.
type Grid struct {
	cellSize float64
	cells    map[gridKey][]*Agent
}

// NewGrid creates an empty grid with the given cell size.
func NewGrid(cellSize float64) *Grid {
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[gridKey][]*Agent),
	}
}

// cellSizeFor picks the cell size for a parameter set: the largest
// query radius, clamped to a minimum of 10 to avoid degenerate grids.
func cellSizeFor(cfg *Config) float64 {
	size := math.Max(cfg.NeighborRadius, cfg.SeparationRadius)
	return math.Max(size, 10.0)
}

// Rebuild reindexes the grid from the current agent positions.
// Cell slices are truncated, not thrown away, so the underlying arrays
// are reused and steady-state rebuilds allocate almost nothing.
func (g *Grid) Rebuild(agents []*Agent, cellSize float64) {
	g.cellSize = cellSize
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	for _, a := range agents {
		key := gridKey{x: int(math.Floor(a.Pos.X / cellSize)), y: int(math.Floor(a.Pos.Y / cellSize))}
		g.cells[key] = append(g.cells[key], a)
	}
}

// Within appends to buf every agent at distance strictly between 0 and
// radius of pos, and returns the extended slice. Passing buf[:0] back
// in keeps the query allocation-free.
func (g *Grid) Within(pos geometry.Vector2D, radius float64, buf []*Agent) []*Agent {
	radiusSq := radius * radius

	// Only the cells overlapping the query circle can hold matches.
	minGx := int(math.Floor((pos.X - radius) / g.cellSize))
	maxGx := int(math.Floor((pos.X + radius) / g.cellSize))
	minGy := int(math.Floor((pos.Y - radius) / g.cellSize))
	maxGy := int(math.Floor((pos.Y + radius) / g.cellSize))

	for gx := minGx; gx <= maxGx; gx++ {
		for gy := minGy; gy <= maxGy; gy++ {
			for _, a := range g.cells[gridKey{x: gx, y: gy}] {
				distSq := pos.DistanceSquaredTo(a.Pos)
				if distSq > 0 && distSq < radiusSq {
					buf = append(buf, a)
				}
			}
		}
	}
	return buf
}
