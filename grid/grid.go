package grid

import "sort"

// V2 is an integer 2-D position or extent.
type V2 struct {
	X, Y int
}

// Grid maps tile identities of type T to positions and heights, keeping a
// per-column ascending-y ordering and an inverse cell lookup consistent
// with each other.
//
// Grid is not safe for concurrent use; the hypergraph core as a whole is
// single-threaded and synchronous (spec §5).
type Grid[T comparable] struct {
	pos     map[T]V2
	heights map[T]int
	columns map[int][]T // ascending y within each column
	cells   map[V2]T    // inverse: occupied cell -> tile
}

// NewGrid returns an empty Grid.
func NewGrid[T comparable]() *Grid[T] {
	return &Grid[T]{
		pos:     make(map[T]V2),
		heights: make(map[T]int),
		columns: make(map[int][]T),
		cells:   make(map[V2]T),
	}
}

// Has reports whether tile is currently placed on the grid.
func (g *Grid[T]) Has(tile T) bool {
	_, ok := g.pos[tile]
	return ok
}

// Position returns tile's current position, or ok=false if it is not
// placed.
func (g *Grid[T]) Position(tile T) (V2, bool) {
	p, ok := g.pos[tile]
	return p, ok
}

// HeightOf returns tile's height, or ok=false if it is not placed.
func (g *Grid[T]) HeightOf(tile T) (int, bool) {
	h, ok := g.heights[tile]
	return h, ok
}

// At returns the tile occupying pos, if any.
func (g *Grid[T]) At(pos V2) (T, bool) {
	t, ok := g.cells[pos]
	return t, ok
}

// Column returns the tiles in column x, ascending by y.
func (g *Grid[T]) Column(x int) []T {
	col := g.columns[x]
	out := make([]T, len(col))
	copy(out, col)
	return out
}

// Columns returns the indices of every non-empty column, ascending.
func (g *Grid[T]) Columns() []int {
	out := make([]int, 0, len(g.columns))
	for x, col := range g.columns {
		if len(col) > 0 {
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}

// Dimensions returns (width, height): width is one past the highest used
// column, height is one past the highest occupied cell row. An empty grid
// has dimensions (0, 0).
func (g *Grid[T]) Dimensions() V2 {
	width, height := 0, 0
	for x, col := range g.columns {
		if len(col) == 0 {
			continue
		}
		if x+1 > width {
			width = x + 1
		}
		for _, t := range col {
			bottom := g.pos[t].Y + g.heights[t]
			if bottom > height {
				height = bottom
			}
		}
	}
	return V2{X: width, Y: height}
}

// Clone returns an independent copy of g: mutating the copy never
// affects g, and vice versa.
func (g *Grid[T]) Clone() *Grid[T] {
	out := NewGrid[T]()
	for t, p := range g.pos {
		out.pos[t] = p
	}
	for t, h := range g.heights {
		out.heights[t] = h
	}
	for x, col := range g.columns {
		c := make([]T, len(col))
		copy(c, col)
		out.columns[x] = c
	}
	for p, t := range g.cells {
		out.cells[p] = t
	}
	return out
}

// RemoveTile removes tile from the grid entirely. Removing an untracked
// tile is a no-op. Remaining tiles in the same column are not shifted up
// to close the gap; Grid never compacts on its own.
func (g *Grid[T]) RemoveTile(tile T) {
	p, ok := g.pos[tile]
	if !ok {
		return
	}
	h := g.heights[tile]
	delete(g.pos, tile)
	delete(g.heights, tile)
	for dy := 0; dy < h; dy++ {
		delete(g.cells, V2{X: p.X, Y: p.Y + dy})
	}
	col := g.columns[p.X]
	for i, t := range col {
		if t == tile {
			g.columns[p.X] = append(col[:i], col[i+1:]...)
			break
		}
	}
}

// Place puts tile at pos with the given height (clamped to at least 1),
// first removing it from wherever it previously sat. If the new placement
// would overlap an existing tile in the same column, that tile -- and
// every tile below it in the column -- is shifted downward by the minimum
// amount needed to open space. An existing tile that starts above pos but
// extends over it is not moved; the new tile is pushed down to start just
// below it instead.
func (g *Grid[T]) Place(tile T, pos V2, height int) {
	if height < 1 {
		height = 1
	}
	g.RemoveTile(tile)

	type entry struct {
		id T
		y  int
		h  int
	}

	existing := g.columns[pos.X]
	entries := make([]entry, 0, len(existing)+1)
	inserted := false
	for _, id := range existing {
		ty := g.pos[id].Y
		if !inserted && ty >= pos.Y {
			entries = append(entries, entry{id: tile, y: pos.Y, h: height})
			inserted = true
		}
		entries = append(entries, entry{id: id, y: ty, h: g.heights[id]})
	}
	if !inserted {
		entries = append(entries, entry{id: tile, y: pos.Y, h: height})
	}

	// Sweep top to bottom, pushing each successor down just enough to
	// clear its predecessor's footprint.
	for i := 0; i+1 < len(entries); i++ {
		bottom := entries[i].y + entries[i].h
		if entries[i+1].y < bottom {
			entries[i+1].y = bottom
		}
	}

	newCol := make([]T, 0, len(entries))
	for _, e := range entries {
		g.pos[e.id] = V2{X: pos.X, Y: e.y}
		g.heights[e.id] = e.h
		newCol = append(newCol, e.id)
		for dy := 0; dy < e.h; dy++ {
			g.cells[V2{X: pos.X, Y: e.y + dy}] = e.id
		}
	}
	g.columns[pos.X] = newCol
}

// ShiftColumnsFrom moves every tile whose column is >= xFrom by dx columns
// (dx may be negative, e.g. to close a gap after deleting a column). The
// relative y-ordering within each affected column is preserved; tiles
// never change column relative to each other, only in absolute position.
func (g *Grid[T]) ShiftColumnsFrom(xFrom, dx int) {
	if dx == 0 {
		return
	}
	affected := make([]int, 0)
	for x := range g.columns {
		if x >= xFrom && len(g.columns[x]) > 0 {
			affected = append(affected, x)
		}
	}
	// Shift in an order that never overwrites a not-yet-moved column:
	// ascending when moving left, descending when moving right.
	if dx > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(affected)))
	} else {
		sort.Ints(affected)
	}
	for _, x := range affected {
		col := g.columns[x]
		newX := x + dx
		for _, tile := range col {
			p := g.pos[tile]
			h := g.heights[tile]
			for dy := 0; dy < h; dy++ {
				delete(g.cells, V2{X: p.X, Y: p.Y + dy})
			}
			p.X = newX
			g.pos[tile] = p
			for dy := 0; dy < h; dy++ {
				g.cells[V2{X: newX, Y: p.Y + dy}] = tile
			}
		}
		delete(g.columns, x)
		g.columns[newX] = append(g.columns[newX], col...)
		sort.Slice(g.columns[newX], func(i, j int) bool {
			return g.pos[g.columns[newX][i]].Y < g.pos[g.columns[newX][j]].Y
		})
	}
}
