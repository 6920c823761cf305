package layout

import (
	"sort"

	"github.com/katalvlaran/hypergraph/grid"
	"github.com/katalvlaran/hypergraph/hypergraph"
)

// Layout is a hypergraph paired with a grid of tiles. Every public method
// returns a new Layout rather than mutating its receiver, mirroring the
// hypergraph package's value semantics.
type Layout struct {
	g          *hypergraph.OpenHypergraph
	grid       *grid.Grid[Tile]
	heightFunc func(hypergraph.Signature) int
}

// LayoutOption configures a Layout at construction, the way the
// teacher's GraphOption configures a Graph before its first use.
type LayoutOption func(l *Layout)

// WithHeightFunc overrides the function PlaceGenerator uses to size a
// new tile, in place of generatorHeight's "cover every port offset"
// default -- for a Signature that wants more vertical room than its
// ports alone demand (e.g. reserved space for a rendered label).
func WithHeightFunc(f func(hypergraph.Signature) int) LayoutOption {
	return func(l *Layout) { l.heightFunc = f }
}

// Empty returns the layout with no edges and no tiles.
func Empty(opts ...LayoutOption) *Layout {
	l := &Layout{g: hypergraph.Empty(), grid: grid.NewGrid[Tile](), heightFunc: generatorHeight}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Hypergraph exposes the underlying open hypergraph.
func (l *Layout) Hypergraph() *hypergraph.OpenHypergraph { return l.g }

// GeneratorPlacement is one hyperedge's tile: its id, grid position, and
// height.
type GeneratorPlacement struct {
	Edge   hypergraph.HyperEdgeId
	Pos    grid.V2
	Height int
}

// GeneratorPlacements returns the placement of every HyperEdgeTile
// currently on the grid, ascending by edge id.
func (l *Layout) GeneratorPlacements() []GeneratorPlacement {
	var out []GeneratorPlacement
	for _, e := range l.g.EdgeIds() {
		tile := HyperEdgeTile{E: e}
		pos, ok := l.grid.Position(tile)
		if !ok {
			continue
		}
		h, _ := l.grid.HeightOf(tile)
		out = append(out, GeneratorPlacement{Edge: e, Pos: pos, Height: h})
	}
	return out
}

// FromPlacements builds a Layout from a hypergraph and an explicit set
// of generator tile placements, recomputing pseudonodes from the
// hypergraph's wires. Used to reconstruct a Layout after loading a
// hypergraph and tile list from storage.
func FromPlacements(g *hypergraph.OpenHypergraph, placements []GeneratorPlacement) *Layout {
	l := &Layout{g: g, grid: grid.NewGrid[Tile](), heightFunc: generatorHeight}
	for _, p := range placements {
		l.grid.Place(HyperEdgeTile{E: p.Edge}, p.Pos, p.Height)
	}
	l.recomputePseudonodes()
	return l
}

// clone makes an independent copy of l suitable for a mutator to build its
// result from. g is shared (it is itself copy-on-write); grid is deep
// copied since Grid mutates its maps in place.
func (l *Layout) clone() *Layout {
	return &Layout{g: l.g, grid: l.grid.Clone(), heightFunc: l.heightFunc}
}

// Dimensions returns the layout's (width, height). Width is one past the
// rightmost generator tile's column, plus two for the left and right
// boundary columns; pseudonode tiles do not widen it, so adding the
// pseudonodes of a wire that ends on the right boundary does not move
// that boundary. Height also accounts for boundary widths wider than any
// tile column.
func (l *Layout) Dimensions() grid.V2 {
	gd := l.grid.Dimensions()
	width := 0
	for _, p := range l.GeneratorPlacements() {
		if p.Pos.X+1 > width {
			width = p.Pos.X + 1
		}
	}
	in, out := hypergraph.Size(l.g)
	h := gd.Y
	if in > h {
		h = in
	}
	if out > h {
		h = out
	}
	return grid.V2{X: width + 2, Y: h}
}

// PortPosition returns p's cell in the layout, if p is a port that
// currently has one: boundary ports always do (column 0 for the left
// boundary, the rightmost column for the right boundary); a generator
// port does only once its edge has been placed.
func (l *Layout) PortPosition(p hypergraph.Port) (grid.V2, bool) {
	if p.Owner.IsBoundary() {
		if p.Role == hypergraph.Source {
			return grid.V2{X: 0, Y: p.Index}, true
		}
		return grid.V2{X: l.Dimensions().X - 1, Y: p.Index}, true
	}
	e := p.Owner.Edge()
	tilePos, ok := l.grid.Position(HyperEdgeTile{E: e})
	if !ok {
		return grid.V2{}, false
	}
	sig, ok := l.g.SignatureOf(e)
	if !ok {
		return grid.V2{}, false
	}
	var offsets []int
	if p.Role == hypergraph.Target {
		offsets = generatorInputs(sig)
	} else {
		offsets = generatorOutputs(sig)
	}
	if p.Index < 0 || p.Index >= len(offsets) {
		return grid.V2{}, false
	}
	return grid.V2{X: tilePos.X, Y: tilePos.Y + offsets[p.Index]}, true
}

// Positions returns the current position of every tile on the grid.
func (l *Layout) Positions() map[Tile]grid.V2 {
	out := make(map[Tile]grid.V2)
	for _, x := range l.grid.Columns() {
		for _, t := range l.grid.Column(x) {
			p, _ := l.grid.Position(t)
			out[t] = p
		}
	}
	return out
}

// clearPseudonodes removes every PseudoNodeTile currently on the grid.
func (l *Layout) clearPseudonodes() {
	var stale []Tile
	for _, x := range l.grid.Columns() {
		for _, t := range l.grid.Column(x) {
			if _, ok := t.(PseudoNodeTile); ok {
				stale = append(stale, t)
			}
		}
	}
	for _, t := range stale {
		l.grid.RemoveTile(t)
	}
}

// recomputePseudonodes discards every existing pseudonode and rebuilds
// them from scratch for the wires currently present: wire (s, t) gets
// max(0, x(t) - x(s) - 1) pseudonodes at x(s)+1, x(s)+2, ... up to but
// not including x(t), all at y(s).
func (l *Layout) recomputePseudonodes() {
	l.clearPseudonodes()
	for _, w := range l.g.Wires() {
		sp, ok1 := l.PortPosition(w.Source)
		tp, ok2 := l.PortPosition(w.Target)
		if !ok1 || !ok2 {
			continue
		}
		n := tp.X - sp.X - 1
		for i := 0; i < n; i++ {
			pn := PseudoNodeTile{S: w.Source, T: w.Target, Offset: i}
			l.grid.Place(pn, grid.V2{X: sp.X + 1 + i, Y: sp.Y}, 1)
		}
	}
}

// canConnectPorts reports whether s may be connected to t: boundary
// endpoints always may; a generator-to-generator wire may only run from
// a strictly earlier column to a strictly later one (I5).
func (l *Layout) canConnectPorts(s, t hypergraph.Port) bool {
	if s.Owner.IsBoundary() || t.Owner.IsBoundary() {
		return true
	}
	sp, ok1 := l.PortPosition(s)
	tp, ok2 := l.PortPosition(t)
	if !ok1 || !ok2 {
		return false
	}
	return sp.X < tp.X
}

// PlaceGenerator adds a fresh hyperedge of signature sig to the
// hypergraph and places its tile at pos with height l.heightFunc(sig)
// (generatorHeight unless a LayoutOption overrode it), then recomputes
// pseudonodes.
func (l *Layout) PlaceGenerator(sig hypergraph.Signature, pos grid.V2) (hypergraph.HyperEdgeId, *Layout) {
	out := l.clone()
	e, g2 := hypergraph.AddEdge(sig, out.g)
	out.g = g2
	out.grid.Place(HyperEdgeTile{E: e}, pos, out.heightFunc(sig))
	out.recomputePseudonodes()
	return e, out
}

// ConnectPorts connects s to t if canConnectPorts allows it; otherwise it
// is a silent no-op (spec semantics, not an error). On success, any
// pseudonodes made stale by the previous wiring of s or t are discarded
// and fresh ones are computed for the new wire.
func (l *Layout) ConnectPorts(s, t hypergraph.Port) *Layout {
	if !l.canConnectPorts(s, t) {
		return l
	}
	out := l.clone()
	out.g = hypergraph.Connect(s, t, out.g)
	out.recomputePseudonodes()
	return out
}

// DisconnectSource removes the wire (if any) whose tail is s.
func (l *Layout) DisconnectSource(s hypergraph.Port) *Layout {
	out := l.clone()
	out.g = hypergraph.DisconnectSource(s, out.g)
	out.recomputePseudonodes()
	return out
}

// DisconnectTarget removes the wire (if any) whose head is t.
func (l *Layout) DisconnectTarget(t hypergraph.Port) *Layout {
	out := l.clone()
	out.g = hypergraph.DisconnectTarget(t, out.g)
	out.recomputePseudonodes()
	return out
}

// DeleteGenerator removes e from the hypergraph and its tile from the
// grid, then recomputes pseudonodes.
func (l *Layout) DeleteGenerator(e hypergraph.HyperEdgeId) *Layout {
	out := l.clone()
	out.g = hypergraph.DeleteEdge(e, out.g)
	out.grid.RemoveTile(HyperEdgeTile{E: e})
	out.recomputePseudonodes()
	return out
}

// Move places tile at pos. For a HyperEdgeTile, any wire through one of
// its ports that would now violate I5 (source column no longer strictly
// less than target column) is dropped. For a PseudoNodeTile, only the y
// coordinate is honoured and the tile keeps its current column; the next
// structural mutation recomputes pseudonodes and puts it back on its
// source port's row.
func (l *Layout) Move(tile Tile, pos grid.V2) *Layout {
	out := l.clone()
	switch tt := tile.(type) {
	case HyperEdgeTile:
		h, ok := out.grid.HeightOf(tile)
		if !ok {
			h = 1
		}
		out.grid.Place(tile, pos, h)
		out.dropI5Violations(tt.E)
		out.recomputePseudonodes()
	case PseudoNodeTile:
		cur, ok := out.grid.Position(tile)
		newPos := pos
		if ok {
			newPos.X = cur.X
		}
		out.grid.Place(tile, newPos, 1)
	}
	return out
}

// violatesI5 reports whether a wire from s to t no longer satisfies I5.
// Wires touching the boundary are unconstrained by I5, which only
// governs generator-to-generator wires.
func (l *Layout) violatesI5(s, t hypergraph.Port) bool {
	if s.Owner.IsBoundary() || t.Owner.IsBoundary() {
		return false
	}
	sp, ok1 := l.PortPosition(s)
	tp, ok2 := l.PortPosition(t)
	if !ok1 || !ok2 {
		return false
	}
	return !(sp.X < tp.X)
}

// dropI5Violations removes every wire touching e's ports that I5 no
// longer permits after e has moved.
func (l *Layout) dropI5Violations(e hypergraph.HyperEdgeId) {
	sig, ok := l.g.SignatureOf(e)
	if !ok {
		return
	}
	for i := 0; i < sig.Inputs(); i++ {
		t := hypergraph.GenPort(hypergraph.Target, e, i)
		if s, ok := hypergraph.SourceOf(t, l.g); ok && l.violatesI5(s, t) {
			l.g = hypergraph.DisconnectTarget(t, l.g)
		}
	}
	for i := 0; i < sig.Outputs(); i++ {
		s := hypergraph.GenPort(hypergraph.Source, e, i)
		if t, ok := hypergraph.TargetOf(s, l.g); ok && l.violatesI5(s, t) {
			l.g = hypergraph.DisconnectSource(s, l.g)
		}
	}
}

// InsertLayer shifts every tile in columns >= x right by n, opening a gap.
func (l *Layout) InsertLayer(x, n int) *Layout {
	out := l.clone()
	out.grid.ShiftColumnsFrom(x, n)
	out.recomputePseudonodes()
	return out
}

// RemovePseudonodeOnlyLayers deletes every column that contains only
// pseudonode tiles, closing the resulting gaps.
func (l *Layout) RemovePseudonodeOnlyLayers() *Layout {
	out := l.clone()
	cols := out.grid.Columns()
	sort.Sort(sort.Reverse(sort.IntSlice(cols)))
	for _, x := range cols {
		tiles := out.grid.Column(x)
		if len(tiles) == 0 {
			continue
		}
		onlyPseudo := true
		for _, t := range tiles {
			if _, ok := t.(PseudoNodeTile); !ok {
				onlyPseudo = false
				break
			}
		}
		if !onlyPseudo {
			continue
		}
		for _, t := range tiles {
			out.grid.RemoveTile(t)
		}
		out.grid.ShiftColumnsFrom(x+1, -1)
	}
	out.recomputePseudonodes()
	return out
}

// Lookup returns the target and/or source port that the cell at pos
// represents, if any. The left boundary column yields only a source
// port; the right boundary column yields only a target port; a
// generator's tile yields whichever of its ports (zero, one, or both)
// sit at that row.
func (l *Layout) Lookup(pos grid.V2) (target hypergraph.Port, hasTarget bool, source hypergraph.Port, hasSource bool) {
	dim := l.Dimensions()
	if pos.X == 0 {
		return hypergraph.Port{}, false, hypergraph.BoundaryPort(hypergraph.Source, pos.Y), true
	}
	if pos.X == dim.X-1 {
		return hypergraph.BoundaryPort(hypergraph.Target, pos.Y), true, hypergraph.Port{}, false
	}
	tile, ok := l.grid.At(pos)
	if !ok {
		return hypergraph.Port{}, false, hypergraph.Port{}, false
	}
	het, ok := tile.(HyperEdgeTile)
	if !ok {
		return hypergraph.Port{}, false, hypergraph.Port{}, false
	}
	sig, ok := l.g.SignatureOf(het.E)
	if !ok {
		return hypergraph.Port{}, false, hypergraph.Port{}, false
	}
	tilePos, _ := l.grid.Position(tile)
	dy := pos.Y - tilePos.Y
	for i, off := range generatorInputs(sig) {
		if off == dy {
			target, hasTarget = hypergraph.GenPort(hypergraph.Target, het.E, i), true
			break
		}
	}
	for i, off := range generatorOutputs(sig) {
		if off == dy {
			source, hasSource = hypergraph.GenPort(hypergraph.Source, het.E, i), true
			break
		}
	}
	return target, hasTarget, source, hasSource
}
