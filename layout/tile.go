package layout

import "github.com/katalvlaran/hypergraph/hypergraph"

// Tile is one of the two atoms a Layout places on its Grid: a
// HyperEdgeTile or a PseudoNodeTile. Both are plain comparable values so
// they can key the Grid directly.
type Tile interface {
	isTile()
}

// HyperEdgeTile is the tile occupying the cells of hyperedge E.
type HyperEdgeTile struct {
	E hypergraph.HyperEdgeId
}

func (HyperEdgeTile) isTile() {}

// PseudoNodeTile is the i-th synthetic bend on the wire from S to T,
// inserted so that wire crosses exactly one column at a time. Pseudonodes
// carry no signature and always occupy a single cell.
type PseudoNodeTile struct {
	S, T   hypergraph.Port
	Offset int
}

func (PseudoNodeTile) isTile() {}

// PortOffsets lets a Signature place its ports at y-offsets other than the
// default 0..k-1 within its generator tile. Signatures that don't
// implement it get the default packing.
type PortOffsets interface {
	InputOffset(i int) int
	OutputOffset(i int) int
}

// generatorInputs returns, for each Target-port index of sig, its
// y-offset within the generator's tile.
func generatorInputs(sig hypergraph.Signature) []int {
	n := sig.Inputs()
	out := make([]int, n)
	if po, ok := sig.(PortOffsets); ok {
		for i := range out {
			out[i] = po.InputOffset(i)
		}
		return out
	}
	for i := range out {
		out[i] = i
	}
	return out
}

// generatorOutputs returns, for each Source-port index of sig, its
// y-offset within the generator's tile.
func generatorOutputs(sig hypergraph.Signature) []int {
	n := sig.Outputs()
	out := make([]int, n)
	if po, ok := sig.(PortOffsets); ok {
		for i := range out {
			out[i] = po.OutputOffset(i)
		}
		return out
	}
	for i := range out {
		out[i] = i
	}
	return out
}

// generatorHeight is the minimum tile height covering every port offset
// sig uses; a zero-input, zero-output generator still occupies height 1.
func generatorHeight(sig hypergraph.Signature) int {
	h := 1
	for _, y := range generatorInputs(sig) {
		if y+1 > h {
			h = y + 1
		}
	}
	for _, y := range generatorOutputs(sig) {
		if y+1 > h {
			h = y + 1
		}
	}
	return h
}
