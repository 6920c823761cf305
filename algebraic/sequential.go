package algebraic

import "github.com/katalvlaran/hypergraph/hypergraph"

// Sequential computes a → b: a's right boundary spliced onto b's left
// boundary port-by-port. When the two widths disagree (a's output width
// ao != b's input width bi), the wider side's unmatched ports bypass
// the splice and surface directly on the composite's boundary -- this is
// the "affine" composition spec §4.2 describes, not a strict category's
// composition (which would require ao == bi).
//
// b's hyperedges are renamed by a's NextHyperEdgeId first. Then every
// boundary port of the renamed b is shifted by offset = max(0, ao-bi).
// When ao <= bi the offset is 0: a's output i feeds b's input i, and b's
// inputs ao..bi-1 move to the composite's left boundary after a's own
// inputs. When ao > bi, b's input i is fed by a's output i+offset, so a's
// unmatched upper outputs 0..offset-1 survive at their original indices
// and b's outputs follow them.
func Sequential(a, b *hypergraph.OpenHypergraph) *hypergraph.OpenHypergraph {
	ma := a.NextHyperEdgeId()
	mb := b.NextHyperEdgeId()
	ai, ao := hypergraph.Size(a)
	bi, _ := hypergraph.Size(b)
	offset := 0
	if ao > bi {
		offset = ao - bi
	}

	bSigs := make(map[hypergraph.HyperEdgeId]hypergraph.Signature, len(b.Signatures()))
	for e, sig := range b.Signatures() {
		bSigs[e+ma] = sig
	}

	renamed := make([]hypergraph.Wire, 0, len(b.Wires()))
	for _, w := range b.Wires() {
		renamed = append(renamed, hypergraph.Wire{
			Source: renameAndShift(w.Source, ma, offset),
			Target: renameAndShift(w.Target, ma, offset),
		})
	}

	consumed := make(map[hypergraph.Port]bool)
	bWires := make([]hypergraph.Wire, 0, len(renamed))
	for _, w := range renamed {
		if isShiftedInput(w.Source, offset, bi) {
			aTarget := hypergraph.BoundaryPort(hypergraph.Target, w.Source.Index)
			if sA, ok := hypergraph.SourceOf(aTarget, a); ok {
				consumed[aTarget] = true
				bWires = append(bWires, hypergraph.Wire{Source: sA, Target: w.Target})
				continue
			}
			newIdx := w.Source.Index - ao + ai
			bWires = append(bWires, hypergraph.Wire{
				Source: hypergraph.BoundaryPort(hypergraph.Source, newIdx),
				Target: w.Target,
			})
			continue
		}
		bWires = append(bWires, w)
	}

	aWires := make([]hypergraph.Wire, 0, len(a.Wires()))
	for _, w := range a.Wires() {
		if w.Target.Role == hypergraph.Target && w.Target.Owner.IsBoundary() && consumed[w.Target] {
			continue
		}
		aWires = append(aWires, w)
	}

	sigs := a.Signatures()
	for e, sig := range bSigs {
		sigs[e] = sig
	}

	return hypergraph.FromParts(sigs, append(aWires, bWires...), ma+mb)
}

// renameAndShift renames a generator-owned port to its place in the
// composite's id space, or shifts a boundary port by offset regardless of
// role (spec §4.2: the whole of b's boundary moves together).
func renameAndShift(p hypergraph.Port, edgeShift hypergraph.HyperEdgeId, offset int) hypergraph.Port {
	if !p.Owner.IsBoundary() {
		return hypergraph.GenPort(p.Role, p.Owner.Edge()+edgeShift, p.Index)
	}
	return hypergraph.BoundaryPort(p.Role, p.Index+offset)
}

// isShiftedInput reports whether p is one of b's own (already-shifted)
// left-boundary ports, i.e. a Source-role boundary port with an index in
// [offset, offset+bi) -- the range b's original [0,bi) input indices
// landed in after the uniform +offset shift.
func isShiftedInput(p hypergraph.Port, offset, bi int) bool {
	return p.Owner.IsBoundary() && p.Role == hypergraph.Source && p.Index >= offset && p.Index < offset+bi
}
