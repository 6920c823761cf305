package algebraic

import "github.com/katalvlaran/hypergraph/hypergraph"

// Tensor computes a ⊗ b: a and b placed side by side with no new wires
// between them. The result's left boundary is a's left boundary followed
// by b's (width ai+bi); its right boundary is a's right boundary
// followed by b's (width ao+bo).
//
// b's hyperedges are renamed by a's NextHyperEdgeId so the two id spaces
// never collide; b's boundary ports are shifted so they land after a's
// on the same side.
func Tensor(a, b *hypergraph.OpenHypergraph) *hypergraph.OpenHypergraph {
	ma := a.NextHyperEdgeId()
	mb := b.NextHyperEdgeId()
	ai, ao := hypergraph.Size(a)

	sigs := a.Signatures()
	for e, sig := range b.Signatures() {
		sigs[e+ma] = sig
	}

	wires := a.Wires()
	for _, w := range b.Wires() {
		wires = append(wires, hypergraph.Wire{
			Source: shiftTensorPort(w.Source, ma, ai, ao),
			Target: shiftTensorPort(w.Target, ma, ai, ao),
		})
	}

	return hypergraph.FromParts(sigs, wires, ma+mb)
}

// shiftTensorPort renames p for its place in a tensor's right-hand
// operand: generator-owned ports move to the renamed edge id; boundary
// ports shift by the left operand's width on their own side (Source
// ports, the left boundary, shift by ai; Target ports, the right
// boundary, shift by ao).
func shiftTensorPort(p hypergraph.Port, edgeShift hypergraph.HyperEdgeId, ai, ao int) hypergraph.Port {
	if !p.Owner.IsBoundary() {
		return hypergraph.GenPort(p.Role, p.Owner.Edge()+edgeShift, p.Index)
	}
	if p.Role == hypergraph.Source {
		return hypergraph.BoundaryPort(hypergraph.Source, p.Index+ai)
	}
	return hypergraph.BoundaryPort(hypergraph.Target, p.Index+ao)
}
