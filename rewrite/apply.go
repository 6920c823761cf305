package rewrite

import (
	"github.com/katalvlaran/hypergraph/hypergraph"
	"github.com/katalvlaran/hypergraph/matching"
)

// Apply rewrites host by deleting the occurrence of rule.L witnessed by
// m and splicing in rule.R at fresh hyperedge ids, reconnecting R's
// boundary wires to whatever external host ports m recorded as the
// images of L's boundary. It returns the rewritten hypergraph and a
// MatchState witnessing where R landed.
//
// Deleting every edge in image(m.Edges) via hypergraph.DeleteEdge already
// removes both the wires strictly internal to the match and the
// interface wires crossing into it (DeleteEdge drops every wire touching
// any port of the deleted edge, not just internal ones) -- so recreating
// the interface reduces to mapping every wire of R through rHostSide and
// adding the results back. A wire of R between two of R's own boundary
// ports becomes a direct host wire between the two external endpoints m
// recorded, with no generator in between, exactly the identity-like
// pass-through a DPO rewrite should allow.
func Apply(rule Rule, m matching.MatchState, host *hypergraph.OpenHypergraph) (*hypergraph.OpenHypergraph, matching.MatchState) {
	pruned := host
	for _, he := range m.Edges {
		pruned = hypergraph.DeleteEdge(he, pruned)
	}

	shift := pruned.NextHyperEdgeId()

	rHostSide := func(p hypergraph.Port) hypergraph.Port {
		if p.Owner.IsBoundary() {
			if p.Role == hypergraph.Source {
				return m.BoundarySources[p.Index]
			}
			return m.BoundaryTargets[p.Index]
		}
		return hypergraph.GenPort(p.Role, p.Owner.Edge()+shift, p.Index)
	}

	sigs := pruned.Signatures()
	for e, sig := range rule.R.Signatures() {
		sigs[e+shift] = sig
	}

	wires := pruned.Wires()
	for _, w := range rule.R.Wires() {
		wires = append(wires, hypergraph.Wire{
			Source: rHostSide(w.Source),
			Target: rHostSide(w.Target),
		})
	}

	out := hypergraph.FromParts(sigs, wires, shift+rule.R.NextHyperEdgeId())

	witness := matching.MatchState{
		Edges:           make(map[hypergraph.HyperEdgeId]hypergraph.HyperEdgeId, len(rule.R.Signatures())),
		BoundarySources: make(map[int]hypergraph.Port, len(m.BoundarySources)),
		BoundaryTargets: make(map[int]hypergraph.Port, len(m.BoundaryTargets)),
	}
	for _, e := range rule.R.EdgeIds() {
		witness.Edges[e] = e + shift
	}
	for i, p := range m.BoundarySources {
		witness.BoundarySources[i] = p
	}
	for i, p := range m.BoundaryTargets {
		witness.BoundaryTargets[i] = p
	}
	return out, witness
}
