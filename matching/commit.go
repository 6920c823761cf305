package matching

import (
	"github.com/katalvlaran/hypergraph/equivalence"
	"github.com/katalvlaran/hypergraph/hypergraph"
)

// boundaryImages canonicalizes the bijection between pattern boundary
// indices and their host port images on one side (Source or Target):
// elemToClass answers "is this host port already claimed, and by which
// pattern index", classToElems answers "which host port did this pattern
// index already claim" -- the two checks commitPort needs to enforce
// M3/M5, folded into the one structure the equivalence package already
// provides instead of a second bare set alongside MatchState's map.
type boundaryImages = equivalence.Classes[hypergraph.Port, int]

// commitPort tries to record pp (a pattern port) as mapped to hp (a host
// port), mutating st/usedEdges/srcImages/tgtImages in place. It enforces
// M1-M3 and M5 (injectivity and signature/index correspondence); the
// caller is responsible for M4 (following the wire) separately.
func commitPort(st *MatchState, usedEdges map[hypergraph.HyperEdgeId]bool, srcImages, tgtImages *boundaryImages, pp, hp hypergraph.Port, pattern, host *hypergraph.OpenHypergraph) bool {
	if hp.Role != pp.Role {
		return false
	}

	if pp.Owner.IsBoundary() {
		table := st.BoundarySources
		images := srcImages
		if pp.Role == hypergraph.Target {
			table = st.BoundaryTargets
			images = tgtImages
		}
		if existing, ok := table[pp.Index]; ok {
			return existing == hp
		}
		if _, used := images.ClassOf(hp); used {
			return false
		}
		table[pp.Index] = hp
		images.Add(hp, pp.Index)
		return true
	}

	if hp.Owner.IsBoundary() {
		return false
	}
	if hp.Index != pp.Index {
		return false
	}

	pe := pp.Owner.Edge()
	he := hp.Owner.Edge()
	if existing, ok := st.Edges[pe]; ok {
		return existing == he
	}
	if usedEdges[he] {
		return false
	}
	patSig, ok := pattern.SignatureOf(pe)
	if !ok {
		return false
	}
	hostSig, ok := host.SignatureOf(he)
	if !ok || !patSig.Equal(hostSig) {
		return false
	}
	st.Edges[pe] = he
	usedEdges[he] = true
	return true
}

// extend attempts to map pattern source port ps to host source port hs,
// then follow each side's wire (if any) and commit the corresponding
// target-port mapping too (M4). Returns the extended, independent copies
// of the running state and usage sets on success.
func extend(state MatchState, usedEdges map[hypergraph.HyperEdgeId]bool, srcImages, tgtImages *boundaryImages, ps, hs hypergraph.Port, pattern, host *hypergraph.OpenHypergraph) (MatchState, map[hypergraph.HyperEdgeId]bool, *boundaryImages, *boundaryImages, bool) {
	st := state.clone()
	ue := cloneEdgeUsage(usedEdges)
	si := srcImages.Clone()
	ti := tgtImages.Clone()

	if !commitPort(&st, ue, si, ti, ps, hs, pattern, host) {
		return MatchState{}, nil, nil, nil, false
	}

	pt, pOK := hypergraph.TargetOf(ps, pattern)
	ht, hOK := hypergraph.TargetOf(hs, host)
	if pOK != hOK {
		return MatchState{}, nil, nil, nil, false
	}
	if pOK {
		if !commitPort(&st, ue, si, ti, pt, ht, pattern, host) {
			return MatchState{}, nil, nil, nil, false
		}
	}
	return st, ue, si, ti, true
}

// candidatesFor enumerates the host source ports eligible to be the
// image of pattern source port ps, per spec step 3: if ps is a boundary
// port, every host source port not yet used as a boundary image;
// if ps belongs to an already-matched pattern edge, its image is fixed;
// otherwise every not-yet-used host edge of matching signature, in
// ascending host edge-id order.
func candidatesFor(ps hypergraph.Port, pattern, host *hypergraph.OpenHypergraph, st MatchState, usedEdges map[hypergraph.HyperEdgeId]bool, srcImages *boundaryImages) []hypergraph.Port {
	if ps.Owner.IsBoundary() {
		var out []hypergraph.Port
		hi, _ := hypergraph.Size(host)
		for i := 0; i < hi; i++ {
			hp := hypergraph.BoundaryPort(hypergraph.Source, i)
			if _, used := srcImages.ClassOf(hp); !used {
				out = append(out, hp)
			}
		}
		for _, he := range host.EdgeIds() {
			sig, _ := host.SignatureOf(he)
			for i := 0; i < sig.Outputs(); i++ {
				hp := hypergraph.GenPort(hypergraph.Source, he, i)
				if _, used := srcImages.ClassOf(hp); !used {
					out = append(out, hp)
				}
			}
		}
		return out
	}

	pe := ps.Owner.Edge()
	if he, ok := st.Edges[pe]; ok {
		return []hypergraph.Port{hypergraph.GenPort(hypergraph.Source, he, ps.Index)}
	}

	patSig, _ := pattern.SignatureOf(pe)
	var out []hypergraph.Port
	for _, he := range host.EdgeIds() {
		if usedEdges[he] {
			continue
		}
		hostSig, ok := host.SignatureOf(he)
		if !ok || !patSig.Equal(hostSig) {
			continue
		}
		out = append(out, hypergraph.GenPort(hypergraph.Source, he, ps.Index))
	}
	return out
}
