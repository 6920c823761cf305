package matching

import "github.com/katalvlaran/hypergraph/hypergraph"

// MatchState witnesses one embedding of a pattern into a host: which
// host hyperedge each pattern hyperedge maps to, and which host port
// each of the pattern's own boundary ports maps to.
type MatchState struct {
	// Edges maps a pattern hyperedge id to the host hyperedge id it was
	// matched against.
	Edges map[hypergraph.HyperEdgeId]hypergraph.HyperEdgeId
	// BoundarySources maps a pattern left-boundary index to the host port
	// standing in for it (a host boundary port or a host generator's
	// source port).
	BoundarySources map[int]hypergraph.Port
	// BoundaryTargets maps a pattern right-boundary index to the host
	// port standing in for it.
	BoundaryTargets map[int]hypergraph.Port
}

func newMatchState() MatchState {
	return MatchState{
		Edges:           make(map[hypergraph.HyperEdgeId]hypergraph.HyperEdgeId),
		BoundarySources: make(map[int]hypergraph.Port),
		BoundaryTargets: make(map[int]hypergraph.Port),
	}
}

func (s MatchState) clone() MatchState {
	c := newMatchState()
	for k, v := range s.Edges {
		c.Edges[k] = v
	}
	for k, v := range s.BoundarySources {
		c.BoundarySources[k] = v
	}
	for k, v := range s.BoundaryTargets {
		c.BoundaryTargets[k] = v
	}
	return c
}

func cloneEdgeUsage(m map[hypergraph.HyperEdgeId]bool) map[hypergraph.HyperEdgeId]bool {
	c := make(map[hypergraph.HyperEdgeId]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
