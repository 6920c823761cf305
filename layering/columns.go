package layering

import "github.com/katalvlaran/hypergraph/hypergraph"

// Columns assigns every hyperedge of g an integer column equal to the
// length of the longest path, in generator-to-generator wires, from any
// boundary source port to that hyperedge. A hyperedge with no incoming
// generator wire gets column 0 whether or not the boundary reaches it; an
// unreachable hyperedge fed by another generator is still placed after
// that generator.
//
// The relaxation is the textbook Bellman-Ford shape: initialise every
// column to 0, then repeatedly require x(target) >= x(source)+1 along
// every generator-to-generator wire until nothing changes. This
// terminates and is correct whenever the wire-DAG has no cycle among
// generators; g.Wires() returning a cyclic graph is a caller error this
// function does not detect.
func Columns(g *hypergraph.OpenHypergraph) map[hypergraph.HyperEdgeId]int {
	ids := g.EdgeIds()
	x := make(map[hypergraph.HyperEdgeId]int, len(ids))
	for _, e := range ids {
		x[e] = 0
	}

	type succ struct {
		from, to hypergraph.HyperEdgeId
	}
	var edges []succ
	for _, w := range g.Wires() {
		if w.Source.Owner.IsBoundary() || w.Target.Owner.IsBoundary() {
			continue
		}
		edges = append(edges, succ{from: w.Source.Owner.Edge(), to: w.Target.Owner.Edge()})
	}

	for i := 0; i <= len(ids); i++ {
		changed := false
		for _, e := range edges {
			if want := x[e.from] + 1; x[e.to] < want {
				x[e.to] = want
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return x
}
