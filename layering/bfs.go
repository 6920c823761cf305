package layering

import "github.com/katalvlaran/hypergraph/hypergraph"

// BFSSourcePorts returns every source port of g reachable from the left
// boundary, in breadth-first order: the left boundary's own source ports
// first (in index order), then each hyperedge's output ports as a
// contiguous block, emitted in the order that hyperedge first became
// reachable. A hyperedge with no path back to the boundary (an orphaned
// generator, or one that only ever feeds itself in a cycle) never
// appears.
func BFSSourcePorts(g *hypergraph.OpenHypergraph) []hypergraph.Port {
	inWidth, _ := hypergraph.Size(g)

	visited := make(map[hypergraph.HyperEdgeId]bool)
	var queue []hypergraph.HyperEdgeId
	enqueue := func(e hypergraph.HyperEdgeId) {
		if visited[e] {
			return
		}
		visited[e] = true
		queue = append(queue, e)
	}
	follow := func(p hypergraph.Port) {
		if t, ok := hypergraph.TargetOf(p, g); ok && !t.Owner.IsBoundary() {
			enqueue(t.Owner.Edge())
		}
	}

	var order []hypergraph.Port
	for i := 0; i < inWidth; i++ {
		p := hypergraph.BoundaryPort(hypergraph.Source, i)
		order = append(order, p)
		follow(p)
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		sig, ok := g.SignatureOf(e)
		if !ok {
			continue
		}
		for i := 0; i < sig.Outputs(); i++ {
			p := hypergraph.GenPort(hypergraph.Source, e, i)
			order = append(order, p)
			follow(p)
		}
	}
	return order
}
