package hypergraph_test

import (
	"fmt"

	"github.com/katalvlaran/hypergraph/hypergraph"
)

// ExampleIdentity builds the identity wire and reports its boundary
// widths.
func ExampleIdentity() {
	g := hypergraph.Identity()
	in, out := hypergraph.Size(g)
	fmt.Println(in, out)
	// Output: 1 1
}

// ExampleAddEdge wires a single (1,1) generator between the two
// boundaries, as spec §8 scenario 2 describes.
func ExampleAddEdge() {
	f := hypergraph.Arity{In: 1, Out: 1}
	e, g := hypergraph.AddEdge(f, hypergraph.Empty())
	g = hypergraph.Connect(hypergraph.BoundaryPort(hypergraph.Source, 0), hypergraph.GenPort(hypergraph.Target, e, 0), g)
	g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, e, 0), hypergraph.BoundaryPort(hypergraph.Target, 0), g)

	in, out := hypergraph.Size(g)
	fmt.Println(in, out, len(g.Wires()))
	// Output: 1 1 2
}
