package layering

import (
	"testing"

	"github.com/katalvlaran/hypergraph/hypergraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain builds boundary -> e0 -> e1 -> e2 -> boundary, each edge (1,1).
func chain(t *testing.T) (*hypergraph.OpenHypergraph, [3]hypergraph.HyperEdgeId) {
	t.Helper()
	g := hypergraph.Empty()
	var ids [3]hypergraph.HyperEdgeId
	for i := range ids {
		ids[i], g = hypergraph.AddEdge(hypergraph.Arity{In: 1, Out: 1}, g)
	}
	g = hypergraph.Connect(hypergraph.BoundaryPort(hypergraph.Source, 0), hypergraph.GenPort(hypergraph.Target, ids[0], 0), g)
	g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, ids[0], 0), hypergraph.GenPort(hypergraph.Target, ids[1], 0), g)
	g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, ids[1], 0), hypergraph.GenPort(hypergraph.Target, ids[2], 0), g)
	g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, ids[2], 0), hypergraph.BoundaryPort(hypergraph.Target, 0), g)
	return g, ids
}

func TestColumns_LinearChain(t *testing.T) {
	g, ids := chain(t)
	cols := Columns(g)
	assert.Equal(t, 0, cols[ids[0]])
	assert.Equal(t, 1, cols[ids[1]])
	assert.Equal(t, 2, cols[ids[2]])
}

func TestColumns_DisconnectedEdgeStaysZero(t *testing.T) {
	g := hypergraph.Empty()
	e, g := hypergraph.AddEdge(hypergraph.Arity{In: 1, Out: 1}, g)
	cols := Columns(g)
	assert.Equal(t, 0, cols[e])
}

func TestColumns_ParallelBranchesTakeMax(t *testing.T) {
	g := hypergraph.Empty()
	a, g := hypergraph.AddEdge(hypergraph.Arity{In: 1, Out: 1}, g)
	b, g := hypergraph.AddEdge(hypergraph.Arity{In: 1, Out: 1}, g)
	c, g := hypergraph.AddEdge(hypergraph.Arity{In: 2, Out: 1}, g)
	g = hypergraph.Connect(hypergraph.BoundaryPort(hypergraph.Source, 0), hypergraph.GenPort(hypergraph.Target, a, 0), g)
	g = hypergraph.Connect(hypergraph.BoundaryPort(hypergraph.Source, 1), hypergraph.GenPort(hypergraph.Target, b, 0), g)
	g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, a, 0), hypergraph.GenPort(hypergraph.Target, c, 0), g)
	g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, b, 0), hypergraph.GenPort(hypergraph.Target, c, 1), g)

	cols := Columns(g)
	assert.Equal(t, 0, cols[a])
	assert.Equal(t, 0, cols[b])
	assert.Equal(t, 1, cols[c])
}

func TestBFSSourcePorts_BoundaryFirstThenContiguousPerEdge(t *testing.T) {
	g, ids := chain(t)
	order := BFSSourcePorts(g)
	require.Len(t, order, 4) // boundary port 0, e0, e1, e2 outputs (1 each)

	assert.Equal(t, hypergraph.BoundaryPort(hypergraph.Source, 0), order[0])
	assert.Equal(t, hypergraph.GenPort(hypergraph.Source, ids[0], 0), order[1])
	assert.Equal(t, hypergraph.GenPort(hypergraph.Source, ids[1], 0), order[2])
	assert.Equal(t, hypergraph.GenPort(hypergraph.Source, ids[2], 0), order[3])
}

func TestBFSSourcePorts_MultiOutputEdgeStaysContiguous(t *testing.T) {
	g := hypergraph.Empty()
	e, g := hypergraph.AddEdge(hypergraph.Arity{In: 1, Out: 2}, g)
	g = hypergraph.Connect(hypergraph.BoundaryPort(hypergraph.Source, 0), hypergraph.GenPort(hypergraph.Target, e, 0), g)
	g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, e, 0), hypergraph.BoundaryPort(hypergraph.Target, 0), g)
	g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, e, 1), hypergraph.BoundaryPort(hypergraph.Target, 1), g)

	order := BFSSourcePorts(g)
	require.Len(t, order, 3)
	assert.Equal(t, hypergraph.GenPort(hypergraph.Source, e, 0), order[1])
	assert.Equal(t, hypergraph.GenPort(hypergraph.Source, e, 1), order[2])
}

func TestBFSSourcePorts_UnreachableEdgeOmitted(t *testing.T) {
	g := hypergraph.Empty()
	_, g = hypergraph.AddEdge(hypergraph.Arity{In: 1, Out: 1}, g)
	order := BFSSourcePorts(g)
	assert.Empty(t, order)
}
