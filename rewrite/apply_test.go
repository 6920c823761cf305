package rewrite_test

import (
	"testing"

	"github.com/katalvlaran/hypergraph/algebraic"
	"github.com/katalvlaran/hypergraph/hypergraph"
	"github.com/katalvlaran/hypergraph/matching"
	"github.com/katalvlaran/hypergraph/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labeledGen builds a (1,1) generator labelled label, wired straight
// across its own boundary.
func labeledGen(label string) *hypergraph.OpenHypergraph {
	sig := hypergraph.Labeled{Arity: hypergraph.Arity{In: 1, Out: 1}, Label: label}
	e, g := hypergraph.AddEdge(sig, hypergraph.Empty())
	g = hypergraph.Connect(hypergraph.BoundaryPort(hypergraph.Source, 0), hypergraph.GenPort(hypergraph.Target, e, 0), g)
	g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, e, 0), hypergraph.BoundaryPort(hypergraph.Target, 0), g)
	return g
}

func labelsInUse(t *testing.T, g *hypergraph.OpenHypergraph) map[string]hypergraph.HyperEdgeId {
	t.Helper()
	out := make(map[string]hypergraph.HyperEdgeId)
	for _, e := range g.EdgeIds() {
		sig, ok := g.SignatureOf(e)
		require.True(t, ok)
		l, ok := sig.(hypergraph.Labeled)
		require.True(t, ok)
		out[l.Label.(string)] = e
	}
	return out
}

// TestApply_ChainRewriteScenario6 reproduces spec scenario 6: a rule
// f => g applied to a host f -> f. The first application yields g -> f;
// applying it again to the result yields g -> g.
func TestApply_ChainRewriteScenario6(t *testing.T) {
	rule, err := rewrite.NewRule(labeledGen("f"), labeledGen("g"))
	require.NoError(t, err)

	host := algebraic.Sequential(labeledGen("f"), labeledGen("f"))
	in, out := hypergraph.Size(host)
	require.Equal(t, 1, in)
	require.Equal(t, 1, out)

	matches := matching.FindAll(labeledGen("f"), host)
	require.Len(t, matches, 2)

	after1, _ := rewrite.Apply(rule, matches[0], host)
	labels1 := labelsInUse(t, after1)
	require.Contains(t, labels1, "g")
	require.Contains(t, labels1, "f")

	in1, out1 := hypergraph.Size(after1)
	assert.Equal(t, 1, in1)
	assert.Equal(t, 1, out1)

	// g must now feed directly into the surviving f.
	gEdge := labels1["g"]
	fEdge := labels1["f"]
	tgt, ok := hypergraph.TargetOf(hypergraph.GenPort(hypergraph.Source, gEdge, 0), after1)
	require.True(t, ok)
	assert.Equal(t, hypergraph.GenPort(hypergraph.Target, fEdge, 0), tgt)

	matches2 := matching.FindAll(labeledGen("f"), after1)
	require.Len(t, matches2, 1)

	after2, _ := rewrite.Apply(rule, matches2[0], after1)
	labels2 := labelsInUse(t, after2)
	assert.NotContains(t, labels2, "f")
	require.Len(t, labels2, 1)

	in2, out2 := hypergraph.Size(after2)
	assert.Equal(t, 1, in2)
	assert.Equal(t, 1, out2)

	// exactly two g-labelled edges remain, chained boundary to boundary.
	var gIDs []hypergraph.HyperEdgeId
	for _, e := range after2.EdgeIds() {
		gIDs = append(gIDs, e)
	}
	require.Len(t, gIDs, 2)
}

func TestNewRule_RejectsMismatchedBoundary(t *testing.T) {
	l := labeledGen("f")
	r, rg := hypergraph.AddEdge(hypergraph.Arity{In: 2, Out: 1}, hypergraph.Empty())
	rg = hypergraph.Connect(hypergraph.BoundaryPort(hypergraph.Source, 0), hypergraph.GenPort(hypergraph.Target, r, 0), rg)
	rg = hypergraph.Connect(hypergraph.BoundaryPort(hypergraph.Source, 1), hypergraph.GenPort(hypergraph.Target, r, 1), rg)
	rg = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, r, 0), hypergraph.BoundaryPort(hypergraph.Target, 0), rg)

	_, err := rewrite.NewRule(l, rg)
	assert.ErrorIs(t, err, rewrite.ErrMismatchedBoundary)
}
