// Package properties holds generative tests that fuzz the algebraic,
// layout, and matching packages against the quantified invariants the
// rest of the module's deterministic tests only exercise on fixed
// examples.
package properties

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/hypergraph/algebraic"
	"github.com/katalvlaran/hypergraph/grid"
	"github.com/katalvlaran/hypergraph/hypergraph"
	"github.com/katalvlaran/hypergraph/layout"
	"github.com/katalvlaran/hypergraph/matching"
	"pgregory.net/rapid"
)

// straightGenerator builds a single (in, out) generator with every port
// wired straight to the matching boundary index -- the minimal diagram
// of a given size, used as a building block for randomly composed ones.
func straightGenerator(in, out int) *hypergraph.OpenHypergraph {
	g := hypergraph.Empty()
	e, g := hypergraph.AddEdge(hypergraph.Arity{In: in, Out: out}, g)
	for i := 0; i < in; i++ {
		g = hypergraph.Connect(hypergraph.BoundaryPort(hypergraph.Source, i), hypergraph.GenPort(hypergraph.Target, e, i), g)
	}
	for i := 0; i < out; i++ {
		g = hypergraph.Connect(hypergraph.GenPort(hypergraph.Source, e, i), hypergraph.BoundaryPort(hypergraph.Target, i), g)
	}
	return g
}

// randomDiagram builds a random open hypergraph by recursively tensoring
// or sequencing randomly-sized straightGenerators, up to depth levels
// deep.
func randomDiagram(t *rapid.T, depth int) *hypergraph.OpenHypergraph {
	if depth <= 0 || rapid.Bool().Draw(t, "leaf") {
		in := rapid.IntRange(0, 3).Draw(t, "in")
		out := rapid.IntRange(0, 3).Draw(t, "out")
		return straightGenerator(in, out)
	}
	left := randomDiagram(t, depth-1)
	right := randomDiagram(t, depth-1)
	if rapid.Bool().Draw(t, "op") {
		return algebraic.Tensor(left, right)
	}
	return algebraic.Sequential(left, right)
}

func assertMonogamy(t *rapid.T, g *hypergraph.OpenHypergraph) {
	seenSrc := make(map[hypergraph.Port]bool)
	seenTgt := make(map[hypergraph.Port]bool)
	for _, w := range g.Wires() {
		if seenSrc[w.Source] {
			t.Fatalf("source port %v used by more than one wire", w.Source)
		}
		seenSrc[w.Source] = true
		if seenTgt[w.Target] {
			t.Fatalf("target port %v used by more than one wire", w.Target)
		}
		seenTgt[w.Target] = true
	}
}

func assertBoundaryDensity(t *rapid.T, g *hypergraph.OpenHypergraph) {
	in, out := hypergraph.Size(g)
	srcUsed := make(map[int]bool)
	tgtUsed := make(map[int]bool)
	for _, w := range g.Wires() {
		if w.Source.Owner.IsBoundary() {
			srcUsed[w.Source.Index] = true
		}
		if w.Target.Owner.IsBoundary() {
			tgtUsed[w.Target.Index] = true
		}
	}
	for i := 0; i < in; i++ {
		if !srcUsed[i] {
			t.Fatalf("left boundary index %d missing from a (0, %d) boundary", i, in)
		}
	}
	for i := 0; i < out; i++ {
		if !tgtUsed[i] {
			t.Fatalf("right boundary index %d missing from a (0, %d) boundary", i, out)
		}
	}
}

// TestProperty_MonogamyAndBoundaryDensity checks P1 and P2 across
// randomly composed diagrams.
func TestProperty_MonogamyAndBoundaryDensity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		depth := rapid.IntRange(0, 3).Draw(t, "depth")
		g := randomDiagram(t, depth)
		assertMonogamy(t, g)
		assertBoundaryDensity(t, g)
	})
}

func sameStructure(a, b *hypergraph.OpenHypergraph) bool {
	return reflect.DeepEqual(a.Wires(), b.Wires()) &&
		reflect.DeepEqual(a.Signatures(), b.Signatures()) &&
		a.NextHyperEdgeId() == b.NextHyperEdgeId()
}

// TestProperty_TensorAssociativity checks P3. Because Tensor's edge and
// boundary shifts are pure running totals, both groupings of three
// straightGenerators land on exactly the same edge ids and boundary
// indices -- not merely isomorphic structures -- so this asserts literal
// equality rather than a separate isomorphism check.
func TestProperty_TensorAssociativity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := straightGenerator(rapid.IntRange(0, 2).Draw(t, "ai"), rapid.IntRange(0, 2).Draw(t, "ao"))
		b := straightGenerator(rapid.IntRange(0, 2).Draw(t, "bi"), rapid.IntRange(0, 2).Draw(t, "bo"))
		c := straightGenerator(rapid.IntRange(0, 2).Draw(t, "ci"), rapid.IntRange(0, 2).Draw(t, "co"))

		left := algebraic.Tensor(algebraic.Tensor(a, b), c)
		right := algebraic.Tensor(a, algebraic.Tensor(b, c))

		if !sameStructure(left, right) {
			t.Fatalf("(a⊗b)⊗c and a⊗(b⊗c) disagree:\nleft  wires=%v sigs=%v next=%d\nright wires=%v sigs=%v next=%d",
				left.Wires(), left.Signatures(), left.NextHyperEdgeId(),
				right.Wires(), right.Signatures(), right.NextHyperEdgeId())
		}
	})
}

// TestProperty_TensorUnit checks P4: empty ⊗ g and g ⊗ empty both equal
// g exactly (empty contributes no edges and a zero shift on both sides).
func TestProperty_TensorUnit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := straightGenerator(rapid.IntRange(0, 3).Draw(t, "in"), rapid.IntRange(0, 3).Draw(t, "out"))

		left := algebraic.Tensor(hypergraph.Empty(), g)
		right := algebraic.Tensor(g, hypergraph.Empty())

		if !sameStructure(g, left) {
			t.Fatalf("empty ⊗ g != g")
		}
		if !sameStructure(g, right) {
			t.Fatalf("g ⊗ empty != g")
		}
	})
}

// TestProperty_SequentialUnit checks P5: identity_W -> g and g ->
// identity_W both equal g exactly when W matches g's corresponding side,
// since identity contributes no edges and the affine offset is zero in
// both directions for a width-matched identity.
func TestProperty_SequentialUnit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.IntRange(0, 3).Draw(t, "in")
		out := rapid.IntRange(0, 3).Draw(t, "out")
		g := straightGenerator(in, out)

		idIn := identityWidth(in)
		left := algebraic.Sequential(idIn, g)
		if !sameStructure(g, left) {
			t.Fatalf("identity_%d -> g != g (in=%d out=%d)", in, in, out)
		}

		idOut := identityWidth(out)
		right := algebraic.Sequential(g, idOut)
		if !sameStructure(g, right) {
			t.Fatalf("g -> identity_%d != g (in=%d out=%d)", out, in, out)
		}
	})
}

// identityWidth tensors w copies of hypergraph.Identity() together,
// producing the width-w identity diagram (no generators, a straight wire
// per boundary index).
func identityWidth(w int) *hypergraph.OpenHypergraph {
	g := hypergraph.Empty()
	for i := 0; i < w; i++ {
		g = algebraic.Tensor(g, hypergraph.Identity())
	}
	return g
}

// TestProperty_MatchSoundness checks part of P7: every MatchState FindAll
// emits for a randomly embedded pattern satisfies M1 and M4 (M3 follows
// from imagePort keeping each port's index). M2 and M5 are not checked
// here; the matcher's commitPort enforces them.
func TestProperty_MatchSoundness(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.IntRange(0, 2).Draw(t, "in")
		out := rapid.IntRange(0, 2).Draw(t, "out")
		pattern := straightGenerator(in, out)

		copies := rapid.IntRange(1, 3).Draw(t, "copies")
		host := hypergraph.Empty()
		for i := 0; i < copies; i++ {
			host = algebraic.Tensor(host, straightGenerator(in, out))
		}

		for _, m := range matching.FindAll(pattern, host) {
			for pe, he := range m.Edges {
				psig, ok := pattern.SignatureOf(pe)
				if !ok {
					t.Fatalf("match references unknown pattern edge %v", pe)
				}
				hsig, ok := host.SignatureOf(he)
				if !ok {
					t.Fatalf("match references unknown host edge %v", he)
				}
				if !psig.Equal(hsig) {
					t.Fatalf("M1 violated: pattern edge %v (%v) mapped to host edge %v (%v)", pe, psig, he, hsig)
				}
			}
			for _, w := range pattern.Wires() {
				hs, hok := imagePort(w.Source, m)
				ht, tok := imagePort(w.Target, m)
				if !hok || !tok {
					t.Fatalf("M4 violated: pattern wire %v has no fully-imaged endpoint pair", w)
				}
				if got, ok := hypergraph.TargetOf(hs, host); !ok || got != ht {
					t.Fatalf("M4 violated: host has no wire %v -> %v", hs, ht)
				}
			}
		}
	})
}

// imagePort maps a pattern port to its host image under m, covering both
// generator-owned and boundary-owned ports.
func imagePort(p hypergraph.Port, m matching.MatchState) (hypergraph.Port, bool) {
	if !p.Owner.IsBoundary() {
		he, ok := m.Edges[p.Owner.Edge()]
		if !ok {
			return hypergraph.Port{}, false
		}
		return hypergraph.GenPort(p.Role, he, p.Index), true
	}
	if p.Role == hypergraph.Source {
		hp, ok := m.BoundarySources[p.Index]
		return hp, ok
	}
	hp, ok := m.BoundaryTargets[p.Index]
	return hp, ok
}

// TestProperty_PseudonodeCount checks P10: the number of pseudonodes on
// every wire equals max(0, x(t) - x(s) - 1) once the layout is built.
func TestProperty_PseudonodeCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xa := rapid.IntRange(0, 4).Draw(t, "xa")
		xb := rapid.IntRange(0, 4).Draw(t, "xb")

		l := layout.Empty()
		var a, b hypergraph.HyperEdgeId
		a, l = l.PlaceGenerator(hypergraph.Arity{In: 1, Out: 1}, grid.V2{X: xa, Y: 0})
		b, l = l.PlaceGenerator(hypergraph.Arity{In: 1, Out: 1}, grid.V2{X: xb, Y: 0})
		l = l.ConnectPorts(hypergraph.GenPort(hypergraph.Source, a, 0), hypergraph.GenPort(hypergraph.Target, b, 0))

		positions := l.Positions()
		sp, spOK := l.PortPosition(hypergraph.GenPort(hypergraph.Source, a, 0))
		tp, tpOK := l.PortPosition(hypergraph.GenPort(hypergraph.Target, b, 0))
		if !spOK || !tpOK {
			t.Fatalf("expected both ports to be placed")
		}

		expected := tp.X - sp.X - 1
		if expected < 0 {
			expected = 0
		}

		count := 0
		for tile := range positions {
			if pn, ok := tile.(layout.PseudoNodeTile); ok {
				if pn.S == hypergraph.GenPort(hypergraph.Source, a, 0) && pn.T == hypergraph.GenPort(hypergraph.Target, b, 0) {
					count++
				}
			}
		}
		if count != expected {
			t.Fatalf("xa=%d xb=%d: expected %d pseudonodes, got %d", xa, xb, expected, count)
		}
	})
}
