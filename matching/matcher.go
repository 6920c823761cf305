package matching

import (
	"github.com/katalvlaran/hypergraph/equivalence"
	"github.com/katalvlaran/hypergraph/hypergraph"
	"github.com/katalvlaran/hypergraph/layering"
)

// frame is one resumable level of the backtracking search: the pattern
// source port being decided, the state/usage sets as they stood on entry
// to this level, and the not-yet-exhausted candidate list. srcImages and
// tgtImages canonicalize the boundary-image bijection for each role via
// equivalence.Classes (see boundaryImages in commit.go).
type frame struct {
	level      int
	state      MatchState
	usedEdges  map[hypergraph.HyperEdgeId]bool
	srcImages  *boundaryImages
	tgtImages  *boundaryImages
	candidates []hypergraph.Port
	candIdx    int
}

// Matcher enumerates embeddings of pattern into host one at a time.
// Call Next until it reports false. A Matcher is single-use and holds no
// goroutines or channels; abandoning it mid-search simply lets it be
// garbage collected.
type Matcher struct {
	pattern, host *hypergraph.OpenHypergraph
	order         []hypergraph.Port
	stack         []*frame
	emittedEmpty  bool
}

// New builds a Matcher searching for pattern inside host.
func New(pattern, host *hypergraph.OpenHypergraph) *Matcher {
	order := layering.BFSSourcePorts(pattern)
	// BFSSourcePorts omits generators the left boundary never reaches;
	// their source ports follow, one contiguous block per edge in
	// ascending id order, so every pattern source port gets decided.
	inOrder := make(map[hypergraph.Port]bool, len(order))
	for _, p := range order {
		inOrder[p] = true
	}
	for _, e := range pattern.EdgeIds() {
		sig, _ := pattern.SignatureOf(e)
		for i := 0; i < sig.Outputs(); i++ {
			if p := hypergraph.GenPort(hypergraph.Source, e, i); !inOrder[p] {
				order = append(order, p)
			}
		}
	}
	m := &Matcher{pattern: pattern, host: host, order: order}
	if len(order) == 0 {
		return m
	}
	root := &frame{
		level:     0,
		state:     newMatchState(),
		usedEdges: make(map[hypergraph.HyperEdgeId]bool),
		srcImages: equivalence.NewClasses[hypergraph.Port, int](),
		tgtImages: equivalence.NewClasses[hypergraph.Port, int](),
	}
	root.candidates = candidatesFor(order[0], pattern, host, root.state, root.usedEdges, root.srcImages)
	m.stack = []*frame{root}
	return m
}

// Next produces the next MatchState, or (zero, false) once the search is
// exhausted. No two MatchStates it returns are equal.
func (m *Matcher) Next() (MatchState, bool) {
	if len(m.order) == 0 {
		if m.emittedEmpty {
			return MatchState{}, false
		}
		m.emittedEmpty = true
		return newMatchState(), true
	}

	for len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		if top.candIdx >= len(top.candidates) {
			m.stack = m.stack[:len(m.stack)-1]
			continue
		}
		cand := top.candidates[top.candIdx]
		top.candIdx++

		ps := m.order[top.level]
		st, ue, si, ti, ok := extend(top.state, top.usedEdges, top.srcImages, top.tgtImages, ps, cand, m.pattern, m.host)
		if !ok {
			continue
		}

		next := top.level + 1
		if next == len(m.order) {
			return st, true
		}

		nf := &frame{level: next, state: st, usedEdges: ue, srcImages: si, tgtImages: ti}
		nf.candidates = candidatesFor(m.order[next], m.pattern, m.host, st, ue, si)
		m.stack = append(m.stack, nf)
	}
	return MatchState{}, false
}

// FindAll drains m, returning every MatchState in enumeration order. A
// pattern with no occurrences yields an empty, non-nil slice.
func FindAll(pattern, host *hypergraph.OpenHypergraph) []MatchState {
	m := New(pattern, host)
	out := []MatchState{}
	for {
		st, ok := m.Next()
		if !ok {
			return out
		}
		out = append(out, st)
	}
}
