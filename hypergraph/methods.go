package hypergraph

import "sort"

// Empty returns the zero-object open hypergraph: no edges, no wires,
// a (0,0) boundary. Options apply in order after the zero object is
// built, e.g. WithStartingEdgeId to reserve an id range.
func Empty(opts ...HypergraphOption) *OpenHypergraph {
	g := &OpenHypergraph{
		conn:            newPortBimap(),
		signatures:      make(map[HyperEdgeId]Signature),
		nextHyperEdgeId: 0,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Identity returns the open hypergraph consisting of a single wire from
// the left boundary's port 0 straight through to the right boundary's
// port 0.
func Identity() *OpenHypergraph {
	g := Empty()
	return Connect(BoundaryPort(Source, 0), BoundaryPort(Target, 0), g)
}

// checkPort panics if p is a generator-owned port whose edge is unknown
// or whose index is out of range for its role. This is a precondition
// violation per spec §7 ("passing a port whose owner Gen(e) is absent
// from signatures is a precondition violation ... implementations may
// surface this as a hard failure") -- the caller, not the hypergraph, is
// wrong, so this module treats it the way the teacher treats programmer
// errors in private helpers: it panics rather than returning a sentinel.
func checkPort(p Port, g *OpenHypergraph) {
	if p.Owner.IsBoundary() {
		if p.Index < 0 {
			panic(ErrPortIndexOutOfRange)
		}
		return
	}
	sig, ok := g.signatures[p.Owner.Edge()]
	if !ok {
		panic(ErrUnknownEdge)
	}
	var n int
	if p.Role == Target {
		n = sig.Inputs()
	} else {
		n = sig.Outputs()
	}
	if p.Index < 0 || p.Index >= n {
		panic(ErrPortIndexOutOfRange)
	}
}

// clone makes a shallow, independent copy of g suitable for a mutator to
// build its result from: a fresh signatures map (entries shared, since
// Signature values are themselves treated as immutable) and the same
// portBimap pointer (portBimap mutators are themselves copy-on-write, so
// sharing the pointer here is safe until the next mutation touches it).
func (g *OpenHypergraph) clone() *OpenHypergraph {
	sigs := make(map[HyperEdgeId]Signature, len(g.signatures))
	for k, v := range g.signatures {
		sigs[k] = v
	}
	return &OpenHypergraph{
		conn:            g.conn,
		signatures:      sigs,
		nextHyperEdgeId: g.nextHyperEdgeId,
	}
}

// AddEdge allocates a fresh HyperEdgeId for sig, returning it along with
// a new hypergraph in which that id is registered (unconnected -- no
// wires touch its ports yet).
func AddEdge(sig Signature, g *OpenHypergraph) (HyperEdgeId, *OpenHypergraph) {
	out := g.clone()
	e := out.nextHyperEdgeId
	out.signatures[e] = sig
	out.nextHyperEdgeId++
	return e, out
}

// Connect inserts the wire s->t into g, returning a new hypergraph. s
// must be a Source-role port and t a Target-role port; any prior wire
// through s or t is displaced. Connecting a port whose owner is an
// unknown or out-of-range hyperedge is a precondition violation (panics).
func Connect(s, t Port, g *OpenHypergraph) *OpenHypergraph {
	if s.Role != Source {
		panic(ErrWrongRole)
	}
	if t.Role != Target {
		panic(ErrWrongRole)
	}
	checkPort(s, g)
	checkPort(t, g)

	out := g.clone()
	out.conn = g.conn.connect(s, t)
	return out
}

// DisconnectSource removes the wire (if any) whose tail is s.
func DisconnectSource(s Port, g *OpenHypergraph) *OpenHypergraph {
	out := g.clone()
	out.conn = g.conn.disconnectSource(s)
	return out
}

// DisconnectTarget removes the wire (if any) whose head is t.
func DisconnectTarget(t Port, g *OpenHypergraph) *OpenHypergraph {
	out := g.clone()
	out.conn = g.conn.disconnectTarget(t)
	return out
}

// SourceOf returns the Source port wired to t, if any.
func SourceOf(t Port, g *OpenHypergraph) (Port, bool) {
	return g.conn.sourceOf(t)
}

// TargetOf returns the Target port wired to s, if any.
func TargetOf(s Port, g *OpenHypergraph) (Port, bool) {
	return g.conn.targetOf(s)
}

// Signatures exposes the id -> signature table as a read-only snapshot.
func (g *OpenHypergraph) Signatures() map[HyperEdgeId]Signature {
	out := make(map[HyperEdgeId]Signature, len(g.signatures))
	for k, v := range g.signatures {
		out[k] = v
	}
	return out
}

// SignatureOf returns the signature of e, if e is a known hyperedge.
func (g *OpenHypergraph) SignatureOf(e HyperEdgeId) (Signature, bool) {
	s, ok := g.signatures[e]
	return s, ok
}

// NextHyperEdgeId returns the smallest unused hyperedge id.
func (g *OpenHypergraph) NextHyperEdgeId() HyperEdgeId { return g.nextHyperEdgeId }

// EdgeIds returns every known hyperedge id, ascending.
func (g *OpenHypergraph) EdgeIds() []HyperEdgeId {
	out := make([]HyperEdgeId, 0, len(g.signatures))
	for e := range g.signatures {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Wires returns every wire in g, in ascending (Source.Owner, Source.Index)
// order for determinism: boundary sources first (index ascending), then
// generator sources grouped by edge id.
func (g *OpenHypergraph) Wires() []Wire {
	ws := g.conn.wires()
	sort.Slice(ws, func(i, j int) bool { return lessPort(ws[i].Source, ws[j].Source) })
	return ws
}

func lessPort(a, b Port) bool {
	if a.Owner.IsBoundary() != b.Owner.IsBoundary() {
		return a.Owner.IsBoundary() // boundary ports sort first
	}
	if !a.Owner.IsBoundary() && a.Owner.Edge() != b.Owner.Edge() {
		return a.Owner.Edge() < b.Owner.Edge()
	}
	return a.Index < b.Index
}

// DeleteEdge removes e's signature and every wire touching any of its
// ports. Deleting an unknown edge is a no-op, returning g unchanged
// (spec §4.1: "deleteEdge on an unknown e is a no-op").
func DeleteEdge(e HyperEdgeId, g *OpenHypergraph) *OpenHypergraph {
	sig, ok := g.signatures[e]
	if !ok {
		return g
	}
	out := g.clone()
	delete(out.signatures, e)
	conn := g.conn
	for i := 0; i < sig.Inputs(); i++ {
		conn = conn.disconnectTarget(GenPort(Target, e, i))
	}
	for i := 0; i < sig.Outputs(); i++ {
		conn = conn.disconnectSource(GenPort(Source, e, i))
	}
	out.conn = conn
	return out
}

// Size returns (inWidth, outWidth): the width of the left boundary (the
// highest-indexed Source-role boundary port in use, plus one) and of the
// right boundary (the highest-indexed Target-role boundary port in use,
// plus one). Returns (0,0) if no boundary ports are in use.
func Size(g *OpenHypergraph) (inWidth, outWidth int) {
	for s := range g.conn.fwd {
		if s.Owner.IsBoundary() && s.Index+1 > inWidth {
			inWidth = s.Index + 1
		}
	}
	for t := range g.conn.rev {
		if t.Owner.IsBoundary() && t.Index+1 > outWidth {
			outWidth = t.Index + 1
		}
	}
	return inWidth, outWidth
}

// InputWires returns, for each Target port index of e (0..Inputs()-1),
// the wire terminating there, or nil if that port is unconnected.
func InputWires(e HyperEdgeId, g *OpenHypergraph) []*Wire {
	sig, ok := g.signatures[e]
	if !ok {
		return nil
	}
	out := make([]*Wire, sig.Inputs())
	for i := 0; i < sig.Inputs(); i++ {
		t := GenPort(Target, e, i)
		if s, ok := g.conn.sourceOf(t); ok {
			out[i] = &Wire{Source: s, Target: t}
		}
	}
	return out
}

// OutputWires returns, for each Source port index of e (0..Outputs()-1),
// the wire originating there, or nil if that port is unconnected.
func OutputWires(e HyperEdgeId, g *OpenHypergraph) []*Wire {
	sig, ok := g.signatures[e]
	if !ok {
		return nil
	}
	out := make([]*Wire, sig.Outputs())
	for i := 0; i < sig.Outputs(); i++ {
		s := GenPort(Source, e, i)
		if t, ok := g.conn.targetOf(s); ok {
			out[i] = &Wire{Source: s, Target: t}
		}
	}
	return out
}
