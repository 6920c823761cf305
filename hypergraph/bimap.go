package hypergraph

// portBimap is the bijective mapping from Source ports to Target ports
// that backs OpenHypergraph.connections. It is implemented as two mirror
// maps kept mutually consistent, giving O(1) (in practice; O(log n) is
// the contract spec §3/§9 asks for and a balanced tree would also
// satisfy) forward and reverse lookup.
//
// portBimap is immutable from the outside: every mutating method returns
// a new portBimap, sharing nothing with the receiver's maps so that a
// previously-handed-out OpenHypergraph is never retroactively altered.
type portBimap struct {
	fwd map[Port]Port // Source -> Target
	rev map[Port]Port // Target -> Source
}

// newPortBimap returns an empty portBimap.
func newPortBimap() *portBimap {
	return &portBimap{fwd: make(map[Port]Port), rev: make(map[Port]Port)}
}

// clone returns a deep-enough copy: new maps with the same entries, so
// mutating the copy never affects the original.
func (b *portBimap) clone() *portBimap {
	out := &portBimap{
		fwd: make(map[Port]Port, len(b.fwd)),
		rev: make(map[Port]Port, len(b.rev)),
	}
	for k, v := range b.fwd {
		out.fwd[k] = v
	}
	for k, v := range b.rev {
		out.rev[k] = v
	}
	return out
}

// connect returns a new portBimap with the wire s->t inserted. Any prior
// wire through s or through t is removed first, preserving monogamy by
// construction (spec §4.1: "If s already had a target, that old wire is
// removed; likewise if t already had a source.").
func (b *portBimap) connect(s, t Port) *portBimap {
	out := b.clone()
	if oldT, ok := out.fwd[s]; ok {
		delete(out.rev, oldT)
	}
	if oldS, ok := out.rev[t]; ok {
		delete(out.fwd, oldS)
	}
	out.fwd[s] = t
	out.rev[t] = s
	return out
}

// disconnectSource returns a new portBimap with the wire (if any) whose
// tail is s removed.
func (b *portBimap) disconnectSource(s Port) *portBimap {
	t, ok := b.fwd[s]
	if !ok {
		return b
	}
	out := b.clone()
	delete(out.fwd, s)
	delete(out.rev, t)
	return out
}

// disconnectTarget returns a new portBimap with the wire (if any) whose
// head is t removed.
func (b *portBimap) disconnectTarget(t Port) *portBimap {
	s, ok := b.rev[t]
	if !ok {
		return b
	}
	out := b.clone()
	delete(out.fwd, s)
	delete(out.rev, t)
	return out
}

// targetOf returns the Target port wired to s, if any.
func (b *portBimap) targetOf(s Port) (Port, bool) {
	t, ok := b.fwd[s]
	return t, ok
}

// sourceOf returns the Source port wired to t, if any.
func (b *portBimap) sourceOf(t Port) (Port, bool) {
	s, ok := b.rev[t]
	return s, ok
}

// len reports the number of wires.
func (b *portBimap) len() int { return len(b.fwd) }

// wires returns every wire, in no particular order; callers that need a
// deterministic order must sort.
func (b *portBimap) wires() []Wire {
	out := make([]Wire, 0, len(b.fwd))
	for s, t := range b.fwd {
		out = append(out, Wire{Source: s, Target: t})
	}
	return out
}
