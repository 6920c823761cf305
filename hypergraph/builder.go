package hypergraph

// FromParts assembles a fresh OpenHypergraph directly from a signature
// table, a wire list, and a next-id counter. It performs no validation:
// callers (the algebraic and rewrite packages) are expected to have
// already established I1-I4 by construction. It exists so that packages
// composing hypergraphs algebraically never need access to this
// package's unexported fields -- Port, PortOwner and Wire are all public,
// so any transformation a caller can express over them can be assembled
// back into an OpenHypergraph through this constructor.
func FromParts(signatures map[HyperEdgeId]Signature, wires []Wire, nextId HyperEdgeId) *OpenHypergraph {
	sigs := make(map[HyperEdgeId]Signature, len(signatures))
	for k, v := range signatures {
		sigs[k] = v
	}
	conn := newPortBimap()
	for _, w := range wires {
		conn = conn.connect(w.Source, w.Target)
	}
	return &OpenHypergraph{conn: conn, signatures: sigs, nextHyperEdgeId: nextId}
}
