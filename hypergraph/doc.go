// Package hypergraph defines the central OpenHypergraph type and its
// port/wire model: the data structure string diagrams of symmetric
// monoidal categories are represented as.
//
// An OpenHypergraph is a set of generators (hyperedges, each carrying a
// Signature giving its input/output arity), a bijective wiring between
// Source ports (outputs of generators, or the diagram's own left
// boundary) and Target ports (inputs of generators, or the diagram's own
// right boundary), and a monotonically increasing next-id counter.
//
// Boundary convention: a Port whose owner is Boundary and whose role is
// Source sits on the diagram's LEFT boundary (it behaves like a
// generator's output, feeding a wire into the diagram); a Port whose
// owner is Boundary and whose role is Target sits on the diagram's RIGHT
// boundary (it behaves like a generator's input, receiving a wire out of
// the diagram). This reading is forced by the worked examples in the
// distillation this package implements (a (1,1) generator f is wired as
// `Boundary/Source 0 -> f's Target 0` and `f's Source 0 -> Boundary/Target
// 0`) and by the layout invariant that wires flow strictly left-to-right
// through increasing columns, with the left boundary at the smallest
// column and the right boundary at the largest. See DESIGN.md for the
// full resolution of this ambiguity.
//
// All operations are pure: every mutator takes an *OpenHypergraph and
// returns a new one, never modifying its receiver. There is no internal
// locking because the core is single-threaded and synchronous by design
// (no operation suspends, no value is shared across a mutation boundary).
//
// Invariants maintained by every exported constructor:
//
//	I1 Monogamy        - connections is a partial bijection.
//	I2 Port validity   - every generator-owned port references a live edge
//	                      and an in-range index for that edge's signature.
//	I3 Dense boundaries - boundary indices in use form a gapless prefix.
//	I4 Id monotonicity - nextHyperEdgeId > every id in signatures.
//
// (I5, the acyclic layering requirement, is enforced by the layout
// package, not here -- it only makes sense once columns are assigned.)
package hypergraph
