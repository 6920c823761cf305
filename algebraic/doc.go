// Package algebraic provides the two composition operators that make an
// open hypergraph's value type a symmetric monoidal category: Tensor
// (parallel stacking, ⊗) and Sequential (affine splicing, →). Empty is a
// unit for both; for Sequential, Identity at the matching width is a unit
// too.
//
// Both operators assign every hyperedge of their right-hand argument a
// fresh id disjoint from the left-hand argument's, then re-home any
// boundary port that the composite diagram no longer exposes directly.
// Neither operator mutates its arguments; both return a new
// hypergraph.OpenHypergraph built through hypergraph.FromParts.
//
// Left boundary ports are Source-role; right boundary ports are
// Target-role. This is the convention fixed for the whole module -- see
// DESIGN.md for why.
package algebraic
