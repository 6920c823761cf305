// Package matching enumerates embeddings of a pattern open hypergraph
// into a host open hypergraph.
//
// The search is a backtracking walk driven by the pattern's breadth-first
// port order (package layering), followed by the source ports of any
// pattern generator that order does not reach, expressed as an explicit stack of
// resumable search frames rather than a goroutine or native generator --
// this keeps the engine a plain value with no background execution, and
// lets a caller abandon a partially-consumed search for free.
package matching
