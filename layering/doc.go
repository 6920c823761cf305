// Package layering computes two derived views of an open hypergraph's
// wiring: a breadth-first traversal of its source ports, and an integer
// column assignment per hyperedge suitable for left-to-right layout.
//
// Neither view mutates or is stored on the hypergraph itself; both are
// pure functions of a snapshot.
package layering
