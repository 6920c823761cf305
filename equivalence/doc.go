// Package equivalence provides a disjoint-set-like map from elements to
// class tags, kept mutually consistent with the reverse map from a class
// tag to the set of elements it contains.
//
// It backs canonicalisation in the matching package: grouping
// boundary ports, or host ports standing in for the same pattern port, into
// a single class lets callers ask "are these the same thing" in O(1)
// instead of re-deriving it from the hypergraph each time.
//
// Classes:
//
//	NewClasses() *Classes  // empty
//	(c *Classes) Add(elem, class T)
//	(c *Classes) ClassOf(elem T) (class T, ok bool)
//	(c *Classes) Members(class T) []T
//	(c *Classes) Remove(elem T)
//	(c *Classes) Merge(a, b T) (survivor T, ok bool)
//
// Removing the last element of a class deletes the class entry entirely,
// per spec: "Removing an element may delete a class if it becomes empty."
package equivalence
