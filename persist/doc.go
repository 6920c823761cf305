// Package persist implements the "Persisted layout" design convention: a
// YAML document holding a signature table, a wire list, and a list of
// generator tile placements, sufficient to reconstruct a layout.Layout
// byte-for-byte (edge identifiers included, a stronger guarantee than the
// "modulo renaming" the convention requires).
//
// Signature serialization supports hypergraph.Arity and hypergraph.Labeled
// signatures carrying a string label -- the two concrete Signature types
// this module defines. A custom Signature implementation with richer
// labels needs its own codec; Save/Load report ErrUnsupportedSignature
// rather than silently truncating one.
package persist
