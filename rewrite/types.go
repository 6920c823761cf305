package rewrite

import (
	"errors"

	"github.com/katalvlaran/hypergraph/hypergraph"
)

// ErrMismatchedBoundary indicates L and R were given with different
// boundary widths; such a rule is malformed and rejected at construction.
var ErrMismatchedBoundary = errors.New("rewrite: rule sides have mismatched boundary widths")

// Rule is a rewrite rule L ⇒ R. Both sides must share the same boundary
// width; NewRule checks this. L and R are exported fields, so a Rule
// written as a struct literal is not checked.
type Rule struct {
	L, R *hypergraph.OpenHypergraph
}

// NewRule validates that l and r share a boundary width and returns the
// rule pairing them.
func NewRule(l, r *hypergraph.OpenHypergraph) (Rule, error) {
	li, lo := hypergraph.Size(l)
	ri, ro := hypergraph.Size(r)
	if li != ri || lo != ro {
		return Rule{}, ErrMismatchedBoundary
	}
	return Rule{L: l, R: r}, nil
}
