package hypergraph

// Arity is the minimal concrete Signature: just the (inputs, outputs)
// pair spec §3 requires at a minimum. It has no label, so two Aritys are
// equal whenever their shapes match -- useful for untyped diagrams and
// for tests.
type Arity struct {
	In, Out int
}

// Inputs returns the number of Target-role ports.
func (a Arity) Inputs() int { return a.In }

// Outputs returns the number of Source-role ports.
func (a Arity) Outputs() int { return a.Out }

// Equal reports whether other is an Arity of the same shape. A Labeled
// signature never equals an Arity, whatever its shape.
func (a Arity) Equal(other Signature) bool {
	return other != nil && other.Inputs() == a.In && other.Outputs() == a.Out && sameKind(a, other)
}

// Less orders Aritys lexicographically by (Inputs, Outputs).
func (a Arity) Less(other Signature) bool {
	if a.In != other.Inputs() {
		return a.In < other.Inputs()
	}
	return a.Out < other.Outputs()
}

// sameKind guards Equal against comparing an Arity to a Labeled of equal
// shape but a meaningful label: two generators that merely share an
// arity are not the same generator unless they also share a label (or
// both carry none).
func sameKind(a Signature, b Signature) bool {
	_, aLabeled := a.(Labeled)
	_, bLabeled := b.(Labeled)
	return aLabeled == bLabeled
}

// Labeled pairs an Arity with a comparable user label, e.g. a generator
// name. Two Labeled signatures are Equal only when both their shape and
// their label match -- this is the "user-provided equality" spec §3
// alludes to ("Two signatures may be marked 'matchable' by user-provided
// equality").
type Labeled struct {
	Arity
	Label any
}

// Equal reports whether other is a Labeled signature with the same shape
// and an equal label (compared with ==; Label must be a comparable
// dynamic type, or Equal panics, matching Go's own behaviour for ==).
func (l Labeled) Equal(other Signature) bool {
	o, ok := other.(Labeled)
	if !ok {
		return false
	}
	return l.In == o.In && l.Out == o.Out && l.Label == o.Label
}

// Less orders Labeled signatures by shape, then, if both are Labeled with
// string labels, by label. Labels of any other type are not compared:
// neither signature is Less than the other, so the order is not total
// for non-string labels.
func (l Labeled) Less(other Signature) bool {
	if l.In != other.Inputs() {
		return l.In < other.Inputs()
	}
	if l.Out != other.Outputs() {
		return l.Out < other.Outputs()
	}
	o, ok := other.(Labeled)
	if !ok {
		return false
	}
	ls, lok := l.Label.(string)
	os, ook := o.Label.(string)
	if lok && ook {
		return ls < os
	}
	return false
}
