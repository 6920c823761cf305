package hypergraph

import "errors"

// Sentinel errors for hypergraph operations.
var (
	// ErrUnknownEdge indicates an operation referenced a HyperEdgeId that
	// is not present in the hypergraph's signature table.
	ErrUnknownEdge = errors.New("hypergraph: unknown hyperedge id")

	// ErrPortIndexOutOfRange indicates a generator-owned port's index is
	// not within [0, arity) for its role.
	ErrPortIndexOutOfRange = errors.New("hypergraph: port index out of range for signature")

	// ErrWrongRole indicates an operation received a Port with a role
	// that cannot appear in that position (e.g. Connect requires its
	// first argument to be a Source port and its second a Target port).
	ErrWrongRole = errors.New("hypergraph: port has wrong role for this operation")
)

// HyperEdgeId is a strictly ordered, locally-unique identifier for a
// hyperedge within one hypergraph's lifetime. Ids are never reused.
type HyperEdgeId int

// PortRole distinguishes the tail (Source) of a wire from its head
// (Target). The convention is wire-relative, not generator-relative: a
// Source port is wherever a wire begins, a Target port is wherever it
// ends, whether that endpoint belongs to a generator or to the diagram's
// own boundary.
type PortRole int

const (
	// Source ports are the tails of wires: a generator's outputs, or the
	// diagram's left boundary.
	Source PortRole = iota
	// Target ports are the heads of wires: a generator's inputs, or the
	// diagram's right boundary.
	Target
)

// String renders a PortRole for diagnostics.
func (r PortRole) String() string {
	switch r {
	case Source:
		return "Source"
	case Target:
		return "Target"
	default:
		return "PortRole(?)"
	}
}

// PortOwner is either the diagram's own boundary, or a specific
// hyperedge. The zero value is Gen(0); use Boundary() for the boundary.
type PortOwner struct {
	edge       HyperEdgeId
	isBoundary bool
}

// Boundary returns the PortOwner representing the diagram's own outer
// interface (as opposed to a generator).
func Boundary() PortOwner { return PortOwner{isBoundary: true} }

// Gen returns the PortOwner representing hyperedge e.
func Gen(e HyperEdgeId) PortOwner { return PortOwner{edge: e, isBoundary: false} }

// IsBoundary reports whether this owner is the diagram boundary.
func (o PortOwner) IsBoundary() bool { return o.isBoundary }

// Edge returns the owning hyperedge id. Only meaningful when
// !IsBoundary(); returns 0 for the boundary.
func (o PortOwner) Edge() HyperEdgeId { return o.edge }

// String renders a PortOwner for diagnostics.
func (o PortOwner) String() string {
	if o.isBoundary {
		return "Boundary"
	}
	return "Gen(" + itoa(int(o.edge)) + ")"
}

// Port identifies one endpoint a wire may attach to: a role, an owner,
// and a dense non-negative index within that owner/role pair.
type Port struct {
	Role  PortRole
	Owner PortOwner
	Index int
}

// BoundaryPort builds a boundary-owned port. role=Source yields a
// left-boundary port; role=Target yields a right-boundary port.
func BoundaryPort(role PortRole, index int) Port {
	return Port{Role: role, Owner: Boundary(), Index: index}
}

// GenPort builds a generator-owned port.
func GenPort(role PortRole, e HyperEdgeId, index int) Port {
	return Port{Role: role, Owner: Gen(e), Index: index}
}

// String renders a Port for diagnostics, e.g. "Source/Gen(3)/1".
func (p Port) String() string {
	return p.Role.String() + "/" + p.Owner.String() + "/" + itoa(p.Index)
}

// Signature describes a generator's arity: how many Target (input) ports
// and Source (output) ports it exposes. Implementations must be
// comparable with == (so they can key maps and be compared for wire
// correspondence in matching) and must implement a total order via Less,
// per spec §3 ("sig is totally ordered and comparable for equality").
type Signature interface {
	// Inputs is the number of Target-role ports (0..Inputs()-1).
	Inputs() int
	// Outputs is the number of Source-role ports (0..Outputs()-1).
	Outputs() int
	// Equal reports structural/labelled equality with other. Matching
	// requires this, not just arity equality, so that two generators of
	// the same shape but different labels never match each other.
	Equal(other Signature) bool
	// Less imposes the total order spec §3 requires.
	Less(other Signature) bool
}

// Wire is a materialised connection between a Source and a Target port.
type Wire struct {
	Source Port
	Target Port
}

// OpenHypergraph is the immutable, value-typed open hypergraph: a
// bijective wiring between Source and Target ports, a signature table,
// and the next fresh hyperedge id. Every operation in this package
// returns a new OpenHypergraph rather than mutating its receiver.
type OpenHypergraph struct {
	conn            *portBimap
	signatures      map[HyperEdgeId]Signature
	nextHyperEdgeId HyperEdgeId
}

// HypergraphOption configures an OpenHypergraph at construction, the way
// the teacher's GraphOption configures a Graph before its first use.
type HypergraphOption func(g *OpenHypergraph)

// WithStartingEdgeId sets the first id Empty hands out to AddEdge,
// letting a caller reserve a disjoint id range up front -- useful when
// assembling a hypergraph from externally-sourced parts that must not
// collide, without a later renaming pass like algebraic.Tensor's.
func WithStartingEdgeId(id HyperEdgeId) HypergraphOption {
	return func(g *OpenHypergraph) { g.nextHyperEdgeId = id }
}

// itoa avoids pulling in strconv for the handful of single-digit-friendly
// diagnostic strings above; ids are small in practice but this handles
// any int correctly.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
