package persist

import "errors"

// Sentinel errors for document conversion.
var (
	// ErrUnsupportedSignature indicates a hyperedge carries a Signature
	// this codec cannot serialize (anything but Arity, or Labeled with a
	// string label).
	ErrUnsupportedSignature = errors.New("persist: signature type not supported for serialization")

	// ErrMalformedDocument indicates a Document failed to parse as YAML,
	// or referenced a port role this codec doesn't recognise.
	ErrMalformedDocument = errors.New("persist: malformed document")
)

// Document is the YAML-serializable form of a layout.Layout: a signature
// table (one SignatureEntry per edge, doubling as the edge list), a wire
// list, a tile-placement list, and the hypergraph's id counter.
type Document struct {
	NextHyperEdgeId int              `yaml:"nextHyperEdgeId"`
	Signatures      []SignatureEntry `yaml:"signatures"`
	Wires           []WireEntry      `yaml:"wires"`
	Tiles           []TileEntry      `yaml:"tiles"`
}

// SignatureEntry records one hyperedge's id and signature.
type SignatureEntry struct {
	Edge    int    `yaml:"edge"`
	In      int    `yaml:"in"`
	Out     int    `yaml:"out"`
	Labeled bool   `yaml:"labeled,omitempty"`
	Label   string `yaml:"label,omitempty"`
}

// PortEntry is the serializable form of a hypergraph.Port.
type PortEntry struct {
	Role     string `yaml:"role"` // "source" or "target"
	Boundary bool   `yaml:"boundary,omitempty"`
	Edge     int    `yaml:"edge,omitempty"`
	Index    int    `yaml:"index"`
}

// WireEntry is the serializable form of a hypergraph.Wire.
type WireEntry struct {
	Source PortEntry `yaml:"source"`
	Target PortEntry `yaml:"target"`
}

// TileEntry records one generator's tile placement. Pseudonode tiles are
// never persisted: they are recomputed from the wires on load.
type TileEntry struct {
	Edge   int `yaml:"edge"`
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Height int `yaml:"height"`
}
