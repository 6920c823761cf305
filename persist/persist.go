package persist

import (
	"fmt"

	"github.com/katalvlaran/hypergraph/grid"
	"github.com/katalvlaran/hypergraph/hypergraph"
	"github.com/katalvlaran/hypergraph/layout"
	"gopkg.in/yaml.v3"
)

// Save renders l as a YAML document.
func Save(l *layout.Layout) ([]byte, error) {
	doc, err := ToDocument(l)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// Load parses a YAML document into a Layout.
func Load(data []byte) (*layout.Layout, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return FromDocument(&doc)
}

// ToDocument converts l to its serializable Document form.
func ToDocument(l *layout.Layout) (*Document, error) {
	g := l.Hypergraph()
	doc := &Document{NextHyperEdgeId: int(g.NextHyperEdgeId())}

	for _, e := range g.EdgeIds() {
		sig, _ := g.SignatureOf(e)
		entry, err := sigToEntry(e, sig)
		if err != nil {
			return nil, err
		}
		doc.Signatures = append(doc.Signatures, entry)
	}

	for _, w := range g.Wires() {
		doc.Wires = append(doc.Wires, WireEntry{
			Source: portToEntry(w.Source),
			Target: portToEntry(w.Target),
		})
	}

	for _, p := range l.GeneratorPlacements() {
		doc.Tiles = append(doc.Tiles, TileEntry{
			Edge:   int(p.Edge),
			X:      p.Pos.X,
			Y:      p.Pos.Y,
			Height: p.Height,
		})
	}

	return doc, nil
}

// FromDocument reconstructs a Layout from doc.
func FromDocument(doc *Document) (*layout.Layout, error) {
	sigs := make(map[hypergraph.HyperEdgeId]hypergraph.Signature, len(doc.Signatures))
	for _, entry := range doc.Signatures {
		sig, err := entryToSig(entry)
		if err != nil {
			return nil, err
		}
		sigs[hypergraph.HyperEdgeId(entry.Edge)] = sig
	}

	wires := make([]hypergraph.Wire, 0, len(doc.Wires))
	for _, we := range doc.Wires {
		s, err := entryToPort(we.Source)
		if err != nil {
			return nil, err
		}
		t, err := entryToPort(we.Target)
		if err != nil {
			return nil, err
		}
		wires = append(wires, hypergraph.Wire{Source: s, Target: t})
	}

	g := hypergraph.FromParts(sigs, wires, hypergraph.HyperEdgeId(doc.NextHyperEdgeId))

	placements := make([]layout.GeneratorPlacement, 0, len(doc.Tiles))
	for _, te := range doc.Tiles {
		placements = append(placements, layout.GeneratorPlacement{
			Edge:   hypergraph.HyperEdgeId(te.Edge),
			Pos:    grid.V2{X: te.X, Y: te.Y},
			Height: te.Height,
		})
	}

	return layout.FromPlacements(g, placements), nil
}

func portToEntry(p hypergraph.Port) PortEntry {
	e := PortEntry{Index: p.Index, Boundary: p.Owner.IsBoundary()}
	if p.Role == hypergraph.Source {
		e.Role = "source"
	} else {
		e.Role = "target"
	}
	if !e.Boundary {
		e.Edge = int(p.Owner.Edge())
	}
	return e
}

func entryToPort(e PortEntry) (hypergraph.Port, error) {
	var role hypergraph.PortRole
	switch e.Role {
	case "source":
		role = hypergraph.Source
	case "target":
		role = hypergraph.Target
	default:
		return hypergraph.Port{}, fmt.Errorf("%w: unknown port role %q", ErrMalformedDocument, e.Role)
	}
	if e.Boundary {
		return hypergraph.BoundaryPort(role, e.Index), nil
	}
	return hypergraph.GenPort(role, hypergraph.HyperEdgeId(e.Edge), e.Index), nil
}

func sigToEntry(e hypergraph.HyperEdgeId, sig hypergraph.Signature) (SignatureEntry, error) {
	entry := SignatureEntry{Edge: int(e), In: sig.Inputs(), Out: sig.Outputs()}
	switch s := sig.(type) {
	case hypergraph.Labeled:
		label, ok := s.Label.(string)
		if !ok {
			return SignatureEntry{}, fmt.Errorf("%w: edge %d has a labeled signature with non-string label %T", ErrUnsupportedSignature, e, s.Label)
		}
		entry.Labeled = true
		entry.Label = label
	case hypergraph.Arity:
		// arity alone is already fully captured above.
	default:
		return SignatureEntry{}, fmt.Errorf("%w: edge %d has signature type %T", ErrUnsupportedSignature, e, sig)
	}
	return entry, nil
}

func entryToSig(entry SignatureEntry) (hypergraph.Signature, error) {
	arity := hypergraph.Arity{In: entry.In, Out: entry.Out}
	if entry.Labeled {
		return hypergraph.Labeled{Arity: arity, Label: entry.Label}, nil
	}
	return arity, nil
}
