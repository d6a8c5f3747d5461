package converters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/genremap/core"
)

// Document is a renderer-neutral node/edge listing of a graph.
type Document struct {
	Nodes []DocNode `json:"nodes"`
	Edges []DocEdge `json:"edges"`
}

// DocNode is one label with its degree.
type DocNode struct {
	Label  string `json:"label"`
	Degree int    `json:"degree"`
}

// DocEdge is one unordered pair; Source < Target.
type DocEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int64  `json:"weight"`
}

// ToJSON lists g's nodes in label order and its edges in (source, target)
// order.
//
// Errors:
//   - ErrNilGraph if g is nil.
func ToJSON(g core.Reader) (Document, error) {
	if g == nil {
		return Document{}, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return Document{}, ErrNilGraph
	}

	labels := g.Vertices()
	doc := Document{
		Nodes: make([]DocNode, 0, len(labels)),
		Edges: make([]DocEdge, 0, g.EdgeCount()),
	}
	for _, a := range labels {
		nbrs, err := g.NeighborIDs(a)
		if err != nil {
			return Document{}, fmt.Errorf("converters: neighbors of %q: %w", a, err)
		}
		doc.Nodes = append(doc.Nodes, DocNode{Label: a, Degree: len(nbrs)})
		for _, b := range nbrs {
			if a < b {
				doc.Edges = append(doc.Edges, DocEdge{Source: a, Target: b, Weight: g.Weight(a, b)})
			}
		}
	}

	return doc, nil
}

// WriteJSON encodes ToJSON(g) to w, indented.
func WriteJSON(w io.Writer, g core.Reader) error {
	doc, err := ToJSON(g)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("converters: encode json: %w", err)
	}
	return nil
}
