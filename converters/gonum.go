package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/genremap/core"
)

// ErrNilGraph is returned when a nil graph is converted.
var ErrNilGraph = errors.New("converters: graph is nil")

// Node is a gonum node carrying a co-occurrence label.
type Node struct {
	NodeID int64
	Label  string
	// Display is the text renderers show; empty means Label.
	Display string
}

// ID implements graph.Node.
func (n Node) ID() int64 { return n.NodeID }

// DOTID implements dot.Node so DOT output names nodes by label.
func (n Node) DOTID() string { return n.Label }

// Attributes implements encoding.Attributer.
func (n Node) Attributes() []encoding.Attribute {
	if n.Display == "" || n.Display == n.Label {
		return nil
	}
	return []encoding.Attribute{{Key: "label", Value: n.Display}}
}

// Edge is a weighted gonum edge between two labels.
type Edge struct {
	F, T Node
	W    int64
	// PenWidth is the rendered stroke width; 0 omits the attribute.
	PenWidth float64
}

// From implements graph.Edge.
func (e Edge) From() graph.Node { return e.F }

// To implements graph.Edge.
func (e Edge) To() graph.Node { return e.T }

// ReversedEdge implements graph.Edge.
func (e Edge) ReversedEdge() graph.Edge {
	e.F, e.T = e.T, e.F
	return e
}

// Weight implements graph.WeightedEdge.
func (e Edge) Weight() float64 { return float64(e.W) }

// Attributes implements encoding.Attributer.
func (e Edge) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "weight", Value: fmt.Sprintf("%d", e.W)}}
	if e.PenWidth > 0 {
		attrs = append(attrs, encoding.Attribute{Key: "penwidth", Value: fmt.Sprintf("%.2f", e.PenWidth)})
	}
	return attrs
}

// ToGonum copies g into a gonum weighted undirected graph. The returned map
// resolves node IDs back to labels. Absent pairs weigh 0.
//
// Errors:
//   - ErrNilGraph if g is nil.
//
// Complexity: O(V log V + E).
func ToGonum(g core.Reader) (*simple.WeightedUndirectedGraph, map[int64]string, error) {
	return toGonum(g, dotConfig{})
}

func toGonum(g core.Reader, cfg dotConfig) (*simple.WeightedUndirectedGraph, map[int64]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return nil, nil, ErrNilGraph
	}

	labels := g.Vertices()
	out := simple.NewWeightedUndirectedGraph(0, 0)
	ids := make(map[int64]string, len(labels))
	nodes := make(map[string]Node, len(labels))
	for i, l := range labels {
		n := Node{NodeID: int64(i), Label: l, Display: cfg.display(l)}
		out.AddNode(n)
		nodes[l] = n
		ids[n.NodeID] = l
	}

	var maxW int64
	if cfg.penWidth {
		maxW = maxWeight(g, labels)
	}
	for _, a := range labels {
		nbrs, err := g.NeighborIDs(a)
		if err != nil {
			return nil, nil, fmt.Errorf("converters: neighbors of %q: %w", a, err)
		}
		for _, b := range nbrs {
			if a >= b { // each unordered pair once
				continue
			}
			e := Edge{F: nodes[a], T: nodes[b], W: g.Weight(a, b)}
			if cfg.penWidth && maxW > 0 {
				e.PenWidth = 1 + 5*float64(e.W)/float64(maxW)
			}
			out.SetWeightedEdge(e)
		}
	}

	return out, ids, nil
}

func maxWeight(g core.Reader, labels []string) int64 {
	var maxW int64
	for _, a := range labels {
		nbrs, err := g.Neighbors(a)
		if err != nil {
			continue
		}
		for _, w := range nbrs {
			if w > maxW {
				maxW = w
			}
		}
	}
	return maxW
}
