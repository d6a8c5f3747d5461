// Package converters hands a co-occurrence core.Graph over to renderers and
// other graph libraries:
//   - gonum/graph: a simple.WeightedUndirectedGraph with stable node IDs
//   - Graphviz DOT (via gonum/graph/encoding/dot) with weight-scaled pen widths
//   - a plain JSON node/edge document for web renderers
//
// Converters only read their input. Node IDs are assigned in sorted label
// order, so the same graph always produces the same output.
package converters
