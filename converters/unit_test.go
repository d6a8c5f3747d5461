package converters_test

import "gonum.org/v1/gonum/graph/simple"

// unitWeights counts hops instead of co-occurrences.
type unitWeights struct {
	*simple.WeightedUndirectedGraph
}

func (u unitWeights) Weight(xid, yid int64) (float64, bool) {
	if xid == yid {
		return 0, true
	}
	return 1, u.HasEdgeBetween(xid, yid)
}
