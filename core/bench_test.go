package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/genremap/core"
)

// BenchmarkAddCooccurrence measures pair increments over a fixed label pool.
func BenchmarkAddCooccurrence(b *testing.B) {
	const pool = 64
	labels := make([]string, pool)
	for i := range labels {
		labels[i] = fmt.Sprintf("G%02d", i)
	}
	g := core.NewGraph()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddCooccurrence(labels[i%pool], labels[(i+1)%pool], 1)
	}
}

// BenchmarkFreeze measures snapshot cost on a dense 100-vertex graph.
func BenchmarkFreeze(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		for j := i + 1; j < 100; j++ {
			_, _ = g.AddCooccurrence(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j), 1)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Freeze()
	}
}
