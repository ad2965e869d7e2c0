package twohop_test

import (
	"testing"

	"github.com/katalvlaran/relgraph/builder"
	"github.com/katalvlaran/relgraph/twohop"
)

// BenchmarkAnalyze_Grid measures a dense 6×6 grid scene.
func BenchmarkAnalyze_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(6, 6))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := twohop.Analyze(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnalyze_Sequential pins a single worker for comparison.
func BenchmarkAnalyze_Sequential(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(6, 6))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := twohop.Analyze(g, twohop.WithWorkers(1)); err != nil {
			b.Fatal(err)
		}
	}
}
