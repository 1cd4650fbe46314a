package flow_test

import (
	"testing"
)

// BenchmarkSolvers measures each solver on a random acyclic cover network.
func BenchmarkSolvers(b *testing.B) {
	edges := randomDAG(b, 2000, 0.002, 42)
	for _, f := range solvers {
		b.Run(f.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				n, _ := coverNetwork(b, 2000, edges)
				b.StartTimer()
				f.new(n).FindMaxFlow()
			}
		})
	}
}
