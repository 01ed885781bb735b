package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/eikonal/gridgraph"
)

// randomCosts returns an n×n grid with roughly 20% blocked cells.
func randomCosts(n int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for y := 0; y < n; y++ {
		row := make([]float64, n)
		for x := 0; x < n; x++ {
			if r.Intn(5) > 0 {
				row[x] = 0.5 + 2*r.Float64()
			}
		}
		rows[y] = row
	}
	return rows
}

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.NewGridGraph(randomCosts(1000, 42), opts)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkDistanceMap measures a full distance map on a 256×256 random grid
// seeded at its center.
// Complexity: O(W×H×8×log(W×H))
func BenchmarkDistanceMap(b *testing.B) {
	const n = 256
	costs := randomCosts(n, 7)
	costs[n/2][n/2] = 1
	gg, err := gridgraph.NewGridGraph(costs, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}
	seeds := [][2]int{{n / 2, n / 2}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = gg.DistanceMap(seeds); err != nil {
			b.Fatal(err)
		}
	}
}
