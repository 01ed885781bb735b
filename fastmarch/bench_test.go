package fastmarch_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/eikonal/fastmarch"
	"github.com/katalvlaran/eikonal/grid"
)

// sink to defeat dead-code elimination
var sinkF float64

// BenchmarkRun2D measures a full reset–seed–run cycle on square random grids.
// Complexity: O(V·8·log V).
func BenchmarkRun2D(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 256, 512} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			cost := randomCost(b, 1337, n, n)
			e, err := fastmarch.New(cost, fastmarch.WithMargin(0))
			if err != nil {
				b.Fatal(err)
			}
			seed := []grid.Coord{{n / 2, n / 2}}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.Reset()
				if err = e.InitializeAlivePoints(seed); err != nil {
					b.Fatal(err)
				}
				if err = e.Run(); err != nil {
					b.Fatal(err)
				}
				sinkF = e.Stats().LastFrozen
			}
		})
	}
}

// BenchmarkRun3D measures a full cycle on a 64³ uniform grid.
// Complexity: O(V·26·log V).
func BenchmarkRun3D(b *testing.B) {
	b.ReportAllocs()
	const n = 64
	cost := uniformCost(b, 1, n, n, n)
	e, err := fastmarch.New(cost, fastmarch.WithMargin(0))
	if err != nil {
		b.Fatal(err)
	}
	seed := []grid.Coord{{n / 2, n / 2, n / 2}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Reset()
		if err = e.InitializeAlivePoints(seed); err != nil {
			b.Fatal(err)
		}
		if err = e.Run(); err != nil {
			b.Fatal(err)
		}
		sinkF = e.Stats().LastFrozen
	}
}

func BenchmarkSolveEikonal(b *testing.B) {
	us := []float64{1.25, 1.5, 1.75}
	for i := 0; i < b.N; i++ {
		sinkF = fastmarch.SolveEikonal(us, 0.8)
	}
}
