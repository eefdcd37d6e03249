package fill_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pixelgrid/canvas"
	"github.com/katalvlaran/pixelgrid/fill"
)

// BenchmarkFlood_Open measures a fill that covers a whole 1000×1000 grid.
// Complexity: O(W×H×4)
func BenchmarkFlood_Open(b *testing.B) {
	const n = 1000
	g, err := canvas.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	colors := [2]canvas.Cell{"A", "B"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Alternate the color so every iteration repaints the full grid.
		_, _ = fill.Flood(g, n/2, n/2, colors[i%2])
	}
}

// BenchmarkFlood_Noise fills from the centre of a random two-color grid,
// where the region is a ragged blob rather than the whole grid.
func BenchmarkFlood_Noise(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	base, err := canvas.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 0; i < base.Len(); i++ {
		if rng.Intn(10) < 3 {
			base.SetIndex(i, "#")
		}
	}
	base.SetIndex(base.Index(n/2, n/2), canvas.Background)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		_, _ = fill.Flood(g, n/2, n/2, "R")
	}
}

// BenchmarkRegion measures the non-mutating region query on the same noise grid.
func BenchmarkRegion(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(7))
	g, err := canvas.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 0; i < g.Len(); i++ {
		if rng.Intn(10) < 3 {
			g.SetIndex(i, "#")
		}
	}
	g.SetIndex(g.Index(0, 0), canvas.Background)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fill.Region(g, 0, 0)
	}
}
