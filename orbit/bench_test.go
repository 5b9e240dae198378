package orbit_test

import (
	"testing"

	"github.com/katalvlaran/dispositor/orbit"
	"github.com/katalvlaran/dispositor/zodiac"
)

// BenchmarkCalculate_Chain measures the deepest possible layering: one
// domicile with the other nine planets chained behind it.
func BenchmarkCalculate_Chain(b *testing.B) {
	edges := map[zodiac.Planet]zodiac.Planet{zodiac.Sun: zodiac.Sun}
	for i := 1; i < zodiac.NumPlanets; i++ {
		edges[zodiac.Planet(i)] = zodiac.Planet(i - 1)
	}
	g := graphOf(edges)
	seeds := []zodiac.Planet{zodiac.Sun}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = orbit.Calculate(g, seeds)
	}
}
