package centers_test

import (
	"github.com/katalvlaran/dispositor/dispositor"
	"github.com/katalvlaran/dispositor/zodiac"
)

// graphOf builds a dispositor graph with exactly the given edges. Planet p
// is placed in Sign(p) and that sign is ruled by edges[p].
func graphOf(edges map[zodiac.Planet]zodiac.Planet) *dispositor.Graph {
	signs := make(zodiac.PlanetSigns, len(edges))
	rulers := make(zodiac.Rulership, len(edges))
	for from, to := range edges {
		s := zodiac.Sign(from)
		signs[from] = s
		rulers[s] = to
	}

	return dispositor.Build(signs, rulers)
}

// follow applies the graph k times from p.
func follow(g *dispositor.Graph, p zodiac.Planet, k int) (zodiac.Planet, bool) {
	for i := 0; i < k; i++ {
		next, ok := g.Ruler(p)
		if !ok {
			return p, false
		}
		p = next
	}

	return p, true
}
