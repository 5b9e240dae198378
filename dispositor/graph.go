package dispositor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dispositor/zodiac"
)

// Graph is the dispositor graph of one chart.
// The zero value is a graph with no edges.
type Graph struct {
	next [zodiac.NumPlanets]zodiac.Planet // ruler of the sign each planet occupies
	has  [zodiac.NumPlanets]bool          // whether next[p] is defined
}

// Build derives the dispositor graph from a chart's planet signs and a
// rulership table. Both inputs are only read.
func Build(signs zodiac.PlanetSigns, rulers zodiac.Rulership) *Graph {
	g := &Graph{}
	for _, p := range zodiac.Planets() {
		// 1) skip planets without a sign
		s, ok := signs[p]
		if !ok {
			continue
		}
		// 2) skip signs the table does not know
		r, ok := rulers.Ruler(s)
		if !ok || !r.Valid() {
			continue
		}
		g.next[p] = r
		g.has[p] = true
	}

	return g
}

// Ruler returns the dispositor of p, or false if p has no outgoing edge.
func (g *Graph) Ruler(p zodiac.Planet) (zodiac.Planet, bool) {
	if !p.Valid() || !g.has[p] {
		return 0, false
	}

	return g.next[p], true
}

// Dispositees returns the planets whose dispositor is p, in canonical order.
// These are p's neighbours when the graph is walked against its edges.
func (g *Graph) Dispositees(p zodiac.Planet) []zodiac.Planet {
	var out []zodiac.Planet
	for i := range g.next {
		if g.has[i] && g.next[i] == p {
			out = append(out, zodiac.Planet(i))
		}
	}

	return out
}

// Len returns the number of edges.
func (g *Graph) Len() int {
	n := 0
	for _, ok := range g.has {
		if ok {
			n++
		}
	}

	return n
}

// Map returns the edges as a fresh planet→ruler map.
func (g *Graph) Map() map[zodiac.Planet]zodiac.Planet {
	out := make(map[zodiac.Planet]zodiac.Planet, zodiac.NumPlanets)
	for i := range g.next {
		if g.has[i] {
			out[zodiac.Planet(i)] = g.next[i]
		}
	}

	return out
}

// String renders the edges as "Sun→Sun Moon→Moon …" in canonical order.
func (g *Graph) String() string {
	parts := make([]string, 0, zodiac.NumPlanets)
	for i := range g.next {
		if g.has[i] {
			parts = append(parts, fmt.Sprintf("%s→%s", zodiac.Planet(i), g.next[i]))
		}
	}

	return strings.Join(parts, " ")
}
