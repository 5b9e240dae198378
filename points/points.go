package points

import "github.com/katalvlaran/dispositor/zodiac"

// Points maps every planet to its score.
type Points map[zodiac.Planet]int

// Score looks up each planet's score in table. The result is total over the
// ten planets.
func Score(signs zodiac.PlanetSigns, table zodiac.PointsTable) Points {
	out := make(Points, zodiac.NumPlanets)
	for _, p := range zodiac.Planets() {
		s, ok := signs[p]
		if !ok {
			out[p] = table.Default
			continue
		}
		out[p], _ = table.Lookup(p, s)
	}

	return out
}

// Of returns the score of p.
func (ps Points) Of(p zodiac.Planet) int { return ps[p] }

// Total sums the scores of all planets.
func (ps Points) Total() int {
	sum := 0
	for _, v := range ps {
		sum += v
	}

	return sum
}
