package formula

import (
	"sync"

	"github.com/katalvlaran/dispositor/centers"
	"github.com/katalvlaran/dispositor/dispositor"
	"github.com/katalvlaran/dispositor/orbit"
	"github.com/katalvlaran/dispositor/points"
	"github.com/katalvlaran/dispositor/zodiac"
)

// Calculator runs the pipeline against one set of reference tables.
type Calculator struct {
	rulers zodiac.Rulership
	points zodiac.PointsTable
}

// New returns a Calculator bound to ref. A nil ref selects zodiac.Default().
func New(ref *zodiac.Reference) *Calculator {
	if ref == nil {
		ref = zodiac.Default()
	}

	return &Calculator{rulers: ref.Rulers(), points: ref.Points()}
}

// Calculate computes the Soul Formula of signs. signs is copied and never
// modified.
func (c *Calculator) Calculate(signs zodiac.PlanetSigns, opts ...orbit.Option) *Result {
	in := signs.Clone()

	// 1) dispositor graph
	g := dispositor.Build(in, c.rulers)
	// 2) centers
	cs := centers.Find(g)
	// 3) orbits around the centers
	walk := orbit.Calculate(g, cs.All, opts...)
	// 4) scores
	pts := points.Score(in, c.points)

	return &Result{
		signs:   in,
		graph:   g,
		centers: cs,
		walk:    walk,
		points:  pts,
	}
}

var defaultCalculator = sync.OnceValue(func() *Calculator { return New(nil) })

// Calculate computes the Soul Formula of signs with the embedded reference
// tables.
func Calculate(signs zodiac.PlanetSigns) *Result {
	return defaultCalculator().Calculate(signs)
}
