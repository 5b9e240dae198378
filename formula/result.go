package formula

import (
	"encoding/json"

	"github.com/katalvlaran/dispositor/centers"
	"github.com/katalvlaran/dispositor/dispositor"
	"github.com/katalvlaran/dispositor/orbit"
	"github.com/katalvlaran/dispositor/points"
	"github.com/katalvlaran/dispositor/zodiac"
)

// Result is the outcome of one calculation. It is never modified after
// Calculate returns; accessors hand out copies.
type Result struct {
	signs   zodiac.PlanetSigns
	graph   *dispositor.Graph
	centers centers.Centers
	walk    *orbit.Result
	points  points.Points
}

// Row is one line of the per-planet summary.
type Row struct {
	Planet   zodiac.Planet
	Sign     zodiac.Sign
	HasSign  bool
	Points   int
	Orbit    orbit.Orbit
	Ruler    zodiac.Planet
	HasRuler bool
	Center   centers.Kind
}

// PlanetSigns returns a copy of the input chart.
func (r *Result) PlanetSigns() zodiac.PlanetSigns { return r.signs.Clone() }

// Graph returns the dispositor graph. Graph has no mutating methods.
func (r *Result) Graph() *dispositor.Graph { return r.graph }

// Centers returns a copy of the centers.
func (r *Result) Centers() centers.Centers {
	c := r.centers
	c.Domiciles = append([]zodiac.Planet(nil), c.Domiciles...)
	c.MutualReceptions = append([]centers.Pair(nil), c.MutualReceptions...)
	c.All = append([]zodiac.Planet(nil), c.All...)
	cycles := make([][]zodiac.Planet, len(c.Cycles))
	for i, cyc := range c.Cycles {
		cycles[i] = append([]zodiac.Planet(nil), cyc...)
	}
	if c.Cycles != nil {
		c.Cycles = cycles
	}

	return c
}

// Orbits returns a copy of every planet's orbit.
func (r *Result) Orbits() orbit.Orbits {
	out := make(orbit.Orbits, len(r.walk.Orbits))
	for p, o := range r.walk.Orbits {
		out[p] = o
	}

	return out
}

// Orbit returns the orbit of p.
func (r *Result) Orbit(p zodiac.Planet) orbit.Orbit { return r.walk.Orbits.Of(p) }

// PathToCenter returns the dispositor chain from p to its center.
func (r *Result) PathToCenter(p zodiac.Planet) ([]zodiac.Planet, bool) {
	return r.walk.PathToCenter(p)
}

// Points returns a copy of every planet's score.
func (r *Result) Points() points.Points {
	out := make(points.Points, len(r.points))
	for p, v := range r.points {
		out[p] = v
	}

	return out
}

// Rows returns the per-planet summary in canonical order.
func (r *Result) Rows() []Row {
	rows := make([]Row, 0, zodiac.NumPlanets)
	for _, p := range zodiac.Planets() {
		row := Row{
			Planet: p,
			Points: r.points.Of(p),
			Orbit:  r.walk.Orbits.Of(p),
			Center: r.centers.KindOf(p),
		}
		row.Sign, row.HasSign = r.signs.Sign(p)
		row.Ruler, row.HasRuler = r.graph.Ruler(p)
		rows = append(rows, row)
	}

	return rows
}

// resultJSON is the wire shape of a Result.
type resultJSON struct {
	PlanetSigns zodiac.PlanetSigns              `json:"planet_signs"`
	Graph       map[zodiac.Planet]zodiac.Planet `json:"graph"`
	Centers     centers.Centers                 `json:"centers"`
	Orbits      orbit.Orbits                    `json:"orbits"`
	Points      points.Points                   `json:"points"`
	TotalPoints int                             `json:"total_points"`
}

// MarshalJSON renders the whole record with planets and signs by name.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		PlanetSigns: r.signs,
		Graph:       r.graph.Map(),
		Centers:     r.centers,
		Orbits:      r.walk.Orbits,
		Points:      r.points,
		TotalPoints: r.points.Total(),
	})
}
