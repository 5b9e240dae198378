package centers

import (
	"encoding/json"

	"github.com/katalvlaran/dispositor/zodiac"
)

// Visitation states of the cycle walk.
const (
	White = iota // not visited yet
	Gray         // on the current path
	Black        // fully explored
)

// Kind classifies why a planet is a center.
type Kind int

// Center kinds. None marks a planet that is not a center.
const (
	None Kind = iota
	Domicile
	MutualReception
	Cycle
)

// String returns a lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Domicile:
		return "domicile"
	case MutualReception:
		return "mutual reception"
	case Cycle:
		return "cycle"
	default:
		return "none"
	}
}

// Pair is an unordered mutual reception, stored lower planet first.
type Pair [2]zodiac.Planet

// Centers is the classification of a dispositor graph's centers.
type Centers struct {
	// Domiciles lists planets ruling their own sign, in canonical order.
	Domiciles []zodiac.Planet `json:"domiciles"`

	// MutualReceptions lists 2-cycles; no planet appears in two pairs.
	MutualReceptions []Pair `json:"mutual_receptions"`

	// Cycles lists loops of length ≥ 3 in edge order, each rotated to
	// start at its lowest planet.
	Cycles [][]zodiac.Planet `json:"cycles"`

	// All is the union of every planet above, first occurrence kept.
	All []zodiac.Planet `json:"all"`
}

// MarshalJSON writes empty lists as [] rather than null.
func (c Centers) MarshalJSON() ([]byte, error) {
	type plain Centers
	out := plain(c)
	if out.Domiciles == nil {
		out.Domiciles = []zodiac.Planet{}
	}
	if out.MutualReceptions == nil {
		out.MutualReceptions = []Pair{}
	}
	if out.Cycles == nil {
		out.Cycles = [][]zodiac.Planet{}
	}
	if out.All == nil {
		out.All = []zodiac.Planet{}
	}

	return json.Marshal(out)
}

// Contains reports whether p is a center of any kind.
func (c Centers) Contains(p zodiac.Planet) bool {
	return indexOf(c.All, p) >= 0
}

// KindOf returns the first kind under which p was reported.
func (c Centers) KindOf(p zodiac.Planet) Kind {
	if indexOf(c.Domiciles, p) >= 0 {
		return Domicile
	}
	for _, pair := range c.MutualReceptions {
		if pair[0] == p || pair[1] == p {
			return MutualReception
		}
	}
	for _, cyc := range c.Cycles {
		if indexOf(cyc, p) >= 0 {
			return Cycle
		}
	}

	return None
}
