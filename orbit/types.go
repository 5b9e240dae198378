package orbit

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/dispositor/zodiac"
)

// Orbit is a planet's distance to the nearest center, or undefined when no
// center reaches it. The zero value is undefined.
type Orbit struct {
	depth   int
	defined bool
}

// Undefined is the orbit of a planet with no path to any center.
var Undefined = Orbit{}

// At returns the defined orbit at depth d. Negative depths are undefined.
func At(d int) Orbit {
	if d < 0 {
		return Undefined
	}

	return Orbit{depth: d, defined: true}
}

// Depth returns the distance and whether it is defined.
func (o Orbit) Depth() (int, bool) { return o.depth, o.defined }

// Defined reports whether a center reaches the planet.
func (o Orbit) Defined() bool { return o.defined }

// String renders the depth, or "—" when undefined.
func (o Orbit) String() string {
	if !o.defined {
		return "—"
	}

	return strconv.Itoa(o.depth)
}

// MarshalJSON encodes a defined orbit as a number and an undefined one as null.
func (o Orbit) MarshalJSON() ([]byte, error) {
	if !o.defined {
		return []byte("null"), nil
	}

	return []byte(strconv.Itoa(o.depth)), nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *Orbit) UnmarshalJSON(b []byte) error {
	var d *int
	if err := json.Unmarshal(b, &d); err != nil {
		return fmt.Errorf("orbit: %w", err)
	}
	if d == nil {
		*o = Undefined
		return nil
	}
	*o = At(*d)

	return nil
}

// Orbits maps every planet to its orbit.
type Orbits map[zodiac.Planet]Orbit

// Of returns the orbit of p; planets absent from the map are undefined.
func (ob Orbits) Of(p zodiac.Planet) Orbit { return ob[p] }

// Level groups the planets sharing one defined depth.
type Level struct {
	Depth   int             `json:"depth"`
	Planets []zodiac.Planet `json:"planets"`
}

// Levels groups planets by defined depth, shallowest first, planets in
// canonical order. Undefined orbits are left out; see Unreached.
func (ob Orbits) Levels() []Level {
	byDepth := make(map[int][]zodiac.Planet)
	for _, p := range zodiac.Planets() {
		if d, ok := ob[p].Depth(); ok {
			byDepth[d] = append(byDepth[d], p)
		}
	}
	out := make([]Level, 0, len(byDepth))
	for d, ps := range byDepth {
		out = append(out, Level{Depth: d, Planets: ps})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })

	return out
}

// Unreached lists planets with an undefined orbit, in canonical order.
func (ob Orbits) Unreached() []zodiac.Planet {
	var out []zodiac.Planet
	for _, p := range zodiac.Planets() {
		if !ob[p].Defined() {
			out = append(out, p)
		}
	}

	return out
}

// Option configures Calculate via functional arguments.
type Option func(*Options)

// Options holds the traversal hooks.
type Options struct {
	// OnEnqueue is called when a planet receives its orbit and joins the
	// frontier.
	OnEnqueue func(p zodiac.Planet, depth int)

	// OnVisit is called when a planet is taken off the frontier, before
	// its dispositees are expanded.
	OnVisit func(p zodiac.Planet, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(zodiac.Planet, int) {},
		OnVisit:   func(zodiac.Planet, int) {},
	}
}

// WithOnEnqueue registers a callback run when a planet is enqueued.
func WithOnEnqueue(fn func(p zodiac.Planet, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run when a planet is visited.
func WithOnVisit(fn func(p zodiac.Planet, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of Calculate:
//   - Orbits: every planet's orbit, total over the ten planets.
//   - Order: planets in visit sequence.
//   - Parent: for each non-center reached planet, its dispositor, one step
//     closer to the center.
type Result struct {
	Orbits Orbits
	Order  []zodiac.Planet
	Parent map[zodiac.Planet]zodiac.Planet
}

// PathToCenter returns the chain p → … → center followed by the search.
// It returns false if p has no orbit.
func (r *Result) PathToCenter(p zodiac.Planet) ([]zodiac.Planet, bool) {
	if !r.Orbits.Of(p).Defined() {
		return nil, false
	}
	path := []zodiac.Planet{p}
	for cur := p; ; {
		next, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, next)
		cur = next
	}

	return path, true
}
