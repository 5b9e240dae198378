package zodiac

import (
	"errors"
	"fmt"
	"sort"
)

// PlanetSigns assigns a sign to each planet of one chart. It may be partial
// and need not be injective.
type PlanetSigns map[Planet]Sign

// Clone returns an independent copy of ps.
func (ps PlanetSigns) Clone() PlanetSigns {
	out := make(PlanetSigns, len(ps))
	for p, s := range ps {
		out[p] = s
	}

	return out
}

// Sign returns the sign assigned to p, if any.
func (ps PlanetSigns) Sign(p Planet) (Sign, bool) {
	s, ok := ps[p]

	return s, ok
}

// Complete reports whether every planet has a sign.
func (ps PlanetSigns) Complete() bool {
	for _, p := range Planets() {
		if _, ok := ps[p]; !ok {
			return false
		}
	}

	return true
}

// Missing lists the planets without a sign, in canonical order.
func (ps PlanetSigns) Missing() []Planet {
	var out []Planet
	for _, p := range Planets() {
		if _, ok := ps[p]; !ok {
			out = append(out, p)
		}
	}

	return out
}

// Resolve converts a raw planet→sign name mapping, as returned by an
// ephemeris service, into PlanetSigns. Every unresolvable entry is
// reported; the joined error wraps ErrUnknownPlanet and/or ErrUnknownSign.
// Resolve does not require the result to be complete.
func Resolve(raw map[string]string) (PlanetSigns, error) {
	// iterate in a stable order so the joined error reads the same each run
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(PlanetSigns, len(raw))
	var errs []error
	for _, k := range keys {
		p, err := ParsePlanet(k)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s, err := ParseSign(raw[k])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			continue
		}
		out[p] = s
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return out, nil
}
