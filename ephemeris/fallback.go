package ephemeris

import (
	"context"

	"github.com/katalvlaran/dispositor/zodiac"
)

// signStride spreads consecutive planets across the zodiac.
const signStride = 30

// Fallback is the deterministic placeholder Source. The zero value is ready
// to use.
type Fallback struct{}

// PlanetSigns places every planet by day of year. It only fails when ctx
// is already done.
func (Fallback) PlanetSigns(ctx context.Context, m Moment) (zodiac.PlanetSigns, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return FallbackSigns(m), nil
}

// FallbackSigns is the formula behind Fallback, exposed for callers that
// have no context.
func FallbackSigns(m Moment) zodiac.PlanetSigns {
	day := m.At.YearDay() // 1 on January 1st
	signs := zodiac.Signs()
	out := make(zodiac.PlanetSigns, zodiac.NumPlanets)
	for i, p := range zodiac.Planets() {
		out[p] = signs[(day+i*signStride)%zodiac.NumSigns]
	}

	return out
}
