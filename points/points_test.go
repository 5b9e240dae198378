package points_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispositor/points"
	"github.com/katalvlaran/dispositor/zodiac"
)

// TestScore_TableAndDefault checks table hits, misses and unsigned planets.
func TestScore_TableAndDefault(t *testing.T) {
	table := zodiac.PointsTable{
		Values: map[zodiac.Planet]map[zodiac.Sign]int{
			zodiac.Sun:  {zodiac.Leo: 5, zodiac.Libra: -4},
			zodiac.Moon: {zodiac.Cancer: 5},
		},
		Default: 1,
	}
	signs := zodiac.PlanetSigns{
		zodiac.Sun:  zodiac.Leo,
		zodiac.Moon: zodiac.Aries, // row exists, pair does not
		zodiac.Mars: zodiac.Aries, // no row at all
	}

	got := points.Score(signs, table)
	require.Len(t, got, zodiac.NumPlanets)
	assert.Equal(t, 5, got.Of(zodiac.Sun))
	assert.Equal(t, 1, got.Of(zodiac.Moon))
	assert.Equal(t, 1, got.Of(zodiac.Mars))
	assert.Equal(t, 1, got.Of(zodiac.Pluto), "unsigned planets score the default")
	assert.Equal(t, 5+9*1, got.Total())
}

// TestScore_EmptyTable gives everyone the default.
func TestScore_EmptyTable(t *testing.T) {
	got := points.Score(nil, zodiac.PointsTable{Default: -2})
	for _, p := range zodiac.Planets() {
		v, ok := got[p]
		assert.True(t, ok, p.String())
		assert.Equal(t, -2, v)
	}
}

// TestScore_DefaultReference spot-checks the embedded dignity table.
func TestScore_DefaultReference(t *testing.T) {
	signs := zodiac.PlanetSigns{
		zodiac.Sun: zodiac.Leo, zodiac.Moon: zodiac.Capricorn, zodiac.Venus: zodiac.Pisces,
		zodiac.Saturn: zodiac.Aries, zodiac.Jupiter: zodiac.Leo,
	}
	got := points.Score(signs, zodiac.Default().Points())
	assert.Equal(t, 5, got.Of(zodiac.Sun))
	assert.Equal(t, -5, got.Of(zodiac.Moon))
	assert.Equal(t, 4, got.Of(zodiac.Venus))
	assert.Equal(t, -4, got.Of(zodiac.Saturn))
	assert.Equal(t, 0, got.Of(zodiac.Jupiter))
}
