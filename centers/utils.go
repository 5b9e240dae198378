package centers

import (
	"strings"

	"github.com/katalvlaran/dispositor/zodiac"
)

// indexOf returns the first index of p in s, or -1.
func indexOf(s []zodiac.Planet, p zodiac.Planet) int {
	for i, x := range s {
		if x == p {
			return i
		}
	}

	return -1
}

// rotateToMin returns a copy of cycle rotated so that its lowest planet is
// first. Planets on a cycle are distinct, so the rotation is unique.
func rotateToMin(cycle []zodiac.Planet) []zodiac.Planet {
	k := 0
	for i, p := range cycle {
		if p < cycle[k] {
			k = i
		}
	}
	out := make([]zodiac.Planet, 0, len(cycle))
	out = append(out, cycle[k:]...)

	return append(out, cycle[:k]...)
}

// signature joins the planet names of a canonical cycle with commas.
func signature(cycle []zodiac.Planet) string {
	names := make([]string, len(cycle))
	for i, p := range cycle {
		names[i] = p.String()
	}

	return strings.Join(names, ",")
}

// less orders canonical cycles lexicographically by planet index.
func less(a, b []zodiac.Planet) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
