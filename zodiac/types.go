package zodiac

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for name resolution and reference loading.
var (
	// ErrUnknownPlanet indicates a planet name outside the fixed domain.
	ErrUnknownPlanet = errors.New("zodiac: unknown planet")

	// ErrUnknownSign indicates a sign name outside the fixed domain.
	ErrUnknownSign = errors.New("zodiac: unknown sign")

	// ErrBadReference indicates a malformed reference document.
	ErrBadReference = errors.New("zodiac: bad reference data")
)

// Planet identifies one of the ten planets. Values are indices into the
// canonical order, so they may be used directly as array subscripts.
type Planet uint8

// The ten planets in canonical order.
const (
	Sun Planet = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// NumPlanets is the size of the planet domain.
const NumPlanets = 10

// Sign identifies one of the twelve zodiac signs, in canonical order.
type Sign uint8

// The twelve signs in canonical order.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// NumSigns is the size of the sign domain.
const NumSigns = 12

var planetNames = [NumPlanets]string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

var signNames = [NumSigns]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Planets returns all planets in canonical order.
func Planets() []Planet {
	out := make([]Planet, NumPlanets)
	for i := range out {
		out[i] = Planet(i)
	}

	return out
}

// Signs returns all signs in canonical order.
func Signs() []Sign {
	out := make([]Sign, NumSigns)
	for i := range out {
		out[i] = Sign(i)
	}

	return out
}

// Valid reports whether p is inside the planet domain.
func (p Planet) Valid() bool { return p < NumPlanets }

// String returns the English name of p.
func (p Planet) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Planet(%d)", uint8(p))
	}

	return planetNames[p]
}

// MarshalText encodes p as its English name, which makes Planet usable as
// a JSON object key.
func (p Planet) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlanet, uint8(p))
	}

	return []byte(planetNames[p]), nil
}

// UnmarshalText decodes a planet name.
func (p *Planet) UnmarshalText(text []byte) error {
	v, err := ParsePlanet(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// ParsePlanet resolves a planet name, ignoring case and surrounding space.
func ParsePlanet(name string) (Planet, error) {
	key := strings.TrimSpace(name)
	for i, n := range planetNames {
		if strings.EqualFold(n, key) {
			return Planet(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
}

// Valid reports whether s is inside the sign domain.
func (s Sign) Valid() bool { return s < NumSigns }

// String returns the English name of s.
func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", uint8(s))
	}

	return signNames[s]
}

// MarshalText encodes s as its English name.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSign, uint8(s))
	}

	return []byte(signNames[s]), nil
}

// UnmarshalText decodes a sign name.
func (s *Sign) UnmarshalText(text []byte) error {
	v, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// ParseSign resolves a sign name, ignoring case and surrounding space.
func ParseSign(name string) (Sign, error) {
	key := strings.TrimSpace(name)
	for i, n := range signNames {
		if strings.EqualFold(n, key) {
			return Sign(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownSign, name)
}
