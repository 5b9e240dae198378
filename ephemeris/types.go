package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/katalvlaran/dispositor/zodiac"
)

// Sentinel errors for moment parsing and upstream calls.
var (
	// ErrInvalidDate is returned for a malformed birth date.
	ErrInvalidDate = errors.New("ephemeris: date must be YYYY-MM-DD")

	// ErrInvalidTime is returned for a malformed birth time.
	ErrInvalidTime = errors.New("ephemeris: time must be HH:MM")

	// ErrUpstream marks a failed ephemeris service call.
	ErrUpstream = errors.New("ephemeris: upstream failure")

	// ErrIncomplete marks an upstream answer missing planets.
	ErrIncomplete = errors.New("ephemeris: incomplete chart")
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Moment is a birth date, local clock time and place.
type Moment struct {
	At  time.Time
	Lat float64
	Lon float64
}

// ParseMoment validates date (YYYY-MM-DD) and clock (HH:MM) and combines
// them with a location. The time is kept as a wall-clock reading in UTC.
func ParseMoment(date, clock string, lat, lon float64) (Moment, error) {
	if !dateRe.MatchString(date) {
		return Moment{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if !timeRe.MatchString(clock) {
		return Moment{}, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return Moment{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return Moment{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	at := day.Add(time.Duration(hm.Hour())*time.Hour + time.Duration(hm.Minute())*time.Minute)

	return Moment{At: at, Lat: lat, Lon: lon}, nil
}

// Date returns the YYYY-MM-DD part of m.
func (m Moment) Date() string { return m.At.Format(time.DateOnly) }

// Clock returns the HH:MM part of m.
func (m Moment) Clock() string { return m.At.Format("15:04") }

// Source maps a birth moment to the sign of every planet.
type Source interface {
	PlanetSigns(ctx context.Context, m Moment) (zodiac.PlanetSigns, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, m Moment) (zodiac.PlanetSigns, error)

// PlanetSigns calls f.
func (f SourceFunc) PlanetSigns(ctx context.Context, m Moment) (zodiac.PlanetSigns, error) {
	return f(ctx, m)
}
