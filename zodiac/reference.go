package zodiac

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/reference.yaml
var embeddedReference []byte

// Rulership maps every sign to its ruling planet.
type Rulership map[Sign]Planet

// Ruler returns the planet ruling s, or false if s is not in the table.
func (r Rulership) Ruler(s Sign) (Planet, bool) {
	p, ok := r[s]

	return p, ok
}

// Clone returns an independent copy of r.
func (r Rulership) Clone() Rulership {
	out := make(Rulership, len(r))
	for s, p := range r {
		out[s] = p
	}

	return out
}

// PointsTable scores a planet placed in a sign. Pairs missing from Values
// score Default.
type PointsTable struct {
	Values  map[Planet]map[Sign]int
	Default int
}

// Lookup returns the score for p in s and whether the pair was present.
// When absent the returned score is t.Default.
func (t PointsTable) Lookup(p Planet, s Sign) (int, bool) {
	if row, ok := t.Values[p]; ok {
		if v, ok := row[s]; ok {
			return v, true
		}
	}

	return t.Default, false
}

// Clone returns a deep copy of t.
func (t PointsTable) Clone() PointsTable {
	out := PointsTable{Values: make(map[Planet]map[Sign]int, len(t.Values)), Default: t.Default}
	for p, row := range t.Values {
		cp := make(map[Sign]int, len(row))
		for s, v := range row {
			cp[s] = v
		}
		out.Values[p] = cp
	}

	return out
}

// Reference bundles the static tables used by a calculation. The zero value
// is empty; build one with LoadReference, NewReference or Default.
type Reference struct {
	rulers Rulership
	points PointsTable
}

// NewReference builds a Reference from caller-supplied tables. Both tables
// are copied, later changes to the arguments are not observed.
func NewReference(rulers Rulership, points PointsTable) *Reference {
	return &Reference{rulers: rulers.Clone(), points: points.Clone()}
}

// Rulers returns a copy of the rulership table.
func (r *Reference) Rulers() Rulership { return r.rulers.Clone() }

// Points returns a copy of the points table.
func (r *Reference) Points() PointsTable { return r.points.Clone() }

// referenceDoc is the YAML shape of a reference document.
type referenceDoc struct {
	Rulers        map[string]string         `yaml:"rulers"`
	DefaultPoints int                       `yaml:"default_points"`
	Points        map[string]map[string]int `yaml:"points"`
}

// LoadReference decodes a YAML reference document from rd.
// Every sign must have exactly one known ruler; unknown planet or sign
// names anywhere in the document are reported together.
func LoadReference(rd io.Reader) (*Reference, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var doc referenceDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrBadReference, err)
	}

	var errs []error
	rulers := make(Rulership, NumSigns)
	for sName, pName := range doc.Rulers {
		s, err := ParseSign(sName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p, err := ParsePlanet(pName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rulers[s] = p
	}
	for _, s := range Signs() {
		if _, ok := rulers[s]; !ok {
			errs = append(errs, fmt.Errorf("%w: sign %s has no ruler", ErrBadReference, s))
		}
	}

	points := PointsTable{Values: make(map[Planet]map[Sign]int, len(doc.Points)), Default: doc.DefaultPoints}
	for pName, row := range doc.Points {
		p, err := ParsePlanet(pName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		scores := make(map[Sign]int, len(row))
		for sName, v := range row {
			s, err := ParseSign(sName)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			scores[s] = v
		}
		points.Values[p] = scores
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrBadReference, errors.Join(errs...))
	}

	return &Reference{rulers: rulers, points: points}, nil
}

var loadDefault = sync.OnceValues(func() (*Reference, error) {
	return LoadReference(bytes.NewReader(embeddedReference))
})

// Default returns the process-wide reference loaded from the embedded
// document. It panics if the embedded document is invalid, which can only
// happen when the build itself is broken.
func Default() *Reference {
	ref, err := loadDefault()
	if err != nil {
		panic(err)
	}

	return ref
}
