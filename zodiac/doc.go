// Package zodiac defines the fixed domain of the dispositor calculator:
// ten planets, twelve signs, and the static reference tables that connect
// them.
//
// What:
//
//   - Planet and Sign: small enumerations with a canonical order
//     (Sun … Pluto, Aries … Pisces), text round-tripping and
//     case-insensitive parsing.
//   - Rulership: the ruling planet of every sign.
//   - PointsTable: a per-planet, per-sign score with a default value
//     used when a pair is absent.
//   - Reference: the pair of tables above, loaded once from an embedded
//     YAML document (data/reference.yaml) or from any io.Reader.
//   - PlanetSigns and Resolve: the per-chart input mapping and the
//     resolver that turns raw planet/sign names into it.
//
// Immutability:
//
//	Reference hides its tables behind accessors returning copies, so the
//	process-wide Default() value can be shared by concurrent callers.
//
// Errors:
//
//   - ErrUnknownPlanet  a name does not match any of the ten planets
//   - ErrUnknownSign    a name does not match any of the twelve signs
//   - ErrBadReference   a reference document is malformed or incomplete
package zodiac
