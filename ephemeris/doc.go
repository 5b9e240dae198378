// Package ephemeris supplies the sign of each planet for a birth moment.
//
// What:
//
//   - Source: anything that maps a Moment to zodiac.PlanetSigns.
//   - Client: an HTTP ephemeris service client. Any transport, status or
//     decoding failure, or an incomplete answer, is logged and answered by
//     the fallback Source instead.
//   - Fallback: a deterministic placeholder keyed on the day of the year.
//     It is NOT astronomically meaningful and is only reproducible by the
//     same formula:
//
//     sign(planet) = Signs[(dayOfYear + index(planet)*30) mod 12]
//
//   - ParseMoment validates the YYYY-MM-DD date and HH:MM time inputs.
//
// Errors:
//
//   - ErrInvalidDate  date is not YYYY-MM-DD or not a calendar date
//   - ErrInvalidTime  time is not HH:MM or out of range
//   - context errors  returned as-is when the caller's context ends
package ephemeris
