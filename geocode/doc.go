// Package geocode turns a free-text place name into coordinates using a
// Nominatim-compatible search service.
//
// Lookup resolves the best match for a place; Suggest lists settlements
// (city, town, village) matching a partial query for autocompletion.
// Concurrent Lookups of the same place share one request; a caller that
// gives up does not cancel it for the others.
//
// Errors:
//
//   - ErrEmptyPlace     the place name is blank
//   - ErrPlaceNotFound  the service returned no match
//   - ErrStatus         the service answered with a non-2xx status
//   - ErrDecode         the response could not be decoded
package geocode
