// Package formula computes the Soul Formula of a chart: the dispositor
// graph, its centers, every planet's orbit and every planet's score.
//
// What:
//
//	Calculate runs the one-shot pipeline
//
//	  dispositor.Build → centers.Find → orbit.Calculate → points.Score
//
//	and returns an immutable Result. Nothing is cached or shared between
//	calls; a Calculator only holds read-only copies of the reference
//	tables, so one Calculator may serve any number of goroutines.
//
// Errors:
//
//	None. Partial input produces partial output: planets without a sign
//	have no edge, no orbit and the default score. Callers that need a full
//	chart check zodiac.PlanetSigns.Complete before calling.
package formula
