// Package orbit assigns every planet its orbit: the number of dispositor
// steps separating it from the nearest center.
//
// What
//
//   - Multi-source breadth-first search seeded with the center set at
//     depth 0, walking the dispositor graph against its edges (from a
//     ruler to the planets it disposes of).
//   - The frontier is processed in the order the centers were supplied;
//     reverse neighbours are expanded in canonical planet order; the first
//     depth assigned to a planet is final.
//   - Planets no center reaches get the undefined Orbit. Orbit is an
//     option type, so an undefined orbit cannot be summed or compared as
//     if it were a distance.
//   - Result also records the visit order and parent links, from which
//     PathToCenter rebuilds the dispositor chain of a planet.
//   - OnEnqueue and OnVisit hooks observe the traversal.
//
// Complexity
//
//	Time O(V²) with the array-backed graph (V = 10), Memory O(V).
package orbit
