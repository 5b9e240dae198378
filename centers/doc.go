// Package centers finds the centers of a dispositor graph: the planets that
// sit on a closed loop and therefore dispose of themselves, directly or
// through others.
//
// What:
//
//   - Domiciles: self-loops, a planet in the sign it rules.
//   - Mutual receptions: 2-cycles, two planets each in the other's sign.
//     Each planet belongs to at most one reported pair.
//   - Cycles: closed loops of three or more planets, found with a
//     three-colour depth-first walk (White, Gray, Black) over an explicit
//     path stack.
//   - All: the union of the above, in the order domiciles, pairs, cycles.
//
// Determinism:
//
//	Walks start from each White planet in canonical order and never re-enter
//	a Black planet, so the single cycle of every component of the functional
//	graph is met exactly once. Cycles are reported in edge order, rotated so
//	the lowest planet comes first, and a signature set guards against
//	duplicates. The cycle list is sorted by that rotation.
//
// Complexity:
//
//   - Find: Time O(V), Memory O(V)  (V = 10, out-degree ≤ 1)
package centers
