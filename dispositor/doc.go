// Package dispositor builds the dispositor graph of a chart: every planet
// points at the ruler of the sign it occupies.
//
// What:
//
//	Graph is a functional directed graph on the ten planets (out-degree
//	at most one). It is stored in fixed-size arrays indexed by
//	zodiac.Planet, so no hashing or locking is involved and a Graph is
//	never mutated after Build returns.
//
// Edge rules:
//
//   - graph[p] = rulers[signs[p]] for every planet with an assigned sign.
//   - A planet whose sign is missing, or whose sign has no ruler in the
//     table, has no outgoing edge. This is not an error.
//
// Complexity:
//
//   - Build:        O(V)
//   - Dispositees:  O(V)
//
// See packages centers and orbit for the analyses run on a Graph.
package dispositor
