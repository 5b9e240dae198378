// Package dispositor is the module root of the Soul Formula calculator: it
// turns the zodiac signs of the ten planets into a dispositor graph, finds
// the graph's centers and measures every planet's orbit around them.
//
// What is the Soul Formula?
//
//	Each planet is "disposed" by the ruler of the sign it occupies, so a
//	chart defines a functional graph on ten nodes: every planet points at
//	exactly one other planet (or at itself), or nowhere when its sign is
//	unknown. The terminal structures of that graph are the centers:
//		• Domiciles: a planet in a sign it rules (self-loop)
//		• Mutual receptions: two planets in each other's signs
//		• Cycles: three or more planets closing a ring
//	Every other planet lies on an orbit: its distance, in dispositor steps,
//	from the nearest center.
//
// Packages:
//
//	zodiac/          planets, signs, rulership and points tables (embedded YAML)
//	dispositor/      the fixed-size dispositor graph
//	centers/         domiciles, mutual receptions and cycles (three-colour DFS)
//	orbit/           multi-source reverse BFS from the centers
//	points/          per-planet scores from the points table
//	formula/         the orchestrator and its immutable Result
//	ephemeris/       planet signs for a birth moment, with an offline fallback
//	geocode/         place name to coordinates (Nominatim)
//	cmd/soulformula  the command-line front end
//
// Quick start:
//
//	res := formula.Calculate(zodiac.PlanetSigns{
//		zodiac.Sun:  zodiac.Leo,
//		zodiac.Moon: zodiac.Leo,
//	})
//	fmt.Println(res.Centers().All)       // [Sun]
//	fmt.Println(res.Orbit(zodiac.Moon))  // 1
//
// Complexity:
//
//	The graph has a fixed ten nodes, so every calculation is O(1) in
//	practice; the algorithms themselves are linear in V+E.
package dispositor
