package centers

import (
	"sort"

	"github.com/katalvlaran/dispositor/dispositor"
	"github.com/katalvlaran/dispositor/zodiac"
)

// Find classifies the centers of g. A nil graph has no centers.
func Find(g *dispositor.Graph) Centers {
	var c Centers
	if g == nil {
		return c
	}

	c.Domiciles = findDomiciles(g)
	c.MutualReceptions = findMutualReceptions(g)
	c.Cycles = findCycles(g)
	c.All = union(c)

	return c
}

// findDomiciles returns every planet whose edge points back at itself.
func findDomiciles(g *dispositor.Graph) []zodiac.Planet {
	var out []zodiac.Planet
	for _, p := range zodiac.Planets() {
		if r, ok := g.Ruler(p); ok && r == p {
			out = append(out, p)
		}
	}

	return out
}

// findMutualReceptions pairs a→b with b→a. Once a planet is consumed by a
// pair it is skipped, so the first pair found in canonical order wins.
func findMutualReceptions(g *dispositor.Graph) []Pair {
	var (
		out      []Pair
		consumed [zodiac.NumPlanets]bool
	)
	for _, a := range zodiac.Planets() {
		if consumed[a] {
			continue
		}
		b, ok := g.Ruler(a)
		if !ok || b == a || consumed[b] {
			continue
		}
		if back, ok := g.Ruler(b); ok && back == a {
			out = append(out, Pair{a, b}) // a < b: b was not reached earlier
			consumed[a] = true
			consumed[b] = true
		}
	}

	return out
}

// cycleWalker carries the mutable state of one cycle search.
type cycleWalker struct {
	graph  *dispositor.Graph
	state  [zodiac.NumPlanets]int
	path   []zodiac.Planet
	seen   map[string]struct{}
	cycles [][]zodiac.Planet
}

// findCycles walks the graph from every White planet that has an outgoing
// edge and collects loops of length three or more.
func findCycles(g *dispositor.Graph) [][]zodiac.Planet {
	w := &cycleWalker{
		graph: g,
		path:  make([]zodiac.Planet, 0, zodiac.NumPlanets),
		seen:  make(map[string]struct{}),
	}
	for _, p := range zodiac.Planets() {
		if w.state[p] != White {
			continue
		}
		if _, ok := g.Ruler(p); !ok {
			continue
		}
		w.visit(p)
	}

	sort.SliceStable(w.cycles, func(i, j int) bool {
		return less(w.cycles[i], w.cycles[j])
	})

	return w.cycles
}

// visit marks p Gray, follows its single edge and backtracks.
func (w *cycleWalker) visit(p zodiac.Planet) {
	// 1) enter p
	w.state[p] = Gray
	w.path = append(w.path, p)

	// 2) follow the dispositor edge, if any
	if next, ok := w.graph.Ruler(p); ok {
		switch w.state[next] {
		case White:
			w.visit(next)
		case Gray:
			// back-edge: the path from next's position closes a loop
			w.record(next)
		}
		// Black: already explored from an earlier start, nothing new
	}

	// 3) leave p
	w.path = w.path[:len(w.path)-1]
	w.state[p] = Black
}

// record stores the loop beginning at start on the current path when it is
// long enough to be neither a domicile nor a mutual reception.
func (w *cycleWalker) record(start zodiac.Planet) {
	idx := indexOf(w.path, start)
	if idx < 0 || len(w.path)-idx < 3 {
		return
	}
	canon := rotateToMin(w.path[idx:])
	sig := signature(canon)
	if _, dup := w.seen[sig]; dup {
		return
	}
	w.seen[sig] = struct{}{}
	w.cycles = append(w.cycles, canon)
}

// union merges all center planets, keeping the first occurrence.
func union(c Centers) []zodiac.Planet {
	var (
		out   []zodiac.Planet
		added [zodiac.NumPlanets]bool
	)
	add := func(p zodiac.Planet) {
		if !added[p] {
			added[p] = true
			out = append(out, p)
		}
	}
	for _, p := range c.Domiciles {
		add(p)
	}
	for _, pair := range c.MutualReceptions {
		add(pair[0])
		add(pair[1])
	}
	for _, cyc := range c.Cycles {
		for _, p := range cyc {
			add(p)
		}
	}

	return out
}
