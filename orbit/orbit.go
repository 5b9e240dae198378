package orbit

import (
	"github.com/katalvlaran/dispositor/dispositor"
	"github.com/katalvlaran/dispositor/zodiac"
)

// queueItem pairs a planet with its depth.
type queueItem struct {
	planet zodiac.Planet
	depth  int
}

// walker encapsulates mutable search state.
type walker struct {
	graph   *dispositor.Graph
	opts    Options
	queue   []queueItem
	visited [zodiac.NumPlanets]bool
	res     *Result
}

// Calculate computes the orbit of every planet of g relative to the given
// centers. A nil graph or an empty center set leaves every orbit undefined.
// Repeated or invalid centers are ignored after their first occurrence.
func Calculate(g *dispositor.Graph, centers []zodiac.Planet, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, zodiac.NumPlanets),
		res: &Result{
			Orbits: make(Orbits, zodiac.NumPlanets),
			Order:  make([]zodiac.Planet, 0, zodiac.NumPlanets),
			Parent: make(map[zodiac.Planet]zodiac.Planet, zodiac.NumPlanets),
		},
	}

	// seed the frontier with every center at depth 0, in the order given
	if g != nil {
		for _, c := range centers {
			if c.Valid() && !w.visited[c] {
				w.enqueue(c, 0, c, false)
			}
		}
		w.loop()
	}

	// planets never reached keep the undefined orbit
	for _, p := range zodiac.Planets() {
		if _, ok := w.res.Orbits[p]; !ok {
			w.res.Orbits[p] = Undefined
		}
	}

	return w.res
}

// enqueue assigns p its orbit, links it to parent and appends it to the queue.
func (w *walker) enqueue(p zodiac.Planet, d int, parent zodiac.Planet, linked bool) {
	w.visited[p] = true
	w.res.Orbits[p] = At(d)
	if linked {
		w.res.Parent[p] = parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{planet: p, depth: d})
}

// loop drains the queue, expanding each planet's dispositees once.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.planet)
		w.opts.OnVisit(item.planet, item.depth)

		for _, nbr := range w.graph.Dispositees(item.planet) {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.planet, true)
			}
		}
	}
}
