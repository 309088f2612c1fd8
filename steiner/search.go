// The multi-source frontier search: every terminal expands its own
// weighted breadth-first frontier, all frontiers advancing in lock-step
// rounds, merging into the solution on collision.

package steiner

// searcher holds the mutable state for a single search execution.
type searcher struct {
	w        *web
	solution []int          // accumulated solution arcs, duplicates allowed
	solved   int            // merge counter, compared against len(terminals)
	seen     map[int][]bool // terminal node index → vertices it has scheduled
}

// newSearcher seeds every terminal's queue with a zero-length path rooted
// at the terminal itself and marks the terminal as scheduled by its own
// expansion.
func newSearcher(w *web) *searcher {
	s := &searcher{
		w:    w,
		seen: make(map[int][]bool, len(w.terminals)),
	}
	for _, t := range w.terminals {
		w.nodes[t].queue = append(w.nodes[t].queue, partialPath{point: t, endweight: 0})
		marks := make([]bool, len(w.nodes))
		marks[t] = true
		s.seen[t] = marks
	}

	return s
}

// run drives rounds until every terminal is accounted for or a full round
// finds no live queue (terminals mutually unreachable; the caller defers to
// the repair collaborator).
func (s *searcher) run() {
	total := len(s.w.terminals)
	for s.solved < total {
		if !s.round() {
			return
		}
	}
}

// round visits every not-yet-confirmed terminal once, in supply order, and
// advances its queue by a single turn. A merge ends the round immediately
// so the next pass restarts from the first terminal; at most one merge
// happens per pass. Returns false when no terminal had queued work, which
// signals exhaustion.
func (s *searcher) round() bool {
	worked := false
	for _, n := range s.w.terminals {
		node := &s.w.nodes[n]
		if node.permanent {
			continue
		}
		if len(node.queue) == 0 {
			continue
		}
		worked = true

		pp := node.queue[0]
		node.queue = node.queue[1:]
		// Weight replication: a path whose final arc still owes turns goes
		// back to the tail unchanged except for the decrement. Within one
		// queue this dequeues paths in non-decreasing total weight.
		if pp.endweight > 1 {
			pp.endweight--
			node.queue = append(node.queue, pp)
			continue
		}

		if s.advance(n, pp) {
			return true
		}
	}

	return worked
}

// advance processes the arrival of one fully-scheduled partial path owned
// by terminal n, scanning the reached vertex's out arcs for a closing or
// mergeable condition. Reports whether a merge occurred.
func (s *searcher) advance(n int, pp partialPath) bool {
	point := &s.w.nodes[pp.point]
	// Vertices already confirmed into the web are never re-processed as
	// frontier heads; arcs into them close other frontiers instead.
	if point.permanent {
		return false
	}
	point.temporary = true
	point.witness = witness{owner: n, path: pp.path}

	for _, ai := range point.out {
		arc := &s.w.edges[ai]
		dst := &s.w.nodes[arc.to]
		switch {
		case (dst.required && arc.to != n) || dst.permanent:
			// The path plus this closing arc reaches another terminal or the
			// confirmed web: a completed connection.
			s.merge(extend(pp.path, ai))

			return true

		case dst.temporary && dst.witness.owner != n:
			// Cross-source collision: another terminal's frontier already
			// holds this vertex. Splice both paths and the closing arc.
			joined := make([]int, 0, len(pp.path)+len(dst.witness.path)+1)
			joined = append(joined, pp.path...)
			joined = append(joined, dst.witness.path...)
			joined = append(joined, ai)
			s.merge(joined)

			return true

		default:
			// Keep exploring, unless this source already scheduled the
			// destination (each vertex is reached at most once per source).
			if s.seen[n][arc.to] {
				continue
			}
			s.seen[n][arc.to] = true
			s.w.nodes[n].queue = append(s.w.nodes[n].queue, partialPath{
				point:     arc.to,
				path:      extend(pp.path, ai),
				endweight: arc.weight,
			})
		}
	}

	return false
}

// merge appends the given arcs to the solution and confirms them into the
// permanent web: every arc, every arc's source vertex, and the final arc's
// destination. The destination may already be permanent when closing
// against the solved web; the connection still counts once.
func (s *searcher) merge(arcs []int) {
	for _, ai := range arcs {
		arc := &s.w.edges[ai]
		arc.permanent = true
		s.w.nodes[arc.from].permanent = true
		s.solution = append(s.solution, ai)
	}
	if len(arcs) > 0 {
		last := s.w.edges[arcs[len(arcs)-1]]
		s.w.nodes[last.to].permanent = true
	}
	s.solved++
}

// extend returns a fresh path slice of base plus one arc. Queued paths
// share no backing storage, so later appends cannot alias.
func extend(base []int, ai int) []int {
	next := make([]int, 0, len(base)+1)
	next = append(next, base...)
	next = append(next, ai)

	return next
}
