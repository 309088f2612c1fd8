// Public entry point for the approximate Steiner tree computation.

package steiner

import (
	"fmt"

	"github.com/katalvlaran/steinerweb/core"
)

// Tree computes an approximate Steiner tree connecting the given terminal
// vertices in g. It accepts functional options to customize behavior
// (currently WithRepair).
//
// Returns:
//
//   - edges: the graph's own *core.Edge records forming the tree, in
//     discovery order, with no two entries sharing the same traversal
//     orientation. Both orientations of one undirected edge may appear if
//     the search used both.
//   - total: the summed weight of the emitted entries.
//   - err:   non-nil if the inputs are invalid (see sentinel errors).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be weighted (ErrUnweightedGraph).
//  3. Every edge weight must be >= 1 (ErrNonPositiveWeight).
//  4. Every terminal must exist in g (ErrTerminalUnknown).
//
// Fewer than two distinct terminals yield an empty tree and no error. A
// graph in which terminals cannot all reach each other is not an error
// either: the search drains, the repair collaborator (if any) bridges what
// it can, and the best-effort result is returned.
//
// Complexity: O(T·(V+E) + W·E) time, O(T·V + E) space — see the package
// documentation.
func Tree(g *core.Graph, terminals []string, opts ...Option) ([]*core.Edge, int64, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, 0, ErrUnweightedGraph
	}

	// 3) Annotate. buildWeb rejects malformed edges and unknown terminals
	//    before any search state leaks out.
	w, err := buildWeb(g, terminals)
	if err != nil {
		return nil, 0, err
	}

	// 4) Nothing to connect: zero or one distinct terminal.
	if len(w.terminals) <= 1 {
		return []*core.Edge{}, 0, nil
	}

	// 5) Run the lock-step frontier search.
	s := newSearcher(w)
	s.run()
	solution := s.solution

	// 6) Hand the raw solution to the repair collaborator, if installed.
	//    The collaborator receives its own copy of the solution slice plus
	//    read-only snapshots of the annotated web.
	if cfg.Repair != nil {
		edges, nodes := w.snapshot()
		repaired := cfg.Repair(append([]int(nil), solution...), edges, nodes)
		for _, ai := range repaired {
			if ai < 0 || ai >= len(w.edges) {
				return nil, 0, fmt.Errorf("%w: %d", ErrRepairResult, ai)
			}
		}
		solution = repaired
	}

	// 7) Deduplicate and project back to the caller's edge records.
	out, total := w.normalize(solution)

	return out, total, nil
}
