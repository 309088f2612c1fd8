// Solution normalization: order-preserving deduplication of the merged
// solution and projection back onto the caller's edge records.

package steiner

import "github.com/katalvlaran/steinerweb/core"

// arcKey identifies an arc by its ordered endpoint pair. Two solution
// entries with the same orientation collapse to the first occurrence; the
// two orientations of an undirected edge are distinct keys and may both
// survive.
type arcKey struct {
	from, to int
}

// normalize deduplicates the accumulated solution by ordered (from,to)
// pair — first occurrence wins — and projects every surviving arc to its
// original *core.Edge record. Returns the projected edges in solution
// order together with their summed arc weight.
// Complexity: O(len(solution)).
func (w *web) normalize(solution []int) ([]*core.Edge, int64) {
	kept := make(map[arcKey]struct{}, len(solution))
	out := make([]*core.Edge, 0, len(solution))
	var total int64
	for _, ai := range solution {
		arc := &w.edges[ai]
		key := arcKey{from: arc.from, to: arc.to}
		if _, dup := kept[key]; dup {
			continue
		}
		kept[key] = struct{}{}
		out = append(out, arc.orig)
		total += arc.weight
	}

	return out, total
}
