// Annotated web construction: one mutable, index-addressable record per
// vertex and per directed arc occurrence, wired into out/in lists. All
// search state (membership flags, witnesses, queues) lives in these arena
// records and is scoped to a single Tree call; nothing is retained across
// calls and nothing in the caller's graph is mutated.

package steiner

import (
	"fmt"

	"github.com/katalvlaran/steinerweb/core"
)

// noOwner marks a witness slot as unset.
const noOwner = -1

// witness records which terminal's expansion most recently arrived at a
// vertex, and by which arc path. Used to detect cross-source collisions.
type witness struct {
	owner int   // node index of the owning terminal, noOwner if unset
	path  []int // arc indices from the owner to this vertex
}

// partialPath is one in-flight candidate path owned by a terminal's queue.
// endweight counts the remaining scheduling turns of the final arc: a path
// whose endweight is still above one is re-queued instead of expanded, so
// an arc of weight W costs W dequeues before its head "arrives".
type partialPath struct {
	point     int   // node index the path has reached
	path      []int // arc indices walked so far
	endweight int64 // remaining turns before arrival
}

// webNode is the annotated record for one vertex.
type webNode struct {
	id        string
	required  bool
	out       []int // arc indices leaving this vertex, supply order
	in        []int // arc indices entering this vertex, supply order
	permanent bool  // confirmed part of the solution web
	temporary bool  // reached by some in-progress expansion
	witness   witness
	queue     []partialPath // FIFO; owned only by required vertices
}

// webEdge is the annotated record for one directed arc occurrence. An
// undirected core.Edge yields two webEdge records sharing orig.
type webEdge struct {
	from, to  int
	weight    int64
	orig      *core.Edge
	permanent bool
	temporary bool
}

// web is the arena holding all annotated records for one Tree call.
type web struct {
	nodes     []webNode
	edges     []webEdge
	index     map[string]int // vertex ID → node index
	terminals []int          // required node indices, supply order, deduplicated
}

// buildWeb wraps the graph's catalogs into annotated arena records and tags
// the terminal set.
//
// Steps:
//  1. One webNode per vertex, in supply order; index by ID.
//  2. One webEdge per directed arc occurrence, in supply order; undirected
//     edges contribute both orientations. Rejects weights below 1 and
//     endpoints absent from the catalog.
//  3. Tag terminals by identity lookup, collapsing duplicates; only
//     terminals own a (seeded-later) queue.
//
// Complexity: O(V + E + T).
func buildWeb(g *core.Graph, terminals []string) (*web, error) {
	ids := g.Vertices()
	w := &web{
		nodes: make([]webNode, len(ids)),
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		w.nodes[i] = webNode{id: id, witness: witness{owner: noOwner}}
		w.index[id] = i
	}

	for _, e := range g.Edges() {
		from, ok := w.index[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrVertexUnknown, e.From)
		}
		to, ok := w.index[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrVertexUnknown, e.To)
		}
		if e.Weight < 1 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNonPositiveWeight, e.From, e.To, e.Weight)
		}
		w.addArc(from, to, e)
		if !e.Directed && from != to {
			w.addArc(to, from, e)
		}
	}

	tagged := make(map[int]bool, len(terminals))
	for _, id := range terminals {
		i, ok := w.index[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrTerminalUnknown, id)
		}
		if tagged[i] {
			continue
		}
		tagged[i] = true
		w.nodes[i].required = true
		w.terminals = append(w.terminals, i)
	}

	return w, nil
}

// addArc appends one annotated arc and wires it into its endpoints'
// out/in lists.
func (w *web) addArc(from, to int, orig *core.Edge) {
	ai := len(w.edges)
	w.edges = append(w.edges, webEdge{from: from, to: to, weight: orig.Weight, orig: orig})
	w.nodes[from].out = append(w.nodes[from].out, ai)
	w.nodes[to].in = append(w.nodes[to].in, ai)
}

// snapshot exports read-only WebNode/WebEdge views of the arena for the
// repair collaborator. Index slices are copied so the collaborator cannot
// disturb search state.
func (w *web) snapshot() ([]WebEdge, []WebNode) {
	edges := make([]WebEdge, len(w.edges))
	for i := range w.edges {
		a := &w.edges[i]
		edges[i] = WebEdge{
			From:      a.from,
			To:        a.to,
			FromID:    w.nodes[a.from].id,
			ToID:      w.nodes[a.to].id,
			Weight:    a.weight,
			Permanent: a.permanent,
		}
	}
	nodes := make([]WebNode, len(w.nodes))
	for i := range w.nodes {
		n := &w.nodes[i]
		nodes[i] = WebNode{
			ID:        n.id,
			Required:  n.required,
			Permanent: n.permanent,
			Out:       append([]int(nil), n.out...),
			In:        append([]int(nil), n.in...),
		}
	}

	return edges, nodes
}
