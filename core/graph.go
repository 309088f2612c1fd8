// This file implements the Graph mutation and query methods.
//
// Determinism:
//   - Vertices() and Edges() return catalog entries in supply order.
//   - Edge IDs are monotonic and stable ("e" + decimal).
//
// Concurrency:
//   - Vertex mutations/queries run under muVert.
//   - Edge and adjacency mutations/queries run under muEdgeAdj.

package core

import "strconv"

// AddVertex inserts a vertex with the given ID if it does not already exist.
// Adding an existing ID is a no-op (the original Vertex record is kept).
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.vertexOrder = append(g.vertexOrder, id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates a new edge from→to with the given weight and returns its
// generated ID.
//
// Steps:
//  1. Validate IDs, weight policy, loop policy.
//  2. Ensure both endpoints exist via AddVertex.
//  3. Under muEdgeAdj: check the multi-edge constraint, generate the ID,
//     store the edge, and link adjacency (mirrored for undirected edges).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation against construction-time policy.
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure endpoints exist (first mention wins the catalog slot).
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert the edge under lock.
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacency[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)

	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, eid)

	g.ensureAdjacency(from, to)
	g.adjacency[from][to][eid] = struct{}{}
	// Mirror undirected edges so both orientations are reachable.
	if !e.Directed && from != to {
		g.ensureAdjacency(to, from)
		g.adjacency[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned pointer is the catalog record itself; callers must treat it
// as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// HasEdge reports whether at least one edge links from→to in that
// orientation (undirected edges count for both orientations).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Vertices returns all vertex IDs in supply order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// Edges returns all edge records in supply order.
// The returned slice is fresh; the *Edge pointers are the catalog records.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// OutEdges returns every edge traversable out of id, in supply order:
// directed edges with From == id plus undirected edges incident to id.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(E).
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if e.From == id || (!e.Directed && e.To == id) {
			out = append(out, e)
		}
	}

	return out, nil
}

// InEdges returns every edge traversable into id, in supply order:
// directed edges with To == id plus undirected edges incident to id.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(E).
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var in []*Edge
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if e.To == id || (!e.Directed && e.From == id) {
			in = append(in, e)
		}
	}

	return in, nil
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Weighted reports the construction-time weighted policy flag.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports the construction-time default directedness.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Clone returns a deep copy of the graph structure: fresh Vertex and Edge
// records and a fresh adjacency index, preserving supply order and edge IDs.
// Vertex Metadata maps are shared (shallow), matching the Vertex contract.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	g.muEdgeAdj.RLock()
	defer g.muVert.RUnlock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		directed:    g.directed,
		weighted:    g.weighted,
		allowMulti:  g.allowMulti,
		allowLoops:  g.allowLoops,
		nextEdgeID:  g.nextEdgeID,
		vertices:    make(map[string]*Vertex, len(g.vertices)),
		vertexOrder: append([]string(nil), g.vertexOrder...),
		edges:       make(map[string]*Edge, len(g.edges)),
		edgeOrder:   append([]string(nil), g.edgeOrder...),
		adjacency:   make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}
	for from, tos := range g.adjacency {
		c.adjacency[from] = make(map[string]map[string]struct{}, len(tos))
		for to, bucket := range tos {
			inner := make(map[string]struct{}, len(bucket))
			for eid := range bucket {
				inner[eid] = struct{}{}
			}
			c.adjacency[from][to] = inner
		}
	}

	return c
}

// ensureAdjacency creates the nested adjacency buckets for from→to.
// Caller must hold muEdgeAdj.
func (g *Graph) ensureAdjacency(from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
