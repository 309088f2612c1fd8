package repair

import "github.com/katalvlaran/steinerweb/steiner"

// Bridge is a steiner.RepairFunc that stitches disconnected solution
// components together.
//
// Steps:
//  1. Build a disjoint-set over vertex indices (path compression, union by
//     rank) seeded with the incoming solution arcs.
//  2. While the required vertices span more than one component: run a
//     breadth-first search outward from the component of the first
//     required vertex, walking arcs in both orientations, until it reaches
//     any vertex whose component contains another required vertex.
//  3. Append the bridging arcs to the solution, union along them, repeat.
//     If no bridge exists the remaining islands are left as-is (best
//     effort) and the augmented solution is returned.
//
// Already-connected input falls through step 2 untouched and is returned
// unchanged. Incoming entries are never dropped.
func Bridge(solution []int, edges []steiner.WebEdge, nodes []steiner.WebNode) []int {
	if len(nodes) == 0 {
		return solution
	}

	// 1) Disjoint-set over vertex indices.
	parent := make([]int, len(nodes))
	rank := make([]int, len(nodes))
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// Seed components with the solution as handed over. Out-of-range
	// entries are the core's problem to reject; skip them defensively here.
	for _, ai := range solution {
		if ai < 0 || ai >= len(edges) {
			continue
		}
		union(edges[ai].From, edges[ai].To)
	}

	var required []int
	for i := range nodes {
		if nodes[i].Required {
			required = append(required, i)
		}
	}
	if len(required) <= 1 {
		return solution
	}

	out := solution
	// Each successful bridge merges at least two required components, so
	// len(required) passes suffice.
	for attempt := 0; attempt < len(required); attempt++ {
		base := find(required[0])
		connected := true
		for _, r := range required[1:] {
			if find(r) != base {
				connected = false
				break
			}
		}
		if connected {
			return out
		}

		path, ok := bridgePath(base, edges, nodes, find)
		if !ok {
			// No arc joins the base island to any other required island.
			return out
		}
		for _, ai := range path {
			out = append(out, ai)
			union(edges[ai].From, edges[ai].To)
		}
	}

	return out
}

// bridgePath searches breadth-first from every vertex of the base
// component, over arcs in both orientations, for the nearest vertex (in
// hops) belonging to a component that contains a required vertex other
// than base. It returns the connecting arc indices in walk order.
func bridgePath(base int, edges []steiner.WebEdge, nodes []steiner.WebNode, find func(int) int) ([]int, bool) {
	// Components that would satisfy the search: any root holding a
	// required vertex, other than base itself.
	target := make(map[int]bool)
	for i := range nodes {
		if root := find(i); nodes[i].Required && root != base {
			target[root] = true
		}
	}
	if len(target) == 0 {
		return nil, false
	}

	visited := make([]bool, len(nodes))
	parentArc := make([]int, len(nodes))
	parentNode := make([]int, len(nodes))
	var queue []int
	// Seed with the whole base component, in index order for determinism.
	for i := range nodes {
		if find(i) == base {
			visited[i] = true
			parentArc[i] = -1
			queue = append(queue, i)
		}
	}

	step := func(u, v, ai int) ([]int, bool) {
		if visited[v] {
			return nil, false
		}
		visited[v] = true
		parentArc[v] = ai
		parentNode[v] = u
		if target[find(v)] {
			return walkBack(v, parentArc, parentNode), true
		}
		queue = append(queue, v)

		return nil, false
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, ai := range nodes[u].Out {
			if path, ok := step(u, edges[ai].To, ai); ok {
				return path, true
			}
		}
		for _, ai := range nodes[u].In {
			if path, ok := step(u, edges[ai].From, ai); ok {
				return path, true
			}
		}
	}

	return nil, false
}

// walkBack reconstructs the arc path from the base component to v by
// following parent links, returned in base→v order.
func walkBack(v int, parentArc, parentNode []int) []int {
	var rev []int
	for cur := v; parentArc[cur] >= 0; cur = parentNode[cur] {
		rev = append(rev, parentArc[cur])
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
