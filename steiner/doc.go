// Package steiner computes approximate Steiner trees over weighted graphs.
//
// Given a core.Graph and a set of required (terminal) vertex IDs, Tree
// returns a low-weight set of the graph's own edges connecting every
// terminal, possibly routing through non-terminal "Steiner" vertices.
// The Steiner tree problem is NP-hard; this package implements a
// deterministic heuristic, not an exact solver.
//
// Algorithm:
//
// Every terminal runs its own weighted breadth-first expansion, all of them
// advanced in lock-step rounds. An edge of weight W occupies W scheduling
// turns of its owner's FIFO queue, so each queue dequeues candidate paths
// in non-decreasing total weight using only unit-cost operations — a
// discrete approximation of simultaneous Dijkstra expansion that needs no
// priority queue. Expansions that collide are merged into the growing
// solution:
//
//   - a frontier that touches another terminal (or the already-confirmed
//     "permanent web") closes its path into the solution;
//   - two frontiers that intersect on a common vertex splice both of their
//     paths into the solution.
//
// The search ends when every terminal is confirmed or every live queue is
// exhausted (terminals unreachable from one another). An optional repair
// collaborator (see WithRepair and the repair package) is then given one
// chance to bridge components the search left disconnected. Finally the
// accumulated solution is deduplicated per (from,to) orientation and
// projected back onto the caller's *core.Edge records.
//
// Determinism: the outcome is fully defined by vertex and edge supply
// order — no randomness, no wall-clock dependence. Repeated runs on the
// same graph produce identical output ordering.
//
// Directionality: the search walks directed arcs. An undirected core.Edge
// contributes one arc per orientation, both projecting to the same record,
// so terminal-to-terminal reachability over the output is guaranteed for
// connected inputs whose edges are undirected (or supplied in both
// directions).
//
// Complexity (V vertices, E arcs, T terminals, W max edge weight):
//
//   - Time:  O(T·(V + E) + W·E) — each source schedules each vertex at most
//     once; every scheduled arc is re-queued up to W-1 times.
//   - Space: O(T·V + E).
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrUnweightedGraph   if the graph does not carry weights.
//   - ErrTerminalUnknown   if a terminal is absent from the graph.
//   - ErrVertexUnknown     if an edge references an uncataloged vertex.
//   - ErrNonPositiveWeight if any edge weight is < 1 (weights are consumed
//     as unit-step replication counts; fractions cannot be represented and
//     non-positive values are rejected rather than looping incorrectly).
//   - ErrRepairResult      if the repair collaborator returns an arc index
//     outside the annotated catalog.
//
// Example usage:
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("A", "B", 2)
//	g.AddEdge("B", "C", 3)
//	edges, total, err := steiner.Tree(g, []string{"A", "C"})
package steiner
