// Package repair provides a default connectivity-repair collaborator for
// the steiner package.
//
// The frontier search can terminate with its solution split into several
// components: terminals that never managed to collide stay in separate
// islands. Bridge patches such solutions by finding, for each island of
// required vertices, a shortest bridging arc path (in hops) to another
// required island over the full annotated web, and appending it to the
// solution.
//
// Bridge honors the collaborator contract exactly:
//
//   - it never removes an incoming solution entry (append-only);
//   - an already-connected solution is returned unchanged (idempotence);
//   - it is fully deterministic, scanning vertices and arcs in index order.
//
// Complexity: O(R·(V + E)) for R required components, O(V + E) space.
//
// Example usage:
//
//	edges, total, err := steiner.Tree(g, terminals, steiner.WithRepair(repair.Bridge))
package repair
