// Package core defines the central Graph, Vertex, and Edge types used by
// every algorithm package in this module, and provides thread-safe
// primitives for building and querying graphs.
//
// The container is deliberately order-preserving: Vertices() and Edges()
// return catalog entries in the exact order they were supplied. Algorithms
// in this module (notably the steiner package) define their round order,
// tie-breaking, and output order in terms of supply order, so the catalog
// must never reorder behind the caller's back.
//
// All core APIs use two sync.RWMutex locks internally (muVert for the
// vertex catalog, muEdgeAdj for edges and adjacency), so graphs can be
// safely mutated across goroutines with minimal contention.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
