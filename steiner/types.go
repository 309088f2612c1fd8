// Package steiner types: sentinel errors, functional options, and the
// repair-collaborator contract.

package steiner

import "errors"

// Sentinel errors returned by Tree.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Tree.
	ErrNilGraph = errors.New("steiner: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted;
	// the search consumes edge weights as scheduling-turn counts and cannot
	// run without them.
	ErrUnweightedGraph = errors.New("steiner: graph must be weighted")

	// ErrTerminalUnknown indicates that a requested terminal vertex does not
	// exist in the graph.
	ErrTerminalUnknown = errors.New("steiner: terminal vertex not found in graph")

	// ErrVertexUnknown indicates that an edge references a vertex absent from
	// the vertex catalog.
	ErrVertexUnknown = errors.New("steiner: edge references unknown vertex")

	// ErrNonPositiveWeight indicates an edge weight below 1. Weights are
	// replication counts for queue turns, so zero and negative values are
	// rejected eagerly instead of producing an undefined schedule.
	ErrNonPositiveWeight = errors.New("steiner: edge weight must be a positive integer")

	// ErrRepairResult indicates that the repair collaborator returned an arc
	// index outside the annotated edge catalog.
	ErrRepairResult = errors.New("steiner: repair collaborator returned invalid arc index")
)

// WebNode is a read-only snapshot of one annotated vertex, handed to the
// repair collaborator after the search has stabilized.
//
// Out and In hold indices into the WebEdge slice passed alongside, in the
// same supply order the search itself used.
type WebNode struct {
	// ID is the vertex ID in the originating core.Graph.
	ID string

	// Required marks the vertex as a terminal of the search.
	Required bool

	// Permanent marks the vertex as confirmed part of the solution web.
	Permanent bool

	// Out lists arc indices leaving this vertex.
	Out []int

	// In lists arc indices entering this vertex.
	In []int
}

// WebEdge is a read-only snapshot of one annotated arc. An undirected
// core.Edge appears as two WebEdge entries, one per orientation.
type WebEdge struct {
	// From and To are indices into the WebNode slice passed alongside.
	From, To int

	// FromID and ToID are the corresponding vertex IDs.
	FromID, ToID string

	// Weight is the arc weight (always >= 1).
	Weight int64

	// Permanent marks the arc as confirmed part of the solution web.
	Permanent bool
}

// RepairFunc is the connectivity-repair collaborator invoked once after the
// search terminates. It receives the raw solution as arc indices (possibly
// containing duplicates, possibly spanning several disconnected components)
// together with snapshots of the full annotated web, and returns an
// augmented solution.
//
// Contract: the returned slice must contain every incoming entry (repair
// never removes edges) and must return an already-connected solution
// unchanged (idempotence). Tree validates only that returned indices are in
// range; everything else is the collaborator's responsibility.
type RepairFunc func(solution []int, edges []WebEdge, nodes []WebNode) []int

// Options configures the behavior of Tree.
type Options struct {
	// Repair is the connectivity-repair collaborator; nil disables repair.
	Repair RepairFunc
}

// Option represents a functional option for configuring Tree.
type Option func(*Options)

// WithRepair installs fn as the connectivity-repair collaborator. Pass nil
// to disable repair (the default).
func WithRepair(fn RepairFunc) Option {
	return func(o *Options) { o.Repair = fn }
}

// DefaultOptions returns an Options struct with the defaults used by Tree:
// no repair collaborator.
func DefaultOptions() Options {
	return Options{Repair: nil}
}
