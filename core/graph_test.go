package core_test

import (
	"testing"

	"github.com/katalvlaran/steinerweb/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSupplyOrder verifies that Vertices and Edges return catalog entries
// in the exact order they were supplied, including vertices created
// implicitly by AddEdge.
func TestSupplyOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	// "Z" is added explicitly first; "A"/"B" arrive via AddEdge.
	require.NoError(t, g.AddVertex("Z"))
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"Z", "A", "B", "C"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, "B", edges[0].To)
	assert.Equal(t, "B", edges[1].From)
	assert.Equal(t, "C", edges[1].To)
}

// TestAddVertex_Validation covers empty IDs and idempotent re-insertion.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // no-op, no duplicate slot
	assert.Equal(t, []string{"A"}, g.Vertices())
	assert.Equal(t, 1, g.VertexCount())
}

// TestAddEdge_PolicyChecks verifies the construction-time policies:
// weight, loops, and multi-edges.
func TestAddEdge_PolicyChecks(t *testing.T) {
	// Unweighted graphs reject non-zero weights.
	gU := core.NewGraph()
	_, err := gU.AddEdge("A", "B", 3)
	assert.ErrorIs(t, err, core.ErrBadWeight)

	// Loops are rejected unless enabled.
	gL := core.NewGraph(core.WithWeighted())
	_, err = gL.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	gL2 := core.NewGraph(core.WithWeighted(), core.WithLoops())
	_, err = gL2.AddEdge("A", "A", 1)
	assert.NoError(t, err)

	// Parallel edges are rejected unless enabled.
	gM := core.NewGraph(core.WithWeighted())
	_, err = gM.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = gM.AddEdge("A", "B", 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	gM2 := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, err = gM2.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = gM2.AddEdge("A", "B", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, gM2.EdgeCount())

	// Empty endpoint IDs are rejected.
	_, err = gM.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestHasEdge_Orientation checks that undirected edges answer both
// orientations while directed edges answer only their own.
func TestHasEdge_Orientation(t *testing.T) {
	gUndir := core.NewGraph(core.WithWeighted())
	_, err := gUndir.AddEdge("A", "B", 1)
	require.NoError(t, err)
	assert.True(t, gUndir.HasEdge("A", "B"))
	assert.True(t, gUndir.HasEdge("B", "A"))

	gDir := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err = gDir.AddEdge("A", "B", 1)
	require.NoError(t, err)
	assert.True(t, gDir.HasEdge("A", "B"))
	assert.False(t, gDir.HasEdge("B", "A"))
}

// TestOutInEdges verifies traversable-edge queries in both graph modes.
func TestOutInEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", 1)
	require.NoError(t, err)

	out, err := g.OutEdges("B")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "C", out[0].To)

	in, err := g.InEdges("B")
	require.NoError(t, err)
	require.Len(t, in, 2)
	assert.Equal(t, "A", in[0].From)
	assert.Equal(t, "C", in[1].From)

	_, err = g.OutEdges("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// Undirected graphs report incident edges in both queries.
	gU := core.NewGraph(core.WithWeighted())
	_, err = gU.AddEdge("A", "B", 1)
	require.NoError(t, err)
	outU, err := gU.OutEdges("B")
	require.NoError(t, err)
	assert.Len(t, outU, 1)
	inU, err := gU.InEdges("A")
	require.NoError(t, err)
	assert.Len(t, inU, 1)
}

// TestGetEdge covers the lookup path and ErrEdgeNotFound.
func TestGetEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 7)
	require.NoError(t, err)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, int64(7), e.Weight)

	_, err = g.GetEdge("e999")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestClone_Independence verifies that mutations of a clone do not leak
// into the original and that supply order survives cloning.
func TestClone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	_, err = c.AddEdge("C", "D", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.EdgeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasVertex("D"))
}

// TestFlagGetters confirms the option flags round-trip.
func TestFlagGetters(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	d := core.NewGraph()
	assert.False(t, d.Directed())
	assert.False(t, d.Weighted())
	assert.False(t, d.Looped())
	assert.False(t, d.Multigraph())
}
