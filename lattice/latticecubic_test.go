package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qecuf/decoder"
	"github.com/katalvlaran/qecuf/lattice"
)

func TestNewLatticeCubic_RejectsTooSmall(t *testing.T) {
	_, err := lattice.NewLatticeCubic(1)
	assert.ErrorIs(t, err, lattice.ErrTooSmall)
}

func TestLatticeCubic_Dimensions(t *testing.T) {
	L := 3
	g, err := lattice.NewLatticeCubic(L)
	require.NoError(t, err)

	assert.Equal(t, 27, g.NumVertices())
	assert.Equal(t, 72, g.NumEdges()) // 3*27 - 9
}

func TestLatticeCubic_DegreeRule(t *testing.T) {
	L := 4
	g, err := lattice.NewLatticeCubic(L)
	require.NoError(t, err)

	for v := 0; v < g.NumVertices(); v++ {
		h := v / (L * L)
		want := 6
		if h == 0 || h == L-1 {
			want = 5
		}
		assert.Equal(t, want, g.VertexConnectionCount(v))
		assert.Len(t, g.VertexConnections(v), want)
	}
}

func TestLatticeCubic_EdgeIndexOrderIndependentAndInRange(t *testing.T) {
	L := 3
	g, err := lattice.NewLatticeCubic(L)
	require.NoError(t, err)

	for v := 0; v < g.NumVertices(); v++ {
		for _, u := range g.VertexConnections(v) {
			idx1 := g.EdgeIndex(decoder.NewEdge(v, u))
			idx2 := g.EdgeIndex(decoder.NewEdge(u, v))
			assert.Equal(t, idx1, idx2)
			assert.GreaterOrEqual(t, idx1, 0)
			assert.Less(t, idx1, g.NumEdges())
		}
	}
}

func TestLatticeCubic_EdgeIndexIsInjective(t *testing.T) {
	L := 3
	g, err := lattice.NewLatticeCubic(L)
	require.NoError(t, err)

	seen := make(map[int]decoder.Edge)
	for v := 0; v < g.NumVertices(); v++ {
		for _, u := range g.VertexConnections(v) {
			e := decoder.NewEdge(v, u)
			idx := g.EdgeIndex(e)
			if prior, ok := seen[idx]; ok {
				assert.Equal(t, prior, e, "edge index %d reused by distinct edges", idx)
			}
			seen[idx] = e
		}
	}
	assert.Equal(t, g.NumEdges(), len(seen))
}
