package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qecuf/decoder"
	"github.com/katalvlaran/qecuf/lattice"
)

func TestLazyPreDecoder_AdjacentPairFullyAnnihilates(t *testing.T) {
	g, err := lattice.NewLattice2D(4)
	require.NoError(t, err)

	syndrome := make([]uint8, g.NumVertices())
	syndrome[0] = 1
	syndrome[g.VertexConnections(0)[1]] = 1 // the vertex below vertex 0

	lazy := decoder.NewLazyPreDecoder(g)
	ok, corrections := lazy.Decode(syndrome)

	assert.True(t, ok)
	assert.Len(t, corrections, 1)
	for _, s := range syndrome {
		assert.Zero(t, s)
	}
}

func TestLazyPreDecoder_IsolatedDefectFails(t *testing.T) {
	g, err := lattice.NewLattice2D(4)
	require.NoError(t, err)

	syndrome := make([]uint8, g.NumVertices())
	syndrome[5] = 1

	lazy := decoder.NewLazyPreDecoder(g)
	ok, corrections := lazy.Decode(syndrome)

	assert.False(t, ok)
	assert.Empty(t, corrections)
	assert.Equal(t, uint8(1), syndrome[5])
}

func TestLazyPreDecoder_EmptySyndromeSucceedsTrivially(t *testing.T) {
	g, err := lattice.NewLattice2D(3)
	require.NoError(t, err)

	syndrome := make([]uint8, g.NumVertices())

	lazy := decoder.NewLazyPreDecoder(g)
	ok, corrections := lazy.Decode(syndrome)

	assert.True(t, ok)
	assert.Empty(t, corrections)
}
