package syndrome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qecuf/decoder"
	"github.com/katalvlaran/qecuf/syndrome"
)

func TestIsLogicalError_NoErrorIsNotLogical(t *testing.T) {
	L := 3
	errorTotal := make([]uint8, 2*L*L)

	assert.False(t, syndrome.IsLogicalError(L, errorTotal, decoder.ErrorZ))
	assert.False(t, syndrome.IsLogicalError(L, errorTotal, decoder.ErrorX))
}

func TestIsLogicalError_SingleQubitOnRepresentativeIsLogical(t *testing.T) {
	L := 3
	errorTotal := make([]uint8, 2*L*L)
	errorTotal[0] = 1 // first vertical qubit, part of the Z-basis representative

	assert.True(t, syndrome.IsLogicalError(L, errorTotal, decoder.ErrorZ))
}

func TestApplyCorrections_TogglesQubits(t *testing.T) {
	errorTotal := make([]uint8, 4)
	edgeIndex := func(e decoder.Edge) int {
		if e == decoder.NewEdge(0, 1) {
			return 2
		}
		return -1
	}

	syndrome.ApplyCorrections(edgeIndex, []decoder.Edge{decoder.NewEdge(0, 1)}, errorTotal)
	assert.Equal(t, uint8(1), errorTotal[2])

	syndrome.ApplyCorrections(edgeIndex, []decoder.Edge{decoder.NewEdge(0, 1)}, errorTotal)
	assert.Equal(t, uint8(0), errorTotal[2])
}
