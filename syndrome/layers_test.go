package syndrome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qecuf/syndrome"
)

func TestAccumulateLayers_FirstLayerUntouched(t *testing.T) {
	raw := []uint8{1, 0, 0, 1}
	syndrome.AccumulateLayers(2, 2, raw)

	assert.Equal(t, uint8(1), raw[0])
	assert.Equal(t, uint8(0), raw[1])
}

func TestAccumulateLayers_DiffsAgainstPreviousRound(t *testing.T) {
	// Two layers, layerSize 3: round 0 = [1,0,1], round 1 = [1,1,1].
	// Round 1's diff should be XOR(round1, round0) = [0,1,0].
	raw := []uint8{1, 0, 1, 1, 1, 1}
	syndrome.AccumulateLayers(3, 2, raw)

	assert.Equal(t, []uint8{1, 0, 1}, raw[0:3])
	assert.Equal(t, []uint8{0, 1, 0}, raw[3:6])
}

func TestAccumulateLayers_StableMeasurementHasNoDiff(t *testing.T) {
	raw := []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1}
	syndrome.AccumulateLayers(3, 3, raw)

	for i := 3; i < 9; i++ {
		assert.Zero(t, raw[i])
	}
}
