package noise_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qecuf/noise"
)

func TestGenerate_ZeroProbabilityYieldsNoErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, nt := range []noise.Type{noise.Depolarizing, noise.Independent, noise.OnlyX, noise.OnlyZ} {
		xErr, zErr := noise.Generate(rng, 50, 0, nt)
		for i := range xErr {
			assert.Zero(t, xErr[i])
			assert.Zero(t, zErr[i])
		}
	}
}

func TestGenerate_OnlyXNeverSetsZ(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	_, zErr := noise.Generate(rng, 100, 0.5, noise.OnlyX)
	for _, z := range zErr {
		assert.Zero(t, z)
	}
}

func TestGenerate_OnlyZNeverSetsX(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	xErr, _ := noise.Generate(rng, 100, 0.5, noise.OnlyZ)
	for _, x := range xErr {
		assert.Zero(t, x)
	}
}

func TestGenerate_FullProbabilityDepolarizingAlwaysErrs(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	xErr, zErr := noise.Generate(rng, 30, 1.0, noise.Depolarizing)
	for i := range xErr {
		assert.True(t, xErr[i] == 1 || zErr[i] == 1, "qubit %d should carry some error at p=1", i)
	}
}

func TestGenerateLayered_AccumulatesModuloTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	xErrs, zErrs := noise.GenerateLayered(rng, 20, 5, 0.3, noise.Independent)

	assert.Len(t, xErrs, 5)
	assert.Len(t, zErrs, 5)
	for _, round := range xErrs {
		for _, bit := range round {
			assert.True(t, bit == 0 || bit == 1)
		}
	}
}

func TestGenerateMeasurementNoise_LastRoundIsPerfect(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	rows := noise.GenerateMeasurementNoise(rng, 40, 4, 0.9)

	assert.Len(t, rows, 4)
	for _, v := range rows[3] {
		assert.Zero(t, v)
	}
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "depolarizing", noise.Depolarizing.String())
	assert.Equal(t, "independent", noise.Independent.String())
	assert.Equal(t, "X", noise.OnlyX.String())
	assert.Equal(t, "Z", noise.OnlyZ.String())
	assert.Equal(t, "unknown", noise.Type(99).String())
}
