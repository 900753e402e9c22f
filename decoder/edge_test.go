package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/qecuf/decoder"
)

func TestNewEdge_Canonicalizes(t *testing.T) {
	e := decoder.NewEdge(5, 2)
	assert.Equal(t, decoder.Edge{U: 2, V: 5}, e)

	e2 := decoder.NewEdge(2, 5)
	assert.Equal(t, e, e2, "NewEdge must be order-independent")
}

func TestEdge_Other(t *testing.T) {
	e := decoder.NewEdge(3, 7)
	assert.Equal(t, 7, e.Other(3))
	assert.Equal(t, 3, e.Other(7))
}

func TestEdge_Other_PanicsOnForeignVertex(t *testing.T) {
	e := decoder.NewEdge(3, 7)
	assert.Panics(t, func() { e.Other(9) })
}

func TestEdge_String(t *testing.T) {
	e := decoder.NewEdge(4, 1)
	assert.Equal(t, "(1,4)", e.String())
}

func TestErrorType_String(t *testing.T) {
	assert.Equal(t, "X", decoder.ErrorX.String())
	assert.Equal(t, "Z", decoder.ErrorZ.String())
	assert.Equal(t, "unknown", decoder.ErrorType(99).String())
}
