package decoder_test

import (
	"fmt"

	"github.com/katalvlaran/qecuf/decoder"
	"github.com/katalvlaran/qecuf/lattice"
)

// This example decodes a single pair of adjacent defects on a small toric
// lattice and reports how many qubits the correction touches.
func ExampleUnionFindDecoder_Decode() {
	g, err := lattice.NewLattice2D(4)
	if err != nil {
		panic(err)
	}

	syndrome := make([]uint8, g.NumVertices())
	syndrome[0] = 1
	syndrome[4] = 1

	d := decoder.NewUnionFindDecoder(g)
	corrections, err := d.Decode(syndrome)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(corrections))
	// Output: 1
}
