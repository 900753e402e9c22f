package syndrome

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/qecuf/decoder"
)

// Project folds a physical error vector (one entry per qubit, aligned
// index-for-index with edges) onto a syndrome of length numVertices: every
// errored qubit flips the parity of both of its edge's endpoints.
//
// This is the general CSS-style check-matrix projection and is what
// LatticeFromParity-derived graphs use directly. Lattice2D's toric X/Z
// syndromes additionally need the dual-lattice offset ProjectToric2D
// applies; see that function for the X-basis case.
func Project(edges []decoder.Edge, numVertices int, physicalError []uint8) []uint8 {
	out := make([]uint8, numVertices)
	for idx, bit := range physicalError {
		if bit == 0 {
			continue
		}
		e := edges[idx]
		out[e.U]++
		out[e.V]++
	}

	for i, v := range out {
		out[i] = v % 2
	}

	return out
}

// ProjectToric2D projects a physical error over an L x L toric lattice's
// 2*L*L qubits onto its L*L-vertex syndrome, for the given error basis.
// Z errors project the same way as Project (flip both edge endpoints).
// X errors project onto the dual lattice: a horizontal qubit flips its
// left vertex and the vertex directly above it; a vertical qubit flips
// its lower vertex and the vertex directly to its left.
func ProjectToric2D(L int, physicalError []uint8, errType decoder.ErrorType) []uint8 {
	out := make([]uint8, L*L)

	vertexAt := func(row, col int) int {
		return ((row%L+L)%L)*L + (col%L+L)%L
	}

	for idx, bit := range physicalError {
		if bit == 0 {
			continue
		}

		if errType == decoder.ErrorZ {
			if idx < L*L {
				row, col := idx/L, idx%L
				out[idx]++
				out[vertexAt(row+1, col)]++
			} else {
				left := idx - L*L
				row, col := left/L, left%L
				out[left]++
				out[vertexAt(row, col+1)]++
			}

			continue
		}

		// ErrorX: project onto the dual lattice.
		if idx < L*L {
			// Vertical qubit: flip lower vertex and the vertex left of it.
			row, col := idx/L, idx%L
			lower := vertexAt(row+1, col)
			lr, lc := lower/L, lower%L
			out[lower]++
			out[vertexAt(lr, lc-1)]++
		} else {
			// Horizontal qubit: flip left vertex and the vertex above it.
			left := idx - L*L
			row, col := left/L, left%L
			out[left]++
			out[vertexAt(row-1, col)]++
		}
	}

	for i, v := range out {
		out[i] = v % 2
	}

	return out
}

// Mask returns the set of defective (odd-valued) vertices of syndrome as a
// compact bitset, so defect counts and membership tests do not need to
// rescan the dense syndrome slice.
func Mask(syndrome []uint8) *bitset.BitSet {
	mask := bitset.New(uint(len(syndrome)))
	for v, s := range syndrome {
		if s%2 == 1 {
			mask.Set(uint(v))
		}
	}

	return mask
}
