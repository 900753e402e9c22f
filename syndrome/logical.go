package syndrome

import "github.com/katalvlaran/qecuf/decoder"

// IsLogicalError tests an accumulated physical-error vector over an L x L
// toric lattice (2*L*L entries, aligned with lattice.Lattice2D's edge
// indexing) against the two representative logical operators of the given
// basis, and reports whether either representative's parity is odd — a
// residual, homologically non-trivial error surviving correction.
//
// For Z-basis: the representatives are the first row of vertical qubits
// (indices 0..L-1) and the first column of horizontal qubits (indices
// L*L, L*L+L, L*L+2L, ...). For X-basis the dual representatives are used
// (first column of vertical qubits, first row of horizontal qubits).
func IsLogicalError(L int, errorTotal []uint8, errType decoder.ErrorType) bool {
	var sum1, sum2 int

	switch errType {
	case decoder.ErrorZ:
		for u := 0; u < L; u++ {
			sum1 += int(errorTotal[u])
		}
		for u := L * L; u < 2*L*L; u += L {
			sum2 += int(errorTotal[u])
		}
	case decoder.ErrorX:
		for u := 0; u < L*L; u += L {
			sum1 += int(errorTotal[u])
		}
		for u := L * L; u < L*L+L; u++ {
			sum2 += int(errorTotal[u])
		}
	}

	return sum1%2 == 1 || sum2%2 == 1
}

// ApplyCorrections folds the decoder's returned correction edges into
// errorTotal, the running physical-error accumulator, the way a benchmark
// harness tracks whether a correction actually cancels the sampled error
// (versus merely annihilating the syndrome while introducing a logical
// shift). Each correction edge is translated back to its qubit index via
// the lattice's own EdgeIndex.
func ApplyCorrections(edgeIndex func(decoder.Edge) int, corrections []decoder.Edge, errorTotal []uint8) {
	for _, e := range corrections {
		idx := edgeIndex(e)
		errorTotal[idx] ^= 1
	}
}
