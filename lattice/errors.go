package lattice

import "errors"

// Sentinel errors for lattice construction.
var (
	// ErrTooSmall indicates a requested lattice linear size L is below
	// the minimum needed for the lattice to be well-defined (L >= 2).
	ErrTooSmall = errors.New("lattice: L too small")

	// ErrZeroDimension indicates NumParities or NumQubits was zero.
	ErrZeroDimension = errors.New("lattice: num_parities and num_qubits must both be nonzero")

	// ErrBadQubitDegree indicates a qubit column did not appear in
	// exactly two parity rows of the CSR matrix.
	ErrBadQubitDegree = errors.New("lattice: every qubit must appear in exactly two parities")

	// ErrRepetitionsTooFew indicates a repeated LatticeFromParity was
	// requested with repetitions < 2.
	ErrRepetitionsTooFew = errors.New("lattice: repetitions must be >= 2")
)
