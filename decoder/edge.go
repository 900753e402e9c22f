package decoder

import "fmt"

// Edge is an unordered pair of vertex ids, stored in canonical order
// U <= V. Two edges compare equal iff their canonical pairs match, which
// makes Edge usable directly as a map key.
//
// Invariant: U != V (self-loops are not representable; no decoding graph
// in this module produces them).
type Edge struct {
	U int
	V int
}

// NewEdge returns the Edge for the unordered pair {a, b}, canonicalizing
// the endpoint order so that U <= V.
func NewEdge(a, b int) Edge {
	if a <= b {
		return Edge{U: a, V: b}
	}

	return Edge{U: b, V: a}
}

// Other returns the endpoint of e that is not v. Panics if v is not an
// endpoint of e; callers only ever call this with a known endpoint.
func (e Edge) Other(v int) int {
	switch v {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		panic(fmt.Sprintf("decoder: %d is not an endpoint of %v", v, e))
	}
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.U, e.V)
}

// ErrorType tags the error basis an edge (qubit) is associated with when a
// decoding graph is built from a physical check matrix (see the lattice
// package). The decoder core itself is error-basis agnostic; ErrorType is
// only consumed by syndrome-projection collaborators.
type ErrorType int

const (
	// ErrorX marks a bit-flip (X) error / the corresponding stabilizer basis.
	ErrorX ErrorType = iota
	// ErrorZ marks a phase-flip (Z) error / the corresponding stabilizer basis.
	ErrorZ
)

func (t ErrorType) String() string {
	switch t {
	case ErrorX:
		return "X"
	case ErrorZ:
		return "Z"
	default:
		return "unknown"
	}
}
