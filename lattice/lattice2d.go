package lattice

import (
	"fmt"

	"github.com/katalvlaran/qecuf/decoder"
)

// Lattice2D is the L x L toric (periodic boundary) surface-code lattice.
// Vertex v = r*L + c encodes row r, column c; every vertex has degree 4.
// Edge indices in [0, L*L) are vertical qubits, [L*L, 2*L*L) are
// horizontal qubits, grounded on the canonical toric indexing where each
// vertex owns the edge immediately "below" it (vertical) and immediately
// "right" of it (horizontal), wrapping toroidally.
type Lattice2D struct {
	L int
}

// NewLattice2D returns an L x L toric lattice. L must be at least 2. Every
// vertex has four distinct neighbors only for L >= 3; at L == 2 the up and
// down neighbors coincide, as do the left and right ones.
func NewLattice2D(L int) (*Lattice2D, error) {
	if L < 2 {
		return nil, fmt.Errorf("NewLattice2D: L=%d: %w", L, ErrTooSmall)
	}

	return &Lattice2D{L: L}, nil
}

// NumVertices returns L*L.
func (g *Lattice2D) NumVertices() int { return g.L * g.L }

// NumEdges returns 2*L*L.
func (g *Lattice2D) NumEdges() int { return 2 * g.L * g.L }

// VertexConnectionCount always returns 4: every vertex of the toric
// lattice has degree 4.
func (g *Lattice2D) VertexConnectionCount(int) int { return 4 }

// VertexConnections returns the 4 toroidal neighbors of v, in
// up/down/left/right order.
func (g *Lattice2D) VertexConnections(v int) []int {
	L := g.L
	row, col := v/L, v%L

	return []int{
		g.vertexAt(row-1, col),
		g.vertexAt(row+1, col),
		g.vertexAt(row, col-1),
		g.vertexAt(row, col+1),
	}
}

func (g *Lattice2D) vertexAt(row, col int) int {
	L := g.L

	return ((row%L+L)%L)*L + (col%L+L)%L
}

// EdgeIndex maps e to its position in [0, 2*L*L). Vertical edges (the two
// endpoints differ by one row, toroidally) occupy [0, L*L) indexed by the
// upper endpoint; horizontal edges (differ by one column, toroidally)
// occupy [L*L, 2*L*L) indexed by the left endpoint.
func (g *Lattice2D) EdgeIndex(e decoder.Edge) int {
	L := g.L
	ur, uc := e.U/L, e.U%L
	vr, vc := e.V/L, e.V%L

	if ur == vr {
		// Horizontal: canonical vertex is the one immediately left of the other.
		left := e.U
		if (uc+1)%L != vc {
			left = e.V
		}

		return L*(left/L) + left%L + L*L
	}

	// Vertical: canonical vertex is the one immediately above the other.
	upper := e.U
	if (ur+1)%L != vr {
		upper = e.V
	}

	return L*(upper/L) + upper%L
}

// EdgeAt is the inverse of EdgeIndex: it reconstructs the Edge occupying
// slot idx. It is not part of decoder.DecodingGraph; benchmark and test
// code use it to enumerate the lattice's qubits directly by index.
func (g *Lattice2D) EdgeAt(idx int) decoder.Edge {
	L := g.L
	if idx < L*L {
		// Vertical: idx is the upper vertex.
		row, col := idx/L, idx%L

		return decoder.NewEdge(idx, g.vertexAt(row+1, col))
	}

	// Horizontal: idx-L*L is the left vertex.
	left := idx - L*L
	row, col := left/L, left%L

	return decoder.NewEdge(left, g.vertexAt(row, col+1))
}
