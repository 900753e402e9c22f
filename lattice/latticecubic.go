package lattice

import (
	"fmt"

	"github.com/katalvlaran/qecuf/decoder"
)

// LatticeCubic is the L x L x L space-time lattice used for repeated,
// noisy stabilizer measurement: periodic boundary in the two spatial
// directions, open boundary in time. Vertex v = h*L*L + r*L + c. Degree is
// 5 at the two boundary time slices (h==0 or h==L-1) and 6 elsewhere.
type LatticeCubic struct {
	L      int
	layer2 Lattice2D // reused for per-layer spacelike index arithmetic
}

// NewLatticeCubic returns an L x L x L cubic space-time lattice.
func NewLatticeCubic(L int) (*LatticeCubic, error) {
	if L < 2 {
		return nil, fmt.Errorf("NewLatticeCubic: L=%d: %w", L, ErrTooSmall)
	}

	return &LatticeCubic{L: L, layer2: Lattice2D{L: L}}, nil
}

// NumVertices returns L^3.
func (g *LatticeCubic) NumVertices() int { return g.L * g.L * g.L }

// NumEdges returns 3*L^3 - L^2: 2*L^2 spacelike edges per layer, L layers,
// plus L^2 timelike edges between each of the L-1 adjacent layer pairs.
func (g *LatticeCubic) NumEdges() int {
	L := g.L

	return 3*L*L*L - L*L
}

// VertexConnectionCount returns 5 at the two time-boundary layers, 6 otherwise.
func (g *LatticeCubic) VertexConnectionCount(v int) int {
	L := g.L
	h := v / (L * L)
	if h == 0 || h == L-1 {
		return 5
	}

	return 6
}

// VertexConnections returns the spatial toroidal neighbors of v plus its
// timelike neighbor(s), if any.
func (g *LatticeCubic) VertexConnections(v int) []int {
	L := g.L
	h := v / (L * L)
	row := (v / L) % L
	col := v % L

	out := []int{
		g.vertexAt(row-1, col, h),
		g.vertexAt(row+1, col, h),
		g.vertexAt(row, col-1, h),
		g.vertexAt(row, col+1, h),
	}
	if h < L-1 {
		out = append(out, g.vertexAt(row, col, h+1))
	}
	if h > 0 {
		out = append(out, g.vertexAt(row, col, h-1))
	}

	return out
}

func (g *LatticeCubic) vertexAt(row, col, h int) int {
	L := g.L

	return g.layer2.vertexAt(row, col) + h*L*L
}

// EdgeIndex maps e into the "slab" index space: each of the L layers owns
// 3*L^2 contiguous indices (2*L^2 spacelike + L^2 timelike-upward), except
// the last layer, whose timelike-upward range is never used since there is
// no layer above it.
func (g *LatticeCubic) EdgeIndex(e decoder.Edge) int {
	L := g.L
	uh := e.U / (L * L)
	vh := e.V / (L * L)

	if uh == vh {
		// Spacelike: delegate to the per-layer Lattice2D indexing.
		layerEdge := decoder.NewEdge(e.U%(L*L), e.V%(L*L))

		return g.layer2.EdgeIndex(layerEdge) + 3*L*L*uh
	}

	// Timelike: index by the lower endpoint's (row, col).
	lowH := uh
	if vh < uh {
		lowH = vh
	}
	lowVertex := e.U
	if e.U/(L*L) != lowH {
		lowVertex = e.V
	}
	row := (lowVertex / L) % L
	col := lowVertex % L

	return 3*L*L*lowH + 2*L*L + L*row + col
}
