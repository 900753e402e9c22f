package lattice

import (
	"fmt"

	"github.com/katalvlaran/qecuf/decoder"
)

// LatticeFromParity derives a decoding graph from a sparse binary
// parity-check matrix in CSR form (num_parities rows x num_qubits
// columns). Vertices are parities; edges are qubits, each of which must
// appear in exactly two rows. NewRepeated replicates the layer in the
// time direction for repeated, noisy stabilizer measurement.
type LatticeFromParity struct {
	numVertices int
	numEdges    int
	connections [][]int
	index       map[decoder.Edge]int
}

// New builds a single-layer LatticeFromParity. colIndices and indptr are
// the standard CSR column-index and row-pointer arrays: row p's entries
// are colIndices[indptr[p]:indptr[p+1]]. Every column (qubit) must appear
// in exactly two rows (parities); any other count is rejected.
func New(numParities, numQubits int, colIndices, indptr []int) (*LatticeFromParity, error) {
	qubitParities, err := qubitAssociatedParities(numParities, numQubits, colIndices, indptr)
	if err != nil {
		return nil, err
	}

	layerEdgeIdx := buildLayerEdgeIndex(numQubits, qubitParities)

	g := &LatticeFromParity{
		numVertices: numParities,
		numEdges:    numQubits,
		index:       layerEdgeIdx,
	}
	g.connections = buildConnections(numParities, layerEdgeIdx)

	return g, nil
}

// NewRepeated builds a repetitions-deep space-time lattice by replicating
// the single layer described by (numParities, numQubits, colIndices,
// indptr) repetitions times: layer h occupies vertex ids
// [h*numParities, (h+1)*numParities). Edge indices are assigned canonically
// in "slabs" of numQubits+numParities contiguous ids per layer: the first
// numQubits reproduce the layer's own indexing, the trailing numParities
// are the timelike edges leaving that layer upward (any bijection
// satisfies the decoder's contract; this ordering is chosen for
// determinism and to match LatticeCubic's slab layout).
func NewRepeated(numParities, numQubits int, colIndices, indptr []int, repetitions int) (*LatticeFromParity, error) {
	if repetitions < 2 {
		return nil, fmt.Errorf("NewRepeated: repetitions=%d: %w", repetitions, ErrRepetitionsTooFew)
	}

	qubitParities, err := qubitAssociatedParities(numParities, numQubits, colIndices, indptr)
	if err != nil {
		return nil, err
	}

	layerEdgeIdx := buildLayerEdgeIndex(numQubits, qubitParities)

	numVertices := numParities * repetitions
	numEdges := numQubits*repetitions + numParities*(repetitions-1)
	index := make(map[decoder.Edge]int, numEdges)

	for depth := 0; depth < repetitions; depth++ {
		for layerEdge, qIdx := range layerEdgeIdx {
			e := decoder.NewEdge(layerEdge.U+depth*numParities, layerEdge.V+depth*numParities)
			index[e] = qIdx + depth*(numParities+numQubits)
		}
	}

	for depth := 0; depth < repetitions-1; depth++ {
		for v := 0; v < numParities; v++ {
			e := decoder.NewEdge(depth*numParities+v, (depth+1)*numParities+v)
			index[e] = depth*(numParities+numQubits) + numQubits + v
		}
	}

	g := &LatticeFromParity{
		numVertices: numVertices,
		numEdges:    numEdges,
		index:       index,
	}
	g.connections = buildConnections(numVertices, index)

	return g, nil
}

// NumVertices returns the number of parity-check vertices.
func (g *LatticeFromParity) NumVertices() int { return g.numVertices }

// NumEdges returns the number of qubit edges.
func (g *LatticeFromParity) NumEdges() int { return g.numEdges }

// VertexConnectionCount returns the degree of v.
func (g *LatticeFromParity) VertexConnectionCount(v int) int { return len(g.connections[v]) }

// VertexConnections returns the neighbor vertex ids of v.
func (g *LatticeFromParity) VertexConnections(v int) []int { return g.connections[v] }

// EdgeIndex maps e to its position in [0, NumEdges()). Panics if e is not
// an edge of this graph; callers only ever invoke this with edges derived
// from VertexConnections, for which it is always well-defined.
func (g *LatticeFromParity) EdgeIndex(e decoder.Edge) int {
	idx, ok := g.index[e]
	if !ok {
		panic(fmt.Sprintf("lattice: %v is not an edge of this LatticeFromParity", e))
	}

	return idx
}

// qubitAssociatedParities inverts the CSR parity matrix into, per qubit,
// the (exactly two) parity rows it participates in.
func qubitAssociatedParities(numParities, numQubits int, colIndices, indptr []int) ([][]int, error) {
	if numParities == 0 || numQubits == 0 {
		return nil, ErrZeroDimension
	}

	qubitParities := make([][]int, numQubits)
	for p := 0; p < numParities; p++ {
		for idx := indptr[p]; idx < indptr[p+1]; idx++ {
			q := colIndices[idx]
			qubitParities[q] = append(qubitParities[q], p)
		}
	}

	for q, parities := range qubitParities {
		if len(parities) != 2 {
			return nil, fmt.Errorf("qubit %d appears in %d parities: %w", q, len(parities), ErrBadQubitDegree)
		}
	}

	return qubitParities, nil
}

// buildLayerEdgeIndex assigns edge_idx == qubit id to each qubit's
// (parity, parity) edge. If two qubits coincide on the same pair of
// parities, the first one encountered keeps the index (mirrors the
// reference decoder's first-write-wins semantics for degenerate inputs).
func buildLayerEdgeIndex(numQubits int, qubitParities [][]int) map[decoder.Edge]int {
	index := make(map[decoder.Edge]int, numQubits)
	for q := 0; q < numQubits; q++ {
		e := decoder.NewEdge(qubitParities[q][0], qubitParities[q][1])
		if _, ok := index[e]; !ok {
			index[e] = q
		}
	}

	return index
}

func buildConnections(numVertices int, index map[decoder.Edge]int) [][]int {
	connections := make([][]int, numVertices)
	for e := range index {
		connections[e.U] = append(connections[e.U], e.V)
		connections[e.V] = append(connections[e.V], e.U)
	}

	return connections
}
