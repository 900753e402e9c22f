package decoder

// DecodingGraph is the capability set the decoder requires from any graph:
// vertices are parity checks, edges are qubits. Implementations are
// expected to be read-only after construction and safely shared across
// many decoder instances (see the lattice package for concrete graphs).
//
// Contract:
//   - EdgeIndex is a bijection between the graph's actual edges and
//     [0, NumEdges()).
//   - For every v and every u in VertexConnections(v), EdgeIndex(NewEdge(u, v))
//     is well-defined, and u is a connection of v iff v is a connection of u.
//   - VertexConnectionCount(v) == len(VertexConnections(v)).
//
// UnionFindDecoder stores its graph as this interface, so every neighbor,
// degree and edge-index lookup in the decoder's hot loop is a dynamic
// interface call, also when a concrete *lattice.Lattice2D etc. is passed to
// NewUnionFindDecoder; the decoder has no statically dispatched variant.
type DecodingGraph interface {
	// NumVertices returns the number of parity-check vertices.
	NumVertices() int
	// NumEdges returns the number of qubit edges.
	NumEdges() int
	// VertexConnections returns the neighbor vertex ids of v.
	VertexConnections(v int) []int
	// VertexConnectionCount returns the degree of v.
	VertexConnectionCount(v int) int
	// EdgeIndex maps an Edge to its position in [0, NumEdges()).
	EdgeIndex(e Edge) int
}
