package decoder

// LazyPreDecoder opportunistically matches pairs of adjacent defects before
// the full UnionFindDecoder runs. It is always safe to call: on success the
// syndrome is fully annihilated and the full decoder need not run at all;
// on failure the (partially reduced) syndrome and the corrections found so
// far are simply handed to UnionFindDecoder, whose output is concatenated
// with these.
type LazyPreDecoder struct {
	edges []Edge
}

// NewLazyPreDecoder caches the graph's edge list once, at construction, so
// repeated Decode calls over many shots do not re-derive it.
func NewLazyPreDecoder(g DecodingGraph) *LazyPreDecoder {
	return &LazyPreDecoder{edges: allEdges(g)}
}

// Decode scans the cached edge list once, proposing a correction for every
// edge whose both endpoints are currently defective, then applies those
// corrections to syndrome. It returns whether the syndrome is fully
// annihilated afterward, and the corrections chosen.
//
// syndrome is mutated in place; its length must equal the graph's vertex
// count (the caller is expected to have validated this already, as
// LazyPreDecoder is always used as a pre-pass ahead of UnionFindDecoder.Decode).
func (d *LazyPreDecoder) Decode(syndrome []uint8) (success bool, corrections []Edge) {
	for _, e := range d.edges {
		if syndrome[e.U]%2 == 1 && syndrome[e.V]%2 == 1 {
			corrections = append(corrections, e)
		}
	}

	for _, e := range corrections {
		syndrome[e.U] ^= 1
		syndrome[e.V] ^= 1
	}

	success = true
	for _, s := range syndrome {
		if s%2 == 1 {
			success = false
			break
		}
	}

	return success, corrections
}

// allEdges derives the canonical edge list of g by iterating every
// vertex's connections and deduplicating through EdgeIndex, which is a
// bijection onto [0, NumEdges()). This is the DecodingGraph-capability-set
// equivalent of caching "the list of all edges" up front.
func allEdges(g DecodingGraph) []Edge {
	out := make([]Edge, g.NumEdges())
	seen := make([]bool, g.NumEdges())

	for v := 0; v < g.NumVertices(); v++ {
		for _, u := range g.VertexConnections(v) {
			e := NewEdge(v, u)
			idx := g.EdgeIndex(e)
			if !seen[idx] {
				out[idx] = e
				seen[idx] = true
			}
		}
	}

	return out
}
