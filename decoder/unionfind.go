package decoder

import "github.com/bits-and-blooms/bitset"

// UnionFindDecoder implements the grow/fuse/peel Union-Find decoder over
// any DecodingGraph. One instance may be reused across many shots; Decode
// resets all per-shot state at the top of every call, so Clear only needs
// to be called explicitly when the caller wants to release memory between
// uses without decoding again.
type UnionFindDecoder struct {
	graph DecodingGraph

	// Per-shot cluster state. Refilled by initCluster at the start of
	// every Decode call.
	rootOfVertex     []int
	support          []uint8
	connectionCounts []int
	border           map[int]*bitset.BitSet
	fuseList         *edgeDeque
	peelingEdges     *edgeDeque
	mgr              *rootManager
}

// NewUnionFindDecoder returns a decoder over graph. graph is expected to be
// read-only and may be shared by other decoder instances.
func NewUnionFindDecoder(graph DecodingGraph) *UnionFindDecoder {
	return &UnionFindDecoder{
		graph:        graph,
		border:       make(map[int]*bitset.BitSet),
		fuseList:     newEdgeDeque(),
		peelingEdges: newEdgeDeque(),
		mgr:          newRootManager(),
	}
}

// NumVertices passes through to the underlying graph.
func (d *UnionFindDecoder) NumVertices() int { return d.graph.NumVertices() }

// NumEdges passes through to the underlying graph.
func (d *UnionFindDecoder) NumEdges() int { return d.graph.NumEdges() }

// EdgeIndex passes through to the underlying graph.
func (d *UnionFindDecoder) EdgeIndex(e Edge) int { return d.graph.EdgeIndex(e) }

// Decode consumes and mutates syndrome (length must equal NumVertices) and
// returns the list of edges whose physical qubits should be flipped so
// that every syndrome entry becomes even. syndrome is left entirely zero
// on return.
func (d *UnionFindDecoder) Decode(syndrome []uint8) ([]Edge, error) {
	if len(syndrome) != d.graph.NumVertices() {
		return nil, ErrSyndromeLength
	}

	defects := make([]int, 0)
	for v, s := range syndrome {
		if s%2 == 1 {
			defects = append(defects, v)
		}
	}

	d.initCluster(defects)

	for !d.mgr.isEmptyOddRoot() {
		snapshot := d.mgr.oddRootsSnapshot()
		for _, root := range snapshot {
			d.grow(root)
		}
		d.fusion()
	}

	return d.peeling(syndrome), nil
}

// initCluster resets connection_counts/support/root_of_vertex to fresh
// zero/identity state and seeds one singleton cluster per defect.
func (d *UnionFindDecoder) initCluster(defects []int) {
	n := d.graph.NumVertices()
	e := d.graph.NumEdges()

	d.connectionCounts = make([]int, n)
	d.support = make([]uint8, e)
	d.mgr.initializeRoots(defects)

	d.border = make(map[int]*bitset.BitSet, len(defects))
	for _, v := range defects {
		bs := bitset.New(uint(n))
		bs.Set(uint(v))
		d.border[v] = bs
	}

	if cap(d.rootOfVertex) < n {
		d.rootOfVertex = make([]int, n)
	} else {
		d.rootOfVertex = d.rootOfVertex[:n]
	}
	for v := 0; v < n; v++ {
		d.rootOfVertex[v] = v
	}
}

// grow admits one unit of half-edge growth from every border vertex of
// root's cluster. An edge becomes fully grown (support reaches 2) only
// once both its endpoints have grown into it.
func (d *UnionFindDecoder) grow(root int) {
	borderSet := d.border[root]

	for b, ok := borderSet.NextSet(0); ok; b, ok = borderSet.NextSet(b + 1) {
		border := int(b)
		for _, v := range d.graph.VertexConnections(border) {
			e := NewEdge(border, v)
			idx := d.graph.EdgeIndex(e)

			if d.support[idx] >= 2 {
				continue
			}
			d.support[idx]++

			if d.support[idx] == 2 {
				d.connectionCounts[e.U]++
				d.connectionCounts[e.V]++
				d.fuseList.PushBack(e)
			}
		}
	}
}

// findRoot resolves the root of vertex via the union-find parent chain,
// compressing every visited pointer to the discovered root.
func (d *UnionFindDecoder) findRoot(vertex int) int {
	root := vertex
	for d.rootOfVertex[root] != root {
		root = d.rootOfVertex[root]
	}

	for d.rootOfVertex[vertex] != root {
		next := d.rootOfVertex[vertex]
		d.rootOfVertex[vertex] = root
		vertex = next
	}

	return root
}

// fusion drains fuseList in FIFO order, unioning the endpoints of each
// edge that spans two distinct clusters and recording it as a peeling
// edge. Edges whose endpoints already share a root are discarded.
func (d *UnionFindDecoder) fusion() {
	for !d.fuseList.Empty() {
		e := d.fuseList.PopFront()

		r1 := d.findRoot(e.U)
		r2 := d.findRoot(e.V)
		if r1 == r2 {
			continue
		}

		d.peelingEdges.PushBack(e)

		// Weighted union by size: keep the larger cluster's root.
		if d.mgr.Size(r1) < d.mgr.Size(r2) {
			r1, r2 = r2, r1
		}
		d.rootOfVertex[r2] = r1

		if !d.mgr.isRoot(r2) {
			// r2 was a bare vertex absorbed for the first time.
			d.mgr.bumpSize(r1)
			d.border[r1].Set(uint(r2))
		} else {
			d.mgr.merge(r1, r2)
			d.mergeBoundary(r1, r2)
		}
	}
}

// mergeBoundary folds absorb's border set into keep's, dropping any
// vertex that is now fully saturated (all its incident edges grown).
func (d *UnionFindDecoder) mergeBoundary(keep, absorb int) {
	absorbSet := d.border[absorb]
	keepSet := d.border[keep]
	keepSet.InPlaceUnion(absorbSet)

	for w, ok := absorbSet.NextSet(0); ok; w, ok = absorbSet.NextSet(w + 1) {
		vertex := int(w)
		if d.connectionCounts[vertex] == d.graph.VertexConnectionCount(vertex) {
			keepSet.Clear(w)
		}
	}

	delete(d.border, absorb)
}

// peeling strips leaves from the peeling-edge forest in reverse discovery
// order, producing a minimal correction that annihilates syndrome.
func (d *UnionFindDecoder) peeling(syndrome []uint8) []Edge {
	var corrections []Edge

	degree := make(map[int]int, d.peelingEdges.Len()*2)
	for i := 0; i < d.peelingEdges.Len(); i++ {
		e := d.peelingEdges.PopFront()
		degree[e.U]++
		degree[e.V]++
		d.peelingEdges.PushBack(e)
	}

	for !d.peelingEdges.Empty() {
		e := d.peelingEdges.PopBack()

		var leaf, interior int
		switch {
		case degree[e.U] == 1:
			leaf, interior = e.U, e.V
		case degree[e.V] == 1:
			leaf, interior = e.V, e.U
		default:
			// Not a leaf edge yet; rotate to the front and retry later.
			d.peelingEdges.PushFront(e)
			continue
		}

		degree[leaf]--
		degree[interior]--

		if syndrome[leaf]%2 == 1 {
			corrections = append(corrections, e)
			syndrome[leaf] = 0
			syndrome[interior] ^= 1
		}
	}

	return corrections
}

// Clear releases per-shot cluster state. Decode always re-initializes this
// state itself, so Clear is only needed when a caller wants to drop memory
// between decodes without immediately decoding again. Calling Clear twice
// in a row is equivalent to calling it once.
func (d *UnionFindDecoder) Clear() {
	d.fuseList = newEdgeDeque()
	d.peelingEdges = newEdgeDeque()
	d.border = make(map[int]*bitset.BitSet)
	d.mgr.clear()
}
