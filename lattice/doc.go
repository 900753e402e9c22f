// Package lattice provides concrete decoding graphs consumed by
// github.com/katalvlaran/qecuf/decoder: the closed-form 2D toric lattice
// and 3D cubic space-time lattice, plus a general builder that derives a
// decoding graph from an arbitrary sparse (CSR) binary parity-check
// matrix.
//
// Lattice2D and LatticeCubic avoid the allocation cost of a generic sparse
// graph when the geometry is known ahead of time by computing neighbor and
// edge-index relationships with closed-form index arithmetic. LatticeFromParity
// covers every other case: any stabilizer code whose parity-check matrix is
// available in CSR form.
//
// All three types implement decoder.DecodingGraph and are immutable and
// safe to share across many decoder.UnionFindDecoder instances.
package lattice
