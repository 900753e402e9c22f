// Package decoder implements the Union-Find decoder for topological
// quantum error-correcting codes of the surface/toric family.
//
// Given a syndrome vector over a decoding graph (vertices = parity checks,
// edges = qubits), UnionFindDecoder grows clusters around defective
// vertices, fuses them via a size-weighted union-find structure, and peels
// the resulting spanning forest to produce a minimum correction. It is the
// "grow / fuse / peel" decoder described by Delfosse & Nickerson — faster
// but suboptimal compared to minimum-weight perfect matching, which this
// package does not implement.
//
// LazyPreDecoder is an opportunistic single-pass matcher that short-circuits
// the common case of two adjacent defects before the full algorithm runs.
//
// The package is deliberately graph-agnostic: any type satisfying
// DecodingGraph (see graph.go) can be decoded. Concrete graphs (2D/3D
// lattices, CSR-derived graphs) live in the sibling package
// github.com/katalvlaran/qecuf/lattice.
//
// A decoder instance is single-threaded and not safe for concurrent use;
// the canonical deployment runs one decoder per goroutine/shot.
package decoder
