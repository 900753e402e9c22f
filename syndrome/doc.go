// Package syndrome implements the benchmark-layer collaborators named in
// the decoder's external-interface contract: projecting a physical error
// onto a syndrome, folding repeated noisy measurement rounds of a
// space-time lattice into per-round defect vectors, and diagnosing
// logical error by testing the parity of two logical-operator
// representatives against the accumulated correction.
//
// None of this participates in github.com/katalvlaran/qecuf/decoder's
// invariants: the decoder only ever consumes and returns plain syndromes
// and edges. This package exists so a benchmark driver (cmd/qecbench) has
// somewhere to get those syndromes from and to judge decoder output
// against the true error class.
package syndrome
