// Package noise generates physical qubit errors and measurement errors for
// benchmarking github.com/katalvlaran/qecuf/decoder against known error
// models: independent X, independent Z, and depolarizing noise, optionally
// repeated across time slices for LatticeCubic-style decoding.
//
// These are benchmark/CLI collaborators (see DESIGN.md) — the decoder
// itself is error-model agnostic and only ever consumes a syndrome.
package noise
