package syndrome

// AccumulateLayers turns a space-time lattice's raw per-round syndrome
// (repetitions layers of layerSize vertices each, laid out contiguously as
// LatticeCubic numbers its vertices: layer h occupies
// [h*layerSize, (h+1)*layerSize)) into a defect vector: each layer after
// the first is replaced by its XOR-difference with the previous layer, so
// a vertex is only defective when the measured parity actually *changed*
// between two consecutive rounds. Layer 0 is left as the raw measurement,
// since there is no prior round to diff against.
func AccumulateLayers(layerSize, repetitions int, syndromes []uint8) {
	for h := repetitions - 1; h >= 1; h-- {
		cur := syndromes[h*layerSize : (h+1)*layerSize]
		prev := syndromes[(h-1)*layerSize : h*layerSize]
		for i := range cur {
			cur[i] = (cur[i] + prev[i]) % 2
		}
	}
}
