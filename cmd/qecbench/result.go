package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// sweepResult is one (L, p) point of a sweep: mean per-shot decode latency
// and, as accuracy, the fraction of shots that ended without a residual
// logical error.
type sweepResult struct {
	L                   int     `json:"L"`
	P                   float64 `json:"p"`
	AverageMicroseconds float64 `json:"average_microseconds"`
	Accuracy            float64 `json:"accuracy"`
}

// writeResult marshals r to out_L{L}_P{p_scaled}.json in dir, where
// p_scaled is p*10000 rounded to an integer, giving a stable, sortable
// filename across the sweep grid.
func writeResult(dir string, r sweepResult) (string, error) {
	pScaled := int(r.P*10000 + 0.5)
	name := fmt.Sprintf("out_L%d_P%d.json", r.L, pScaled)
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("writeResult: marshal L=%d p=%g: %w", r.L, r.P, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writeResult: write %s: %w", path, err)
	}

	return path, nil
}
