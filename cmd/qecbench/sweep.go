package main

import (
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qecuf/decoder"
	"github.com/katalvlaran/qecuf/lattice"
	"github.com/katalvlaran/qecuf/noise"
	"github.com/katalvlaran/qecuf/syndrome"
)

var (
	sweepLMin    int
	sweepLMax    int
	sweepLStep   int
	sweepPValues []float64
	sweepShots   int
	sweepSeed    int64
	sweepErrType string
	sweepOutDir  string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep decode accuracy and latency over a grid of (L, p) points",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSweep()
	},
}

func init() {
	flags := sweepCmd.Flags()
	flags.IntVar(&sweepLMin, "l-min", 3, "smallest lattice size (inclusive)")
	flags.IntVar(&sweepLMax, "l-max", 9, "largest lattice size (inclusive)")
	flags.IntVar(&sweepLStep, "l-step", 2, "lattice size step")
	flags.Float64SliceVar(&sweepPValues, "p", []float64{0.01, 0.05, 0.1}, "physical error rates to sweep")
	flags.IntVar(&sweepShots, "shots", 1000, "shots per (L, p) point")
	flags.Int64Var(&sweepSeed, "seed", 1, "base PRNG seed")
	flags.StringVar(&sweepErrType, "error-type", "Z", "error basis to decode: X or Z")
	flags.StringVar(&sweepOutDir, "out", ".", "directory to write per-point JSON results to")
}

func runSweep() error {
	errType, err := parseErrorType(sweepErrType)
	if err != nil {
		return err
	}

	if sweepLStep <= 0 {
		return fmt.Errorf("sweep: l-step must be positive, got %d", sweepLStep)
	}

	for L := sweepLMin; L <= sweepLMax; L += sweepLStep {
		g, err := lattice.NewLattice2D(L)
		if err != nil {
			return fmt.Errorf("sweep: %w", err)
		}

		for _, p := range sweepPValues {
			result, err := runSweepPoint(g, L, p, errType)
			if err != nil {
				return err
			}

			path, err := writeResult(sweepOutDir, result)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"L":          L,
				"p":          p,
				"accuracy":   result.Accuracy,
				"avg_micros": result.AverageMicroseconds,
				"out":        path,
			}).Info("sweep point complete")
		}
	}

	return nil
}

// runSweepPoint decodes sweepShots independent shots at (L, p) and
// aggregates mean latency and the fraction free of logical error.
func runSweepPoint(g *lattice.Lattice2D, L int, p float64, errType decoder.ErrorType) (sweepResult, error) {
	rng := rand.New(rand.NewSource(sweepSeed + int64(L)*1_000_003 + int64(p*1e6)))
	lazy := decoder.NewLazyPreDecoder(g)
	full := decoder.NewUnionFindDecoder(g)

	var totalElapsed time.Duration
	successes := 0

	for shot := 0; shot < sweepShots; shot++ {
		xErr, zErr := noise.Generate(rng, g.NumEdges(), p, noise.Independent)
		physical := xErr
		if errType == decoder.ErrorZ {
			physical = zErr
		}

		s := syndrome.ProjectToric2D(L, physical, errType)

		start := time.Now()
		ok, corrections := lazy.Decode(s)
		if !ok {
			more, err := full.Decode(s)
			if err != nil {
				return sweepResult{}, fmt.Errorf("sweep: decode shot %d: %w", shot, err)
			}
			corrections = append(corrections, more...)
		}
		totalElapsed += time.Since(start)

		accumulated := append([]uint8(nil), physical...)
		syndrome.ApplyCorrections(g.EdgeIndex, corrections, accumulated)
		if !syndrome.IsLogicalError(L, accumulated, errType) {
			successes++
		}
	}

	return sweepResult{
		L:                   L,
		P:                   p,
		AverageMicroseconds: float64(totalElapsed.Microseconds()) / float64(sweepShots),
		Accuracy:            float64(successes) / float64(sweepShots),
	}, nil
}
