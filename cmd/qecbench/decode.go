package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qecuf/decoder"
	"github.com/katalvlaran/qecuf/lattice"
	"github.com/katalvlaran/qecuf/noise"
	"github.com/katalvlaran/qecuf/syndrome"
)

var (
	decodeL       int
	decodeP       float64
	decodeSeed    int64
	decodeErrType string
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Run a single decode shot and print the outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecode()
	},
}

func init() {
	flags := decodeCmd.Flags()
	flags.IntVar(&decodeL, "L", 5, "toric lattice linear size")
	flags.Float64Var(&decodeP, "p", 0.05, "physical error rate")
	flags.Int64Var(&decodeSeed, "seed", 1, "PRNG seed")
	flags.StringVar(&decodeErrType, "error-type", "Z", "error basis to decode: X or Z")
}

func runDecode() error {
	errType, err := parseErrorType(decodeErrType)
	if err != nil {
		return err
	}

	g, err := lattice.NewLattice2D(decodeL)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	rng := rand.New(rand.NewSource(decodeSeed))
	xErr, zErr := noise.Generate(rng, g.NumEdges(), decodeP, noise.Independent)

	physical := xErr
	if errType == decoder.ErrorZ {
		physical = zErr
	}
	s := syndrome.ProjectToric2D(decodeL, physical, errType)

	lazy := decoder.NewLazyPreDecoder(g)
	full := decoder.NewUnionFindDecoder(g)

	start := time.Now()
	ok, corrections := lazy.Decode(s)
	if !ok {
		more, err := full.Decode(s)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		corrections = append(corrections, more...)
	}
	elapsed := time.Since(start)

	accumulated := append([]uint8(nil), physical...)
	syndrome.ApplyCorrections(g.EdgeIndex, corrections, accumulated)
	logical := syndrome.IsLogicalError(decodeL, accumulated, errType)

	fmt.Printf("L=%d p=%.4f error=%s corrections=%d elapsed=%s logical_error=%t\n",
		decodeL, decodeP, errType, len(corrections), elapsed, logical)

	return nil
}

func parseErrorType(s string) (decoder.ErrorType, error) {
	switch s {
	case "X", "x":
		return decoder.ErrorX, nil
	case "Z", "z":
		return decoder.ErrorZ, nil
	default:
		return 0, fmt.Errorf("decode: unknown error-type %q, want X or Z", s)
	}
}
