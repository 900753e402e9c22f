// Command qecbench drives the Union-Find decoder outside of a single
// process's test suite: one-shot human-readable decodes for debugging, and
// sweeps across (lattice size, physical error rate) grids for throughput
// and logical-error-rate measurement.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qecbench",
	Short: "Benchmark the Union-Find decoder over toric lattices",
	Long: `qecbench drives github.com/katalvlaran/qecuf/decoder against
synthetic noise on Lattice2D, either for a single
human-readable decode or a sweep over many (L, p) points.`,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(sweepCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("qecbench failed")
		os.Exit(1)
	}
}
