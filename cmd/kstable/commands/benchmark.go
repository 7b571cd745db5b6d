package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbak/kstable/internal/bench"
)

// benchmarkN caps the fixed-parameter timing grid at a size where the
// pruning search's medium-rho cells still resolve quickly.
const benchmarkN = 12

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Run fixed-parameter verification and existence timing tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := bench.Config{NMin: 2, NMax: benchmarkN, Trials: 20, Seed: seedFlag}

		fmt.Println("=== verifier timing (ns) ===")
		verifierResults, err := bench.VerifierTable(ctx, cfg)
		if err != nil {
			return err
		}
		printBenchTable(verifierResults)

		fmt.Println("\n=== existence timing (ns) ===")
		existenceResults, err := bench.ExistenceTable(ctx, cfg)
		if err != nil {
			return err
		}
		printBenchTable(existenceResults)
		return nil
	},
}

func printBenchTable(results []bench.CellResult) {
	fmt.Printf("%4s %4s %8s %12s %12s %12s %12s %12s\n", "n", "k", "trials", "median", "p90", "p99", "min", "max")
	for _, r := range results {
		fmt.Printf("%4d %4d %8d %12.0f %12.0f %12.0f %12.0f %12.0f\n",
			r.N, r.K, r.Trials, r.MedianNS, r.P90NS, r.P99NS, r.MinNS, r.MaxNS)
	}
}

func init() {
	rootCmd.AddCommand(benchmarkCmd)
}
