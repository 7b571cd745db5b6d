package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbak/kstable/internal/existence"
	"github.com/bbak/kstable/internal/generator"
)

// keyKValuesN is the fixed instance size the sweep runs over: large
// enough to separate the small-k, medium-rho, and large-k regimes.
const keyKValuesN = 20

// keyKValuesTrials is the number of random instances sampled per k value.
const keyKValuesTrials = 50

// constantKValues are k values independent of n. At n = keyKValuesN, k=1
// takes the existence engine's unconditional k=1 shortcut, k=2 lands in the
// small-k regime (rho = 0.1), and k=3 (rho = 0.15) in the medium-rho
// pruning search.
var constantKValues = []int{1, 2, 3}

// proportionalKFractions are k values as fractions of n, sweeping from
// the small-k boundary through the large-k regime.
var proportionalKFractions = []float64{0.1, 0.25, 0.5, 0.75, 0.9, 1.0}

var keyKValuesCmd = &cobra.Command{
	Use:   "key-k-values",
	Short: "Sweep constant and proportional k values against existence rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKeyKValues()
	},
}

func runKeyKValues() error {
	fmt.Printf("constant k values (n=%d, trials=%d)\n", keyKValuesN, keyKValuesTrials)
	fmt.Printf("%4s %8s %8s %10s\n", "k", "trials", "positive", "rate")
	g := generator.New(seedFlag)
	for _, k := range constantKValues {
		if k > keyKValuesN {
			continue
		}
		positive, err := sampleExistenceRate(g, keyKValuesN, k, keyKValuesTrials)
		if err != nil {
			return err
		}
		fmt.Printf("%4d %8d %8d %10.4f\n", k, keyKValuesTrials, positive, float64(positive)/float64(keyKValuesTrials))
	}

	fmt.Printf("\nproportional k values (n=%d, trials=%d)\n", keyKValuesN, keyKValuesTrials)
	fmt.Printf("%6s %4s %8s %8s %10s\n", "k/n", "k", "trials", "positive", "rate")
	for _, frac := range proportionalKFractions {
		k := int(frac * float64(keyKValuesN))
		if k < 1 {
			k = 1
		}
		positive, err := sampleExistenceRate(g, keyKValuesN, k, keyKValuesTrials)
		if err != nil {
			return err
		}
		fmt.Printf("%6.2f %4d %8d %8d %10.4f\n", frac, k, keyKValuesTrials, positive, float64(positive)/float64(keyKValuesTrials))
	}
	return nil
}

func sampleExistenceRate(g *generator.Generator, n, k, trials int) (int, error) {
	positive := 0
	for t := 0; t < trials; t++ {
		inst := generator.HouseAllocation(n, g.Uint32())
		ok, err := existence.KStableExists(inst, k)
		if err != nil {
			return 0, err
		}
		if ok {
			positive++
		}
	}
	return positive, nil
}

func init() {
	rootCmd.AddCommand(keyKValuesCmd)
}
