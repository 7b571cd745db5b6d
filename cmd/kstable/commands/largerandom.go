package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bbak/kstable/internal/existence"
	"github.com/bbak/kstable/internal/generator"
	"github.com/bbak/kstable/internal/kernel"
)

var largeRandomCmd = &cobra.Command{
	Use:   "large-random min max trials",
	Short: "Random-sampling existence study over n in [min, max]",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		minN, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: min must be an integer", kernel.ErrInvalidInput)
		}
		maxN, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: max must be an integer", kernel.ErrInvalidInput)
		}
		trials, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("%w: trials must be an integer", kernel.ErrInvalidInput)
		}
		return runLargeRandom(minN, maxN, trials)
	},
}

func runLargeRandom(minN, maxN, trials int) error {
	if minN < 1 || maxN < minN || trials < 1 {
		return fmt.Errorf("%w: require 1 <= min <= max and trials >= 1", kernel.ErrInvalidInput)
	}

	fmt.Printf("%4s %4s %8s %8s %10s\n", "n", "k", "trials", "positive", "rate")
	g := generator.New(seedFlag)
	for n := minN; n <= maxN; n++ {
		for k := 1; k <= n; k++ {
			positive := 0
			for t := 0; t < trials; t++ {
				inst := generator.HouseAllocation(n, g.Uint32())
				ok, err := existence.KStableExists(inst, k)
				if err != nil {
					return err
				}
				if ok {
					positive++
				}
			}
			fmt.Printf("%4d %4d %8d %8d %10.4f\n", n, k, trials, positive, float64(positive)/float64(trials))
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(largeRandomCmd)
}
