package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bbak/kstable/internal/enumerate"
	"github.com/bbak/kstable/internal/kernel"
)

const bruteForceMaxN = 6

var bruteForceCmd = &cobra.Command{
	Use:   "brute-force n_max",
	Short: "Run the enumerator study up to n_max (capped at 6)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nMax, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: n_max must be an integer", kernel.ErrInvalidInput)
		}
		return runBruteForce(nMax)
	},
}

func runBruteForce(nMax int) error {
	if nMax > bruteForceMaxN {
		nMax = bruteForceMaxN
	}
	table, err := enumerate.Table(nMax)
	if err != nil {
		return err
	}
	printTable(table)
	return nil
}

func printTable(table enumerate.ExistenceTable) {
	fmt.Printf("%4s %4s %8s %8s %10s %12s\n", "n", "k", "trials", "positive", "rate", "avg-time")
	for _, c := range table.Cells {
		fmt.Printf("%4d %4d %8d %8d %10.4f %12s\n", c.N, c.K, c.Trials, c.Positive, c.ExistenceRate(), c.AvgWallTime)
	}
}

func init() {
	rootCmd.AddCommand(bruteForceCmd)
}
