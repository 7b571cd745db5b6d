package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var comprehensiveCmd = &cobra.Command{
	Use:   "comprehensive",
	Short: "Run brute-force, large-random, and key-k-values in sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("=== brute-force (n_max=6) ===")
		if err := runBruteForce(bruteForceMaxN); err != nil {
			return err
		}
		fmt.Println("\n=== large-random (7..15, 50 trials) ===")
		if err := runLargeRandom(7, 15, 50); err != nil {
			return err
		}
		fmt.Println("\n=== key-k-values ===")
		return runKeyKValues()
	},
}

func init() {
	rootCmd.AddCommand(comprehensiveCmd)
}
