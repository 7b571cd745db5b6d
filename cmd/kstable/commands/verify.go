package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bbak/kstable/internal/generator"
	"github.com/bbak/kstable/internal/kernel"
	"github.com/bbak/kstable/internal/verifier"
)

var verifyCmd = &cobra.Command{
	Use:   "verify n k",
	Short: "Generate a random house allocation and verify the identity matching at k",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, k, err := parseNK(args)
		if err != nil {
			return err
		}
		inst := generator.HouseAllocation(n, seedFlag)
		m := kernel.NewMatching(n)
		for i := 0; i < n; i++ {
			m.Pairs[i] = i
		}
		stable, err := verifier.IsKStable(m, inst, k)
		if err != nil {
			return err
		}
		fmt.Printf("n=%d k=%d identity-matching k-stable=%t\n", n, k, stable)
		return nil
	},
}

var verifyModelCmd = &cobra.Command{
	Use:   "verify-model model n k",
	Short: "Generate a random instance of the given model and verify a simple matching at k",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := args[0]
		n, k, err := parseNK(args[1:])
		if err != nil {
			return err
		}
		inst, err := buildInstance(model, n, seedFlag)
		if err != nil {
			return err
		}
		m := simpleMatching(inst)
		stable, err := verifier.IsKStable(m, inst, k)
		if err != nil {
			return err
		}
		fmt.Printf("model=%s n=%d k=%d matching-k-stable=%t\n", model, n, k, stable)
		return nil
	},
}

func parseNK(args []string) (int, int, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: n must be an integer", kernel.ErrInvalidInput)
	}
	k, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: k must be an integer", kernel.ErrInvalidInput)
	}
	return n, k, nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(verifyModelCmd)
}
