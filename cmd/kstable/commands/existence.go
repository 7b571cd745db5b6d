package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbak/kstable/internal/existence"
	"github.com/bbak/kstable/internal/generator"
)

var existenceCmd = &cobra.Command{
	Use:   "existence n k",
	Short: "Generate a random house allocation and search for a k-stable matching",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, k, err := parseNK(args)
		if err != nil {
			return err
		}
		inst := generator.HouseAllocation(n, seedFlag)
		m, found, err := existence.FindKStable(inst, k)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("n=%d k=%d exists=false\n", n, k)
			return nil
		}
		fmt.Printf("n=%d k=%d exists=true witness=%v\n", n, k, m.Pairs)
		return nil
	},
}

var existenceModelCmd = &cobra.Command{
	Use:   "existence-model model n k",
	Short: "Generate a random instance of the given model and search for a k-stable matching",
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
		m, found, err := existence.FindKStable(inst, k)
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("model=%s n=%d k=%d exists=false\n", model, n, k)
			return nil
		}
		fmt.Printf("model=%s n=%d k=%d exists=true witness=%v\n", model, n, k, m.Pairs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(existenceCmd)
	rootCmd.AddCommand(existenceModelCmd)
}
