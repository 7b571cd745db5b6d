package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bbak/kstable/internal/kernel"
)

var generateCmd = &cobra.Command{
	Use:   "generate model n",
	Short: "Print a random instance of the given model (house, marriage, or roommates)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := args[0]
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: n must be an integer", kernel.ErrInvalidInput)
		}
		inst, err := buildInstance(model, n, seedFlag)
		if err != nil {
			return err
		}
		printInstance(inst)
		return nil
	},
}

func printInstance(inst kernel.Instance) {
	fmt.Printf("model=%s n=%d numMen=%d numHouses=%d\n", inst.Model, inst.N, inst.NumMen, inst.NumHouses)
	for i, agent := range inst.Agents {
		fmt.Printf("  agent %d: %v\n", i, agent.Preferences)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
