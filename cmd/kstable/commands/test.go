package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbak/kstable/internal/enumerate"
	"github.com/bbak/kstable/internal/existence"
	"github.com/bbak/kstable/internal/generator"
	"github.com/bbak/kstable/internal/kernel"
	"github.com/bbak/kstable/internal/verifier"
)

type smokeCheck struct {
	name string
	run  func() error
}

var smokeChecks = []smokeCheck{
	{"kernel.Rank/Prefers", func() error {
		a := kernel.Agent{ID: 0, Preferences: []int{2, 1, 0}}
		if kernel.Rank(a, 2) != 0 || kernel.Rank(a, 0) != 2 {
			return fmt.Errorf("unexpected rank ordering")
		}
		if !kernel.Prefers(a, 2, 0) {
			return fmt.Errorf("expected agent to prefer its top choice over its last")
		}
		return nil
	}},
	{"verifier.IsKStable single agent", func() error {
		inst := kernel.NewHouseAllocation([][]int{{0}})
		m := kernel.Matching{Pairs: []int{0}}
		stable, err := verifier.IsKStable(m, inst, 1)
		if err != nil {
			return err
		}
		if !stable {
			return fmt.Errorf("a single agent at its only choice must be 1-stable")
		}
		return nil
	}},
	{"existence.KStableExists k=1 unconditional", func() error {
		inst := generator.HouseAllocation(5, 1)
		ok, err := existence.KStableExists(inst, 1)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("k=1 existence must hold unconditionally")
		}
		return nil
	}},
	{"enumerate.Profiles(2) count", func() error {
		profiles := enumerate.Profiles(2)
		if len(profiles) != 4 {
			return fmt.Errorf("expected 4 profiles at n=2, got %d", len(profiles))
		}
		return nil
	}},
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run smoke checks on the core decision APIs",
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, check := range smokeChecks {
			if err := check.run(); err != nil {
				fmt.Printf("FAIL %-40s %v\n", check.name, err)
				failed++
				continue
			}
			fmt.Printf("PASS %-40s\n", check.name)
		}
		if failed > 0 {
			return fmt.Errorf("%d smoke check(s) failed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(testCmd)
}
