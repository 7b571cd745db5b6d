package enumerate

import (
	"fmt"

	"github.com/bbak/kstable/internal/kernel"
	"github.com/bbak/kstable/internal/verifier"
)

// MatchingAnalysis reports, for one house-allocation matching, whether it
// is k-stable and how many agents are not at their rank-0 house.
// Grounded on brute_force_house_allocation.c's matching_analysis_t.
type MatchingAnalysis struct {
	Matching         kernel.Matching
	KStable          bool
	PreferringOthers int
}

// HouseAllocationMatchings enumerates all n! house assignments for inst via
// swap-and-backtrack and analyzes each one against k. inst must be a house
// model (HouseAllocation or HouseAllocationPartial).
func HouseAllocationMatchings(inst kernel.Instance, k int) ([]MatchingAnalysis, error) {
	if inst.Model != kernel.HouseAllocation && inst.Model != kernel.HouseAllocationPartial {
		return nil, fmt.Errorf("%w: HouseAllocationMatchings requires a house-allocation instance", kernel.ErrInvalidInput)
	}

	n := inst.N
	used := make([]bool, n)
	current := make([]int, n)
	var results []MatchingAnalysis
	var searchErr error

	var assign func(i int)
	assign = func(i int) {
		if searchErr != nil {
			return
		}
		if i == n {
			m := kernel.Matching{Pairs: append([]int(nil), current...)}
			stable, err := verifier.IsKStable(m, inst, k)
			if err != nil {
				searchErr = err
				return
			}
			results = append(results, MatchingAnalysis{
				Matching:         m,
				KStable:          stable,
				PreferringOthers: preferringOthers(m, inst),
			})
			return
		}
		for obj := 0; obj < n; obj++ {
			if used[obj] {
				continue
			}
			used[obj] = true
			current[i] = obj
			assign(i + 1)
			used[obj] = false
		}
	}
	assign(0)

	return results, searchErr
}

// preferringOthers counts agents not already at their rank-0 house.
// count_agents_preferring_others in the original source walks the
// preference list ahead of the agent's current rank looking for any
// object id that differs from the current one; since preference lists
// never repeat an object, that loop fires on its first iteration whenever
// the current rank is above 0, so the check reduces to exactly this count.
func preferringOthers(m kernel.Matching, inst kernel.Instance) int {
	count := 0
	for i, agent := range inst.Agents {
		if kernel.Rank(agent, m.Pairs[i]) > 0 {
			count++
		}
	}
	return count
}
