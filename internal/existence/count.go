package existence

import (
	"github.com/bbak/kstable/internal/kernel"
	"github.com/bbak/kstable/internal/verifier"
)

// CountKStable exhaustively enumerates every well-formed matching over inst
// (respecting each agent's acceptance list) and counts how many are
// k-stable. Unlike FindKStable this does not stop at the first witness and
// applies no pruning heuristic, so it is exact but exponential; intended
// for the small-n ground-truth studies, not for interactive use. Supplements
// original_source/src/existence.c's count_k_stable_matchings, which the
// distilled spec dropped.
func CountKStable(inst kernel.Instance, k int) (int, error) {
	if err := validate(inst, k); err != nil {
		return 0, err
	}

	m := kernel.NewMatching(inst.N)
	houseModel := isHouseModel(inst)
	count := 0
	var searchErr error

	var recurse func(i int)
	recurse = func(i int) {
		if searchErr != nil {
			return
		}
		if i == inst.N {
			stable, err := verifier.IsKStable(m, inst, k)
			if err != nil {
				searchErr = err
				return
			}
			if stable {
				count++
			}
			return
		}
		if m.Pairs[i] != kernel.Unmatched {
			recurse(i + 1)
			return
		}

		agent := inst.Agents[i]
		for _, p := range agent.Preferences {
			if houseModel {
				if occupiedHouse(m, p) {
					continue
				}
				m.Pairs[i] = p
				recurse(i + 1)
				m.Pairs[i] = kernel.Unmatched
				continue
			}
			if p == i || m.Pairs[p] != kernel.Unmatched || !validPartner(inst, i, p) {
				continue
			}
			m.Pairs[i], m.Pairs[p] = p, i
			recurse(i + 1)
			m.Pairs[i], m.Pairs[p] = kernel.Unmatched, kernel.Unmatched
		}

		if houseModel || inst.Model == kernel.Roommates {
			recurse(i + 1)
		}
	}
	recurse(0)

	return count, searchErr
}
