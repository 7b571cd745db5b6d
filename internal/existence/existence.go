// Package existence decides whether a k-stable matching exists for a given
// instance, and can produce one as a witness. It dispatches across three
// regime-specific strategies keyed on rho = k/n, falling through to a
// pruning backtracking search in the middle regime.
package existence

import (
	"fmt"
	"sort"

	"github.com/bbak/kstable/internal/kernel"
	"github.com/bbak/kstable/internal/verifier"
)

const (
	smallKRhoCeiling = 0.1
	largeKRhoFloor   = 0.8
	largeKGiveUp     = 0.9
	topHalf          = 0.5
	topThird         = 1.0 / 3.0

	// maxPruningSearchN bounds the backtracking search's instance size.
	// The search is exponential in the worst case; Go's allocator gives
	// no catchable out-of-memory signal the way the C original's malloc
	// NULL-check does, so the bound is enforced proactively instead.
	maxPruningSearchN = 40
)

// KStableExists reports whether inst admits a k-stable matching.
func KStableExists(inst kernel.Instance, k int) (bool, error) {
	_, found, err := FindKStable(inst, k)
	return found, err
}

// FindKStable searches for a k-stable matching over inst, returning it and
// true on success. A false second return with a nil error means the search
// completed and no k-stable matching was found (not that the search failed).
func FindKStable(inst kernel.Instance, k int) (kernel.Matching, bool, error) {
	if err := validate(inst, k); err != nil {
		return kernel.Matching{}, false, err
	}

	// k=1 existence holds unconditionally (spec.md §8: "for all instances,
	// k_stable_exists(instance, 1) is true") regardless of which rho regime
	// n and k would otherwise select; original_source's
	// k_stable_matching_exists_small_k makes the same unconditional check
	// before any regime split.
	if k == 1 {
		return greedyQualityMatching(inst, topHalf), true, nil
	}

	rho := float64(k) / float64(inst.N)
	switch {
	case rho <= smallKRhoCeiling:
		return smallK(inst, k)
	case rho >= largeKRhoFloor:
		return largeK(inst, k)
	default:
		return pruningSearch(inst, k)
	}
}

func validate(inst kernel.Instance, k int) error {
	if k <= 0 || k > inst.N {
		return fmt.Errorf("%w: k=%d out of range [1, %d]", kernel.ErrInvalidInput, k, inst.N)
	}
	return nil
}

// smallK handles rho <= 0.1 for k >= 2 (k=1 is handled unconditionally by
// FindKStable before regime dispatch).
func smallK(inst kernel.Instance, k int) (kernel.Matching, bool, error) {
	if k == 2 || k == 3 {
		m := greedyQualityMatching(inst, topHalf)
		stable, err := verifier.IsKStable(m, inst, k)
		if err != nil {
			return kernel.Matching{}, false, err
		}
		if stable {
			return m, true, nil
		}
	}
	return pruningSearch(inst, k)
}

// largeK handles rho >= 0.8: a pickiness-sorted greedy attempt first, and
// if k is close enough to n that the general search is unlikely to help, a
// direct false rather than paying for the pruning search.
func largeK(inst kernel.Instance, k int) (kernel.Matching, bool, error) {
	order := pickinessOrder(inst)
	m := greedyQualityMatchingOrder(inst, order, topThird)

	stable, err := verifier.IsKStable(m, inst, k)
	if err != nil {
		return kernel.Matching{}, false, err
	}
	if stable {
		return m, true, nil
	}

	if float64(k) > largeKGiveUp*float64(inst.N) {
		return kernel.Matching{}, false, nil
	}
	return pruningSearch(inst, k)
}

// pickinessOrder sorts agent ids by ascending acceptance-list length,
// ties broken by ascending id: shortest-list agents are placed first since
// they have the fewest chances of a mutual match.
func pickinessOrder(inst kernel.Instance) []int {
	order := make([]int, inst.N)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		la, lb := len(inst.Agents[ia].Preferences), len(inst.Agents[ib].Preferences)
		if la != lb {
			return la < lb
		}
		return ia < ib
	})
	return order
}

// greedyQualityMatching scans agents in ascending id order.
func greedyQualityMatching(inst kernel.Instance, topFraction float64) kernel.Matching {
	order := make([]int, inst.N)
	for i := range order {
		order[i] = i
	}
	return greedyQualityMatchingOrder(inst, order, topFraction)
}

// greedyQualityMatchingOrder matches agents in the given order: each free
// agent takes the first still-free acceptable partner whose own preference
// list ranks this agent within the top topFraction. Houses have no
// preferences of their own and accept the first still-free agent offered.
func greedyQualityMatchingOrder(inst kernel.Instance, order []int, topFraction float64) kernel.Matching {
	m := kernel.NewMatching(inst.N)
	houseModel := isHouseModel(inst)
	usedHouse := make([]bool, inst.NumHouses)

	for _, i := range order {
		if m.Pairs[i] != kernel.Unmatched {
			continue
		}
		agent := inst.Agents[i]
		for _, p := range agent.Preferences {
			if houseModel {
				if usedHouse[p] {
					continue
				}
				m.Pairs[i] = p
				usedHouse[p] = true
				break
			}
			if p == i || m.Pairs[p] != kernel.Unmatched || !validPartner(inst, i, p) {
				continue
			}
			partner := inst.Agents[p]
			limit := int(topFraction * float64(len(partner.Preferences)))
			if limit < 1 {
				limit = 1
			}
			if kernel.Rank(partner, i) < limit {
				m.Pairs[i] = p
				m.Pairs[p] = i
				break
			}
		}
	}
	return m
}

// pruningSearch is the general backtracking procedure: at each index i,
// try every candidate partner in i's preference order, recursing only into
// branches that stay well-formed and "promising"; at the leaf, hand the
// completed matching to the verifier.
func pruningSearch(inst kernel.Instance, k int) (kernel.Matching, bool, error) {
	if inst.N > maxPruningSearchN {
		return kernel.Matching{}, false, fmt.Errorf("%w: n=%d exceeds pruning search bound %d", kernel.ErrAllocationFailure, inst.N, maxPruningSearchN)
	}
	m := kernel.NewMatching(inst.N)
	ok, err := searchFrom(m, inst, k, 0)
	if err != nil {
		return kernel.Matching{}, false, err
	}
	if !ok {
		return kernel.Matching{}, false, nil
	}
	return m, true, nil
}

func searchFrom(m kernel.Matching, inst kernel.Instance, k, i int) (bool, error) {
	if i == inst.N {
		return verifier.IsKStable(m, inst, k)
	}
	if !promising(m, inst, i, k) {
		return false, nil
	}
	if m.Pairs[i] != kernel.Unmatched {
		return searchFrom(m, inst, k, i+1)
	}

	houseModel := isHouseModel(inst)
	agent := inst.Agents[i]

	for _, p := range agent.Preferences {
		if p == i {
			continue
		}

		if houseModel {
			if occupiedHouse(m, p) {
				continue
			}
			m.Pairs[i] = p
			if partialValid(m, inst, i) {
				ok, err := searchFrom(m, inst, k, i+1)
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
			m.Pairs[i] = kernel.Unmatched
			continue
		}

		if m.Pairs[p] != kernel.Unmatched || !validPartner(inst, i, p) {
			continue
		}
		m.Pairs[i], m.Pairs[p] = p, i
		if partialValid(m, inst, i) {
			ok, err := searchFrom(m, inst, k, i+1)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		m.Pairs[i], m.Pairs[p] = kernel.Unmatched, kernel.Unmatched
	}

	if houseModel || inst.Model == kernel.Roommates {
		return searchFrom(m, inst, k, i+1)
	}
	return false, nil
}

// promising computes the blocking-potential heuristic over the
// already-assigned prefix [0, i): unmatched agents plus agents matched
// beyond rank 2 in their own list. A score >= k prunes the branch.
func promising(m kernel.Matching, inst kernel.Instance, i, k int) bool {
	unmatched := 0
	beyondRank2 := 0
	for j := 0; j < i; j++ {
		p := m.Pairs[j]
		if p == kernel.Unmatched {
			unmatched++
			continue
		}
		if kernel.Rank(inst.Agents[j], p) > 2 {
			beyondRank2++
		}
	}
	if unmatched+beyondRank2 >= k {
		return false
	}
	remaining := inst.N - i
	if unmatched+remaining >= 2*k && remaining == 0 {
		return false
	}
	return true
}

func isHouseModel(inst kernel.Instance) bool {
	return inst.Model == kernel.HouseAllocation || inst.Model == kernel.HouseAllocationPartial
}

func validPartner(inst kernel.Instance, i, p int) bool {
	if inst.Model == kernel.Marriage {
		return (i < inst.NumMen) != (p < inst.NumMen)
	}
	return true
}

func occupiedHouse(m kernel.Matching, house int) bool {
	for _, h := range m.Pairs {
		if h == house {
			return true
		}
	}
	return false
}

// partialValid checks well-formedness restricted to indices <= upTo: no
// house assigned twice (house models), or symmetric pairing (marriage,
// roommates).
func partialValid(m kernel.Matching, inst kernel.Instance, upTo int) bool {
	if isHouseModel(inst) {
		seen := make(map[int]bool, upTo+1)
		for j := 0; j <= upTo; j++ {
			h := m.Pairs[j]
			if h == kernel.Unmatched {
				continue
			}
			if seen[h] {
				return false
			}
			seen[h] = true
		}
		return true
	}
	for j := 0; j <= upTo; j++ {
		p := m.Pairs[j]
		if p == kernel.Unmatched {
			continue
		}
		if p < 0 || p >= inst.N || m.Pairs[p] != j {
			return false
		}
	}
	return true
}
