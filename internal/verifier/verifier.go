// Package verifier decides whether a candidate matching is k-stable: no
// alternative well-formed matching makes at least k agents strictly better
// off.
package verifier

import (
	"fmt"

	"github.com/bbak/kstable/internal/kernel"
)

// maxCoalitionOvershoot bounds how far above k the coalition-size search
// climbs before giving up (spec: capped at k+5).
const maxCoalitionOvershoot = 5

// exhaustiveCoalitionLimit is the largest coalition size enumerated by
// full combination search; above it a greedy heuristic is used instead.
const exhaustiveCoalitionLimit = 6

// IsKStable reports whether no blocking coalition of size >= k exists
// against m. It returns kernel.ErrInvalidInput when k is out of [1, n],
// when m does not have inst.N entries, or when m is not well-formed.
func IsKStable(m kernel.Matching, inst kernel.Instance, k int) (bool, error) {
	if k <= 0 || k > inst.N {
		return false, fmt.Errorf("%w: k=%d out of range [1, %d]", kernel.ErrInvalidInput, k, inst.N)
	}
	if len(m.Pairs) != inst.N {
		return false, fmt.Errorf("%w: matching has %d entries, instance has %d agents", kernel.ErrInvalidInput, len(m.Pairs), inst.N)
	}
	if !kernel.IsValid(m, inst) {
		return false, fmt.Errorf("%w: matching is not well-formed for this instance", kernel.ErrInvalidInput)
	}

	return !hasKBlockingCoalition(m, inst, k), nil
}

// hasKBlockingCoalition searches for a blocking coalition of size >= k,
// cheap witnesses first, then a candidate-restricted coalition search.
func hasKBlockingCoalition(m kernel.Matching, inst kernel.Instance, k int) bool {
	if unmatchedPairingBlocks(m, inst, k) {
		return true
	}

	n := inst.N
	maxSize := n
	if k+maxCoalitionOvershoot < maxSize {
		maxSize = k + maxCoalitionOvershoot
	}
	for size := k; size <= maxSize; size++ {
		if checkCoalitionsOfSize(m, inst, size, k) {
			return true
		}
	}
	return false
}

// unmatchedPairingBlocks greedily pairs mutually-acceptable unmatched
// agents in ascending id order; if at least k agents end up paired, that
// alone is a blocking coalition (every paired agent goes from unmatched to
// an acceptable partner, a strict improvement).
func unmatchedPairingBlocks(m kernel.Matching, inst kernel.Instance, k int) bool {
	var unmatched []int
	for i, p := range m.Pairs {
		if p == kernel.Unmatched {
			unmatched = append(unmatched, i)
		}
	}
	if len(unmatched) < k {
		return false
	}

	used := make(map[int]bool, len(unmatched))
	pairs := 0
	for idx, i := range unmatched {
		if used[i] {
			continue
		}
		for _, j := range unmatched[idx+1:] {
			if used[j] {
				continue
			}
			if kernel.Rank(inst.Agents[i], j) != -1 && kernel.Rank(inst.Agents[j], i) != -1 {
				used[i], used[j] = true, true
				pairs++
				break
			}
		}
	}
	return pairs*2 >= k
}

// checkCoalitionsOfSize looks for a blocking coalition of exactly
// coalitionSize among agents who have at least one strictly better option
// available.
func checkCoalitionsOfSize(m kernel.Matching, inst kernel.Instance, coalitionSize, k int) bool {
	candidates := candidateAgents(m, inst)
	if len(candidates) < coalitionSize {
		return false
	}

	if coalitionSize <= exhaustiveCoalitionLimit {
		return checkSmallCoalitions(m, inst, candidates, coalitionSize, k)
	}
	return checkLargeCoalition(m, inst, candidates, coalitionSize, k)
}

// candidateAgents returns, in ascending id order, every agent who is
// unmatched or has some acceptable partner ranked above their current
// partner that is either unmatched or itself prefers them to its current
// mate.
func candidateAgents(m kernel.Matching, inst kernel.Instance) []int {
	var candidates []int
	for i := 0; i < inst.N; i++ {
		current := m.Pairs[i]
		if current == kernel.Unmatched {
			candidates = append(candidates, i)
			continue
		}
		if hasBetterOption(m, inst, i, current) {
			candidates = append(candidates, i)
		}
	}
	return candidates
}

func hasBetterOption(m kernel.Matching, inst kernel.Instance, agentID, current int) bool {
	agent := inst.Agents[agentID]
	houseModel := inst.Model == kernel.HouseAllocation || inst.Model == kernel.HouseAllocationPartial

	for _, preferred := range agent.Preferences {
		if preferred == current {
			break // no better options remain after the current partner
		}
		if houseModel {
			// Houses have no preferences of their own: any higher-ranked
			// house is reachable by evicting its current occupant.
			return true
		}
		preferredPartner := m.Pairs[preferred]
		if preferredPartner == kernel.Unmatched || kernel.Prefers(inst.Agents[preferred], agentID, preferredPartner) {
			return true
		}
	}
	return false
}

// checkSmallCoalitions exhaustively enumerates every combination of
// coalitionSize candidates.
func checkSmallCoalitions(m kernel.Matching, inst kernel.Instance, candidates []int, coalitionSize, k int) bool {
	coalition := make([]int, coalitionSize)
	var generate func(pos, start int) bool
	generate = func(pos, start int) bool {
		if pos == coalitionSize {
			return coalitionBlocks(m, inst, coalition, k)
		}
		for i := start; i <= len(candidates)-(coalitionSize-pos); i++ {
			coalition[pos] = candidates[i]
			if generate(pos+1, i+1) {
				return true
			}
		}
		return false
	}
	return generate(0, 0)
}

// checkLargeCoalition uses the first coalitionSize candidates in candidate
// order rather than enumerating every combination.
func checkLargeCoalition(m kernel.Matching, inst kernel.Instance, candidates []int, coalitionSize, k int) bool {
	coalition := candidates[:coalitionSize]
	return coalitionBlocks(m, inst, coalition, k)
}

// coalitionBlocks builds an alternative matching that attempts to improve
// every member of coalition and tests whether it improves at least k
// agents overall.
func coalitionBlocks(m kernel.Matching, inst kernel.Instance, coalition []int, k int) bool {
	alt := generateAlternative(m, inst, coalition)
	return kernel.CountImproved(m, alt, inst) >= k
}

// generateAlternative starts from m and, for each agent in coalition in
// order, attempts to swap it to the best-ranked acceptable partner that is
// either unmatched or prefers it to its current mate, evicting the
// displaced agent.
func generateAlternative(m kernel.Matching, inst kernel.Instance, coalition []int) kernel.Matching {
	alt := m.Clone()
	houseModel := inst.Model == kernel.HouseAllocation || inst.Model == kernel.HouseAllocationPartial

	for _, agentID := range coalition {
		agent := inst.Agents[agentID]
		current := alt.Pairs[agentID]

		for _, preferred := range agent.Preferences {
			if preferred == current {
				break
			}
			if houseModel {
				// Houses have no preferences of their own to refuse with:
				// taking a better house simply evicts whoever holds it.
				if occupant := findOccupant(alt, preferred); occupant != -1 {
					alt.Pairs[occupant] = kernel.Unmatched
				}
				alt.Pairs[agentID] = preferred
				break
			}

			preferredCurrent := alt.Pairs[preferred]
			if preferredCurrent == kernel.Unmatched || kernel.Prefers(inst.Agents[preferred], agentID, preferredCurrent) {
				if current != kernel.Unmatched {
					alt.Pairs[current] = kernel.Unmatched
				}
				if preferredCurrent != kernel.Unmatched {
					alt.Pairs[preferredCurrent] = kernel.Unmatched
				}
				alt.Pairs[agentID] = preferred
				alt.Pairs[preferred] = agentID
				break
			}
		}
	}
	return alt
}

func findOccupant(m kernel.Matching, house int) int {
	for agent, h := range m.Pairs {
		if h == house {
			return agent
		}
	}
	return -1
}

