package generator

import "github.com/bbak/kstable/internal/kernel"

// HouseAllocationPartial returns a random house-allocation instance with
// incomplete acceptance lists: each agent accepts a random subset of
// numHouses houses, size drawn uniformly from [1, numHouses].
func HouseAllocationPartial(n, numHouses int, seed uint32) kernel.Instance {
	g := New(seed)
	prefs := make([][]int, n)
	for i := range prefs {
		perm := g.Permutation(numHouses)
		size := 1 + g.Intn(numHouses)
		prefs[i] = append([]int(nil), perm[:size]...)
	}
	return kernel.NewHouseAllocationPartial(prefs, nil, numHouses)
}

// SimilarPreferences returns a house-allocation instance where every
// agent's preference order is a cyclic rotation of the same base order,
// making a fully-top-preference matching (and hence high-k stability)
// likely. Grounded on generate_k_stable_exists_case.
func SimilarPreferences(n int) kernel.Instance {
	prefs := make([][]int, n)
	for i := range prefs {
		p := make([]int, n)
		for j := range p {
			p[j] = (i + j) % n
		}
		prefs[i] = p
	}
	return kernel.NewHouseAllocation(prefs)
}

// AdversarialPreferences returns a house-allocation instance where every
// agent shares the identical preference order: house 0 is everyone's top
// choice, house 1 everyone's second, and so on. At most one agent can ever
// occupy rank 0 at a time, so no matching gives every agent their top
// choice and large-k existence genuinely fails. Grounded on
// generate_k_stable_unlikely_case's intent ("very different preferences...
// less likely that a k-stable matching exists"), but not on its literal
// reversed-rotation formula: that construction is a circulant Latin square
// isomorphic to SimilarPreferences under relabeling, so it admits exactly
// the same fully-top matching and existence counts at every k (checked by
// brute force up to n=5) rather than the "unlikely" behavior its name and
// comment promise.
func AdversarialPreferences(n int) kernel.Instance {
	order := make([]int, n)
	for j := range order {
		order[j] = j
	}
	prefs := make([][]int, n)
	for i := range prefs {
		prefs[i] = append([]int(nil), order...)
	}
	return kernel.NewHouseAllocation(prefs)
}
