// Package enumerate provides exhaustive and sampling-based instance
// enumeration for ground-truth studies: complete preference-profile
// enumeration for small n, random sampling beyond that, and a brute-force
// per-matching analysis used by the researcher-facing house-allocation
// tool.
package enumerate

import "github.com/bbak/kstable/internal/kernel"

// Profiles returns every complete strict house-allocation preference
// profile over n agents/houses: (n!)^n instances, one per combination of
// per-agent preference orders. Intended for n <= 3 (216 instances at
// n = 3); the cost grows too fast to use this beyond that.
func Profiles(n int) []kernel.Instance {
	perms := permutations(n)
	prefs := make([][]int, n)
	var instances []kernel.Instance

	var assign func(agent int)
	assign = func(agent int) {
		if agent == n {
			copied := make([][]int, n)
			for i, p := range prefs {
				copied[i] = append([]int(nil), p...)
			}
			instances = append(instances, kernel.NewHouseAllocation(copied))
			return
		}
		for _, p := range perms {
			prefs[agent] = p
			assign(agent + 1)
		}
	}
	assign(0)
	return instances
}

// permutations returns every permutation of [0, n) via recursive
// swap-and-backtrack over an ascending starting buffer, in the order that
// generator emits them. For n >= 3 that order is not lexicographic: at n = 3
// it is 012, 021, 102, 120, 210, 201.
func permutations(n int) [][]int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	var perms [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			cp := make([]int, n)
			copy(cp, items)
			perms = append(perms, cp)
			return
		}
		for i := k; i < n; i++ {
			items[k], items[i] = items[i], items[k]
			rec(k + 1)
			items[k], items[i] = items[i], items[k]
		}
	}
	rec(0)
	return perms
}
