// Package generator builds random problem instances from a seed, using an
// xorshift32 stream so that sequences are reproducible given the seed.
package generator

import "github.com/bbak/kstable/internal/kernel"

// Generator is process-local, mutable state confined to a single caller.
// It is not safe to share across concurrent callers.
type Generator struct {
	state uint32
}

// New returns a Generator seeded deterministically from seed. A zero seed
// is remapped to a fixed nonzero value since xorshift32 cannot recover
// from an all-zero state.
func New(seed uint32) *Generator {
	if seed == 0 {
		seed = 0x9e3779b9
	}
	return &Generator{state: seed}
}

// Uint32 advances the stream and returns the next value.
func (g *Generator) Uint32() uint32 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return x
}

// Intn returns a pseudo-random integer in [0, n).
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Uint32() % uint32(n))
}

// Permutation returns a uniform random permutation of [0, n) via
// Fisher-Yates.
func (g *Generator) Permutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// HouseAllocation returns a random house-allocation instance over n agents
// and n houses: each agent's preference list is a uniform random
// permutation of all houses.
func HouseAllocation(n int, seed uint32) kernel.Instance {
	g := New(seed)
	prefs := make([][]int, n)
	for i := range prefs {
		prefs[i] = g.Permutation(n)
	}
	return kernel.NewHouseAllocation(prefs)
}

// Marriage returns a random marriage instance: each man's preference list
// is a uniform random permutation of all women, and vice versa.
func Marriage(numMen, numWomen int, seed uint32) kernel.Instance {
	g := New(seed)

	menPrefs := make([][]int, numMen)
	for i := range menPrefs {
		perm := g.Permutation(numWomen)
		prefs := make([]int, numWomen)
		for j, w := range perm {
			prefs[j] = numMen + w
		}
		menPrefs[i] = prefs
	}

	womenPrefs := make([][]int, numWomen)
	for i := range womenPrefs {
		womenPrefs[i] = g.Permutation(numMen)
	}

	return kernel.NewMarriage(menPrefs, womenPrefs)
}

// Roommates returns a random roommates instance: each agent's preference
// list is a uniform random permutation of every other eligible agent.
func Roommates(n int, seed uint32) kernel.Instance {
	g := New(seed)
	prefs := make([][]int, n)
	for i := range prefs {
		others := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				others = append(others, j)
			}
		}
		perm := g.Permutation(len(others))
		shuffled := make([]int, len(others))
		for k, idx := range perm {
			shuffled[k] = others[idx]
		}
		prefs[i] = shuffled
	}
	return kernel.NewRoommates(prefs)
}
