package existence

import (
	"errors"
	"testing"

	"github.com/bbak/kstable/internal/generator"
	"github.com/bbak/kstable/internal/kernel"
	"github.com/bbak/kstable/internal/verifier"
)

func housingThreeCycle() kernel.Instance {
	return kernel.NewHouseAllocation([][]int{
		{1, 2, 0},
		{2, 0, 1},
		{0, 1, 2},
	})
}

func TestKStableExists_OneIsAlwaysTrue(t *testing.T) {
	inst := housingThreeCycle()
	ok, err := KStableExists(inst, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected k=1 existence to hold unconditionally")
	}
}

func TestKStableExists_InvalidInput(t *testing.T) {
	inst := housingThreeCycle()
	tests := []struct {
		name string
		k    int
	}{
		{"KZero", 0},
		{"KTooLarge", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KStableExists(inst, tt.k)
			if !errors.Is(err, kernel.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestFindKStable_SoundnessOfWitness(t *testing.T) {
	// Whatever FindKStable returns must itself verify as k-stable.
	for seed := uint32(1); seed <= 20; seed++ {
		inst := generator.HouseAllocation(6, seed)
		for k := 1; k <= inst.N; k++ {
			m, found, err := FindKStable(inst, k)
			if err != nil {
				t.Fatalf("seed=%d k=%d: unexpected error: %v", seed, k, err)
			}
			if !found {
				continue
			}
			stable, err := verifier.IsKStable(m, inst, k)
			if err != nil {
				t.Fatalf("seed=%d k=%d: round-trip error: %v", seed, k, err)
			}
			if !stable {
				t.Errorf("seed=%d k=%d: witness failed to round-trip as k-stable", seed, k)
			}
		}
	}
}

func TestFindKStable_LargeKUnlikelyBound(t *testing.T) {
	// At k=n in house allocation, a witness can only exist if every agent
	// is at their individually-top preference.
	for seed := uint32(1); seed <= 100; seed++ {
		inst := generator.HouseAllocation(10, seed)
		m, found, err := FindKStable(inst, inst.N)
		if err != nil {
			t.Fatalf("seed=%d: unexpected error: %v", seed, err)
		}
		if !found {
			continue
		}
		for i, agent := range inst.Agents {
			if kernel.Rank(agent, m.Pairs[i]) != 0 {
				t.Errorf("seed=%d: agent %d not at rank 0 in a reported k=n witness", seed, i)
			}
		}
	}
}

func TestKStableExists_MarriageRestricted(t *testing.T) {
	inst := kernel.NewMarriage(
		[][]int{{3, 2}, {3, 2}},
		[][]int{{1, 0}, {1, 0}},
	)
	ok, err := KStableExists(inst, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected a 2-stable matching to exist: {0<->3, 1<->2}")
	}
}

func TestCountKStable_MatchesBruteForceForThreeCycle(t *testing.T) {
	inst := housingThreeCycle()
	count, err := CountKStable(inst, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count < 1 {
		t.Error("expected at least the fully-top 3-cycle matching to be 3-stable")
	}
}

func TestCountKStable_InvalidInput(t *testing.T) {
	inst := housingThreeCycle()
	_, err := CountKStable(inst, 0)
	if !errors.Is(err, kernel.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFindKStable_RefusesOversizedPruningSearch(t *testing.T) {
	n := maxPruningSearchN + 1
	inst := generator.HouseAllocation(n, 3)
	// rho = k/n must land in the medium regime to actually reach
	// pruningSearch rather than the small-k or large-k fast paths.
	k := n / 2
	_, _, err := FindKStable(inst, k)
	if !errors.Is(err, kernel.ErrAllocationFailure) {
		t.Errorf("expected ErrAllocationFailure for n=%d, got %v", n, err)
	}
}

func TestExistenceMonotonicity(t *testing.T) {
	// Existence rates across a fixed corpus must be non-increasing in k.
	inst := generator.HouseAllocation(6, 7)
	prevTrue := true
	for k := 1; k <= inst.N; k++ {
		ok, err := KStableExists(inst, k)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if ok && !prevTrue {
			t.Errorf("existence rate increased at k=%d after a false at a smaller k", k)
		}
		prevTrue = ok
	}
}

func TestKStableExists_PartialPreferences(t *testing.T) {
	// Partial acceptance lists must round-trip through the same regime
	// dispatch as full preference lists: k=1 holds unconditionally, and a
	// witness (when found) must itself verify as k-stable.
	for seed := uint32(1); seed <= 10; seed++ {
		inst := generator.HouseAllocationPartial(6, 6, seed)
		ok, err := KStableExists(inst, 1)
		if err != nil {
			t.Fatalf("seed=%d: unexpected error: %v", seed, err)
		}
		if !ok {
			t.Errorf("seed=%d: expected k=1 existence to hold unconditionally for a partial instance", seed)
		}

		m, found, err := FindKStable(inst, 2)
		if err != nil {
			t.Fatalf("seed=%d k=2: unexpected error: %v", seed, err)
		}
		if !found {
			continue
		}
		stable, err := verifier.IsKStable(m, inst, 2)
		if err != nil {
			t.Fatalf("seed=%d k=2: round-trip error: %v", seed, err)
		}
		if !stable {
			t.Errorf("seed=%d k=2: witness failed to round-trip as k-stable", seed)
		}
	}
}

func TestKStableExists_AdversarialPreferencesLowersLargeKRate(t *testing.T) {
	// At k=n-1, SimilarPreferences still admits a k-stable matching (its
	// rotated order is a Latin square, so a fully-top assignment exists and
	// is trivially n-1-stable too). AdversarialPreferences shares one
	// identical order across all agents: at most one agent can ever be at
	// rank 0, so no matching can keep n-1 of the n agents from having a
	// strictly better joint reassignment, and existence genuinely fails.
	// (At k=n itself both constructions exist: no reshuffle can strictly
	// improve literally everyone when preferences are shared, so any
	// matching is trivially n-stable regardless of construction — k=n-1 is
	// the regime where the two constructions actually diverge.)
	const n = 6
	similar := generator.SimilarPreferences(n)
	adversarial := generator.AdversarialPreferences(n)

	similarOK, err := KStableExists(similar, n-1)
	if err != nil {
		t.Fatalf("similar: unexpected error: %v", err)
	}
	if !similarOK {
		t.Fatal("expected SimilarPreferences to admit an (n-1)-stable matching")
	}

	adversarialOK, err := KStableExists(adversarial, n-1)
	if err != nil {
		t.Fatalf("adversarial: unexpected error: %v", err)
	}
	if adversarialOK {
		t.Error("expected AdversarialPreferences to defeat (n-1)-stability")
	}
}
