package enumerate

import (
	"testing"

	"github.com/bbak/kstable/internal/generator"
	"github.com/bbak/kstable/internal/kernel"
)

func TestProfiles_CountForThreeAgents(t *testing.T) {
	profiles := Profiles(3)
	want := 6 * 6 * 6 // (3!)^3
	if len(profiles) != want {
		t.Fatalf("expected %d profiles, got %d", want, len(profiles))
	}
	for _, inst := range profiles {
		if inst.N != 3 || inst.Model != kernel.HouseAllocation {
			t.Fatalf("unexpected instance shape: %+v", inst)
		}
	}
}

func TestSample_Reproducible(t *testing.T) {
	a := Sample(5, 7, 10)
	b := Sample(5, 7, 10)
	for i := range a {
		for j := range a[i].Agents {
			for p := range a[i].Agents[j].Preferences {
				if a[i].Agents[j].Preferences[p] != b[i].Agents[j].Preferences[p] {
					t.Fatalf("sample %d agent %d differs across identical seeds", i, j)
				}
			}
		}
	}
}

func TestHouseAllocationMatchings_CountsAllPermutations(t *testing.T) {
	inst := generator.HouseAllocation(3, 1)
	results, err := HouseAllocationMatchings(inst, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("expected 3! = 6 matchings, got %d", len(results))
	}
}

func TestHouseAllocationMatchings_RejectsNonHouseModel(t *testing.T) {
	inst := kernel.NewRoommates([][]int{{1, 2}, {0, 2}, {0, 1}})
	_, err := HouseAllocationMatchings(inst, 1)
	if err == nil {
		t.Fatal("expected an error for a non-house-allocation instance")
	}
}

func TestTable_ProducesOneCellPerNK(t *testing.T) {
	table, err := Table(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1 + 2 + 3 // n=1 has 1 k value, n=2 has 2, n=3 has 3
	if len(table.Cells) != want {
		t.Fatalf("expected %d cells, got %d", want, len(table.Cells))
	}
	for _, c := range table.Cells {
		if c.Trials == 0 {
			t.Errorf("cell n=%d k=%d has zero trials", c.N, c.K)
		}
		rate := c.ExistenceRate()
		if rate < 0 || rate > 1 {
			t.Errorf("cell n=%d k=%d has out-of-range existence rate %f", c.N, c.K, rate)
		}
	}
}
