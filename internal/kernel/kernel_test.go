package kernel

import "testing"

func housingThreeCycle() Instance {
	return NewHouseAllocation([][]int{
		{1, 2, 0},
		{2, 0, 1},
		{0, 1, 2},
	})
}

func TestRank(t *testing.T) {
	inst := housingThreeCycle()
	tests := []struct {
		name     string
		agent    int
		target   int
		expected int
	}{
		{"MostPreferred", 0, 1, 0},
		{"LeastPreferred", 0, 0, 2},
		{"MiddlePreference", 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rank(inst.Agents[tt.agent], tt.target); got != tt.expected {
				t.Errorf("Rank() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestRank_Unacceptable(t *testing.T) {
	agent := Agent{ID: 0, Preferences: []int{1, 2}}
	if got := Rank(agent, 5); got != -1 {
		t.Errorf("Rank() = %d, want -1", got)
	}
}

func TestPrefers_UnmatchedSentinel(t *testing.T) {
	agent := Agent{ID: 0, Preferences: []int{1, 2}}

	if !Prefers(agent, 1, Unmatched) {
		t.Error("an acceptable partner should be preferred to being unmatched")
	}
	if Prefers(agent, Unmatched, 1) {
		t.Error("being unmatched should never be preferred to an acceptable partner")
	}
	if !Prefers(agent, Unmatched, 5) {
		t.Error("being unmatched should be preferred to an unacceptable partner")
	}
}

func TestPrefers_RankOrder(t *testing.T) {
	inst := housingThreeCycle()
	agent := inst.Agents[0] // prefers 1 > 2 > 0

	if !Prefers(agent, 1, 2) {
		t.Error("agent 0 should prefer house 1 over house 2")
	}
	if Prefers(agent, 2, 1) {
		t.Error("agent 0 should not prefer house 2 over house 1")
	}
}

func TestCountImproved(t *testing.T) {
	inst := housingThreeCycle()

	identity := Matching{Pairs: []int{0, 1, 2}}
	cycle := Matching{Pairs: []int{1, 2, 0}} // everyone's top choice

	if got := CountImproved(identity, cycle, inst); got != 3 {
		t.Errorf("CountImproved() = %d, want 3", got)
	}
	if got := CountImproved(cycle, identity, inst); got != 0 {
		t.Errorf("CountImproved() = %d, want 0", got)
	}
	if got := CountImproved(identity, identity, inst); got != 0 {
		t.Errorf("CountImproved() = %d, want 0", got)
	}
}

func TestCountImproved_UnmatchedToMatched(t *testing.T) {
	inst := NewRoommates([][]int{
		{1, 2},
		{0, 2},
		{0, 1},
	})
	cur := Matching{Pairs: []int{Unmatched, Unmatched, Unmatched}}
	alt := Matching{Pairs: []int{1, 0, Unmatched}}

	if got := CountImproved(cur, alt, inst); got != 2 {
		t.Errorf("CountImproved() = %d, want 2", got)
	}
}

func TestIsValid_HouseAllocation(t *testing.T) {
	inst := housingThreeCycle()

	valid := Matching{Pairs: []int{1, 2, 0}}
	if !IsValid(valid, inst) {
		t.Error("expected valid matching to pass IsValid")
	}

	duplicateHouse := Matching{Pairs: []int{1, 1, 0}}
	if IsValid(duplicateHouse, inst) {
		t.Error("expected duplicate house assignment to fail IsValid")
	}

	outOfBounds := Matching{Pairs: []int{5, 1, 0}}
	if IsValid(outOfBounds, inst) {
		t.Error("expected out-of-bounds house id to fail IsValid")
	}
}

func TestIsValid_Marriage(t *testing.T) {
	inst := NewMarriage(
		[][]int{{2, 3}, {3, 2}},
		[][]int{{0, 1}, {1, 0}},
	)

	valid := Matching{Pairs: []int{2, 3, 0, 1}}
	if !IsValid(valid, inst) {
		t.Error("expected valid marriage matching to pass IsValid")
	}

	sameGender := Matching{Pairs: []int{1, 0, Unmatched, Unmatched}}
	if IsValid(sameGender, inst) {
		t.Error("expected same-gender matching to fail IsValid")
	}

	asymmetric := Matching{Pairs: []int{2, 3, 1, Unmatched}}
	if IsValid(asymmetric, inst) {
		t.Error("expected asymmetric matching to fail IsValid")
	}
}

func TestIsValid_Roommates_WrongLength(t *testing.T) {
	inst := NewRoommates([][]int{{1, 2}, {0, 2}, {0, 1}})
	m := Matching{Pairs: []int{1, 0}}
	if IsValid(m, inst) {
		t.Error("expected matching with wrong length to fail IsValid")
	}
}

func TestPrefers_IndifferenceGroup(t *testing.T) {
	// Houses 1 and 2 are tied (same group), house 0 is strictly worse.
	agent := Agent{ID: 0, Preferences: []int{1, 2, 0}, IndifferenceGroup: []int{0, 0, 1}}

	if Prefers(agent, 1, 2) || Prefers(agent, 2, 1) {
		t.Error("tied houses should not be strictly preferred to one another")
	}
	if !Prefers(agent, 1, 0) {
		t.Error("house 1 should be strictly preferred to house 0")
	}
}
