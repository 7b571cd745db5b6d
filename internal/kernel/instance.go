package kernel

// NewHouseAllocation builds an instance over n agents and n houses from
// per-agent preference lists over house ids.
func NewHouseAllocation(prefs [][]int) Instance {
	n := len(prefs)
	agents := make([]Agent, n)
	for i, p := range prefs {
		agents[i] = Agent{ID: i, Preferences: p}
	}
	return Instance{N: n, Model: HouseAllocation, NumHouses: n, Agents: agents}
}

// NewMarriage builds an instance from men's and women's preference lists.
// Men are agents [0, len(menPrefs)), women are [len(menPrefs), n).
func NewMarriage(menPrefs, womenPrefs [][]int) Instance {
	numMen := len(menPrefs)
	n := numMen + len(womenPrefs)
	agents := make([]Agent, n)
	for i, p := range menPrefs {
		agents[i] = Agent{ID: i, Preferences: p}
	}
	for i, p := range womenPrefs {
		agents[numMen+i] = Agent{ID: numMen + i, Preferences: p}
	}
	return Instance{N: n, Model: Marriage, NumMen: numMen, Agents: agents}
}

// NewRoommates builds an instance over n agents from per-agent preference
// lists over other agent ids.
func NewRoommates(prefs [][]int) Instance {
	n := len(prefs)
	agents := make([]Agent, n)
	for i, p := range prefs {
		agents[i] = Agent{ID: i, Preferences: p}
	}
	return Instance{N: n, Model: Roommates, Agents: agents}
}

// NewHouseAllocationPartial builds an instance with possibly-incomplete
// acceptance lists and optional indifference group tags over numHouses
// houses.
func NewHouseAllocationPartial(prefs [][]int, groups [][]int, numHouses int) Instance {
	n := len(prefs)
	agents := make([]Agent, n)
	for i, p := range prefs {
		a := Agent{ID: i, Preferences: p}
		if groups != nil {
			a.IndifferenceGroup = groups[i]
		}
		agents[i] = a
	}
	return Instance{N: n, Model: HouseAllocationPartial, NumHouses: numHouses, Agents: agents}
}
