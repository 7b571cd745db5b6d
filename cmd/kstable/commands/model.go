package commands

import (
	"fmt"

	"github.com/bbak/kstable/internal/bench"
	"github.com/bbak/kstable/internal/generator"
	"github.com/bbak/kstable/internal/kernel"
)

// buildInstance constructs a random instance of the named model over n
// agents, splitting n into equal-ish men/women halves for marriage.
func buildInstance(model string, n int, seed uint32) (kernel.Instance, error) {
	switch model {
	case "house":
		return generator.HouseAllocation(n, seed), nil
	case "marriage":
		numMen := n / 2
		numWomen := n - numMen
		return generator.Marriage(numMen, numWomen, seed), nil
	case "roommates":
		return generator.Roommates(n, seed), nil
	default:
		return kernel.Instance{}, fmt.Errorf("%w: unknown model %q (want house, marriage, or roommates)", kernel.ErrInvalidInput, model)
	}
}

// simpleMatching builds one well-formed matching to verify or display. It
// is not a quality heuristic, only a cheap witness to run the decision
// procedures against — the same one internal/bench times against.
func simpleMatching(inst kernel.Instance) kernel.Matching {
	return bench.SimpleMatching(inst)
}
