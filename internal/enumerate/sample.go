package enumerate

import (
	"github.com/bbak/kstable/internal/generator"
	"github.com/bbak/kstable/internal/kernel"
)

// sampleTableSizeAtFour is the spec's explicit proxy for n = 4, where the
// exhaustive (4!)^4 = 331776 profile count is a practical but expensive
// ceiling: 1000 random seeds stand in for it.
const sampleTableSizeAtFour = 1000

// Sample draws count random house-allocation instances of size n, using
// seed to derive count further reproducible seeds from a single generator
// stream rather than requiring the caller to supply count seeds.
func Sample(n int, seed uint32, count int) []kernel.Instance {
	g := generator.New(seed)
	instances := make([]kernel.Instance, count)
	for i := range instances {
		instances[i] = generator.HouseAllocation(n, g.Uint32())
	}
	return instances
}
