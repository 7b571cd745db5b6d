package enumerate

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bbak/kstable/internal/existence"
	"github.com/bbak/kstable/internal/kernel"
)

// tableWorkers bounds how many (n, k) cells Table evaluates concurrently.
// Cells are independent (spec.md §5: no shared mutable state between
// queries), so fan-out is safe; the bound just keeps a large nMax from
// spawning one goroutine per cell at once.
const tableWorkers = 4

// tableSeed seeds the sampled regime (n >= 4) so repeated Table calls over
// the same nMax are reproducible.
const tableSeed = 0xc0ffee

// Cell aggregates existence-engine results over one (n, k) pair.
type Cell struct {
	N           int
	K           int
	Trials      int
	Positive    int
	AvgWallTime time.Duration
}

// ExistenceRate is Positive / Trials, the fraction of sampled or enumerated
// instances at this (n, k) that admit a k-stable matching.
func (c Cell) ExistenceRate() float64 {
	if c.Trials == 0 {
		return 0
	}
	return float64(c.Positive) / float64(c.Trials)
}

// ExistenceTable is a (n, k)-indexed grid of existence rates and timings.
type ExistenceTable struct {
	Cells []Cell
}

// Table builds an ExistenceTable for every n in [1, nMax] and every
// k in [1, n]: exhaustive profile enumeration for n <= 3, random sampling
// of sampleTableSizeAtFour instances otherwise. Cells are independent, so
// they are evaluated across a bounded worker pool rather than in a single
// sequential pass; Cells is still returned in (n, k) order regardless of
// completion order, so results stay deterministic for golden comparison.
func Table(nMax int) (ExistenceTable, error) {
	type cellKey struct {
		n, k int
	}
	var keys []cellKey
	instancesByN := make(map[int][]kernel.Instance, nMax)
	for n := 1; n <= nMax; n++ {
		instancesByN[n] = instancesForN(n)
		for k := 1; k <= n; k++ {
			keys = append(keys, cellKey{n, k})
		}
	}

	cells := make([]Cell, len(keys))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(tableWorkers)

	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			cell, err := evaluateCell(key.n, key.k, instancesByN[key.n])
			if err != nil {
				return err
			}
			cells[i] = cell
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ExistenceTable{}, err
	}
	return ExistenceTable{Cells: cells}, nil
}

func evaluateCell(n, k int, instances []kernel.Instance) (Cell, error) {
	cell := Cell{N: n, K: k, Trials: len(instances)}
	var total time.Duration

	for _, inst := range instances {
		start := time.Now()
		ok, err := existence.KStableExists(inst, k)
		total += time.Since(start)
		if err != nil {
			return Cell{}, err
		}
		if ok {
			cell.Positive++
		}
	}
	if len(instances) > 0 {
		cell.AvgWallTime = total / time.Duration(len(instances))
	}
	return cell, nil
}

func instancesForN(n int) []kernel.Instance {
	if n <= 3 {
		return Profiles(n)
	}
	return Sample(n, tableSeed, sampleTableSizeAtFour)
}
