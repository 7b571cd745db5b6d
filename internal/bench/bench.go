// Package bench times the verifier and existence engine across a grid of
// (n, k) cells and reports percentile summaries, the way the teacher's
// Monte-Carlo engine reports Percentiles over simulation trials. Unlike
// the core decision packages, it is allowed to use concurrency: cells are
// independent, so they fan out across a bounded worker pool. Each worker
// still runs whole, synchronous decisions — no goroutine is spawned inside
// a single verify/exists call.
package bench

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bbak/kstable/internal/existence"
	"github.com/bbak/kstable/internal/generator"
	"github.com/bbak/kstable/internal/kernel"
	"github.com/bbak/kstable/internal/stats"
	"github.com/bbak/kstable/internal/verifier"
)

// Config controls the (n, k) grid a benchmark run covers.
type Config struct {
	NMin, NMax int
	Trials     int
	Seed       uint32
	Workers    int
}

// CellResult holds nanosecond timing percentiles for one (n, k) cell,
// mirroring the shape of the teacher's simulation.Percentiles without the
// forecasting-specific labels.
type CellResult struct {
	N        int
	K        int
	Trials   int
	MedianNS float64
	P90NS    float64
	P99NS    float64
	MinNS    float64
	MaxNS    float64
}

type cellKey struct{ n, k int }

func cellsFor(cfg Config) []cellKey {
	var cells []cellKey
	for n := cfg.NMin; n <= cfg.NMax; n++ {
		for k := 1; k <= n; k++ {
			cells = append(cells, cellKey{n, k})
		}
	}
	return cells
}

func workerCount(cfg Config) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return 4
}

// decisionFunc runs one timed trial for a cell and returns the elapsed
// duration plus any error from the decision itself.
type decisionFunc func(cell cellKey, seed uint32) (time.Duration, error)

// VerifierTable benchmarks IsKStable over cfg's (n, k) grid. Each trial
// builds a fresh random instance and a simple valid matching for it, then
// times a single IsKStable call.
func VerifierTable(ctx context.Context, cfg Config) ([]CellResult, error) {
	return runTable(ctx, cfg, func(cell cellKey, seed uint32) (time.Duration, error) {
		inst := generator.HouseAllocation(cell.n, seed)
		m := SimpleMatching(inst)
		start := time.Now()
		_, err := verifier.IsKStable(m, inst, cell.k)
		return time.Since(start), err
	})
}

// ExistenceTable benchmarks KStableExists over cfg's (n, k) grid.
func ExistenceTable(ctx context.Context, cfg Config) ([]CellResult, error) {
	return runTable(ctx, cfg, func(cell cellKey, seed uint32) (time.Duration, error) {
		inst := generator.HouseAllocation(cell.n, seed)
		start := time.Now()
		_, err := existence.KStableExists(inst, cell.k)
		return time.Since(start), err
	})
}

func runTable(ctx context.Context, cfg Config, decide decisionFunc) ([]CellResult, error) {
	cells := cellsFor(cfg)
	results := make([]CellResult, len(cells))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(cfg))

	for i, cell := range cells {
		i, cell := i, cell
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := timeCell(cell, cfg.Trials, cfg.Seed+uint32(i), decide)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// timeCell runs trials independent decisions for a single (n, k) cell and
// reduces the resulting durations to percentile summaries. A fresh seed
// derives each trial's instance from the generator's own xorshift stream
// so successive trials within a cell are reproducible but not identical.
func timeCell(cell cellKey, trials int, seed uint32, decide decisionFunc) (CellResult, error) {
	g := generator.New(seed)
	durationsNS := make([]float64, 0, trials)

	for t := 0; t < trials; t++ {
		d, err := decide(cell, g.Uint32())
		if err != nil {
			return CellResult{}, err
		}
		durationsNS = append(durationsNS, float64(d.Nanoseconds()))
	}

	sort.Float64s(durationsNS)

	return CellResult{
		N:        cell.n,
		K:        cell.k,
		Trials:   trials,
		MedianNS: stats.CalculateMedianContinuous(durationsNS),
		P90NS:    percentileAt(durationsNS, 0.90),
		P99NS:    percentileAt(durationsNS, 0.99),
		MinNS:    durationsNS[0],
		MaxNS:    durationsNS[len(durationsNS)-1],
	}, nil
}

// percentileAt returns the value at the given percentile of an
// already-sorted slice, clamped to the last index so p=1.0 never
// overruns the slice.
func percentileAt(sorted []float64, p float64) float64 {
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// SimpleMatching builds one well-formed matching for timing purposes: a
// bijective house assignment (agent i to house i, always valid since
// houses and agents share the same index range by construction), men
// paired with women in id order for marriage, and adjacent pairing for
// roommates. It deliberately does not replicate
// k_stable_matching_exists_large_k's "assign each agent its top choice"
// attempt from the C source, since that approach collides whenever two
// agents share a first choice and is not reliably valid; bench only needs
// a cheap, always-valid matching to exercise against, not a
// spec-faithful existence heuristic.
func SimpleMatching(inst kernel.Instance) kernel.Matching {
	m := kernel.NewMatching(inst.N)
	switch inst.Model {
	case kernel.HouseAllocation, kernel.HouseAllocationPartial:
		for i := 0; i < inst.N && i < inst.NumHouses; i++ {
			m.Pairs[i] = i
		}
	case kernel.Marriage:
		for i := 0; i < inst.NumMen && inst.NumMen+i < inst.N; i++ {
			m.Pairs[i] = inst.NumMen + i
			m.Pairs[inst.NumMen+i] = i
		}
	case kernel.Roommates:
		for i := 0; i+1 < inst.N; i += 2 {
			m.Pairs[i] = i + 1
			m.Pairs[i+1] = i
		}
	}
	return m
}
