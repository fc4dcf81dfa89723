// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"dnadist-core/fasta"
	"dnadist-core/model"
)

// Config controls the pairwise counting pool.
type Config struct {
	Threads int         // worker goroutines (>=1)
	Model   model.Model // decides the anchor counting strategy
}

// PairResult is the mutation matrix for one unordered sequence pair,
// identified by record indices.
type PairResult struct {
	I, J   int
	Matrix model.Matrix
}

// windowSize bounds how much of a pair is counted per tally before
// the window matrix is merged into the running one. Splitting an
// anchor at a window edge only reshuffles identity bins, never totals.
const windowSize = 1 << 16

func countPair(s, q []byte, strat model.Strategy) model.Matrix {
	var mm model.Matrix
	for off := 0; off < len(s); off += windowSize {
		end := off + windowSize
		if end > len(s) {
			end = len(s)
		}
		var win model.Matrix
		win.CountAligned(s[off:end], q[off:end], strat)
		mm = mm.Average(win)
	}
	return mm
}

// ForEachPair computes a mutation matrix for every unordered pair of
// records and streams results to visit, in arbitrary order. Each
// worker fills its own matrix, so no locking is needed until the
// collector goroutine hands results to visit one at a time. Returns
// the first error encountered, including context cancellation.
func ForEachPair(ctx context.Context, cfg Config, recs []fasta.Record, visit func(PairResult) error) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	strat := cfg.Model.AnchorStrategy()

	type job struct{ i, j int }
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan PairResult, cfg.Threads*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case jb, ok := <-jobs:
					if !ok {
						return
					}
					mm := countPair(recs[jb.i].Seq, recs[jb.j].Seq, strat)
					select {
					case results <- PairResult{I: jb.i, J: jb.j, Matrix: mm}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			if err := visit(r); err != nil {
				cerr = err
			}
		}
	}()

feed:
	for i := 0; i < len(recs); i++ {
		for j := i + 1; j < len(recs); j++ {
			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{i, j}:
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
