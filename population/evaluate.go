// SPDX-License-Identifier: MIT

// Package population scores whole populations of TTP chromosomes.
//
// Evaluate fans the per-chromosome work out over a bounded goroutine pool;
// the evaluator and chromosomes are only read, so no locking is needed and
// every worker writes to its own slot of the result slice.
package population

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/ttp/genetic"
	"github.com/katalvlaran/ttp/ttp"
)

// Scored is one evaluated chromosome.
type Scored struct {
	Index  int // position in the input slice
	Result ttp.Result
	Net    float64 // Result.TotalProfit - RentingRatio*Result.TotalTime
}

// Evaluate scores every chromosome against ev. Output is positionally aligned
// with the input and identical to calling ev.Evaluate in a loop.
//
// The first error (invalid chromosome or ctx cancellation) stops scheduling
// of further work and is returned; no partial results are returned.
//
// Complexity: O(len(chromosomes)·n) work over min(workers, len) goroutines.
func Evaluate(ctx context.Context, ev *ttp.Evaluator, chromosomes []genetic.Chromosome, opts ...Option) ([]Scored, error) {
	if ev == nil {
		return nil, fmt.Errorf("population.Evaluate: evaluator is nil: %w", ttp.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("population.Evaluate: %w", err)
	}
	o := gatherOptions(opts...)

	out := make([]Scored, len(chromosomes))
	p := pool.New().
		WithMaxGoroutines(o.workers).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for k := range chromosomes {
		k := k // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loop semantics)
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := chromosomes[k]
			res, err := ev.Evaluate(c.Tour, c.Plan)
			if err != nil {
				return fmt.Errorf("chromosome %d: %w", k, err)
			}
			out[k] = Scored{Index: k, Result: res, Net: ev.Net(res)}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("population.Evaluate: %w", err)
	}

	return out, nil
}
