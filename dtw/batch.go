package dtw

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvchirp/logging"
	"github.com/katalvlaran/lvchirp/matrix"
)

// Result holds the forward-pass outputs for one distance matrix.
type Result struct {
	D *matrix.Dense
	S *matrix.IntDense
}

// BatchOptions configures ForwardBatch.
//
// Fields:
//   - Options    : forward options shared by every matrix.
//   - Concurrency: maximum passes in flight; <= 0 means runtime.GOMAXPROCS(0).
//   - Logger     : receives per-item and summary records; nil discards them.
type BatchOptions struct {
	Options
	Concurrency int
	Logger      *logging.Logger
}

// ForwardBatch runs Forward over independent distance matrices (e.g. one
// reference syllable against many targets) concurrently. out[i] belongs to ms[i].
//
// The step set is validated once before any work starts. The first failure
// cancels the remaining passes and is returned wrapped with its index; a
// cancelled ctx returns ctx.Err(). A nil opts uses DefaultOptions().
func ForwardBatch(ctx context.Context, ms []*matrix.Dense, steps Steps, opts *BatchOptions) ([]Result, error) {
	bo := BatchOptions{Options: DefaultOptions()}
	if opts != nil {
		bo = *opts
	}
	if err := steps.Validate(); err != nil {
		return nil, err
	}
	limit := bo.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	log := logging.OrNoop(bo.Logger).WithOp("dtw_forward").WithCount(len(ms))
	start := time.Now()

	out := make([]Result, len(ms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range ms {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			D, S, err := Forward(ms[i], steps, &bo.Options)
			log.LogItem(gctx, i, err)
			if err != nil {
				return fmt.Errorf("matrix %d: %w", i, err)
			}
			out[i] = Result{D: D, S: S}

			return nil
		})
	}
	err := g.Wait()
	log.LogBatch(ctx, len(ms), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return out, nil
}
