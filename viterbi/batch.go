package viterbi

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvchirp/logging"
)

// BatchOptions configures DecodeBatch.
//
// Fields:
//   - Options    : decoder options shared by every problem, resolved as in Decode.
//   - Concurrency: maximum decodes in flight; <= 0 means runtime.GOMAXPROCS(0).
//   - Logger     : receives per-item and summary records; nil discards them.
type BatchOptions struct {
	Options
	Concurrency int
	Logger      *logging.Logger
}

// DecodeBatch decodes independent problems (e.g. one per recorded syllable)
// concurrently. out[i] is the MAP path of problems[i].
//
// Each decode is the same synchronous kernel as Decode; parallelism is only
// across problems, so every path is bit-identical to a serial Decode.
// The first failure cancels the remaining work and is returned wrapped with
// the index of the failing problem. A cancelled ctx returns ctx.Err().
func DecodeBatch(ctx context.Context, problems []Problem, opts *BatchOptions) ([][]int, error) {
	var bo BatchOptions
	if opts != nil {
		bo = *opts
	}
	limit := bo.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	log := logging.OrNoop(bo.Logger).WithOp("viterbi_decode").WithCount(len(problems))
	start := time.Now()

	out := make([][]int, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range problems {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, err := Decode(problems[i], &bo.Options)
			log.LogItem(gctx, i, err)
			if err != nil {
				return fmt.Errorf("problem %d: %w", i, err)
			}
			out[i] = path

			return nil
		})
	}
	err := g.Wait()
	log.LogBatch(ctx, len(problems), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return out, nil
}
