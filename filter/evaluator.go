package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/alquran/quran"
)

// EvaluatorOption configures a ConcurrentEvaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers caps the number of goroutines used for one Apply
func WithWorkers(n int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithChunkSize sets how many editions each goroutine handles. Lists no
// longer than one chunk are filtered on the calling goroutine.
func WithChunkSize(n int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if n > 0 {
			e.chunkSize = n
		}
	}
}

// ConcurrentEvaluator filters edition lists, splitting large ones across
// an errgroup
type ConcurrentEvaluator struct {
	workers   int
	chunkSize int
}

// NewConcurrentEvaluator returns an evaluator sized to GOMAXPROCS
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: 256,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply returns the editions f accepts, in their original order. The first
// evaluation error aborts the run.
func (e *ConcurrentEvaluator) Apply(ctx context.Context, f CompiledFilter, editions []quran.Edition) ([]quran.Edition, error) {
	if len(editions) <= e.chunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return applyChunk(f, editions)
	}

	chunks := (len(editions) + e.chunkSize - 1) / e.chunkSize
	results := make([][]quran.Edition, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range chunks {
		start := i * e.chunkSize
		end := min(start+e.chunkSize, len(editions))

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			matched, err := applyChunk(f, editions[start:end])
			if err != nil {
				return err
			}
			results[i] = matched
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, r := range results {
		total += len(r)
	}
	out := make([]quran.Edition, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func applyChunk(f CompiledFilter, editions []quran.Edition) ([]quran.Edition, error) {
	matched := make([]quran.Edition, 0, len(editions))
	for _, ed := range editions {
		ok, err := f.Run(ed)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, ed)
		}
	}
	return matched, nil
}
