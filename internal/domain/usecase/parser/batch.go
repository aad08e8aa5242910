package parser

import (
	"context"

	"github.com/amirhossein-jamali/timenorm/internal/domain/port/usecase"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome for one input of a batch. Parse failures are reported
// per item and do not fail the batch.
type BatchResult struct {
	Index  int
	Input  string
	Result *usecase.ParseResult
	Err    error
}

// BatchParse parses inputs with at most concurrency parses in flight; zero or less means
// unbounded. Results keep the input order. Only cancellation of ctx fails the batch.
func BatchParse(ctx context.Context, p usecase.TimeParser, inputs []string, concurrency int) ([]BatchResult, error) {
	results := make([]BatchResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.ParseDetailed(input)
			results[i] = BatchResult{Index: i, Input: input, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
