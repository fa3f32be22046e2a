package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"slcsp/internal/domain/entity"
	"slcsp/pkg/contextx"
	"slcsp/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Resolver interface {
	Resolve(zip string) entity.Result
}

// QueryRunner resolves a query list, optionally in parallel. Results keep the
// order of the queries.
type QueryRunner struct {
	resolver Resolver
	workers  int
}

func NewQueryRunner(resolver Resolver) *QueryRunner {
	return &QueryRunner{
		resolver: resolver,
		workers:  1,
	}
}

func (w *QueryRunner) WithWorkers(n int) *QueryRunner {
	if n > 0 {
		w.workers = n
	}
	return w
}

func (w *QueryRunner) Run(ctx context.Context, queries []entity.Query) ([]entity.Result, error) {
	start := time.Now()
	results := make([]entity.Result, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)

	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}

		i, q := i, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = w.resolver.Resolve(q.ZipCode)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolve queries: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolve queries: %w", err)
	}

	logger(ctx).Debug("queries resolved",
		slog.Int(logx.FieldQueries, len(queries)),
		slog.Int(logx.FieldWorkers, w.workers),
		logx.Duration(start),
	)

	return results, nil
}
