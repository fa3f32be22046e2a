package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"slcsp/internal/config"
	"slcsp/internal/domain/entity"
	"slcsp/internal/domain/service/ratearea"
	"slcsp/internal/domain/service/resolver"
	"slcsp/internal/domain/service/slcsp"
	"slcsp/internal/infrastructure/persistence"
	"slcsp/internal/infrastructure/printer"
	"slcsp/internal/infrastructure/report"
	"slcsp/internal/worker"
	"slcsp/pkg/contextx"
	"slcsp/pkg/logx"
	"slcsp/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const outcomeFound = "found"

// Run builds both lookup tables, resolves every query and prints the result
// to out. Nothing is printed unless every input was read successfully.
func Run(ctx context.Context, cfg config.Config, out io.Writer) error {
	start := time.Now()

	runID, err := contextx.RunIDFromContext(ctx)
	if err != nil {
		runID = contextx.NewRunID()
		ctx = contextx.WithRunID(ctx, runID)
	}
	log := logger(ctx).With(logx.Stringer(logx.FieldRunID, runID))
	ctx = contextx.WithLogger(ctx, log)

	collector := metrics.NewCollector()

	// 1. Lookup tables, independent of each other
	var (
		zips  *ratearea.Table
		rates *slcsp.Table
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := persistence.NewRateAreaRepository(cfg.Input.ZipsPath).List(gctx)
		if err != nil {
			return fmt.Errorf("read rate areas: %w", err)
		}
		collector.InputRows.WithLabelValues("zips").Add(float64(len(rows)))

		zips, err = ratearea.Build(rows)
		if err != nil {
			return fmt.Errorf("build rate area table: %w", err)
		}

		log.Info("rate area table built",
			slog.String(logx.FieldPath, cfg.Input.ZipsPath),
			slog.Int(logx.FieldRows, len(rows)),
			slog.Int("zips", zips.Len()),
			slog.Int("ambiguous", zips.AmbiguousCount()),
		)
		return nil
	})

	g.Go(func() error {
		rows, err := persistence.NewPlanRepository(cfg.Input.PlansPath).List(gctx)
		if err != nil {
			return fmt.Errorf("read plans: %w", err)
		}
		collector.InputRows.WithLabelValues("plans").Add(float64(len(rows)))

		rates, err = slcsp.Build(rows)
		if err != nil {
			return fmt.Errorf("build slcsp table: %w", err)
		}

		log.Info("slcsp table built",
			slog.String(logx.FieldPath, cfg.Input.PlansPath),
			slog.Int(logx.FieldRows, len(rows)),
			slog.Int("rate_areas", rates.Len()),
		)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	collector.ZipEntries.Set(float64(zips.Len()))
	collector.AmbiguousZips.Set(float64(zips.AmbiguousCount()))
	collector.RateAreasRated.Set(float64(rates.Len()))

	// 2. Queries
	queries, err := persistence.NewQueryRepository(cfg.Input.QueriesPath).List(ctx)
	if err != nil {
		return fmt.Errorf("read queries: %w", err)
	}
	collector.InputRows.WithLabelValues("queries").Add(float64(len(queries)))

	results, err := worker.NewQueryRunner(resolver.New(zips, rates)).
		WithWorkers(cfg.Workers).
		Run(ctx, queries)
	if err != nil {
		return err
	}

	// 3. Output
	if err := printer.New(out).Print(results); err != nil {
		return fmt.Errorf("print results: %w", err)
	}

	outcomes := lo.CountValuesBy(results, outcome)
	for name, count := range outcomes {
		collector.Queries.WithLabelValues(name).Add(float64(count))
	}

	if path := cfg.Report.DiagnosticsPath; path != "" {
		if err := report.WriteFile(path, runID, results); err != nil {
			return fmt.Errorf("write diagnostics: %w", err)
		}
	}

	if path := cfg.Report.MetricsPath; path != "" {
		if err := collector.WriteTextfile(ctx, path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	log.Info("run finished",
		slog.Int(logx.FieldQueries, len(results)),
		slog.Int("found", outcomes[outcomeFound]),
		slog.Any("missing", lo.OmitByKeys(outcomes, []string{outcomeFound})),
		logx.Duration(start),
	)

	return nil
}

func outcome(r entity.Result) string {
	if r.Found {
		return outcomeFound
	}
	return string(r.Reason)
}
