package metrics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"slcsp/pkg/contextx"
	"slcsp/pkg/logx"
)

const namespace = "slcsp"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Collector holds the run metrics on a private registry, so several runs in
// one process (tests) do not collide.
type Collector struct {
	registry *prometheus.Registry

	InputRows      *prometheus.CounterVec
	Queries        *prometheus.CounterVec
	ZipEntries     prometheus.Gauge
	AmbiguousZips  prometheus.Gauge
	RateAreasRated prometheus.Gauge
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		InputRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_rows_total",
			Help:      "Data rows read per input source.",
		}, []string{"source"}),
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Resolved queries by outcome.",
		}, []string{"outcome"}),
		ZipEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "zip_entries",
			Help:      "Zip codes mapped to exactly one rate area.",
		}),
		AmbiguousZips: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ambiguous_zips",
			Help:      "Zip codes dropped for spanning several rate areas.",
		}),
		RateAreasRated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rate_areas_with_slcsp",
			Help:      "Rate areas with a second-lowest Silver rate.",
		}),
	}

	c.registry.MustRegister(c.InputRows, c.Queries, c.ZipEntries, c.AmbiguousZips, c.RateAreasRated)

	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile dumps the registry in the node exporter textfile format.
func (c *Collector) WriteTextfile(ctx context.Context, path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("prometheus.WriteToTextfile: %w", err)
	}

	logger(ctx).Debug("metrics written", slog.String(logx.FieldPath, path))

	return nil
}
