// Package metrics exposes an OpenTelemetry meter provider backed by a private
// Prometheus registry, so short-lived processes can dump their counters to a
// node_exporter textfile when they exit.
package metrics

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// SequenceLengthBuckets provides histogram buckets for counts of printed
// numbers, growing by powers of ten.
var SequenceLengthBuckets = []float64{0, 1, 10, 100, 1e3, 1e4, 1e5, 1e6} //nolint: gochecknoglobals

// Provider owns the meter provider and the registry its exporter feeds.
type Provider struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
}

// New creates a Provider whose metric names are prefixed with namespace.
func New(namespace string) (*Provider, error) {
	registry := prometheus.NewRegistry()

	opts := []otelprom.Option{otelprom.WithRegisterer(registry)}
	if namespace != "" {
		opts = append(opts, otelprom.WithNamespace(namespace))
	}

	exp, err := otelprom.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not create otel exporter")
	}

	return &Provider{
		registry: registry,
		provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)),
	}, nil
}

// Meter returns a named meter from the underlying provider.
func (p *Provider) Meter(name string) metric.Meter {
	return p.provider.Meter(name)
}

// Gatherer exposes the registry, mainly for inspection in tests.
func (p *Provider) Gatherer() prometheus.Gatherer {
	return p.registry
}

// WriteTextfile writes every collected metric to path in Prometheus text
// format. The file is replaced atomically.
func (p *Provider) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, p.registry); err != nil {
		return errors.Wrapf(err, "could not write metrics to %s", path)
	}

	return nil
}

// Shutdown flushes and stops the meter provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if err := p.provider.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "could not shut down meter provider")
	}

	return nil
}
