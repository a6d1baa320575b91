package naturals

import (
	"context"
	"naturals/pkg/metrics"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcome labels recorded on the runs counter.
const (
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

type instruments struct {
	runs           metric.Int64Counter
	sequenceLength metric.Int64Histogram
}

func newInstruments(meter metric.Meter) (*instruments, error) {
	runs, err := meter.Int64Counter("runs",
		metric.WithDescription("Completed runs by outcome (even, odd, invalid, error)."))
	if err != nil {
		return nil, errors.Wrap(err, "could not create runs counter")
	}

	sequenceLength, err := meter.Int64Histogram("sequence_length",
		metric.WithDescription("Natural numbers printed per run."),
		metric.WithExplicitBucketBoundaries(metrics.SequenceLengthBuckets...))
	if err != nil {
		return nil, errors.Wrap(err, "could not create sequence length histogram")
	}

	return &instruments{runs: runs, sequenceLength: sequenceLength}, nil
}

func (i *instruments) record(ctx context.Context, outcome string, printed int) {
	i.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	if outcome != outcomeInvalid && outcome != outcomeError {
		i.sequenceLength.Record(ctx, int64(printed))
	}
}
