package naturals

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"naturals/pkg/domain"
	"naturals/pkg/logger"
	"naturals/pkg/serrors"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// Options configure where a Program reads from and writes to.
type Options struct {
	// In supplies the user's input.
	In io.Reader
	// Out receives the prompt and every result line.
	Out io.Writer
}

// Deps holds optional collaborators of a Program.
type Deps struct {
	// Meter records run metrics. A nil Meter disables them.
	Meter metric.Meter
}

// Program runs the exercise once against its input and output.
type Program struct {
	reader      *inputReader
	out         *bufio.Writer
	instruments *instruments
}

// New builds a Program from its dependencies and options.
func New(deps Deps, opts Options) (*Program, error) {
	meter := deps.Meter
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("naturals")
	}

	inst, err := newInstruments(meter)
	if err != nil {
		return nil, err
	}

	return &Program{
		reader:      newInputReader(opts.In),
		out:         bufio.NewWriter(opts.Out),
		instruments: inst,
	}, nil
}

// Run executes the program and returns the state it stopped in. Malformed
// input yields StateFailedInput with an ErrInvalidInput error. I/O failures
// are reported as ErrInternal errors.
func (p *Program) Run(ctx context.Context) (State, error) {
	var res result
	state, err := p.run(ctx, &res)
	if flushErr := p.out.Flush(); flushErr != nil && err == nil {
		err = serrors.Wrap(serrors.ErrInternal, flushErr, "could not flush output")
	}

	switch {
	case err == nil:
		p.instruments.record(ctx, string(res.parity), res.printed)
	case errors.Is(err, serrors.ErrInvalidInput):
		p.instruments.record(ctx, outcomeInvalid, 0)
	default:
		p.instruments.record(ctx, outcomeError, 0)
	}

	return state, err
}

// result collects what a run produced, for metrics.
type result struct {
	value   domain.InputValue
	parity  domain.Parity
	printed int
}

func (p *Program) run(ctx context.Context, res *result) (State, error) {
	state := StateAwaitInput
	for !state.Terminal() {
		logger.Debug(ctx, "entering state", zap.Stringer("state", state))

		switch state {
		case StateAwaitInput:
			v, err := p.awaitInput()
			if errors.Is(err, serrors.ErrInvalidInput) {
				logger.Debug(ctx, "invalid input", zap.Error(err))
				if _, werr := fmt.Fprintln(p.out, InvalidInputMessage); werr != nil {
					return state, serrors.Wrap(serrors.ErrInternal, werr, "could not write output")
				}

				return StateFailedInput, err
			}
			if err != nil {
				return state, err
			}
			res.value = v
			state = StateClassify

		case StateClassify:
			par, err := WriteParity(p.out, res.value)
			if err != nil {
				return state, serrors.Wrap(serrors.ErrInternal, err, "could not write parity")
			}
			res.parity = par
			logger.Debug(ctx, "classified input", zap.Stringer("value", res.value), zap.String("parity", string(par)))
			state = StatePrintSequence

		case StatePrintSequence:
			n, err := WriteSequence(p.out, res.value)
			res.printed = n
			if err != nil {
				return state, serrors.Wrap(serrors.ErrInternal, err, "could not write sequence")
			}
			state = StateDone
		}
	}

	return state, nil
}

// awaitInput shows the prompt, makes sure it reaches the user, then blocks on
// the input.
func (p *Program) awaitInput() (domain.InputValue, error) {
	if _, err := p.out.WriteString(PromptMessage); err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not write prompt")
	}
	if err := p.out.Flush(); err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not flush prompt")
	}

	return p.reader.Read()
}
