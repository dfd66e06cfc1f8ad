// Package precompile implements the confidential runtime precompiles as pure functions from
// call data to output.
package precompile

import (
	"fmt"
	"time"

	"github.com/oasisprotocol/oasis-core/go/common/logging"

	"github.com/ZigaMr/sapphire-precompiles/crypto/rng"
)

// DefaultMaxInputSize is the default maximum size of the call data in bytes.
const DefaultMaxInputSize = 1 << 20

// Option configures a Dispatcher.
type Option func(d *Dispatcher)

// WithRNGMode sets the entropy source used by RandomBytes.
func WithRNGMode(mode rng.Mode) Option {
	return func(d *Dispatcher) {
		d.rngMode = mode
	}
}

// WithMaxInputSize sets the maximum accepted call data size.
func WithMaxInputSize(size int) Option {
	return func(d *Dispatcher) {
		d.maxInputSize = size
	}
}

// WithMetrics enables recording of dispatch metrics.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// Dispatcher maps operations to their precompiles. It holds no per-call state and is safe
// for concurrent use.
type Dispatcher struct {
	rngMode      rng.Mode
	maxInputSize int
	metrics      *Metrics

	logger *logging.Logger
}

// New creates a new dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		rngMode:      rng.ModeSystem,
		maxInputSize: DefaultMaxInputSize,
		logger:       logging.GetLogger("precompile"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RNGMode returns the configured entropy source.
func (d *Dispatcher) RNGMode() rng.Mode {
	return d.rngMode
}

// Dispatch decodes the input according to the operation's schema, runs the precompile and
// returns its output. Exactly one of the output and the error is non-nil.
func (d *Dispatcher) Dispatch(op Operation, input []byte) ([]byte, error) {
	start := time.Now()
	out, err := d.dispatch(op, input)
	if err != nil {
		d.logger.Debug("operation failed",
			"operation", op,
			"input_size", len(input),
			"err", err,
		)
		d.metrics.observe(op, start, err)
		return nil, err
	}

	d.logger.Debug("operation succeeded",
		"operation", op,
		"input_size", len(input),
		"output_size", len(out),
	)
	d.metrics.observe(op, start, nil)
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

func (d *Dispatcher) dispatch(op Operation, input []byte) ([]byte, error) {
	c, ok := contracts[op]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedOperation, uint8(op))
	}
	if d.maxInputSize > 0 && len(input) > d.maxInputSize {
		return nil, fmt.Errorf("%w: input of %d bytes exceeds the %d byte limit", ErrDecode, len(input), d.maxInputSize)
	}

	if c.rawArgs != "" {
		return c.run(d, input, nil)
	}
	args, err := c.args.Decode(input)
	if err != nil {
		return nil, decodeError(err)
	}
	return c.run(d, input, args)
}

var defaultDispatcher = New()

// Dispatch runs the operation with the default dispatcher (system randomness, default input
// size limit).
func Dispatch(op Operation, input []byte) ([]byte, error) {
	return defaultDispatcher.Dispatch(op, input)
}
