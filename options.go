package ringlog

import "go.uber.org/zap"

// Option configures a Buffer at build time. Functional options rather
// than a config struct, since most of these knobs are genuinely optional
// and additive.
type Option interface {
	apply(*bufferConfig)
}

type optionFunc func(*bufferConfig)

func (f optionFunc) apply(c *bufferConfig) { f(c) }

type bufferConfig struct {
	capacity   uint64
	logger     *zap.Logger
	metrics    MetricsSink
	spinBudget int
}

func defaultBufferConfig() *bufferConfig {
	return &bufferConfig{
		capacity:   1024,
		logger:     zap.NewNop(),
		metrics:    noopMetricsSink{},
		spinBudget: 10000,
	}
}

// WithLogger injects a structured logger used for lifecycle and
// backpressure diagnostics. The default is zap.NewNop(), so the hot path
// never logs unless a caller opts in.
func WithLogger(logger *zap.Logger) Option {
	return optionFunc(func(c *bufferConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithMetrics wires a MetricsSink the sequencer and producers report to.
// The default sink is a no-op.
func WithMetrics(sink MetricsSink) Option {
	return optionFunc(func(c *bufferConfig) {
		if sink != nil {
			c.metrics = sink
		}
	})
}

// WithSpinBudget sets the number of spin iterations a producer or the
// sequencer issues before yielding the goroutine via runtime.Gosched.
// Defaults to 10000.
func WithSpinBudget(n int) Option {
	return optionFunc(func(c *bufferConfig) {
		if n > 0 {
			c.spinBudget = n
		}
	})
}
