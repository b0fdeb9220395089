package pointgen

import (
	"log/slog"

	"github.com/hupe1980/pointgen/random"
)

// DefaultMaxPlacementAttempts bounds circle-center rejection sampling.
const DefaultMaxPlacementAttempts = 100000

type options struct {
	source               random.Source
	metricsCollector     MetricsCollector
	logger               *Logger
	maxPlacementAttempts int
	batchConcurrency     int
}

// Option configures a Generator.
type Option func(*options)

// WithSource sets the random source used by every generator.
// A nil source keeps the default time-seeded one.
func WithSource(src random.Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

// WithSeed uses a seeded random source so runs are reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.source = random.NewRNG(seed)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &pointgen.BasicMetricsCollector{}
//	gen := pointgen.New(pointgen.WithMetricsCollector(metrics))
//	// ... use gen ...
//	stats := metrics.GetStats()
//	fmt.Printf("Generated: %d points\n", stats.GeneratePoints)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := pointgen.NewJSONLogger(slog.LevelInfo)
//	gen := pointgen.New(pointgen.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMaxPlacementAttempts bounds the candidate centers drawn by the
// circular layout. n <= 0 removes the bound; the search then never returns
// when the disks cannot fit.
func WithMaxPlacementAttempts(n int) Option {
	return func(o *options) {
		o.maxPlacementAttempts = n
	}
}

// WithBatchConcurrency limits how many requests GenerateBatch runs at once.
// n <= 0 means no limit.
func WithBatchConcurrency(n int) Option {
	return func(o *options) {
		o.batchConcurrency = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector:     NoopMetricsCollector{},
		logger:               NoopLogger(),
		maxPlacementAttempts: DefaultMaxPlacementAttempts,
		batchConcurrency:     4,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.source == nil {
		o.source = random.New()
	}
	return o
}
