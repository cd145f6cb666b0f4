package vecrank

import (
	"log/slog"

	"github.com/hupe1980/vecrank/distance"
)

type options struct {
	registry         *distance.Registry
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Ranker.
type Option func(*options)

// WithRegistry configures the metric registry used to resolve metric names.
//
// If nil is passed, distance.Default() is used.
func WithRegistry(r *distance.Registry) Option {
	return func(o *options) {
		if r == nil {
			r = distance.Default()
		}
		o.registry = r
	}
}

// WithWorkers configures how many goroutines score the dataset.
//
// The dataset is split into contiguous chunks, one per worker. Results are
// identical to sequential ranking. Values <= 1 disable parallel scoring.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vecrank.BasicMetricsCollector{}
//	r := vecrank.New(vecrank.WithMetricsCollector(metrics))
//	// ... use r ...
//	stats := metrics.GetStats()
//	fmt.Printf("Ranks: %d, Avg latency: %dns\n", stats.RankCount, stats.RankAvgNanos)
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
//	logger := vecrank.NewJSONLogger(slog.LevelDebug)
//	r := vecrank.New(vecrank.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		registry:         distance.Default(),
		workers:          1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
