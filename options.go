package hopgo

import (
	"log/slog"

	"github.com/hupe1980/hopgo/persistence"
	"github.com/hupe1980/hopgo/resource"
)

type options struct {
	threshold        float32
	maxPasses        int
	seed             int64
	seedSet          bool
	logger           *Logger
	metricsCollector MetricsCollector
	compression      persistence.CompressionType
	resourceConfig   resource.Config
}

// Option configures network construction/load behavior.
type Option func(*options)

// WithThreshold sets the uniform activation threshold applied at every unit.
// Default 0.
func WithThreshold(threshold float32) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithMaxPasses bounds the number of relaxation passes per recall; exceeding
// it fails with ErrNonConvergence.
//
// Default 0 (unbounded), which is safe as long as the weight matrix
// invariants hold — and they are enforced at every training and load
// boundary. Set a bound when feeding weights you do not fully trust.
func WithMaxPasses(n int) Option {
	return func(o *options) {
		o.maxPasses = n
	}
}

// WithSeed sets the base seed for per-recall random visitation order.
// Each recall derives its own source from the base seed and a sequence
// number, so concurrent recalls stay independent.
//
// Without this option the base seed is taken from the wall clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
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

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hopgo.BasicMetricsCollector{}
//	net, _ := hopgo.New(64, hopgo.WithMetricsCollector(metrics))
//	// ... use net ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithSnapshotCompression selects the snapshot payload compression.
// Default ZSTD.
func WithSnapshotCompression(c persistence.CompressionType) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMaxBatchWorkers caps the number of concurrent BatchRecall workers.
// Default 1.
func WithMaxBatchWorkers(n int64) Option {
	return func(o *options) {
		o.resourceConfig.MaxWorkers = n
	}
}

// WithIOLimit throttles snapshot transfer throughput in bytes per second.
// Default 0 (unlimited).
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.resourceConfig.IOLimitBytesPerSec = bytesPerSec
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		compression:      persistence.CompressionZSTD,
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

// RecallOption configures a single recall call.
type RecallOption func(*recallOptions)

type recallOptions struct {
	seed    int64
	seedSet bool
}

// WithRecallSeed pins the random visitation order of one recall for
// reproducible runs.
func WithRecallSeed(seed int64) RecallOption {
	return func(o *recallOptions) {
		o.seed = seed
		o.seedSet = true
	}
}

func applyRecallOptions(optFns []RecallOption) recallOptions {
	var o recallOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
