package hopgo

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hopgo/internal/library"
	"github.com/hupe1980/hopgo/internal/relax"
	"github.com/hupe1980/hopgo/internal/weights"
	"github.com/hupe1980/hopgo/pattern"
	"github.com/hupe1980/hopgo/persistence"
	"github.com/hupe1980/hopgo/resource"
)

// Network is a discrete Hopfield associative memory.
//
// Training takes the write lock; recalls share the read lock, so any number
// of recalls may run in parallel against a trained network.
type Network struct {
	mu      sync.RWMutex
	weights *weights.Matrix
	library *library.Library

	threshold float32
	maxPasses int

	seed    int64
	seedSeq atomic.Int64

	compression persistence.CompressionType
	controller  *resource.Controller
	logger      *Logger
	metrics     MetricsCollector
}

// New creates an untrained network with the given number of units.
func New(size int, optFns ...Option) (*Network, error) {
	m, err := weights.New(size)
	if err != nil {
		return nil, translateError(err)
	}
	return newNetwork(m, library.New(size), applyOptions(optFns)), nil
}

func newNetwork(m *weights.Matrix, lib *library.Library, o options) *Network {
	seed := o.seed
	if !o.seedSet {
		seed = time.Now().UnixNano()
	}
	return &Network{
		weights:     m,
		library:     lib,
		threshold:   o.threshold,
		maxPasses:   o.maxPasses,
		seed:        seed,
		compression: o.compression,
		controller:  resource.NewController(o.resourceConfig),
		logger:      o.logger,
		metrics:     o.metricsCollector,
	}
}

// Size returns the unit count N.
func (n *Network) Size() int {
	return n.weights.N()
}

// Threshold returns the uniform activation threshold.
func (n *Network) Threshold() float32 {
	return n.threshold
}

// PatternCount returns the number of patterns the network was trained on.
func (n *Network) PatternCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.library.Len()
}

// Weight returns W[i][j]. Intended for inspection and tests; the matrix
// itself is not exposed so its invariants cannot be broken from outside.
func (n *Network) Weight(i, j int) float32 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.weights.At(i, j)
}

// Train replaces the weight matrix with the summed Hebbian contribution of
// the given patterns and registers them for Identify. Patterns are
// validated up front; on error the network is unchanged.
func (n *Network) Train(patterns ...pattern.Pattern) error {
	return n.train(patterns, false)
}

// TrainIncremental adds the Hebbian contribution of the given patterns to
// the existing weight matrix instead of replacing it.
func (n *Network) TrainIncremental(patterns ...pattern.Pattern) error {
	return n.train(patterns, true)
}

func (n *Network) train(patterns []pattern.Pattern, incremental bool) error {
	start := time.Now()
	err := n.doTrain(patterns, incremental)

	n.metrics.RecordTrain(time.Since(start), err)
	n.logger.LogTrain(context.Background(), len(patterns), incremental, err)
	return err
}

func (n *Network) doTrain(patterns []pattern.Pattern, incremental bool) error {
	raw := make([][]byte, len(patterns))
	for i, p := range patterns {
		if err := p.Validate(); err != nil {
			return err
		}
		raw[i] = p
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	var err error
	if incremental {
		err = n.weights.Accumulate(raw)
	} else {
		err = n.weights.Store(raw)
	}
	if err != nil {
		return translateError(err)
	}

	if !incremental {
		n.library.Reset()
	}
	for _, p := range raw {
		n.library.Add(p)
	}
	return nil
}

// Recall relaxes the cue to a fixed point and returns the settled pattern.
//
// The cue is never mutated; the result is a fresh pattern of the same
// length. On context cancellation the best-effort unconverged state is
// returned together with the context error.
func (n *Network) Recall(ctx context.Context, cue pattern.Pattern, optFns ...RecallOption) (pattern.Pattern, error) {
	start := time.Now()
	out, passes, err := n.doRecall(ctx, cue, applyRecallOptions(optFns))

	n.metrics.RecordRecall(passes, time.Since(start), err)
	n.logger.LogRecall(ctx, passes, err)
	return out, err
}

func (n *Network) doRecall(ctx context.Context, cue pattern.Pattern, o recallOptions) (pattern.Pattern, int, error) {
	if err := cue.Validate(); err != nil {
		return nil, 0, err
	}

	seed := o.seed
	if !o.seedSet {
		seed = n.seed + n.seedSeq.Add(1)
	}
	rng := rand.New(rand.NewSource(seed))

	r := &relax.Relaxer{
		Threshold: n.threshold,
		MaxPasses: n.maxPasses,
	}

	n.mu.RLock()
	res, err := r.Run(ctx, n.weights, cue, rng)
	n.mu.RUnlock()

	if err != nil {
		if res != nil {
			// Context cancellation: hand back the unconverged state.
			return pattern.Pattern(res.State), res.Passes, err
		}
		return nil, 0, translateError(err)
	}
	return pattern.Pattern(res.State), res.Passes, nil
}

// BatchRecall relaxes many cues, bounded by the configured worker limit
// (WithMaxBatchWorkers). Results are positionally aligned with cues; the
// first error cancels outstanding work.
func (n *Network) BatchRecall(ctx context.Context, cues []pattern.Pattern, optFns ...RecallOption) ([]pattern.Pattern, error) {
	start := time.Now()

	results := make([]pattern.Pattern, len(cues))
	g, ctx := errgroup.WithContext(ctx)

	for i, cue := range cues {
		if err := n.controller.AcquireWorker(ctx); err != nil {
			// Acquisition fails once the group context is cancelled; the
			// recall error that caused the cancellation wins.
			if werr := g.Wait(); werr != nil {
				err = werr
			}
			n.metrics.RecordBatchRecall(len(cues), len(cues), time.Since(start))
			return nil, err
		}

		g.Go(func() error {
			defer n.controller.ReleaseWorker()

			out, err := n.Recall(ctx, cue, optFns...)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}

	err := g.Wait()

	failed := 0
	if err != nil {
		for _, r := range results {
			if r == nil {
				failed++
			}
		}
	}
	n.metrics.RecordBatchRecall(len(cues), failed, time.Since(start))
	n.logger.LogBatchRecall(ctx, len(cues), failed)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// Identify returns the id and Hamming distance of the stored pattern
// nearest to p — typically called with a settled recall result to name what
// the network converged to. Ids follow training order.
func (n *Network) Identify(p pattern.Pattern) (id int, distance uint64, err error) {
	if err := p.Validate(); err != nil {
		return -1, 0, err
	}
	if len(p) != n.Size() {
		return -1, 0, &ErrDimensionMismatch{Expected: n.Size(), Actual: len(p)}
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	id, distance, ok := n.library.Nearest(p)
	if !ok {
		return -1, 0, ErrNoStoredPatterns
	}
	return id, distance, nil
}

// StoredPattern reconstructs the trained pattern with the given id.
func (n *Network) StoredPattern(id int) (pattern.Pattern, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	p, ok := n.library.Pattern(id)
	return pattern.Pattern(p), ok
}
