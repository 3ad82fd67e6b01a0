// Package resource provides concurrency and IO governance for batch recall
// and snapshot transfers.
package resource

import (
	"context"
	"io"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of concurrent batch-recall workers.
	// If 0, defaults to 1.
	MaxWorkers int64

	// IOLimitBytesPerSec is the maximum throughput for snapshot transfers.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages shared resources (worker slots, IO budget).
type Controller struct {
	workers   *semaphore.Weighted
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		workers: semaphore.NewWeighted(cfg.MaxWorkers),
	}
	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}
	return c
}

// AcquireWorker blocks until a worker slot is available or ctx is done.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	return c.workers.Acquire(ctx, 1)
}

// ReleaseWorker returns a worker slot.
func (c *Controller) ReleaseWorker() {
	c.workers.Release(1)
}

// LimitedWriter wraps w so writes respect the configured IO budget.
// Without an IO limit, w is returned unchanged.
func (c *Controller) LimitedWriter(ctx context.Context, w io.Writer) io.Writer {
	if c.ioLimiter == nil {
		return w
	}
	return &limitedWriter{ctx: ctx, w: w, limiter: c.ioLimiter}
}

type limitedWriter struct {
	ctx     context.Context
	w       io.Writer
	limiter *rate.Limiter
}

func (lw *limitedWriter) Write(p []byte) (int, error) {
	// Large writes are fed through in burst-sized chunks so a single write
	// cannot exceed the limiter's burst.
	written := 0
	for len(p) > 0 {
		chunk := len(p)
		if burst := lw.limiter.Burst(); chunk > burst {
			chunk = burst
		}
		if err := lw.limiter.WaitN(lw.ctx, chunk); err != nil {
			return written, err
		}
		n, err := lw.w.Write(p[:chunk])
		written += n
		if err != nil {
			return written, err
		}
		p = p[chunk:]
	}
	return written, nil
}
