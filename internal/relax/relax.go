// Package relax implements asynchronous stochastic relaxation of a discrete
// Hopfield network: units are visited one at a time in a freshly shuffled
// order each pass until a full pass changes nothing.
package relax

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/hupe1980/hopgo/internal/weights"
)

// ErrNonConvergence indicates relaxation exceeded the configured pass bound
// without reaching a fixed point.
type ErrNonConvergence struct {
	Passes int
}

func (e *ErrNonConvergence) Error() string {
	return fmt.Sprintf("no fixed point after %d passes", e.Passes)
}

// Relaxer settles an input vector against a weight matrix.
//
// The RNG drives the per-pass visitation order and is injected per call so
// relaxation is a pure function of (weights, cue, source); there is no
// process-global random state.
type Relaxer struct {
	// Threshold is the uniform activation threshold applied at every unit.
	Threshold float32

	// MaxPasses bounds the number of full passes. 0 means unbounded, which
	// is safe whenever the matrix invariants hold.
	MaxPasses int
}

// Result is the outcome of a relaxation run.
type Result struct {
	// State is the settled activation vector.
	State []byte

	// Passes is the number of full passes taken, including the final
	// all-quiet pass that confirmed convergence.
	Passes int
}

// Run relaxes cue against m until a fixed point is reached.
//
// The net input of unit i is the original cue value at i plus the weighted
// sum over the current state, so the cue acts as a persistent external bias
// rather than just the starting point. Convergence for symmetric
// zero-diagonal weights is guaranteed by the usual energy argument; the
// shuffle order affects the path, never whether a fixed point is reached.
//
// On context cancellation the best-effort unconverged state is returned
// together with the context error.
func (r *Relaxer) Run(ctx context.Context, m *weights.Matrix, cue []byte, rng *rand.Rand) (*Result, error) {
	n := m.N()
	if len(cue) != n {
		return nil, &weights.ErrDimensionMismatch{Expected: n, Actual: len(cue)}
	}

	state := make([]byte, n)
	copy(state, cue)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	passes := 0
	for {
		if err := ctx.Err(); err != nil {
			return &Result{State: state, Passes: passes}, err
		}

		rng.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		changed := false
		for _, i := range order {
			row := m.Row(i)
			net := float32(cue[i])
			for j, w := range row {
				if state[j] == 1 {
					net += w
				}
			}

			var next byte
			if net >= r.Threshold {
				next = 1
			}
			if next != state[i] {
				state[i] = next
				changed = true
			}
		}
		passes++

		if !changed {
			return &Result{State: state, Passes: passes}, nil
		}
		if r.MaxPasses > 0 && passes >= r.MaxPasses {
			return nil, &ErrNonConvergence{Passes: passes}
		}
	}
}
