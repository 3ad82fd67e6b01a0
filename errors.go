package hopgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hopgo/internal/relax"
	"github.com/hupe1980/hopgo/internal/weights"
)

var (
	// ErrNoStoredPatterns is returned by Identify on an untrained network.
	ErrNoStoredPatterns = errors.New("no stored patterns")
)

// ErrInvalidSize indicates a non-positive network size.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSize struct {
	Size  int
	cause error
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid network size: %d", e.Size)
}

func (e *ErrInvalidSize) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates a pattern/cue length that does not match
// the configured unit count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrNonConvergence indicates relaxation exceeded the configured pass bound
// without reaching a fixed point.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrNonConvergence struct {
	Passes int
	cause  error
}

func (e *ErrNonConvergence) Error() string {
	return fmt.Sprintf("no fixed point after %d passes", e.Passes)
}

func (e *ErrNonConvergence) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var is *weights.ErrInvalidSize
	if errors.As(err, &is) {
		return &ErrInvalidSize{Size: is.Size, cause: err}
	}
	var dm *weights.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var nc *relax.ErrNonConvergence
	if errors.As(err, &nc) {
		return &ErrNonConvergence{Passes: nc.Passes, cause: err}
	}

	return err
}
