// Package weights implements the symmetric, zero-diagonal weight matrix of a
// discrete Hopfield network together with the Hebbian training rule.
//
// The matrix is the only mutable state of a trained network. All mutation
// goes through Store/Accumulate; raw storage never escapes the package
// except as read-only rows handed to the relaxer.
package weights

import "fmt"

// ErrInvalidSize indicates a non-positive network size.
type ErrInvalidSize struct {
	Size int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid network size: %d", e.Size)
}

// ErrDimensionMismatch indicates a pattern whose length does not match the
// configured unit count.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvariantViolation indicates a matrix that is not symmetric or has a
// non-zero diagonal. Seen only when loading externally supplied weights.
type ErrInvariantViolation struct {
	Row, Col int
}

func (e *ErrInvariantViolation) Error() string {
	return fmt.Sprintf("weight matrix invariant violated at (%d,%d)", e.Row, e.Col)
}

// Matrix is an n×n symmetric weight matrix with a zero diagonal, stored
// flat in row-major order.
type Matrix struct {
	n    int
	data []float32
}

// New allocates an all-zero n×n matrix.
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, &ErrInvalidSize{Size: n}
	}
	return &Matrix{
		n:    n,
		data: make([]float32, n*n),
	}, nil
}

// FromData wraps externally supplied row-major weights, validating both
// matrix invariants. The slice is retained; callers must not alias it.
func FromData(n int, data []float32) (*Matrix, error) {
	if n <= 0 {
		return nil, &ErrInvalidSize{Size: n}
	}
	if len(data) != n*n {
		return nil, &ErrDimensionMismatch{Expected: n * n, Actual: len(data)}
	}
	m := &Matrix{n: n, data: data}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// N returns the unit count.
func (m *Matrix) N() int { return m.n }

// At returns W[i][j].
func (m *Matrix) At(i, j int) float32 {
	return m.data[i*m.n+j]
}

// Row returns row i of the matrix. The slice aliases internal storage and
// must be treated as read-only.
func (m *Matrix) Row(i int) []float32 {
	return m.data[i*m.n : (i+1)*m.n]
}

// Data returns the flat row-major weights for serialization. Read-only.
func (m *Matrix) Data() []float32 { return m.data }

// Store replaces the matrix with the summed Hebbian outer product of the
// given patterns: W[i][j] = Σ_p (2·p_i−1)(2·p_j−1) for i≠j, W[i][i] = 0.
//
// All patterns are validated up front; on error the matrix is unchanged.
func (m *Matrix) Store(patterns [][]byte) error {
	if err := m.check(patterns); err != nil {
		return err
	}
	fresh := make([]float32, m.n*m.n)
	for _, p := range patterns {
		hebbian(fresh, p, m.n)
	}
	m.data = fresh
	return nil
}

// Accumulate adds the Hebbian contribution of the given patterns to the
// existing matrix (incremental learning). On error the matrix is unchanged.
func (m *Matrix) Accumulate(patterns [][]byte) error {
	if err := m.check(patterns); err != nil {
		return err
	}
	next := make([]float32, len(m.data))
	copy(next, m.data)
	for _, p := range patterns {
		hebbian(next, p, m.n)
	}
	m.data = next
	return nil
}

// Validate re-checks symmetry and the zero diagonal.
func (m *Matrix) Validate() error {
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i] != 0 {
			return &ErrInvariantViolation{Row: i, Col: i}
		}
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return &ErrInvariantViolation{Row: i, Col: j}
			}
		}
	}
	return nil
}

func (m *Matrix) check(patterns [][]byte) error {
	for _, p := range patterns {
		if len(p) != m.n {
			return &ErrDimensionMismatch{Expected: m.n, Actual: len(p)}
		}
	}
	return nil
}

// hebbian adds the bipolar outer product of p to w, keeping the diagonal
// zero. Symmetry holds by construction: the (i,j) and (j,i) terms are the
// same product.
func hebbian(w []float32, p []byte, n int) {
	for i := 0; i < n; i++ {
		bi := float32(2*int(p[i]) - 1)
		row := w[i*n : (i+1)*n]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			bj := float32(2*int(p[j]) - 1)
			row[j] += bi * bj
		}
	}
}
