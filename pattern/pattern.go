// Package pattern provides the binary pattern type used throughout hopgo.
//
// A Pattern is a dense, fixed-length sequence of {0,1} values. Inside the
// Hebbian training formula the values are interpreted bipolar (0 ↔ −1,
// 1 ↔ +1); everywhere else they are plain bits.
package pattern

import "fmt"

// Pattern is a dense binary vector. Every element must be 0 or 1.
type Pattern []byte

// ErrNotBinary indicates a pattern element outside {0,1}.
type ErrNotBinary struct {
	Index int
	Value byte
}

func (e *ErrNotBinary) Error() string {
	return fmt.Sprintf("pattern element %d is %d, want 0 or 1", e.Index, e.Value)
}

// New returns an all-zero pattern of length n.
func New(n int) Pattern {
	return make(Pattern, n)
}

// FromBits builds a pattern from a literal bit sequence.
// Any non-zero bit becomes 1.
func FromBits(bits ...int) Pattern {
	p := make(Pattern, len(bits))
	for i, b := range bits {
		if b != 0 {
			p[i] = 1
		}
	}
	return p
}

// Validate checks that every element is 0 or 1.
func (p Pattern) Validate() error {
	for i, v := range p {
		if v > 1 {
			return &ErrNotBinary{Index: i, Value: v}
		}
	}
	return nil
}

// Clone returns an independent copy of p.
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	out := make(Pattern, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and q have identical length and bits.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Flip inverts the bit at index i.
func (p Pattern) Flip(i int) {
	p[i] ^= 1
}

// Ones returns the number of set bits.
func (p Pattern) Ones() int {
	n := 0
	for _, v := range p {
		if v == 1 {
			n++
		}
	}
	return n
}

// Hamming returns the number of positions where p and q differ.
// Assumes equal length (caller's responsibility, as in the distance helpers).
func Hamming(p, q Pattern) int {
	d := 0
	for i := range p {
		if p[i] != q[i] {
			d++
		}
	}
	return d
}
