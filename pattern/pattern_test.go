package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		p       Pattern
		wantErr bool
	}{
		{"Empty", Pattern{}, false},
		{"Zeros", Pattern{0, 0, 0}, false},
		{"Mixed", Pattern{1, 0, 1, 1}, false},
		{"OutOfRange", Pattern{0, 2, 1}, true},
		{"Large", Pattern{255}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				var nb *ErrNotBinary
				require.ErrorAs(t, err, &nb)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromBits(t *testing.T) {
	p := FromBits(1, 0, 7, 0)
	assert.Equal(t, Pattern{1, 0, 1, 0}, p)
	assert.NoError(t, p.Validate())
}

func TestCloneIsIndependent(t *testing.T) {
	p := FromBits(1, 1, 0)
	q := p.Clone()
	q.Flip(0)

	assert.Equal(t, Pattern{1, 1, 0}, p)
	assert.Equal(t, Pattern{0, 1, 0}, q)
	assert.Nil(t, Pattern(nil).Clone())
}

func TestEqual(t *testing.T) {
	assert.True(t, FromBits(1, 0, 1).Equal(FromBits(1, 0, 1)))
	assert.False(t, FromBits(1, 0, 1).Equal(FromBits(1, 0)))
	assert.False(t, FromBits(1, 0, 1).Equal(FromBits(1, 1, 1)))
}

func TestHamming(t *testing.T) {
	tests := []struct {
		name string
		p, q Pattern
		want int
	}{
		{"Identical", FromBits(1, 1, 1, 0), FromBits(1, 1, 1, 0), 0},
		{"TwoFlips", FromBits(1, 1, 1, 0), FromBits(0, 0, 1, 0), 2},
		{"AllDiffer", FromBits(0, 0), FromBits(1, 1), 2},
		{"Empty", Pattern{}, Pattern{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Hamming(tt.p, tt.q))
		})
	}
}

func TestOnes(t *testing.T) {
	assert.Equal(t, 3, FromBits(1, 1, 1, 0).Ones())
	assert.Equal(t, 0, New(8).Ones())
}
