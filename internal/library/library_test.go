package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndReconstruct(t *testing.T) {
	l := New(4)
	id := l.Add([]byte{1, 1, 1, 0})
	assert.Equal(t, 0, id)
	assert.Equal(t, 1, l.Len())

	p, ok := l.Pattern(id)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 1, 1, 0}, p)

	_, ok = l.Pattern(7)
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	l := New(4)
	l.Add([]byte{1, 1, 1, 0}) // id 0
	l.Add([]byte{0, 0, 0, 1}) // id 1

	tests := []struct {
		name     string
		query    []byte
		wantID   int
		wantDist uint64
	}{
		{"ExactFirst", []byte{1, 1, 1, 0}, 0, 0},
		{"ExactSecond", []byte{0, 0, 0, 1}, 1, 0},
		{"NoisyFirst", []byte{0, 0, 1, 0}, 0, 2},
		{"NoisySecond", []byte{0, 0, 0, 0}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, dist, ok := l.Nearest(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantDist, dist)
		})
	}
}

func TestNearestEmpty(t *testing.T) {
	l := New(4)
	id, _, ok := l.Nearest([]byte{1, 0, 0, 0})
	assert.False(t, ok)
	assert.Equal(t, -1, id)
}

func TestReset(t *testing.T) {
	l := New(2)
	l.Add([]byte{1, 0})
	l.Reset()
	assert.Equal(t, 0, l.Len())
}

func TestFromBitmapsRoundTrip(t *testing.T) {
	l := New(5)
	l.Add([]byte{1, 0, 1, 0, 1})
	l.Add([]byte{0, 1, 0, 1, 0})

	rebuilt := FromBitmaps(5, l.Bitmaps())
	require.Equal(t, 2, rebuilt.Len())
	p, ok := rebuilt.Pattern(0)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 0, 1, 0, 1}, p)
}
