package weights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hopgo/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"Valid", 4, false},
		{"Single", 1, false},
		{"Zero", 0, true},
		{"Negative", -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.n)
			if tt.wantErr {
				var is *ErrInvalidSize
				require.ErrorAs(t, err, &is)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n, m.N())
			assert.NoError(t, m.Validate())
		})
	}
}

func TestStoreSinglePattern(t *testing.T) {
	// Reference case: pattern [1,1,1,0] reduces to the plain outer-product
	// rule with bipolar encoding.
	m, err := New(4)
	require.NoError(t, err)
	require.NoError(t, m.Store([][]byte{{1, 1, 1, 0}}))

	// Bipolar: +1 +1 +1 -1
	want := [][]float32{
		{0, 1, 1, -1},
		{1, 0, 1, -1},
		{1, 1, 0, -1},
		{-1, -1, -1, 0},
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, want[i][j], m.At(i, j), "W[%d][%d]", i, j)
		}
	}
}

func TestInvariantsHoldForRandomPatterns(t *testing.T) {
	rng := testutil.NewRNG(42)

	for _, n := range []int{1, 2, 7, 32, 128} {
		m, err := New(n)
		require.NoError(t, err)

		patterns := make([][]byte, 3)
		for i := range patterns {
			patterns[i] = rng.RandomPattern(n)
		}
		require.NoError(t, m.Store(patterns))
		assert.NoError(t, m.Validate(), "n=%d", n)
	}
}

func TestAccumulateMatchesSummedStore(t *testing.T) {
	rng := testutil.NewRNG(7)
	n := 16
	p1 := rng.RandomPattern(n)
	p2 := rng.RandomPattern(n)

	summed, err := New(n)
	require.NoError(t, err)
	require.NoError(t, summed.Store([][]byte{p1, p2}))

	incremental, err := New(n)
	require.NoError(t, err)
	require.NoError(t, incremental.Store([][]byte{p1}))
	require.NoError(t, incremental.Accumulate([][]byte{p2}))

	assert.Equal(t, summed.Data(), incremental.Data())
}

func TestStoreReplacesPreviousTraining(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	require.NoError(t, m.Store([][]byte{{1, 1, 1, 0}}))
	require.NoError(t, m.Store([][]byte{{0, 0, 0, 1}}))

	// [0,0,0,1] is the bipolar complement of [1,1,1,0], so the resulting
	// matrices coincide; check one entry against the second pattern alone.
	assert.Equal(t, float32(1), m.At(0, 1))
	assert.Equal(t, float32(-1), m.At(0, 3))
}

func TestDimensionMismatchLeavesMatrixUnchanged(t *testing.T) {
	m, err := New(4)
	require.NoError(t, err)
	require.NoError(t, m.Store([][]byte{{1, 1, 1, 0}}))
	before := make([]float32, len(m.Data()))
	copy(before, m.Data())

	var dm *ErrDimensionMismatch

	err = m.Store([][]byte{{1, 0}})
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 4, dm.Expected)
	assert.Equal(t, 2, dm.Actual)

	// A valid pattern followed by a bad one must also leave no trace.
	err = m.Accumulate([][]byte{{1, 1, 1, 1}, {1}})
	require.ErrorAs(t, err, &dm)

	assert.Equal(t, before, m.Data())
}

func TestFromData(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		m, err := FromData(2, []float32{0, -1, -1, 0})
		require.NoError(t, err)
		assert.Equal(t, float32(-1), m.At(0, 1))
	})

	t.Run("Asymmetric", func(t *testing.T) {
		_, err := FromData(2, []float32{0, 1, -1, 0})
		var iv *ErrInvariantViolation
		require.ErrorAs(t, err, &iv)
	})

	t.Run("NonZeroDiagonal", func(t *testing.T) {
		_, err := FromData(2, []float32{1, 0, 0, 0})
		var iv *ErrInvariantViolation
		require.ErrorAs(t, err, &iv)
	})

	t.Run("WrongLength", func(t *testing.T) {
		_, err := FromData(3, []float32{0, 0})
		var dm *ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
	})
}
