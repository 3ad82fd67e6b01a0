package persistence

import (
	"bytes"
	"encoding/binary"
	"io"
	"path/filepath"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	bm := roaring.New()
	bm.AddMany([]uint32{0, 1, 2})

	return &Snapshot{
		Size:      4,
		Threshold: 0.5,
		MaxPasses: 100,
		Weights: []float32{
			0, 1, 1, -1,
			1, 0, 1, -1,
			1, 1, 0, -1,
			-1, -1, -1, 0,
		},
		Patterns: []*roaring.Bitmap{bm},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		compression CompressionType
	}{
		{"None", CompressionNone},
		{"LZ4", CompressionLZ4},
		{"ZSTD", CompressionZSTD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := testSnapshot()

			var buf bytes.Buffer
			require.NoError(t, WriteSnapshot(&buf, snap, tt.compression))

			got, err := ReadSnapshot(&buf)
			require.NoError(t, err)
			assert.Equal(t, snap.Size, got.Size)
			assert.Equal(t, snap.Threshold, got.Threshold)
			assert.Equal(t, snap.MaxPasses, got.MaxPasses)
			assert.Equal(t, snap.Weights, got.Weights)
			require.Len(t, got.Patterns, 1)
			assert.True(t, snap.Patterns[0].Equals(got.Patterns[0]))
		})
	}
}

func TestSnapshotLargeWeightsCompress(t *testing.T) {
	// A trained matrix is highly repetitive; both codecs should beat raw.
	n := 64
	weights := make([]float32, n*n)
	for i := range weights {
		if i%n != i/n {
			weights[i] = 1
		}
	}
	snap := &Snapshot{Size: n, Weights: weights}

	var raw, zstdBuf bytes.Buffer
	require.NoError(t, WriteSnapshot(&raw, snap, CompressionNone))
	require.NoError(t, WriteSnapshot(&zstdBuf, snap, CompressionZSTD))
	assert.Less(t, zstdBuf.Len(), raw.Len())

	got, err := ReadSnapshot(&zstdBuf)
	require.NoError(t, err)
	assert.Equal(t, weights, got.Weights)
}

func TestReadSnapshotRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, testSnapshot(), CompressionNone))

	data := buf.Bytes()
	data[0] ^= 0xFF

	_, err := ReadSnapshot(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestReadSnapshotRejectsCorruptPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, testSnapshot(), CompressionNone))

	data := buf.Bytes()
	// Flip a bit in the middle of the weights, leaving framing intact.
	data[len(data)-10] ^= 0x01

	_, err := ReadSnapshot(bytes.NewReader(data))
	require.Error(t, err)
}

func TestWriteSnapshotRejectsUnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSnapshot(&buf, testSnapshot(), CompressionType(42))
	assert.ErrorIs(t, err, ErrInvalidCompression)
}

func TestWriteSnapshotRejectsOversize(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSnapshot(&buf, &Snapshot{Size: MaxSize + 1}, CompressionNone)
	assert.ErrorIs(t, err, ErrSizeOutOfRange)
}

func TestReadSnapshotRejectsCraftedHeaders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, testSnapshot(), CompressionNone))
	good := buf.Bytes()

	// Header layout: Size at offset 12, PatternCount at 24; the payload
	// block frame starts at 36 with its uncompressed size.
	patch := func(offset int, v uint32) []byte {
		bad := append([]byte(nil), good...)
		binary.LittleEndian.PutUint32(bad[offset:], v)
		return bad
	}

	t.Run("huge unit count", func(t *testing.T) {
		_, err := ReadSnapshot(bytes.NewReader(patch(12, 0xFFFFFFFF)))
		assert.ErrorIs(t, err, ErrSizeOutOfRange)
	})

	t.Run("zero unit count", func(t *testing.T) {
		_, err := ReadSnapshot(bytes.NewReader(patch(12, 0)))
		assert.ErrorIs(t, err, ErrSizeOutOfRange)
	})

	t.Run("pattern count beyond payload", func(t *testing.T) {
		_, err := ReadSnapshot(bytes.NewReader(patch(24, 0xFFFFFFFF)))
		assert.ErrorIs(t, err, ErrSizeOutOfRange)
	})

	t.Run("huge block frame", func(t *testing.T) {
		_, err := ReadSnapshot(bytes.NewReader(patch(36, 0xFFFFFFFF)))
		assert.ErrorIs(t, err, ErrBlockTooLarge)
	})
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.hop")
	snap := testSnapshot()

	err := SaveToFile(path, func(w io.Writer) error {
		return WriteSnapshot(w, snap, CompressionZSTD)
	})
	require.NoError(t, err)

	var got *Snapshot
	err = LoadFromFile(path, func(r io.Reader) error {
		var err error
		got, err = ReadSnapshot(r)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, snap.Weights, got.Weights)
}
