package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip exercises the full BlobStore contract against any backend.
func roundTrip(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()
	data := []byte("hopfield snapshot bytes")

	t.Run("PutOpenRead", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "net.hop", data))

		b, err := store.Open(ctx, "net.hop")
		require.NoError(t, err)
		defer b.Close()

		assert.Equal(t, int64(len(data)), b.Size())

		buf := make([]byte, 8)
		n, err := b.ReadAt(ctx, buf, 0)
		require.NoError(t, err)
		assert.Equal(t, data[:8], buf[:n])

		got, err := ReadAll(ctx, store, "net.hop")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("CreateStreaming", func(t *testing.T) {
		w, err := store.Create(ctx, "stream.hop")
		require.NoError(t, err)
		_, err = w.Write(data[:10])
		require.NoError(t, err)
		_, err = w.Write(data[10:])
		require.NoError(t, err)
		require.NoError(t, w.Close())

		got, err := ReadAll(ctx, store, "stream.hop")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("NestedName", func(t *testing.T) {
		w, err := store.Create(ctx, "snapshots/deep/net.hop")
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		got, err := ReadAll(ctx, store, "snapshots/deep/net.hop")
		require.NoError(t, err)
		assert.Equal(t, data, got)

		names, err := store.List(ctx, "snapshots/")
		require.NoError(t, err)
		assert.Contains(t, names, "snapshots/deep/net.hop")
	})

	t.Run("AbortDiscards", func(t *testing.T) {
		w, err := store.Create(ctx, "aborted.hop")
		require.NoError(t, err)
		_, err = w.Write(data[:5])
		require.NoError(t, err)
		require.NoError(t, w.Abort())

		_, err = store.Open(ctx, "aborted.hop")
		assert.ErrorIs(t, err, ErrNotFound)

		// Abort after Close must not disturb the committed blob.
		w, err = store.Create(ctx, "committed.hop")
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, w.Abort())

		got, err := ReadAll(ctx, store, "committed.hop")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("AbortKeepsPrevious", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "stable.hop", data))

		w, err := store.Create(ctx, "stable.hop")
		require.NoError(t, err)
		_, err = w.Write([]byte("partial"))
		require.NoError(t, err)
		require.NoError(t, w.Abort())

		got, err := ReadAll(ctx, store, "stable.hop")
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("List", func(t *testing.T) {
		names, err := store.List(ctx, "net")
		require.NoError(t, err)
		assert.Contains(t, names, "net.hop")
		assert.NotContains(t, names, "stream.hop")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "net.hop"))
		_, err := store.Open(ctx, "net.hop")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting a missing blob is not an error.
		assert.NoError(t, store.Delete(ctx, "net.hop"))
	})
}

func TestMemoryStore(t *testing.T) {
	roundTrip(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	roundTrip(t, store)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte{1, 2, 3}
	require.NoError(t, store.Put(ctx, "a", data))
	data[0] = 9

	got, err := ReadAll(ctx, store, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}
