package hopgo

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/hupe1980/hopgo/blobstore"
	"github.com/hupe1980/hopgo/internal/library"
	"github.com/hupe1980/hopgo/internal/weights"
	"github.com/hupe1980/hopgo/persistence"
)

// SaveToWriter serializes the full network state to w.
func (n *Network) SaveToWriter(w io.Writer) error {
	start := time.Now()
	err := n.writeSnapshot(w)

	n.metrics.RecordSnapshot(time.Since(start), err)
	n.logger.LogSnapshot(context.Background(), "writer", err)
	return err
}

func (n *Network) writeSnapshot(w io.Writer) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	snap := &persistence.Snapshot{
		Size:      n.weights.N(),
		Threshold: n.threshold,
		MaxPasses: n.maxPasses,
		Weights:   n.weights.Data(),
		Patterns:  n.library.Bitmaps(),
	}
	return persistence.WriteSnapshot(w, snap, n.compression)
}

// NewFromReader reconstructs a network from a snapshot stream. Threshold and
// pass bound are restored from the snapshot; options may override them or
// attach runtime concerns such as logging and metrics.
//
// The weight matrix is re-validated on load, so a corrupted or hand-edited
// snapshot cannot put the network into a state that breaks relaxation.
func NewFromReader(r io.Reader, optFns ...Option) (*Network, error) {
	snap, err := persistence.ReadSnapshot(r)
	if err != nil {
		return nil, err
	}

	m, err := weights.FromData(snap.Size, snap.Weights)
	if err != nil {
		return nil, translateError(err)
	}

	o := applyOptions(append([]Option{
		WithThreshold(snap.Threshold),
		WithMaxPasses(snap.MaxPasses),
	}, optFns...))

	return newNetwork(m, library.FromBitmaps(snap.Size, snap.Patterns), o), nil
}

// Save writes the network state to a file. The write is atomic: data goes to
// a temporary file in the same directory which is renamed over the target
// only after a successful sync.
func (n *Network) Save(path string) error {
	start := time.Now()
	err := persistence.SaveToFile(path, n.writeSnapshot)

	n.metrics.RecordSnapshot(time.Since(start), err)
	n.logger.LogSnapshot(context.Background(), path, err)
	return err
}

// Load reconstructs a network from a file written by Save.
func Load(path string, optFns ...Option) (*Network, error) {
	var net *Network
	err := persistence.LoadFromFile(path, func(r io.Reader) error {
		var err error
		net, err = NewFromReader(r, optFns...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return net, nil
}

// SaveToStore writes the network state to a blob. Throughput is throttled by
// the configured IO limit (WithIOLimit).
func (n *Network) SaveToStore(ctx context.Context, store blobstore.BlobStore, name string) error {
	start := time.Now()
	err := n.saveToStore(ctx, store, name)

	n.metrics.RecordSnapshot(time.Since(start), err)
	n.logger.LogSnapshot(ctx, name, err)
	return err
}

func (n *Network) saveToStore(ctx context.Context, store blobstore.BlobStore, name string) error {
	wb, err := store.Create(ctx, name)
	if err != nil {
		return err
	}

	if err := n.writeSnapshot(n.controller.LimitedWriter(ctx, wb)); err != nil {
		// Close would commit the partial blob over any good snapshot at
		// the same name.
		_ = wb.Abort()
		return err
	}
	return wb.Close()
}

// LoadFromStore reconstructs a network from a blob written by SaveToStore.
func LoadFromStore(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Network, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}
	return NewFromReader(bytes.NewReader(data), optFns...)
}
