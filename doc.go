// Package hopgo provides an embeddable discrete Hopfield associative memory
// for Go.
//
// A network stores binary patterns in a symmetric, zero-diagonal weight
// matrix and recovers a stored pattern from a noisy or partial cue through
// asynchronous stochastic relaxation (content-addressable memory).
//
// # Quick Start
//
//	ctx := context.Background()
//	net, _ := hopgo.New(4)
//	_ = net.Train(pattern.FromBits(1, 1, 1, 0))
//
//	out, _ := net.Recall(ctx, pattern.FromBits(0, 0, 1, 0))
//	// out == [1 1 1 0]
//
// # Training Modes
//
// Train replaces the weight matrix with the summed Hebbian contribution of
// the given patterns, matching the classic single-shot storage rule:
//
//	_ = net.Train(p1, p2)
//
// TrainIncremental adds contributions to the existing matrix instead, for
// feeding patterns in as they arrive:
//
//	_ = net.TrainIncremental(p3)
//
// # Recall
//
// Recall is read-only on the network: any number of recalls may run
// concurrently against one trained network. The per-pass visitation order is
// drawn from a per-call random source; pin it for reproducible runs:
//
//	out, _ := net.Recall(ctx, cue, hopgo.WithRecallSeed(42))
//
// BatchRecall settles many cues in parallel, bounded by the configured
// worker limit.
//
// # Durability
//
// Trained networks serialize to compact binary snapshots, locally or to any
// blob store:
//
//	_ = net.Save("./digits.hop")
//	net, _ = hopgo.Load("./digits.hop")
//
//	store := s3.NewStore(client, "my-bucket", "hopfield/")
//	_ = net.SaveToStore(ctx, store, "digits.hop")
//
// # Key Features
//
//   - Cue-biased asynchronous update dynamics with per-call random order
//   - Invariant-checked weights (symmetry, zero diagonal) at every boundary
//   - Optional pass bound surfacing non-convergence instead of spinning
//   - Snapshot compression (LZ4, ZSTD) with CRC32 integrity
//   - Cloud-native snapshot storage (S3, MinIO, local, memory)
//   - Structured logging and pluggable metrics
package hopgo
