// Package blobstore provides storage abstraction for hopgo snapshots.
//
// BlobStore is the interface for reading and writing snapshot blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: local file system, atomic writes via temp + rename
//   - s3.Store: Amazon S3 (range reads, streaming multipart uploads)
//   - minio.Store: MinIO and other S3-compatible object stores
package blobstore
