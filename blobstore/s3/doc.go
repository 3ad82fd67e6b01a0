// Package s3 provides an S3 implementation of the blobstore.BlobStore
// interface.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(s3.NewFromConfig(cfg), "my-bucket", "hopfield/")
//
//	err := net.SaveToStore(ctx, store, "digits.hop")
//
// # Features
//
//   - Range reads for partial fetches
//   - Streaming multipart uploads via the transfer manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
