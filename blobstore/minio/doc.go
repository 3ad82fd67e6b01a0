// Package minio provides a blobstore.BlobStore implementation backed by
// MinIO or any S3-compatible object store.
//
// # Usage
//
//	client, _ := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	store := miniostore.NewStore(client, "hopfield", "nets/")
//
// Unlike the AWS SDK store this works against self-hosted object storage
// without region or credential-chain configuration.
package minio
