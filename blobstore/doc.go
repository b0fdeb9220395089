// Package blobstore provides the storage abstraction for dataset snapshots.
//
// BlobStore is the interface for reading and writing whole blobs by name.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and ephemeral sessions
//   - LocalStore: local filesystem with atomic rename-on-write
//   - ThrottledStore: byte-rate limiting wrapper around any store
//   - s3.Store / s3.DDBCommitStore: Amazon S3, optionally with DynamoDB commits
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Get(ctx, name) ([]byte, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
