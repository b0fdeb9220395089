// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible storage systems like Ceph,
// SeaweedFS, and Garage, without pulling in the AWS SDK.
//
// # Basic Usage
//
//	store, err := minioblob.Dial(ctx, minioblob.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "datasets",
//	})
//
//	snaps := snapshot.NewStore(store)
//
// An existing *minio.Client can be wrapped with NewStore.
package minio
