// Package s3 provides Amazon S3 implementations of blobstore.BlobStore.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	snaps := snapshot.NewStore(store)
//
// # Commit Pointers
//
// S3 has no compare-and-swap, so two writers saving the same dataset can
// race on its CURRENT pointer. DDBCommitStore keeps pointers in DynamoDB
// with conditional writes and everything else in S3.
package s3
