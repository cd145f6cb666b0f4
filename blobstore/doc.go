// Package blobstore provides read access to the feature files a dataset is
// loaded from.
//
// BlobStore is the interface for opening immutable blobs by name.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem rooted at a directory
//   - MemoryStore: in-memory blobs for tests
//   - s3.Store: Amazon S3 (and compatible endpoints) with range reads and
//     parallel whole-object downloads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Reading a Blob
//
//	rc, err := blobstore.OpenReader(ctx, store, "features.csv")
//	defer rc.Close()
//
// OpenReader prefers a store's Downloader implementation when present and
// otherwise streams the blob through ReadRange.
package blobstore
