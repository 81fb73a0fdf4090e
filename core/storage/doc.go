// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that an item catalog can be read from, and a
// generated registry written to, an S3 compatible bucket. Objects are addressed
// with locators of the form s3://bucket/key.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - PutObject: Uploads content (with size and options).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	bucket, key, err := storage.ParseLocator("s3://gamedata/items.json")
//	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
package storage
