// Package storage provides the S3-compatible client used to fetch the sound pack.
//
// It wraps minio-go behind the small Client interface (BucketExists, ListObjects,
// GetObject) so that feature/audio can be tested with the mocks sub-package.
// Storage is only touched by the `audio sync` command; the API server never
// reads from the bucket.
package storage
