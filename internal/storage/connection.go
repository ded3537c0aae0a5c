package storage

import (
	"context"
)

// Connection pairs an object client with the default bucket it was resolved
// for. It is not modified after Resolve returns it.
type Connection struct {
	client  ObjectClient
	account Account
	bucket  string
	host    string
	secure  bool
	region  string
}

// Bucket is the default bucket for operations that do not name one.
func (c *Connection) Bucket() string { return c.bucket }

// Account is empty for connections built from explicit credentials.
func (c *Connection) Account() Account { return c.account }

func (c *Connection) Host() string { return c.host }

func (c *Connection) Secure() bool { return c.secure }

func (c *Connection) Region() string { return c.region }

func (c *Connection) bucketOr(bucket string) string {
	if bucket == "" {
		return c.bucket
	}
	return bucket
}

// Upload stores the file at localPath as remoteName. An empty bucket means
// the default bucket.
func (c *Connection) Upload(ctx context.Context, localPath, remoteName, bucket string) error {
	return c.client.PutFile(ctx, c.bucketOr(bucket), remoteName, localPath)
}

// Download writes remoteName to localPath. An empty bucket means the default
// bucket. localPath is left untouched if the transfer fails.
func (c *Connection) Download(ctx context.Context, remoteName, localPath, bucket string) error {
	return c.client.GetFile(ctx, c.bucketOr(bucket), remoteName, localPath)
}

// List returns every object in the default bucket whose name starts with prefix.
func (c *Connection) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	return c.client.ListObjects(ctx, c.bucket, prefix)
}

// ListBuckets returns the names of all buckets the credentials can see.
func (c *Connection) ListBuckets(ctx context.Context) ([]string, error) {
	return c.client.ListBuckets(ctx)
}
