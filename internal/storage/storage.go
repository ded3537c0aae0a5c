package storage

import (
	"context"

	"github.com/sashko-guz/minio-file/internal/storage/drivers"
)

// ObjectInfo describes one listed object.
type ObjectInfo = drivers.ObjectInfo

// ObjectClient is the storage client a Connection forwards to.
type ObjectClient interface {
	PutFile(ctx context.Context, bucket, key, localPath string) error
	GetFile(ctx context.Context, bucket, key, localPath string) error
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
	ListBuckets(ctx context.Context) ([]string, error)
}

var _ ObjectClient = (*drivers.S3Client)(nil)

// newObjectClient is swapped in tests to capture the resolved client config.
var newObjectClient = func(cfg drivers.S3Config) ObjectClient {
	return drivers.NewS3Client(cfg)
}
