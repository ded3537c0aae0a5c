package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnection(t *testing.T) (*Connection, *fakeClient) {
	t.Helper()
	created := withFakeClient(t)
	conn, err := Resolve(Options{Endpoint: "http://minio:9000", AccessKey: "a", SecretKey: "b", Bucket: "default"})
	require.NoError(t, err)
	return conn, (*created)[0]
}

func TestConnectionUploadDownloadBuckets(t *testing.T) {
	conn, fake := newTestConnection(t)
	ctx := context.Background()

	require.NoError(t, conn.Upload(ctx, "/tmp/a.txt", "dir/a.txt", ""))
	require.NoError(t, conn.Upload(ctx, "/tmp/a.txt", "dir/a.txt", "other"))
	require.NoError(t, conn.Download(ctx, "dir/a.txt", "/tmp/b.txt", ""))
	require.NoError(t, conn.Download(ctx, "dir/a.txt", "/tmp/b.txt", "other"))

	assert.Equal(t, []string{
		"put default/dir/a.txt <- /tmp/a.txt",
		"put other/dir/a.txt <- /tmp/a.txt",
		"get default/dir/a.txt -> /tmp/b.txt",
		"get other/dir/a.txt -> /tmp/b.txt",
	}, fake.calls)
}

func TestConnectionList(t *testing.T) {
	conn, fake := newTestConnection(t)
	modified := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	fake.objects = []ObjectInfo{
		{Name: "reports/a.csv", Size: 10, LastModified: modified, ETag: "abc"},
		{Name: "reports/b.csv", Size: 20, LastModified: modified, ETag: "def"},
	}
	fake.buckets = []string{"default", "other"}

	objects, err := conn.List(context.Background(), "reports/")
	require.NoError(t, err)
	assert.Equal(t, fake.objects, objects)

	again, err := conn.List(context.Background(), "reports/")
	require.NoError(t, err)
	assert.Equal(t, objects, again)

	buckets, err := conn.ListBuckets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "other"}, buckets)

	assert.Equal(t, []string{"list default reports/", "list default reports/", "buckets"}, fake.calls)
}

func TestConnectionPropagatesClientErrors(t *testing.T) {
	conn, fake := newTestConnection(t)
	fake.err = errors.New("connection refused")

	assert.ErrorIs(t, conn.Upload(context.Background(), "a", "b", ""), fake.err)
	assert.ErrorIs(t, conn.Download(context.Background(), "b", "a", ""), fake.err)
	_, err := conn.List(context.Background(), "")
	assert.ErrorIs(t, err, fake.err)
	_, err = conn.ListBuckets(context.Background())
	assert.ErrorIs(t, err, fake.err)
}
