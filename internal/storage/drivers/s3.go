package drivers

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"golang.org/x/net/http2"

	"github.com/sashko-guz/minio-file/internal/logger"
)

// ErrObjectNotFound is returned when the requested object does not exist in the bucket.
var ErrObjectNotFound = errors.New("object not found")

// API is the subset of *s3.Client used by S3Client
type API interface {
	manager.UploadAPIClient
	manager.DownloadAPIClient
	s3.ListObjectsV2APIClient
	s3.ListBucketsAPIClient
}

// HTTPConfig contains HTTP client configuration for S3 connections
type HTTPConfig struct {
	MaxIdleConns          int // Max idle connections across all hosts (default: 100)
	MaxIdleConnsPerHost   int // Max idle connections per host (default: 100)
	ConnectTimeout        int // Connection timeout in seconds (default: 10)
	ResponseHeaderTimeout int // Response header timeout in seconds (default: 10)
	RequestTimeout        int // Full request timeout in seconds (default: 0 = none)
}

// S3Config describes a single MinIO endpoint.
type S3Config struct {
	Host      string // host[:port], no scheme
	Secure    bool
	AccessKey string
	SecretKey string
	Region    string
	HTTP      *HTTPConfig
}

// ObjectInfo describes one listed object.
type ObjectInfo struct {
	Name         string
	Size         int64
	LastModified time.Time
	ETag         string
}

type S3Client struct {
	api    API
	host   string
	secure bool
}

// Endpoint returns the base URL for host, with the scheme picked by secure.
func Endpoint(host string, secure bool) string {
	if secure {
		return "https://" + host
	}
	return "http://" + host
}

// newHTTPClient creates an HTTP client with connection pooling and timeouts
func newHTTPClient(httpConfig *HTTPConfig, secure bool) *http.Client {
	maxIdleConns := 100
	maxIdleConnsPerHost := 100
	connectTimeout := 10
	responseHeaderTimeout := 10
	requestTimeout := 0

	if httpConfig != nil {
		if httpConfig.MaxIdleConns > 0 {
			maxIdleConns = httpConfig.MaxIdleConns
		}
		if httpConfig.MaxIdleConnsPerHost > 0 {
			maxIdleConnsPerHost = httpConfig.MaxIdleConnsPerHost
		}
		if httpConfig.ConnectTimeout > 0 {
			connectTimeout = httpConfig.ConnectTimeout
		}
		if httpConfig.ResponseHeaderTimeout > 0 {
			responseHeaderTimeout = httpConfig.ResponseHeaderTimeout
		}
		if httpConfig.RequestTimeout > 0 {
			requestTimeout = httpConfig.RequestTimeout
		}
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   time.Duration(connectTimeout) * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          maxIdleConns,
		MaxIdleConnsPerHost:   maxIdleConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: time.Duration(responseHeaderTimeout) * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if secure {
		transport.ForceAttemptHTTP2 = true
		transport.TLSClientConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warnf("[S3 Storage] Failed to configure HTTP/2: %v", err)
		}
	}

	logger.Debugf("[S3 Storage] HTTP client configured: MaxIdleConns=%d, MaxIdleConnsPerHost=%d, ConnectTimeout=%ds, RequestTimeout=%ds",
		maxIdleConns, maxIdleConnsPerHost, connectTimeout, requestTimeout)

	return &http.Client{
		Transport: transport,
		Timeout:   time.Duration(requestTimeout) * time.Second,
	}
}

// NewS3Client builds a path-style client for a MinIO endpoint. No request is
// sent until an operation is called.
func NewS3Client(cfg S3Config) *S3Client {
	endpoint := Endpoint(cfg.Host, cfg.Secure)
	logger.Debugf("[S3 Storage] Initializing S3-compatible client: endpoint=%s, region=%s", endpoint, cfg.Region)

	client := s3.New(s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		BaseEndpoint: aws.String(endpoint),
		UsePathStyle: true,
		HTTPClient:   newHTTPClient(cfg.HTTP, cfg.Secure),
		// older MinIO servers reject the SDK's default checksum trailers
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	})

	return NewS3ClientWithAPI(client, cfg.Host, cfg.Secure)
}

// NewS3ClientWithAPI wraps an existing API implementation.
func NewS3ClientWithAPI(api API, host string, secure bool) *S3Client {
	return &S3Client{
		api:    api,
		host:   host,
		secure: secure,
	}
}

func (s *S3Client) Host() string { return s.host }

func (s *S3Client) Secure() bool { return s.secure }

// PutFile uploads the file at localPath as bucket/key.
func (s *S3Client) PutFile(ctx context.Context, bucket, key, localPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	logger.Debugf("[S3 Storage] Uploading object: bucket=%s, key=%s, file=%s", bucket, key, localPath)
	uploader := manager.NewUploader(s.api)
	if _, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	}); err != nil {
		logger.Errorf("[S3 Storage] Error uploading object: bucket=%s, key=%s, error=%v", bucket, key, err)
		return fmt.Errorf("failed to upload %s to %s/%s: %w", localPath, bucket, key, err)
	}

	logger.Infof("[S3 Storage] Uploaded %s to %s/%s", localPath, bucket, key)
	return nil
}

// GetFile downloads bucket/key into localPath. The object is written to a
// temporary file in the same directory and renamed into place once complete.
func (s *S3Client) GetFile(ctx context.Context, bucket, key, localPath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(localPath), "."+filepath.Base(localPath)+".*.part")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", localPath, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	logger.Debugf("[S3 Storage] Fetching object: bucket=%s, key=%s", bucket, key)
	downloader := manager.NewDownloader(s.api)
	n, err := downloader.Download(ctx, tmp, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Errorf("[S3 Storage] Error fetching object: bucket=%s, key=%s, error=%v", bucket, key, err)
		if isNotFound(err) {
			return fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, key)
		}
		return fmt.Errorf("failed to download %s/%s: %w", bucket, key, err)
	}

	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, localPath); err != nil {
		os.Remove(tmpPath)
		committed = true
		return fmt.Errorf("failed to move download into %s: %w", localPath, err)
	}
	committed = true

	logger.Infof("[S3 Storage] Downloaded %s/%s to %s (%d bytes)", bucket, key, localPath, n)
	return nil
}

// ListObjects lists every object under prefix, following continuation tokens.
func (s *S3Client) ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var objects []ObjectInfo
	paginator := s3.NewListObjectsV2Paginator(s.api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.Errorf("[S3 Storage] Error listing objects: bucket=%s, prefix=%s, error=%v", bucket, prefix, err)
			return nil, fmt.Errorf("failed to list %s: %w", bucket, err)
		}
		for _, obj := range page.Contents {
			objects = append(objects, ObjectInfo{
				Name:         aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
				ETag:         strings.Trim(aws.ToString(obj.ETag), `"`),
			})
		}
	}

	logger.Debugf("[S3 Storage] Listed %d object(s): bucket=%s, prefix=%s", len(objects), bucket, prefix)
	return objects, nil
}

// ListBuckets returns the names of all buckets visible to the credentials.
func (s *S3Client) ListBuckets(ctx context.Context) ([]string, error) {
	var names []string
	paginator := s3.NewListBucketsPaginator(s.api, &s3.ListBucketsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.Errorf("[S3 Storage] Error listing buckets: host=%s, error=%v", s.host, err)
			return nil, fmt.Errorf("failed to list buckets: %w", err)
		}
		for _, b := range page.Buckets {
			names = append(names, aws.ToString(b.Name))
		}
	}
	return names, nil
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
