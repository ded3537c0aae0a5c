package storage

import (
	"strings"

	"github.com/sashko-guz/minio-file/internal/storage/drivers"
)

// DefaultRegion is used for request signing when no region is configured.
// MinIO accepts any region unless the server sets one explicitly.
const DefaultRegion = "us-east-1"

// Names of the explicit-mode fields, as reported in errors.
const (
	fieldNameEndpoint  = "endpoint"
	fieldNameAccessKey = "access_key"
	fieldNameSecretKey = "secret_key"
	fieldNameBucket    = "bucket"
)

var explicitFieldNames = []string{fieldNameEndpoint, fieldNameAccessKey, fieldNameSecretKey, fieldNameBucket}

// Options selects how Resolve obtains credentials. Set either Account or all
// four explicit fields, never both.
type Options struct {
	Account Account

	Endpoint  string // http://host[:port], https://host[:port] or bare host[:port]
	AccessKey string
	SecretKey string
	Bucket    string

	Region string              // overrides DefaultRegion; MINIO_{ACCOUNT}_REGION wins over it
	HTTP   *drivers.HTTPConfig // optional transport tuning
	Lookup LookupFunc          // defaults to os.LookupEnv
}

// Credentials is a resolved, transient credential bundle.
type Credentials struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

func (o Options) explicit() Credentials {
	return Credentials{
		Endpoint:  o.Endpoint,
		AccessKey: o.AccessKey,
		SecretKey: o.SecretKey,
		Bucket:    o.Bucket,
	}
}

// given returns the explicit field names that are set.
func (c Credentials) given() []string {
	return c.fields(func(v string) bool { return v != "" })
}

// missing returns the explicit field names that are empty.
func (c Credentials) missing() []string {
	return c.fields(func(v string) bool { return v == "" })
}

func (c Credentials) fields(match func(string) bool) []string {
	var names []string
	for _, f := range []struct{ name, value string }{
		{fieldNameEndpoint, c.Endpoint},
		{fieldNameAccessKey, c.AccessKey},
		{fieldNameSecretKey, c.SecretKey},
		{fieldNameBucket, c.Bucket},
	} {
		if match(f.value) {
			names = append(names, f.name)
		}
	}
	return names
}

// normalizeEndpoint strips an http:// or https:// prefix from raw. secure is
// decided on the untouched string: only an https:// prefix is secure.
func normalizeEndpoint(raw string) (host string, secure bool) {
	if strings.HasPrefix(raw, "https://") {
		return strings.TrimPrefix(raw, "https://"), true
	}
	return strings.TrimPrefix(raw, "http://"), false
}
