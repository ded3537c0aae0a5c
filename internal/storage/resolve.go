package storage

import (
	"fmt"
	"strings"

	"github.com/sashko-guz/minio-file/internal/logger"
	"github.com/sashko-guz/minio-file/internal/storage/drivers"
)

// Resolve builds a Connection from either a named account or an explicit
// credential bundle. It reads the environment in named-account mode and
// performs no network I/O.
func Resolve(opts Options) (*Connection, error) {
	explicit := opts.explicit()
	given := explicit.given()

	var creds Credentials
	switch {
	case opts.Account != "" && len(given) > 0:
		return nil, fmt.Errorf("%w: account %s given together with %s", ErrConflictingCredentials, opts.Account, strings.Join(given, ", "))

	case opts.Account != "":
		var err error
		creds, err = opts.Account.Credentials(opts.Lookup)
		if err != nil {
			return nil, err
		}

	case len(given) > 0:
		if missing := explicit.missing(); len(missing) > 0 {
			return nil, &CredentialsError{Kind: ErrIncompleteExplicitCredentials, Source: SourceExplicit, Missing: missing}
		}
		creds = explicit

	default:
		return nil, &CredentialsError{Kind: ErrMissingCredentials}
	}

	host, secure := normalizeEndpoint(creds.Endpoint)
	if host == "" {
		if opts.Account != "" {
			return nil, &CredentialsError{Kind: ErrMissingCredentials, Source: SourceEnvironment, Missing: []string{opts.Account.EnvKey(FieldEndpoint)}}
		}
		return nil, &CredentialsError{Kind: ErrIncompleteExplicitCredentials, Source: SourceExplicit, Missing: []string{fieldNameEndpoint}}
	}

	region := DefaultRegion
	switch {
	case creds.Region != "":
		region = creds.Region
	case opts.Region != "":
		region = opts.Region
	}

	client := newObjectClient(drivers.S3Config{
		Host:      host,
		Secure:    secure,
		AccessKey: creds.AccessKey,
		SecretKey: creds.SecretKey,
		Region:    region,
		HTTP:      opts.HTTP,
	})

	if opts.Account != "" {
		logger.Debugf("[Resolver] Account %s resolved: host=%s, secure=%t, bucket=%s", opts.Account, host, secure, creds.Bucket)
	} else {
		logger.Debugf("[Resolver] Explicit credentials resolved: host=%s, secure=%t, bucket=%s", host, secure, creds.Bucket)
	}

	return &Connection{
		client:  client,
		account: opts.Account,
		bucket:  creds.Bucket,
		host:    host,
		secure:  secure,
		region:  region,
	}, nil
}
