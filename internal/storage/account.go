package storage

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Account selects the MINIO_{ACCOUNT}_* family of environment variables.
type Account string

const (
	AccountWO  Account = "WO"
	AccountHO  Account = "HO"
	AccountML  Account = "ML"
	AccountVIZ Account = "VIZ"
)

// Environment variable suffixes read for an account.
const (
	FieldBucket    = "BUCKET"
	FieldAccessKey = "ACCESS_KEY"
	FieldSecretKey = "SECRET_KEY"
	FieldEndpoint  = "ENDPOINT"
	FieldRegion    = "REGION" // optional
)

var knownAccounts = []Account{AccountWO, AccountHO, AccountML, AccountVIZ}

// LookupFunc reads a configuration value; os.LookupEnv is the default.
type LookupFunc func(key string) (string, bool)

// Accounts returns the known accounts in a stable order.
func Accounts() []Account {
	return slices.Clone(knownAccounts)
}

// ParseAccount maps a tag such as "ho" or " HO " to its Account.
func ParseAccount(s string) (Account, error) {
	a := Account(strings.ToUpper(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", invalidAccountError(s)
	}
	return a, nil
}

func invalidAccountError(s string) error {
	names := make([]string, len(knownAccounts))
	for i, a := range knownAccounts {
		names[i] = string(a)
	}
	return fmt.Errorf("%w %q: must be one of %s", ErrInvalidAccount, s, strings.Join(names, ", "))
}

func (a Account) Valid() bool {
	return slices.Contains(knownAccounts, a)
}

func (a Account) String() string {
	return string(a)
}

// EnvKey returns the environment variable name for field, e.g. MINIO_HO_BUCKET.
func (a Account) EnvKey(field string) string {
	return "MINIO_" + string(a) + "_" + field
}

// Credentials reads the account's four required variables and the optional
// region. Every absent or empty variable is reported in one error.
func (a Account) Credentials(lookup LookupFunc) (Credentials, error) {
	if !a.Valid() {
		return Credentials{}, invalidAccountError(string(a))
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	get := func(field string) string {
		v, _ := lookup(a.EnvKey(field))
		return v
	}
	creds := Credentials{
		Endpoint:  get(FieldEndpoint),
		AccessKey: get(FieldAccessKey),
		SecretKey: get(FieldSecretKey),
		Bucket:    get(FieldBucket),
		Region:    get(FieldRegion),
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{FieldBucket, creds.Bucket},
		{FieldAccessKey, creds.AccessKey},
		{FieldSecretKey, creds.SecretKey},
		{FieldEndpoint, creds.Endpoint},
	} {
		if f.value == "" {
			missing = append(missing, a.EnvKey(f.name))
		}
	}
	if len(missing) > 0 {
		return Credentials{}, &CredentialsError{Kind: ErrMissingCredentials, Source: SourceEnvironment, Missing: missing}
	}
	return creds, nil
}
