package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccount(t *testing.T) {
	for in, want := range map[string]Account{
		"WO":   AccountWO,
		"ho":   AccountHO,
		" ML ": AccountML,
		"viz":  AccountVIZ,
	} {
		got, err := ParseAccount(in)
		require.NoError(t, err, "ParseAccount(%q)", in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "UNKNOWN", "H O", "MINIO_HO"} {
		_, err := ParseAccount(in)
		require.ErrorIs(t, err, ErrInvalidAccount, "ParseAccount(%q)", in)
		assert.Contains(t, err.Error(), "WO, HO, ML, VIZ")
	}
}

func TestAccountEnvKey(t *testing.T) {
	assert.Equal(t, "MINIO_HO_BUCKET", AccountHO.EnvKey(FieldBucket))
	assert.Equal(t, "MINIO_VIZ_ACCESS_KEY", AccountVIZ.EnvKey(FieldAccessKey))
	assert.Equal(t, "MINIO_WO_SECRET_KEY", AccountWO.EnvKey(FieldSecretKey))
	assert.Equal(t, "MINIO_ML_ENDPOINT", AccountML.EnvKey(FieldEndpoint))
}

func TestAccountsIsACopy(t *testing.T) {
	accounts := Accounts()
	require.Equal(t, []Account{AccountWO, AccountHO, AccountML, AccountVIZ}, accounts)

	accounts[0] = "XX"
	assert.Equal(t, AccountWO, Accounts()[0])
}

func TestAccountCredentials(t *testing.T) {
	env := accountEnv(AccountHO, "https://ho.local")
	env[AccountHO.EnvKey(FieldRegion)] = "eu-north-1"

	creds, err := AccountHO.Credentials(envLookup(env))
	require.NoError(t, err)
	assert.Equal(t, Credentials{
		Endpoint:  "https://ho.local",
		AccessKey: "access-HO",
		SecretKey: "secret-HO",
		Bucket:    "bucket-HO",
		Region:    "eu-north-1",
	}, creds)

	_, err = Account("XX").Credentials(envLookup(env))
	assert.ErrorIs(t, err, ErrInvalidAccount)
}

func TestAccountCredentialsFromProcessEnvironment(t *testing.T) {
	for k, v := range accountEnv(AccountWO, "http://wo.local:9000") {
		t.Setenv(k, v)
	}

	creds, err := AccountWO.Credentials(nil)
	require.NoError(t, err)
	assert.Equal(t, "bucket-WO", creds.Bucket)
	assert.Equal(t, "http://wo.local:9000", creds.Endpoint)
}
