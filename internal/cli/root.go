// Package cli holds the minio-file command tree. With no arguments the root
// command lists the default bucket; with two it downloads one object.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/sashko-guz/minio-file/internal/config"
	"github.com/sashko-guz/minio-file/internal/logger"
	"github.com/sashko-guz/minio-file/internal/storage"
)

const Version = "2025.1.6"

// objectStore is the part of *storage.Connection the commands use.
type objectStore interface {
	Bucket() string
	Upload(ctx context.Context, localPath, remoteName, bucket string) error
	Download(ctx context.Context, remoteName, localPath, bucket string) error
	List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error)
	ListBuckets(ctx context.Context) ([]string, error)
}

type connectFunc func(storage.Options) (objectStore, error)

func resolve(opts storage.Options) (objectStore, error) {
	conn, err := storage.Resolve(opts)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

type app struct {
	cfg     *config.Config
	lookup  storage.LookupFunc
	connect connectFunc

	account   string
	endpoint  string
	accessKey string
	secretKey string
	bucket    string
}

// NewRootCommand builds the command tree. lookup is the environment used for
// named-account resolution.
func NewRootCommand(cfg *config.Config, lookup storage.LookupFunc) *cobra.Command {
	return newRootCommand(&app{cfg: cfg, lookup: lookup, connect: resolve})
}

func newRootCommand(a *app) *cobra.Command {
	var prefix string

	rootCmd := &cobra.Command{
		Use:   "minio-file [object local-path]",
		Short: "List, download and upload objects on MinIO",
		Long: `List, download and upload objects on a MinIO server.

Credentials come from MINIO_{ACCOUNT}_BUCKET, _ACCESS_KEY, _SECRET_KEY and
_ENDPOINT for one of the accounts WO, HO, ML or VIZ, or from the explicit
--endpoint, --access-key, --secret-key and --bucket flags.

With no arguments the objects in the default bucket are listed. With two
arguments the object is downloaded to local-path, unless that file exists.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or <object> <local-path>, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.open()
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return download(cmd, conn, args[0], args[1])
			}
			return list(cmd, conn, prefix)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.account, "account", "", fmt.Sprintf("account tag: WO, HO, ML or VIZ (default %q unless explicit flags are set)", a.cfg.DefaultAccount))
	flags.StringVar(&a.endpoint, "endpoint", "", "explicit endpoint, e.g. https://minio.example.com:9000")
	flags.StringVar(&a.accessKey, "access-key", "", "explicit access key")
	flags.StringVar(&a.secretKey, "secret-key", "", "explicit secret key")
	flags.StringVar(&a.bucket, "bucket", "", "explicit default bucket")
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "only list objects whose names start with this prefix")

	rootCmd.AddCommand(
		newUploadCommand(a),
		newBucketsCommand(a),
		newAccountsCommand(a),
	)
	return rootCmd
}

func (a *app) explicitGiven() bool {
	return a.endpoint != "" || a.accessKey != "" || a.secretKey != "" || a.bucket != ""
}

// options turns the flags into resolver options. The configured default
// account only applies when no explicit credential flag is set.
func (a *app) options() storage.Options {
	opts := storage.Options{
		Endpoint:  a.endpoint,
		AccessKey: a.accessKey,
		SecretKey: a.secretKey,
		Bucket:    a.bucket,
		Region:    a.cfg.Region,
		HTTP:      &a.cfg.HTTP,
		Lookup:    a.lookup,
	}

	tag := a.account
	if tag == "" && !a.explicitGiven() {
		tag = a.cfg.DefaultAccount
	}
	if tag != "" {
		if account, err := storage.ParseAccount(tag); err == nil {
			opts.Account = account
		} else {
			// left for Resolve to reject
			opts.Account = storage.Account(tag)
		}
	}
	return opts
}

func (a *app) open() (objectStore, error) {
	return a.connect(a.options())
}

func list(cmd *cobra.Command, conn objectStore, prefix string) error {
	objects, err := conn.List(cmd.Context(), prefix)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Listing objects in bucket %s:\n", conn.Bucket())
	for _, obj := range objects {
		fmt.Fprintf(out, "%s (%d bytes)\n", obj.Name, obj.Size)
	}
	return nil
}

func download(cmd *cobra.Command, conn objectStore, object, localPath string) error {
	info, err := os.Stat(localPath)
	switch {
	case err == nil && info.Mode().IsRegular():
		fmt.Fprintf(cmd.OutOrStdout(), "Skipping existing file: %s\n", localPath)
		return nil
	case err == nil:
		return fmt.Errorf("%s exists and is not a regular file", localPath)
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := conn.Download(cmd.Context(), object, localPath, ""); err != nil {
		return err
	}
	logger.Debugf("[CLI] Downloaded %s to %s", object, localPath)
	return nil
}
