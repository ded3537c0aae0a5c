package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sashko-guz/minio-file/internal/logger"
	"github.com/sashko-guz/minio-file/internal/storage"
)

func newUploadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <local-path> <object>",
		Short: "Upload a local file to the default bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.open()
			if err != nil {
				return err
			}
			if err := conn.Upload(cmd.Context(), args[0], args[1], ""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s to %s/%s\n", args[0], conn.Bucket(), args[1])
			return nil
		},
	}
}

func newBucketsCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "buckets",
		Short: "List the buckets visible to the credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return listAllBuckets(cmd, a)
			}

			conn, err := a.open()
			if err != nil {
				return err
			}
			buckets, err := conn.ListBuckets(cmd.Context())
			if err != nil {
				return err
			}
			for _, b := range buckets {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list buckets for every account whose environment is complete (connection flags are ignored)")
	return cmd
}

// listAllBuckets queries every configured account concurrently and prints the
// results grouped by account, in account order.
func listAllBuckets(cmd *cobra.Command, a *app) error {
	var accounts []storage.Account
	for _, account := range storage.Accounts() {
		if _, err := account.Credentials(a.lookup); err != nil {
			logger.Debugf("[CLI] Skipping account %s: %v", account, err)
			continue
		}
		accounts = append(accounts, account)
	}
	if len(accounts) == 0 {
		return fmt.Errorf("%w: no account has a complete MINIO_{ACCOUNT}_* environment", storage.ErrMissingCredentials)
	}

	results := make([][]string, len(accounts))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, account := range accounts {
		i, account := i, account
		g.Go(func() error {
			conn, err := a.connect(storage.Options{
				Account: account,
				Region:  a.cfg.Region,
				HTTP:    &a.cfg.HTTP,
				Lookup:  a.lookup,
			})
			if err != nil {
				return fmt.Errorf("account %s: %w", account, err)
			}
			buckets, err := conn.ListBuckets(ctx)
			if err != nil {
				return fmt.Errorf("account %s: %w", account, err)
			}
			results[i] = buckets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, account := range accounts {
		fmt.Fprintf(out, "%s:\n", account)
		for _, b := range results[i] {
			fmt.Fprintf(out, "  %s\n", b)
		}
	}
	return nil
}

func newAccountsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Show which accounts have a complete environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, account := range storage.Accounts() {
				_, err := account.Credentials(a.lookup)
				var credErr *storage.CredentialsError
				switch {
				case err == nil:
					fmt.Fprintf(out, "%-4s configured\n", account)
				case errors.As(err, &credErr):
					fmt.Fprintf(out, "%-4s missing %s\n", account, strings.Join(credErr.Missing, ", "))
				default:
					return err
				}
			}
			return nil
		},
	}
}
