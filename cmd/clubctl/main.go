package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/iamshakil01/clubsphere-servers/internal/app"
	"github.com/iamshakil01/clubsphere-servers/internal/auth"
	"github.com/iamshakil01/clubsphere-servers/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "clubctl",
		Short:        "ClubSphere operations tool",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(outboxCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withCore loads config and runs fn against a fully wired core.
func withCore(fn func(ctx context.Context, core *app.Core) error) error {
	cfg := config.MustLoad()

	log, err := app.InitLogger(cfg)
	if err != nil {
		return err
	}

	core, err := app.NewCore(cfg, log)
	if err != nil {
		return err
	}
	defer core.Close()

	return fn(context.Background(), core)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad()
			if err := app.RunMigrations(cfg.Postgres.DSN()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile [session-id]",
		Short: "Replay reconciliation for a checkout session",
		Long: `Replay reconciliation for a checkout session whose return request never
reached the server. Safe to run repeatedly: an already reconciled session
reports "already exists" and writes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(ctx context.Context, core *app.Core) error {
				res, err := core.Reconciliation.Reconcile(ctx, args[0])
				if err != nil {
					return fmt.Errorf("reconcile %s: %w", args[0], err)
				}

				out := cmd.OutOrStdout()
				if !res.Success {
					fmt.Fprintln(out, "session is not paid, nothing written")
					return nil
				}
				if res.Message != "" {
					fmt.Fprintf(out, "%s: ", res.Message)
				}
				fmt.Fprintf(out, "transaction=%s tracking=%s\n", res.TransactionID, res.TrackingID)
				return nil
			})
		},
	}
}

func outboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outbox",
		Short: "Inspect and relay the payment outbox",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Relay pending outbox messages until none are left",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(func(ctx context.Context, core *app.Core) error {
				total := 0
				for {
					n, err := core.Outbox.RelayPending(ctx)
					if err != nil {
						return err
					}
					if n == 0 {
						break
					}
					total += n
				}
				fmt.Fprintf(cmd.OutOrStdout(), "published %d messages\n", total)
				return nil
			})
		},
	})

	return cmd
}

func tokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token [email]",
		Short: "Issue a bearer token for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad()
			token, err := auth.NewVerifier(cfg.Auth.JWTSecret).Issue(args[0], ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
