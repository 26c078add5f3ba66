package main

import (
	"fmt"
	"time"

	"scrumboard/internal/auth"
	"scrumboard/internal/config"
	"scrumboard/internal/migrations"
	"scrumboard/internal/server"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scrumboard",
		Short:         "Scrum board API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newTokenCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		return fmt.Errorf("server initialization failed: %w", err)
	}

	s.Run()
	return nil
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migrate.Migrate) error {
				return m.Steps(-steps)
			})
		},
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *migrate.Migrate) error {
					return m.Up()
				})
			},
		},
		down,
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *migrate.Migrate) error {
					v, dirty, err := m.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
					return nil
				})
			},
		},
	)
	return cmd
}

func withMigrator(fn func(m *migrate.Migrate) error) error {
	m, err := migrations.Open(config.Load().MigrateURL())
	if err != nil {
		return err
	}
	defer m.Close()
	return migrations.Result(fn(m))
}

func newTokenCmd() *cobra.Command {
	var (
		subject string
		claims  auth.Claims
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development bearer token with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			token, err := auth.NewSigner(cfg.JWTSecret, cfg.JWTIssuer, ttl).GenerateToken(subject, claims)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "sub", "", "external user id")
	cmd.Flags().StringVar(&claims.OrgID, "org", "", "organization id")
	cmd.Flags().StringVar(&claims.OrgRole, "role", "org:member", "organization role (org:admin or org:member)")
	cmd.Flags().StringVar(&claims.Name, "name", "", "display name")
	cmd.Flags().StringVar(&claims.Email, "email", "", "email address")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("sub")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}
