package main

import (
	"fmt"

	"library-admin/internal/infra/db"
	"library-admin/internal/pkg/config"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

type migrateFlags struct {
	dir     string
	workDir string
	url     string
}

func newMigrateCmd() *cobra.Command {
	var f migrateFlags

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres schema",
	}
	cmd.PersistentFlags().StringVar(&f.dir, "dir", db.DefaultMigrationsDir, "migrations directory URL")
	cmd.PersistentFlags().StringVar(&f.workDir, "workdir", ".", "working directory for the atlas binary")
	cmd.PersistentFlags().StringVar(&f.url, "url", "", "database URL (defaults to the DB_* environment)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "apply",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, url, err := f.migrator()
				if err != nil {
					return err
				}
				n, err := m.Apply(cmd.Context(), url)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", n)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the migration status of the database",
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, url, err := f.migrator()
				if err != nil {
					return err
				}
				st, err := m.Status(cmd.Context(), url)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "status=%s current=%s next=%s pending=%d\n",
					st.Status, st.Current, st.Next, st.Pending)
				return nil
			},
		},
		&cobra.Command{
			Use:   "hash",
			Short: "Recompute atlas.sum for the migrations directory",
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := db.NewMigrator(f.workDir, f.dir)
				if err != nil {
					return err
				}
				return m.Hash(cmd.Context())
			},
		},
	)
	return cmd
}

func (f migrateFlags) migrator() (*db.Migrator, string, error) {
	url := f.url
	if url == "" {
		var dbCfg config.DBConfig
		if err := envconfig.Process("", &dbCfg); err != nil {
			return nil, "", fmt.Errorf("failed to process db env config: %w", err)
		}
		if dbCfg.Driver != config.DriverPostgres {
			return nil, "", fmt.Errorf("migrations need DB_DRIVER=%s, got %q", config.DriverPostgres, dbCfg.Driver)
		}
		url = dbCfg.BuildDSN()
	}
	m, err := db.NewMigrator(f.workDir, f.dir)
	if err != nil {
		return nil, "", err
	}
	return m, url, nil
}
