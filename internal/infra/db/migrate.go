package db

import (
	"context"
	"fmt"
	"log/slog"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// DefaultMigrationsDir is relative to the repository root.
const DefaultMigrationsDir = "file://migrations"

// Migrator drives the atlas CLI against a versioned migrations directory.
type Migrator struct {
	client *atlasexec.Client
	dirURL string
}

// NewMigrator looks the atlas binary up on PATH.
func NewMigrator(workDir, dirURL string) (*Migrator, error) {
	client, err := atlasexec.NewClient(workDir, "atlas")
	if err != nil {
		return nil, fmt.Errorf("failed to create atlas client: %w", err)
	}
	if dirURL == "" {
		dirURL = DefaultMigrationsDir
	}
	return &Migrator{client: client, dirURL: dirURL}, nil
}

func (m *Migrator) Apply(ctx context.Context, dbURL string) (int, error) {
	res, err := m.client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbURL,
		DirURL: m.dirURL,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}
	slog.Info("migrations applied",
		slog.Int("applied", len(res.Applied)),
		slog.String("current", res.Current),
		slog.String("target", res.Target))
	return len(res.Applied), nil
}

type MigrationStatus struct {
	Status  string
	Current string
	Next    string
	Pending int
}

func (m *Migrator) Status(ctx context.Context, dbURL string) (*MigrationStatus, error) {
	res, err := m.client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
		URL:    dbURL,
		DirURL: m.dirURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}
	return &MigrationStatus{
		Status:  res.Status,
		Current: res.Current,
		Next:    res.Next,
		Pending: len(res.Pending),
	}, nil
}

// Hash rewrites atlas.sum after a migration file changed.
func (m *Migrator) Hash(ctx context.Context) error {
	if err := m.client.MigrateHash(ctx, &atlasexec.MigrateHashParams{DirURL: m.dirURL}); err != nil {
		return fmt.Errorf("failed to hash migrations: %w", err)
	}
	return nil
}
