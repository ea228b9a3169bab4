package components

import (
	"context"
	"log/slog"

	"library-admin/internal/infra/db"
	"library-admin/internal/infra/memstore"
	"library-admin/internal/infra/readstore"
	sqlc "library-admin/internal/infra/sqlc/generated"
	"library-admin/internal/infra/uow"
	"library-admin/internal/pkg/config"
	"library-admin/internal/usecase/queries"
	"library-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Stores is the write side and every read store, all backed by the same
// driver.
type Stores struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Activities queries.ActivityReadStore
	Books      queries.BookReadStore
	Users      queries.UserReadStore
	Issues     queries.IssueReadStore
	Dashboard  queries.DashboardReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.DBConfig) (Stores, error) {
	if cfg.Driver == config.DriverMemory {
		slog.Warn("using in-memory persistence; data is lost on shutdown")
		return newMemoryStores(memstore.New()), nil
	}

	pool, err := newPool(lc, cfg)
	if err != nil {
		return Stores{}, err
	}
	return newPostgresStores(pool), nil
}

func newPool(lc fx.Lifecycle, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func newPostgresStores(pool *pgxpool.Pool) Stores {
	q := sqlc.New()
	return Stores{
		UnitOfWork: uow.NewPostgresUoW(pool, q),
		Activities: readstore.NewActivityReadStore(pool),
		Books:      readstore.NewBookReadStore(q, pool),
		Users:      readstore.NewUserReadStore(q, pool),
		Issues:     readstore.NewIssueReadStore(q, pool),
		Dashboard:  readstore.NewDashboardReadStore(q, pool),
	}
}

func newMemoryStores(s *memstore.Store) Stores {
	return Stores{
		UnitOfWork: s,
		Activities: s.ActivityReads(),
		Books:      s.BookReads(),
		Users:      s.UserReads(),
		Issues:     s.IssueReads(),
		Dashboard:  s.DashboardReads(),
	}
}
