package readstore

import (
	"context"
	"strings"

	"library-admin/internal/infra"
	sqlc "library-admin/internal/infra/sqlc/generated"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
)

var pg = goqu.Dialect("postgres")

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching value anywhere.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func toSQL(ds *goqu.SelectDataset) (string, []any, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, infra.WrapRepoErr("failed to build query", err, infra.KindDBFailure)
	}
	return query, args, nil
}

func countRows(ctx context.Context, db sqlc.DBTX, table string, where ...exp.Expression) (int64, error) {
	ds := pg.From(table).Select(goqu.COUNT(goqu.Star()))
	if len(where) > 0 {
		ds = ds.Where(where...)
	}
	query, args, err := toSQL(ds)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count "+table, err)
	}
	return n, nil
}
