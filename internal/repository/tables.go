package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type tablesRepository struct {
	db sqlx.ExtContext
}

func NewTablesRepository(db sqlx.ExtContext) TablesRepository {
	return &tablesRepository{db: db}
}

// CountTables reports how many tables the public schema holds.
func (r *tablesRepository) CountTables(ctx context.Context) (int, error) {
	var count int

	err := sqlx.GetContext(ctx, r.db, &count, `
			SELECT COUNT(*)
			FROM information_schema.tables
			WHERE table_schema = 'public'
		`)

	if err != nil {
		return 0, storageError("count tables", err)
	}

	return count, nil
}
