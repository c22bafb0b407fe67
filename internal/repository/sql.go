package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// NewRepository wires the Postgres adapters around one handle. db may be a
// *sqlx.DB or a *sqlx.Tx.
func NewRepository(db sqlx.ExtContext) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Post:       NewPostRepository(db),
		Tag:        NewTagRepository(db),
		PostTag:    NewPostTagRepository(db),
		Attendance: NewAttendanceRecordRepository(db),
		Action:     NewActionRecordRepository(db),
		Tables:     NewTablesRepository(db),
	}
}

// storageError maps any failure coming out of database/sql to ErrInternal.
func storageError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		log.Printf("data access: %s: %s (%s): %s", op, pqErr.Code.Name(), pqErr.Code, pqErr.Message)
		return ErrInternal
	}
	return internalError(op, err)
}

// getReturning binds a named query (usually INSERT ... RETURNING) and scans one row into dest.
func getReturning(ctx context.Context, db sqlx.ExtContext, dest interface{}, query string, arg interface{}) error {
	bound, args, err := db.BindNamed(query, arg)
	if err != nil {
		return err
	}
	return sqlx.GetContext(ctx, db, dest, bound, args...)
}

// getOptional is GetContext with sql.ErrNoRows reported as found == false.
func getOptional(ctx context.Context, db sqlx.ExtContext, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := sqlx.GetContext(ctx, db, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// selectIn runs a query holding one "IN (?)" over ids.
func selectIn(ctx context.Context, db sqlx.ExtContext, dest interface{}, query string, ids []int) error {
	inQuery, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return sqlx.SelectContext(ctx, db, dest, db.Rebind(inQuery), args...)
}

// updatePartial writes the change set to the row with the given id. An empty
// change set writes nothing but still fails for an unknown id.
func updatePartial(ctx context.Context, db sqlx.ExtContext, op, table string, id int, cs *ChangeSet) error {
	if cs.Empty() {
		var exists bool
		query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", table)
		if err := sqlx.GetContext(ctx, db, &exists, query, id); err != nil {
			return storageError(op, err)
		}
		if !exists {
			return internalError(op, fmt.Errorf("%s %d not found", table, id))
		}
		return nil
	}

	query, args, err := db.BindNamed(cs.UpdateQuery(table), cs.Args(id))
	if err != nil {
		return storageError(op, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return storageError(op, err)
	}

	return expectRows(op, table, id, result)
}

func deleteByID(ctx context.Context, db sqlx.ExtContext, op, table string, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)

	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return storageError(op, err)
	}

	return expectRows(op, table, id, result)
}

func expectRows(op, table string, id int, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storageError(op, err)
	}

	if rowsAffected == 0 {
		return internalError(op, fmt.Errorf("%s %d not found", table, id))
	}

	return nil
}
