package repository

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const actionRecordColumns = `id, user_id, start_time, end_time, info, category_id`

type ActionRecordRepositoryImpl struct {
	db sqlx.ExtContext
}

func NewActionRecordRepository(db sqlx.ExtContext) *ActionRecordRepositoryImpl {
	return &ActionRecordRepositoryImpl{db: db}
}

func (r *ActionRecordRepositoryImpl) CreateCategory(ctx context.Context, userID int, name string) (*models.ActionCategory, error) {
	query := `INSERT INTO action_categories (user_id, name) VALUES ($1, $2) RETURNING id, user_id, name`

	var category models.ActionCategory
	if err := sqlx.GetContext(ctx, r.db, &category, query, userID, name); err != nil {
		return nil, storageError("create action category", err)
	}

	return &category, nil
}

func (r *ActionRecordRepositoryImpl) UpdateCategory(ctx context.Context, id int, patch models.ActionCategoryPatch) error {
	return updatePartial(ctx, r.db, "update action category", "action_categories", id, ActionCategoryChanges(patch))
}

func (r *ActionRecordRepositoryImpl) FindCategoriesByIDs(ctx context.Context, ids []int) ([]models.ActionCategory, error) {
	categories := []models.ActionCategory{}
	if len(ids) == 0 {
		return categories, nil
	}

	query := `SELECT id, user_id, name FROM action_categories WHERE id IN (?) ORDER BY id`

	if err := selectIn(ctx, r.db, &categories, query, ids); err != nil {
		return nil, storageError("find action categories", err)
	}

	return categories, nil
}

func (r *ActionRecordRepositoryImpl) Create(ctx context.Context, record models.NewActionRecord) (*models.ActionRecord, error) {
	query := `
		INSERT INTO action_records (user_id, start_time, end_time, info, category_id)
		VALUES (:user_id, :start_time, :end_time, :info, :category_id)
		RETURNING ` + actionRecordColumns

	var created models.ActionRecord
	if err := getReturning(ctx, r.db, &created, query, record); err != nil {
		return nil, storageError("create action record", err)
	}

	return &created, nil
}

func (r *ActionRecordRepositoryImpl) ListByUser(ctx context.Context, userID int, page Page) ([]models.ActionRecord, error) {
	query := `
		SELECT ` + actionRecordColumns + ` FROM action_records
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	records := []models.ActionRecord{}
	err := sqlx.SelectContext(ctx, r.db, &records, query, userID, page.Size, page.Offset())
	if err != nil {
		return nil, storageError("list action records", err)
	}

	return records, nil
}
