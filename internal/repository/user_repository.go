package repository

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db sqlx.ExtContext
}

func NewUserRepository(db sqlx.ExtContext) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User

	query := `SELECT id, uid FROM users WHERE uid = $1`

	found, err := getOptional(ctx, r.db, &user, query, uid)
	if err != nil {
		return nil, storageError("find user", err)
	}
	if !found {
		return nil, nil
	}

	return &user, nil
}

// Create inserts the user. The unique index on uid rejects duplicates that
// slip past the caller's existence check.
func (r *userRepository) Create(ctx context.Context, uid string) (*models.User, error) {
	var user models.User

	query := `INSERT INTO users (uid) VALUES ($1) RETURNING id, uid`

	if err := sqlx.GetContext(ctx, r.db, &user, query, uid); err != nil {
		return nil, storageError("create user", err)
	}

	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "delete user", "users", id)
}
