package repository

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const postColumns = `id, user_id, title, body, published, created_at, published_at`

type PostRepositoryImpl struct {
	db sqlx.ExtContext
}

func NewPostRepository(db sqlx.ExtContext) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post models.NewPost) (*models.Post, error) {
	query := `
		INSERT INTO posts (user_id, title, body, published)
		VALUES (:user_id, :title, :body, :published)
		RETURNING ` + postColumns

	var created models.Post
	if err := getReturning(ctx, r.db, &created, query, post); err != nil {
		return nil, storageError("create post", err)
	}

	return &created, nil
}

func (r *PostRepositoryImpl) FindByID(ctx context.Context, id int) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	var post models.Post
	found, err := getOptional(ctx, r.db, &post, query, id)
	if err != nil {
		return nil, storageError("find post", err)
	}
	if !found {
		return nil, nil
	}

	return &post, nil
}

// ListPublished returns one page of the user's published posts, newest first.
func (r *PostRepositoryImpl) ListPublished(ctx context.Context, userID int, page Page) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + ` FROM posts
		WHERE user_id = $1 AND published = true
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	posts := []models.Post{}
	err := sqlx.SelectContext(ctx, r.db, &posts, query, userID, page.Size, page.Offset())
	if err != nil {
		return nil, storageError("list posts", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, id int, patch models.PostPatch) error {
	return updatePartial(ctx, r.db, "update post", "posts", id, PostChanges(patch))
}

// Publish flips a draft to published and stamps published_at. Publishing an
// unknown or already published post fails.
func (r *PostRepositoryImpl) Publish(ctx context.Context, id int) (*models.Post, error) {
	query := `
		UPDATE posts SET
			published = true,
			published_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND published = false
		RETURNING ` + postColumns

	var post models.Post
	found, err := getOptional(ctx, r.db, &post, query, id)
	if err != nil {
		return nil, storageError("publish post", err)
	}
	if !found {
		return nil, ErrInternal
	}

	return &post, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "delete post", "posts", id)
}
