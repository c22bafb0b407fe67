package repository

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/jmoiron/sqlx"
)

type TagRepositoryImpl struct {
	db sqlx.ExtContext
}

func NewTagRepository(db sqlx.ExtContext) *TagRepositoryImpl {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag models.NewTag) (*models.Tag, error) {
	query := `
		INSERT INTO tags (user_id, name, slug)
		VALUES (:user_id, :name, :slug)
		RETURNING id, user_id, name, slug
	`

	var created models.Tag
	if err := getReturning(ctx, r.db, &created, query, tag); err != nil {
		return nil, storageError("create tag", err)
	}

	return &created, nil
}

func (r *TagRepositoryImpl) ListByUser(ctx context.Context, userID int) ([]models.Tag, error) {
	query := `SELECT id, user_id, name, slug FROM tags WHERE user_id = $1 ORDER BY id`

	tags := []models.Tag{}
	if err := sqlx.SelectContext(ctx, r.db, &tags, query, userID); err != nil {
		return nil, storageError("list tags", err)
	}

	return tags, nil
}

func (r *TagRepositoryImpl) Update(ctx context.Context, id int, patch models.TagPatch) error {
	return updatePartial(ctx, r.db, "update tag", "tags", id, TagChanges(patch))
}

// Delete removes the tag; its posts_tags links go with it (ON DELETE CASCADE).
func (r *TagRepositoryImpl) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "delete tag", "tags", id)
}

type PostTagRepositoryImpl struct {
	db sqlx.ExtContext
}

func NewPostTagRepository(db sqlx.ExtContext) *PostTagRepositoryImpl {
	return &PostTagRepositoryImpl{db: db}
}

// Register links a tag to a post. The (post_id, tag_id) primary key makes a
// second registration of the same pair fail.
func (r *PostTagRepositoryImpl) Register(ctx context.Context, postID, tagID int) error {
	query := `INSERT INTO posts_tags (post_id, tag_id) VALUES ($1, $2)`

	if _, err := r.db.ExecContext(ctx, query, postID, tagID); err != nil {
		return storageError("register tag", err)
	}

	return nil
}

func (r *PostTagRepositoryImpl) FindByPostIDs(ctx context.Context, postIDs []int) ([]models.PostTag, error) {
	tags := []models.PostTag{}
	if len(postIDs) == 0 {
		return tags, nil
	}

	query := `
		SELECT pt.tag_id, pt.post_id, t.name, t.slug
		FROM posts_tags pt
		INNER JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id IN (?)
		ORDER BY pt.post_id, pt.tag_id
	`

	if err := selectIn(ctx, r.db, &tags, query, postIDs); err != nil {
		return nil, storageError("find tags by posts", err)
	}

	return tags, nil
}
