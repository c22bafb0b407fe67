package repository

import (
	"context"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postRowColumns = []string{"id", "user_id", "title", "body", "published", "created_at", "published_at"}

func stringPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestPostRepositoryImpl_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO posts (user_id, title, body, published)`)).
		WithArgs(2, "title", "body", false).
		WillReturnRows(sqlmock.NewRows(postRowColumns).AddRow(10, 2, "title", "body", false, now, now))

	post, err := repo.Create(context.Background(), models.NewPost{
		UserID: 2,
		Title:  "title",
		Body:   "body",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, post.ID)
	assert.Equal(t, 2, post.UserID)
	assert.Equal(t, now, post.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepositoryImpl_FindByID(t *testing.T) {
	query := regexp.QuoteMeta(`FROM posts WHERE id = $1`)

	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)
		now := time.Now().UTC()

		mock.ExpectQuery(query).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(postRowColumns).AddRow(5, 1, "t", "b", true, now, now))

		post, err := repo.FindByID(context.Background(), 5)

		require.NoError(t, err)
		require.NotNil(t, post)
		assert.True(t, post.Published)
	})

	t.Run("absent", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(query).WithArgs(5).WillReturnRows(sqlmock.NewRows(postRowColumns))

		post, err := repo.FindByID(context.Background(), 5)

		assert.NoError(t, err)
		assert.Nil(t, post)
	})
}

func TestPostRepositoryImpl_ListPublished(t *testing.T) {
	tests := []struct {
		name   string
		page   Page
		limit  int
		offset int
	}{
		{name: "first page", page: Page{Number: 1, Size: 10}, limit: 10, offset: 0},
		{name: "third page", page: Page{Number: 3, Size: 4}, limit: 4, offset: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewPostRepository(db)
			now := time.Now().UTC()

			mock.ExpectQuery(`WHERE user_id = \$1 AND published = true\s+ORDER BY id DESC\s+LIMIT \$2 OFFSET \$3`).
				WithArgs(1, tt.limit, tt.offset).
				WillReturnRows(sqlmock.NewRows(postRowColumns).
					AddRow(9, 1, "b", "b", true, now, now).
					AddRow(4, 1, "a", "a", true, now, now))

			posts, err := repo.ListPublished(context.Background(), 1, tt.page)

			require.NoError(t, err)
			require.Len(t, posts, 2)
			assert.Equal(t, 9, posts[0].ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("empty page is an empty slice", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(`FROM posts`).WillReturnRows(sqlmock.NewRows(postRowColumns))

		posts, err := repo.ListPublished(context.Background(), 1, Page{Number: 50, Size: 10})

		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("page past the int range keeps a non-negative offset", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(`LIMIT \$2 OFFSET \$3`).
			WithArgs(1, 4, math.MaxInt).
			WillReturnRows(sqlmock.NewRows(postRowColumns))

		posts, err := repo.ListPublished(context.Background(), 1, Page{Number: math.MaxInt64 / 2, Size: 4})

		require.NoError(t, err)
		assert.Empty(t, posts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepositoryImpl_Update(t *testing.T) {
	tests := []struct {
		name      string
		patch     models.PostPatch
		setupMock func(mock sqlmock.Sqlmock)
		expectErr bool
	}{
		{
			name:  "only present fields are written",
			patch: models.PostPatch{Title: stringPtr("new")},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE posts SET title = $1 WHERE id = $2`)).
					WithArgs("new", 3).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:  "all fields",
			patch: models.PostPatch{Title: stringPtr("t"), Body: stringPtr("b"), Published: boolPtr(true)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE posts SET title = $1, body = $2, published = $3 WHERE id = $4`)).
					WithArgs("t", "b", true, 3).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:  "unknown id",
			patch: models.PostPatch{Body: stringPtr("b")},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE posts SET body`).
					WithArgs("b", 3).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectErr: true,
		},
		{
			name:  "empty patch only checks existence",
			patch: models.PostPatch{},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`)).
					WithArgs(3).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
		},
		{
			name:  "empty patch on unknown id",
			patch: models.PostPatch{},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(3).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewPostRepository(db)
			tt.setupMock(mock)

			err := repo.Update(context.Background(), 3, tt.patch)

			if tt.expectErr {
				assert.True(t, IsInternal(err))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepositoryImpl_Publish(t *testing.T) {
	query := `UPDATE posts SET\s+published = true,\s+published_at = CURRENT_TIMESTAMP\s+WHERE id = \$1 AND published = false`

	t.Run("draft gets published", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		published := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(query).
			WithArgs(4).
			WillReturnRows(sqlmock.NewRows(postRowColumns).AddRow(4, 1, "t", "b", true, created, published))

		post, err := repo.Publish(context.Background(), 4)

		require.NoError(t, err)
		assert.True(t, post.Published)
		assert.Equal(t, published, post.PublishedAt)
	})

	t.Run("no draft to publish", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectQuery(query).WithArgs(4).WillReturnRows(sqlmock.NewRows(postRowColumns))

		post, err := repo.Publish(context.Background(), 4)

		assert.Nil(t, post)
		assert.True(t, IsInternal(err))
	})
}

func TestPostRepositoryImpl_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM posts WHERE id = $1`)).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 8)

	assert.True(t, IsInternal(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
