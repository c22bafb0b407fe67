package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*repository.Repository, *models.User) {
	t.Helper()

	repo := NewRepository()
	user, err := repo.User.Create(context.Background(), "alice")
	require.NoError(t, err)

	return repo, user
}

func TestUserStore_UniqueUID(t *testing.T) {
	repo, _ := setup(t)

	user, err := repo.User.Create(context.Background(), "alice")

	assert.Nil(t, user)
	assert.True(t, repository.IsInternal(err))
}

func TestUserStore_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	repo, user := setup(t)

	post, err := repo.Post.Create(ctx, models.NewPost{UserID: user.ID, Title: "t", Body: "b"})
	require.NoError(t, err)
	tag, err := repo.Tag.Create(ctx, models.NewTag{UserID: user.ID, Name: "n", Slug: "s"})
	require.NoError(t, err)
	require.NoError(t, repo.PostTag.Register(ctx, post.ID, tag.ID))

	require.NoError(t, repo.User.Delete(ctx, user.ID))

	found, err := repo.Post.FindByID(ctx, post.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)

	links, err := repo.PostTag.FindByPostIDs(ctx, []int{post.ID})
	assert.NoError(t, err)
	assert.Empty(t, links)

	assert.True(t, repository.IsInternal(repo.User.Delete(ctx, user.ID)))
}

func TestPostStore_ForeignKey(t *testing.T) {
	repo, _ := setup(t)

	post, err := repo.Post.Create(context.Background(), models.NewPost{UserID: 99, Title: "t", Body: "b"})

	assert.Nil(t, post)
	assert.True(t, repository.IsInternal(err))
}

func TestPostStore_ListPublishedOrderAndPaging(t *testing.T) {
	ctx := context.Background()
	repo, user := setup(t)

	for i := 0; i < 5; i++ {
		_, err := repo.Post.Create(ctx, models.NewPost{UserID: user.ID, Title: "t", Body: "b", Published: i != 2})
		require.NoError(t, err)
	}

	first, err := repo.Post.ListPublished(ctx, user.ID, repository.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	second, err := repo.Post.ListPublished(ctx, user.ID, repository.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	third, err := repo.Post.ListPublished(ctx, user.ID, repository.Page{Number: 3, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, []int{5, 4}, postIDs(first))
	assert.Equal(t, []int{2, 1}, postIDs(second))
	assert.NotNil(t, third)
	assert.Empty(t, third)
}

func TestListByUser_PagePastIntRange(t *testing.T) {
	ctx := context.Background()
	repo, user := setup(t)
	far := repository.Page{Number: math.MaxInt64 / 2, Size: 4}

	_, err := repo.Post.Create(ctx, models.NewPost{UserID: user.ID, Title: "t", Body: "b", Published: true})
	require.NoError(t, err)
	_, err = repo.Attendance.Create(ctx, models.NewAttendanceRecord{UserID: user.ID, StartTime: time.Unix(0, 0), EndTime: time.Unix(60, 0)})
	require.NoError(t, err)
	_, err = repo.Action.Create(ctx, models.NewActionRecord{UserID: user.ID, StartTime: time.Unix(0, 0), EndTime: time.Unix(60, 0)})
	require.NoError(t, err)

	posts, err := repo.Post.ListPublished(ctx, user.ID, far)
	require.NoError(t, err)
	assert.Empty(t, posts)

	attendance, err := repo.Attendance.ListByUser(ctx, user.ID, far)
	require.NoError(t, err)
	assert.Empty(t, attendance)

	actions, err := repo.Action.ListByUser(ctx, user.ID, repository.Page{Number: math.MaxInt, Size: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, actions)

	whole, err := repo.Action.ListByUser(ctx, user.ID, repository.Page{Number: 1, Size: math.MaxInt})
	require.NoError(t, err)
	assert.Len(t, whole, 1)
}

func TestPostStore_Publish(t *testing.T) {
	ctx := context.Background()
	repo, user := setup(t)

	post, err := repo.Post.Create(ctx, models.NewPost{UserID: user.ID, Title: "t", Body: "b"})
	require.NoError(t, err)

	published, err := repo.Post.Publish(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, published.Published)
	assert.False(t, published.PublishedAt.Before(post.PublishedAt))

	_, err = repo.Post.Publish(ctx, post.ID)
	assert.True(t, repository.IsInternal(err))
}

func TestPostStore_UpdateUnknownID(t *testing.T) {
	repo, _ := setup(t)

	err := repo.Post.Update(context.Background(), 42, models.PostPatch{})

	assert.True(t, repository.IsInternal(err))
}

func TestPostTagStore_RegisterTwice(t *testing.T) {
	ctx := context.Background()
	repo, user := setup(t)

	post, err := repo.Post.Create(ctx, models.NewPost{UserID: user.ID, Title: "t", Body: "b"})
	require.NoError(t, err)
	tag, err := repo.Tag.Create(ctx, models.NewTag{UserID: user.ID, Name: "n", Slug: "s"})
	require.NoError(t, err)

	require.NoError(t, repo.PostTag.Register(ctx, post.ID, tag.ID))
	assert.True(t, repository.IsInternal(repo.PostTag.Register(ctx, post.ID, tag.ID)))
	assert.True(t, repository.IsInternal(repo.PostTag.Register(ctx, post.ID, 999)))
}

func TestAttendanceStore_UpdateKeepsAbsentFields(t *testing.T) {
	ctx := context.Background()
	repo, user := setup(t)
	start := time.Unix(1700000000, 0).UTC()
	end := time.Unix(1700030000, 0).UTC()

	record, err := repo.Attendance.Create(ctx, models.NewAttendanceRecord{
		UserID:    user.ID,
		StartTime: start,
		EndTime:   end,
		BreakTime: 60000,
	})
	require.NoError(t, err)

	newEnd := int64(1700040000)
	require.NoError(t, repo.Attendance.Update(ctx, record.ID, models.AttendanceRecordPatch{EndTime: &newEnd}))

	updated, err := repo.Attendance.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, start, updated.StartTime)
	assert.Equal(t, time.Unix(newEnd, 0).UTC(), updated.EndTime)
	assert.Equal(t, 60000, updated.BreakTime)
}

func TestActionStore_CategoryForeignKey(t *testing.T) {
	ctx := context.Background()
	repo, user := setup(t)
	missing := 7

	record, err := repo.Action.Create(ctx, models.NewActionRecord{UserID: user.ID, CategoryID: &missing})

	assert.Nil(t, record)
	assert.True(t, repository.IsInternal(err))
}

func TestTablesStore_CountTables(t *testing.T) {
	repo := NewRepository()

	count, err := repo.Tables.CountTables(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func postIDs(posts []models.Post) []int {
	ids := make([]int, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestActionStore_ListDoesNotShareState(t *testing.T) {
	ctx := context.Background()
	repo, user := setup(t)

	category, err := repo.Action.CreateCategory(ctx, user.ID, "work")
	require.NoError(t, err)
	info := "standup"
	_, err = repo.Action.Create(ctx, models.NewActionRecord{
		UserID:     user.ID,
		StartTime:  time.Unix(0, 0),
		EndTime:    time.Unix(60, 0),
		Info:       &info,
		CategoryID: &category.ID,
	})
	require.NoError(t, err)

	listed, err := repo.Action.ListByUser(ctx, user.ID, repository.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	*listed[0].Info = "changed"
	*listed[0].CategoryID = 99

	again, err := repo.Action.ListByUser(ctx, user.ID, repository.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "standup", *again[0].Info)
	assert.Equal(t, category.ID, *again[0].CategoryID)
}
