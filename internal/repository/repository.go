package repository

import (
	"context"
	"math"

	"github.com/AkifumiSato/at-api/internal/models"
)

// Page selects one page of a listing. Number starts at 1.
type Page struct {
	Number int
	Size   int
}

func (p Page) Valid() bool {
	return p.Number >= 1 && p.Size > 0
}

// Offset saturates at math.MaxInt, so a page far past the end stays empty.
func (p Page) Offset() int {
	if p.Size > 0 && p.Number > 1 && p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Size * (p.Number - 1)
}

// Users

type UserFinder interface {
	FindByUID(ctx context.Context, uid string) (*models.User, error)
}

type UserCreator interface {
	Create(ctx context.Context, uid string) (*models.User, error)
}

type UserDeleter interface {
	Delete(ctx context.Context, id int) error
}

// Posts

type PostCreator interface {
	Create(ctx context.Context, post models.NewPost) (*models.Post, error)
}

type PostFinder interface {
	FindByID(ctx context.Context, id int) (*models.Post, error)
}

type PostLister interface {
	ListPublished(ctx context.Context, userID int, page Page) ([]models.Post, error)
}

type PostUpdater interface {
	Update(ctx context.Context, id int, patch models.PostPatch) error
}

type PostPublisher interface {
	Publish(ctx context.Context, id int) (*models.Post, error)
}

type PostDeleter interface {
	Delete(ctx context.Context, id int) error
}

// Tags

type TagCreator interface {
	Create(ctx context.Context, tag models.NewTag) (*models.Tag, error)
}

type TagLister interface {
	ListByUser(ctx context.Context, userID int) ([]models.Tag, error)
}

type TagUpdater interface {
	Update(ctx context.Context, id int, patch models.TagPatch) error
}

type TagDeleter interface {
	Delete(ctx context.Context, id int) error
}

type PostTagRegistrar interface {
	Register(ctx context.Context, postID, tagID int) error
}

// PostTagFinder resolves the tags of many posts with one lookup. An empty
// postIDs slice yields an empty result.
type PostTagFinder interface {
	FindByPostIDs(ctx context.Context, postIDs []int) ([]models.PostTag, error)
}

// Attendance records

type AttendanceRecordCreator interface {
	Create(ctx context.Context, record models.NewAttendanceRecord) (*models.AttendanceRecord, error)
}

type AttendanceRecordFinder interface {
	FindByID(ctx context.Context, id int) (*models.AttendanceRecord, error)
}

type AttendanceRecordLister interface {
	ListByUser(ctx context.Context, userID int, page Page) ([]models.AttendanceRecord, error)
}

type AttendanceRecordUpdater interface {
	Update(ctx context.Context, id int, patch models.AttendanceRecordPatch) error
}

type AttendanceRecordDeleter interface {
	Delete(ctx context.Context, id int) error
}

// Action records

type ActionCategoryCreator interface {
	CreateCategory(ctx context.Context, userID int, name string) (*models.ActionCategory, error)
}

type ActionCategoryUpdater interface {
	UpdateCategory(ctx context.Context, id int, patch models.ActionCategoryPatch) error
}

type ActionCategoryFinder interface {
	FindCategoriesByIDs(ctx context.Context, ids []int) ([]models.ActionCategory, error)
}

type ActionRecordCreator interface {
	Create(ctx context.Context, record models.NewActionRecord) (*models.ActionRecord, error)
}

type ActionRecordLister interface {
	ListByUser(ctx context.Context, userID int, page Page) ([]models.ActionRecord, error)
}

type TablesCounter interface {
	CountTables(ctx context.Context) (int, error)
}

// Per-entity stores: everything one adapter provides.

type UserRepository interface {
	UserFinder
	UserCreator
	UserDeleter
}

type PostRepository interface {
	PostCreator
	PostFinder
	PostLister
	PostUpdater
	PostPublisher
	PostDeleter
}

type TagRepository interface {
	TagCreator
	TagLister
	TagUpdater
	TagDeleter
}

type PostTagRepository interface {
	PostTagRegistrar
	PostTagFinder
}

type AttendanceRecordRepository interface {
	AttendanceRecordCreator
	AttendanceRecordFinder
	AttendanceRecordLister
	AttendanceRecordUpdater
	AttendanceRecordDeleter
}

type ActionRecordRepository interface {
	ActionCategoryCreator
	ActionCategoryUpdater
	ActionCategoryFinder
	ActionRecordCreator
	ActionRecordLister
}

type TablesRepository interface {
	TablesCounter
}

type Repository struct {
	User       UserRepository
	Post       PostRepository
	Tag        TagRepository
	PostTag    PostTagRepository
	Attendance AttendanceRecordRepository
	Action     ActionRecordRepository
	Tables     TablesRepository
}
