package service

import (
	"context"
	"time"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
)

type AddActionCategoryInput struct {
	UID  string
	Name string
}

type UpdateActionCategoryInput struct {
	ID    int
	Patch models.ActionCategoryPatch
}

// Times are epoch seconds.
type AddActionRecordInput struct {
	UID        string
	StartTime  int64
	EndTime    int64
	Info       *string
	CategoryID *int
}

type ListActionRecordsInput struct {
	UID   string
	Page  int
	Count int
}

func AddActionCategory(ctx context.Context, users repository.UserFinder, categories repository.ActionCategoryCreator, in AddActionCategoryInput) (*models.ActionCategory, error) {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return nil, err
	}

	return categories.CreateCategory(ctx, user.ID, in.Name)
}

func UpdateActionCategory(ctx context.Context, categories repository.ActionCategoryUpdater, in UpdateActionCategoryInput) error {
	return categories.UpdateCategory(ctx, in.ID, in.Patch)
}

func AddActionRecord(ctx context.Context, users repository.UserFinder, records repository.ActionRecordCreator, in AddActionRecordInput) (*models.ActionRecord, error) {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return nil, err
	}

	return records.Create(ctx, models.NewActionRecord{
		UserID:     user.ID,
		StartTime:  time.Unix(in.StartTime, 0).UTC(),
		EndTime:    time.Unix(in.EndTime, 0).UTC(),
		Info:       in.Info,
		CategoryID: in.CategoryID,
	})
}

// ListActionRecords returns one page of the user's action records, newest
// first, each carrying its category (zero or one).
func ListActionRecords(
	ctx context.Context,
	users repository.UserFinder,
	records repository.ActionRecordLister,
	categories repository.ActionCategoryFinder,
	in ListActionRecordsInput,
) ([]models.ActionRecord, error) {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return nil, err
	}

	page, err := pageOf(in.Page, in.Count)
	if err != nil {
		return nil, err
	}

	found, err := records.ListByUser(ctx, user.ID, page)
	if err != nil {
		return nil, err
	}

	return Attach(ctx, found,
		func(r models.ActionRecord) (int, bool) {
			if r.CategoryID == nil {
				return 0, false
			}
			return *r.CategoryID, true
		},
		categories.FindCategoriesByIDs,
		func(c models.ActionCategory) int { return c.ID },
		func(r models.ActionRecord, c []models.ActionCategory) models.ActionRecord {
			r.Categories = c
			return r
		},
	)
}

type ActionService interface {
	AddActionCategory(ctx context.Context, in AddActionCategoryInput) (*models.ActionCategory, error)
	UpdateActionCategory(ctx context.Context, in UpdateActionCategoryInput) error
	AddActionRecord(ctx context.Context, in AddActionRecordInput) (*models.ActionRecord, error)
	ListActionRecords(ctx context.Context, in ListActionRecordsInput) ([]models.ActionRecord, error)
}

type actionService struct {
	users   repository.UserFinder
	actions repository.ActionRecordRepository
}

func NewActionService(users repository.UserFinder, actions repository.ActionRecordRepository) ActionService {
	return &actionService{
		users:   users,
		actions: actions,
	}
}

func (a *actionService) AddActionCategory(ctx context.Context, in AddActionCategoryInput) (*models.ActionCategory, error) {
	return AddActionCategory(ctx, a.users, a.actions, in)
}

func (a *actionService) UpdateActionCategory(ctx context.Context, in UpdateActionCategoryInput) error {
	return UpdateActionCategory(ctx, a.actions, in)
}

func (a *actionService) AddActionRecord(ctx context.Context, in AddActionRecordInput) (*models.ActionRecord, error) {
	return AddActionRecord(ctx, a.users, a.actions, in)
}

func (a *actionService) ListActionRecords(ctx context.Context, in ListActionRecordsInput) ([]models.ActionRecord, error) {
	return ListActionRecords(ctx, a.users, a.actions, a.actions, in)
}
