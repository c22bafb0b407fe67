package service

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
)

type CreateTagInput struct {
	UID  string
	Name string
	Slug string
}

type UpdateTagInput struct {
	ID    int
	Patch models.TagPatch
}

type DeleteTagInput struct {
	ID int
}

type RegisterTagInput struct {
	PostID int
	TagID  int
}

func CreateTag(ctx context.Context, users repository.UserFinder, tags repository.TagCreator, in CreateTagInput) (*models.Tag, error) {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return nil, err
	}

	return tags.Create(ctx, models.NewTag{
		UserID: user.ID,
		Name:   in.Name,
		Slug:   in.Slug,
	})
}

func ListTags(ctx context.Context, users repository.UserFinder, tags repository.TagLister, uid string) ([]models.Tag, error) {
	user, err := requireUser(ctx, users, uid)
	if err != nil {
		return nil, err
	}

	return tags.ListByUser(ctx, user.ID)
}

func UpdateTag(ctx context.Context, tags repository.TagUpdater, in UpdateTagInput) error {
	return tags.Update(ctx, in.ID, in.Patch)
}

func DeleteTag(ctx context.Context, tags repository.TagDeleter, in DeleteTagInput) error {
	return tags.Delete(ctx, in.ID)
}

// RegisterTagToPost links a tag to a post. Registering a pair twice fails.
func RegisterTagToPost(ctx context.Context, links repository.PostTagRegistrar, in RegisterTagInput) error {
	return links.Register(ctx, in.PostID, in.TagID)
}

type TagService interface {
	CreateTag(ctx context.Context, in CreateTagInput) (*models.Tag, error)
	ListTags(ctx context.Context, uid string) ([]models.Tag, error)
	UpdateTag(ctx context.Context, in UpdateTagInput) error
	DeleteTag(ctx context.Context, in DeleteTagInput) error
	RegisterTagToPost(ctx context.Context, in RegisterTagInput) error
}

type tagService struct {
	users repository.UserFinder
	tags  repository.TagRepository
	links repository.PostTagRegistrar
}

func NewTagService(users repository.UserFinder, tags repository.TagRepository, links repository.PostTagRegistrar) TagService {
	return &tagService{
		users: users,
		tags:  tags,
		links: links,
	}
}

func (t *tagService) CreateTag(ctx context.Context, in CreateTagInput) (*models.Tag, error) {
	return CreateTag(ctx, t.users, t.tags, in)
}

func (t *tagService) ListTags(ctx context.Context, uid string) ([]models.Tag, error) {
	return ListTags(ctx, t.users, t.tags, uid)
}

func (t *tagService) UpdateTag(ctx context.Context, in UpdateTagInput) error {
	return UpdateTag(ctx, t.tags, in)
}

func (t *tagService) DeleteTag(ctx context.Context, in DeleteTagInput) error {
	return DeleteTag(ctx, t.tags, in)
}

func (t *tagService) RegisterTagToPost(ctx context.Context, in RegisterTagInput) error {
	return RegisterTagToPost(ctx, t.links, in)
}
