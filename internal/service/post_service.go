package service

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
)

type CreatePostInput struct {
	UID       string
	Title     string
	Body      string
	Published bool
}

type ListPostsInput struct {
	UID   string
	Page  int
	Count int
}

type FindPostInput struct {
	ID  int
	UID string
}

type UpdatePostInput struct {
	ID    int
	Patch models.PostPatch
}

type PublishPostInput struct {
	ID int
}

type DeletePostInput struct {
	ID int
}

// PostWithTags is a listed post together with the tags linked to it.
type PostWithTags struct {
	models.Post
	Tags []models.PostTag `json:"tags"`
}

func CreatePost(ctx context.Context, users repository.UserFinder, posts repository.PostCreator, in CreatePostInput) (*models.Post, error) {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return nil, err
	}

	return posts.Create(ctx, models.NewPost{
		UserID:    user.ID,
		Title:     in.Title,
		Body:      in.Body,
		Published: in.Published,
	})
}

// ListPosts returns one page of the owner's published posts, newest first,
// each with its tags.
func ListPosts(
	ctx context.Context,
	users repository.UserFinder,
	posts repository.PostLister,
	tags repository.PostTagFinder,
	in ListPostsInput,
) ([]PostWithTags, error) {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return nil, err
	}

	page, err := pageOf(in.Page, in.Count)
	if err != nil {
		return nil, err
	}

	found, err := posts.ListPublished(ctx, user.ID, page)
	if err != nil {
		return nil, err
	}

	return Attach(ctx, found,
		func(p models.Post) (int, bool) { return p.ID, true },
		tags.FindByPostIDs,
		func(t models.PostTag) int { return t.PostID },
		func(p models.Post, t []models.PostTag) PostWithTags { return PostWithTags{Post: p, Tags: t} },
	)
}

// FindPost looks a post up on behalf of its owner. A post that belongs to
// somebody else is reported as absent.
func FindPost(ctx context.Context, users repository.UserFinder, posts repository.PostFinder, in FindPostInput) (*models.Post, error) {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return nil, err
	}

	post, err := posts.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.UserID != user.ID {
		return nil, nil
	}

	return post, nil
}

func UpdatePost(ctx context.Context, posts repository.PostUpdater, in UpdatePostInput) error {
	return posts.Update(ctx, in.ID, in.Patch)
}

func PublishPost(ctx context.Context, posts repository.PostPublisher, in PublishPostInput) (*models.Post, error) {
	return posts.Publish(ctx, in.ID)
}

func DeletePost(ctx context.Context, posts repository.PostDeleter, in DeletePostInput) error {
	return posts.Delete(ctx, in.ID)
}

type PostService interface {
	CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error)
	ListPosts(ctx context.Context, in ListPostsInput) ([]PostWithTags, error)
	FindPost(ctx context.Context, in FindPostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, in UpdatePostInput) error
	PublishPost(ctx context.Context, in PublishPostInput) (*models.Post, error)
	DeletePost(ctx context.Context, in DeletePostInput) error
}

type postService struct {
	users repository.UserFinder
	posts repository.PostRepository
	tags  repository.PostTagFinder
}

func NewPostService(users repository.UserFinder, posts repository.PostRepository, tags repository.PostTagFinder) PostService {
	return &postService{
		users: users,
		posts: posts,
		tags:  tags,
	}
}

func (p *postService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	return CreatePost(ctx, p.users, p.posts, in)
}

func (p *postService) ListPosts(ctx context.Context, in ListPostsInput) ([]PostWithTags, error) {
	return ListPosts(ctx, p.users, p.posts, p.tags, in)
}

func (p *postService) FindPost(ctx context.Context, in FindPostInput) (*models.Post, error) {
	return FindPost(ctx, p.users, p.posts, in)
}

func (p *postService) UpdatePost(ctx context.Context, in UpdatePostInput) error {
	return UpdatePost(ctx, p.posts, in)
}

func (p *postService) PublishPost(ctx context.Context, in PublishPostInput) (*models.Post, error) {
	return PublishPost(ctx, p.posts, in)
}

func (p *postService) DeletePost(ctx context.Context, in DeletePostInput) error {
	return DeletePost(ctx, p.posts, in)
}
