package memory

import (
	"context"
	"sort"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
)

type postStore struct{ s *Store }

func (p *postStore) Create(ctx context.Context, in models.NewPost) (*models.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if _, ok := p.s.users[in.UserID]; !ok {
		return nil, fail("create post", "users %d not found", in.UserID)
	}

	now := p.s.now()
	post := models.Post{
		ID:          p.s.nextID("posts"),
		UserID:      in.UserID,
		Title:       in.Title,
		Body:        in.Body,
		Published:   in.Published,
		CreatedAt:   now,
		PublishedAt: now,
	}
	p.s.posts[post.ID] = post
	return &post, nil
}

func (p *postStore) FindByID(ctx context.Context, id int) (*models.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	post, ok := p.s.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (p *postStore) ListPublished(ctx context.Context, userID int, page repository.Page) ([]models.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	var posts []models.Post
	for _, id := range sortedIDs(p.s.posts) {
		post := p.s.posts[id]
		if post.UserID == userID && post.Published {
			posts = append(posts, post)
		}
	}
	return paginate(posts, page), nil
}

func (p *postStore) Update(ctx context.Context, id int, patch models.PostPatch) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	post, ok := p.s.posts[id]
	if !ok {
		return fail("update post", "posts %d not found", id)
	}

	cs := repository.PostChanges(patch)
	if v, ok := cs.Value("title"); ok {
		post.Title = v.(string)
	}
	if v, ok := cs.Value("body"); ok {
		post.Body = v.(string)
	}
	if v, ok := cs.Value("published"); ok {
		post.Published = v.(bool)
	}
	p.s.posts[id] = post
	return nil
}

func (p *postStore) Publish(ctx context.Context, id int) (*models.Post, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	post, ok := p.s.posts[id]
	if !ok || post.Published {
		return nil, fail("publish post", "no draft post %d", id)
	}

	post.Published = true
	post.PublishedAt = p.s.now()
	p.s.posts[id] = post
	return &post, nil
}

func (p *postStore) Delete(ctx context.Context, id int) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if _, ok := p.s.posts[id]; !ok {
		return fail("delete post", "posts %d not found", id)
	}
	p.s.deletePost(id)
	return nil
}

// deletePost must be called with mu held for writing.
func (s *Store) deletePost(id int) {
	delete(s.posts, id)
	for key := range s.postTags {
		if key.postID == id {
			delete(s.postTags, key)
		}
	}
}

type tagStore struct{ s *Store }

func (t *tagStore) Create(ctx context.Context, in models.NewTag) (*models.Tag, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.users[in.UserID]; !ok {
		return nil, fail("create tag", "users %d not found", in.UserID)
	}

	tag := models.Tag{
		ID:     t.s.nextID("tags"),
		UserID: in.UserID,
		Name:   in.Name,
		Slug:   in.Slug,
	}
	t.s.tags[tag.ID] = tag
	return &tag, nil
}

func (t *tagStore) ListByUser(ctx context.Context, userID int) ([]models.Tag, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	tags := []models.Tag{}
	for _, tag := range t.s.tags {
		if tag.UserID == userID {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

func (t *tagStore) Update(ctx context.Context, id int, patch models.TagPatch) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	tag, ok := t.s.tags[id]
	if !ok {
		return fail("update tag", "tags %d not found", id)
	}

	cs := repository.TagChanges(patch)
	if v, ok := cs.Value("name"); ok {
		tag.Name = v.(string)
	}
	if v, ok := cs.Value("slug"); ok {
		tag.Slug = v.(string)
	}
	t.s.tags[id] = tag
	return nil
}

func (t *tagStore) Delete(ctx context.Context, id int) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.s.tags[id]; !ok {
		return fail("delete tag", "tags %d not found", id)
	}
	t.s.deleteTag(id)
	return nil
}

// deleteTag must be called with mu held for writing.
func (s *Store) deleteTag(id int) {
	delete(s.tags, id)
	for key := range s.postTags {
		if key.tagID == id {
			delete(s.postTags, key)
		}
	}
}

type postTagStore struct{ s *Store }

func (l *postTagStore) Register(ctx context.Context, postID, tagID int) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	if _, ok := l.s.posts[postID]; !ok {
		return fail("register tag", "posts %d not found", postID)
	}
	if _, ok := l.s.tags[tagID]; !ok {
		return fail("register tag", "tags %d not found", tagID)
	}

	key := postTagKey{postID: postID, tagID: tagID}
	if _, ok := l.s.postTags[key]; ok {
		return fail("register tag", "post %d already has tag %d", postID, tagID)
	}
	l.s.postTags[key] = struct{}{}
	return nil
}

func (l *postTagStore) FindByPostIDs(ctx context.Context, postIDs []int) ([]models.PostTag, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()

	wanted := make(map[int]bool, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = true
	}

	tags := []models.PostTag{}
	for key := range l.s.postTags {
		if !wanted[key.postID] {
			continue
		}
		tag := l.s.tags[key.tagID]
		tags = append(tags, models.PostTag{
			TagID:  key.tagID,
			PostID: key.postID,
			Name:   tag.Name,
			Slug:   tag.Slug,
		})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].PostID != tags[j].PostID {
			return tags[i].PostID < tags[j].PostID
		}
		return tags[i].TagID < tags[j].TagID
	})
	return tags, nil
}
