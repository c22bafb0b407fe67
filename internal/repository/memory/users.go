package memory

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
)

type userStore struct{ s *Store }

func (u *userStore) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, user := range u.s.users {
		if user.UID == uid {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u *userStore) Create(ctx context.Context, uid string) (*models.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	for _, user := range u.s.users {
		if user.UID == uid {
			return nil, fail("create user", "duplicate uid %q", uid)
		}
	}

	user := models.User{ID: u.s.nextID("users"), UID: uid}
	u.s.users[user.ID] = user
	return &user, nil
}

// Delete removes the user together with everything the user owns.
func (u *userStore) Delete(ctx context.Context, id int) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	if _, ok := u.s.users[id]; !ok {
		return fail("delete user", "users %d not found", id)
	}
	delete(u.s.users, id)

	for postID, post := range u.s.posts {
		if post.UserID == id {
			u.s.deletePost(postID)
		}
	}
	for tagID, tag := range u.s.tags {
		if tag.UserID == id {
			u.s.deleteTag(tagID)
		}
	}
	for recordID, record := range u.s.attendance {
		if record.UserID == id {
			delete(u.s.attendance, recordID)
		}
	}
	for recordID, record := range u.s.actions {
		if record.UserID == id {
			delete(u.s.actions, recordID)
		}
	}
	for categoryID, category := range u.s.categories {
		if category.UserID == id {
			u.s.deleteCategory(categoryID)
		}
	}
	return nil
}
