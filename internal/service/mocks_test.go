package service

import (
	"context"
	"testing"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostLister struct {
	mock.Mock
}

func (m *MockPostLister) ListPublished(ctx context.Context, userID int, page repository.Page) ([]models.Post, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

type MockPostTagFinder struct {
	mock.Mock
}

func (m *MockPostTagFinder) FindByPostIDs(ctx context.Context, postIDs []int) ([]models.PostTag, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PostTag), args.Error(1)
}

func TestListPosts_WithMocks(t *testing.T) {
	alice := &models.User{ID: 1, UID: "alice"}

	tests := []struct {
		name        string
		setupMocks  func(*MockUserFinder, *MockPostLister, *MockPostTagFinder)
		expectErr   error
		expectPosts int
	}{
		{
			name: "one batch lookup for the page",
			setupMocks: func(u *MockUserFinder, p *MockPostLister, tf *MockPostTagFinder) {
				u.On("FindByUID", mock.Anything, "alice").Return(alice, nil)
				p.On("ListPublished", mock.Anything, 1, repository.Page{Number: 2, Size: 2}).
					Return([]models.Post{{ID: 4, UserID: 1}, {ID: 3, UserID: 1}}, nil)
				tf.On("FindByPostIDs", mock.Anything, []int{4, 3}).
					Return([]models.PostTag{{TagID: 9, PostID: 3, Name: "go", Slug: "go"}}, nil).Once()
			},
			expectPosts: 2,
		},
		{
			name: "lister failure propagates unchanged",
			setupMocks: func(u *MockUserFinder, p *MockPostLister, tf *MockPostTagFinder) {
				u.On("FindByUID", mock.Anything, "alice").Return(alice, nil)
				p.On("ListPublished", mock.Anything, 1, repository.Page{Number: 2, Size: 2}).
					Return(nil, repository.ErrInternal)
			},
			expectErr: repository.ErrInternal,
		},
		{
			name: "tag lookup failure propagates unchanged",
			setupMocks: func(u *MockUserFinder, p *MockPostLister, tf *MockPostTagFinder) {
				u.On("FindByUID", mock.Anything, "alice").Return(alice, nil)
				p.On("ListPublished", mock.Anything, 1, repository.Page{Number: 2, Size: 2}).
					Return([]models.Post{{ID: 4, UserID: 1}}, nil)
				tf.On("FindByPostIDs", mock.Anything, []int{4}).Return(nil, repository.ErrInternal)
			},
			expectErr: repository.ErrInternal,
		},
		{
			name: "user lookup failure stops early",
			setupMocks: func(u *MockUserFinder, p *MockPostLister, tf *MockPostTagFinder) {
				u.On("FindByUID", mock.Anything, "alice").Return(nil, repository.ErrInternal)
			},
			expectErr: repository.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserFinder)
			posts := new(MockPostLister)
			tags := new(MockPostTagFinder)
			tt.setupMocks(users, posts, tags)

			got, err := ListPosts(context.Background(), users, posts, tags, ListPostsInput{UID: "alice", Page: 2, Count: 2})

			if tt.expectErr != nil {
				assert.Same(t, tt.expectErr, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Len(t, got, tt.expectPosts)
				assert.Empty(t, got[0].Tags)
				assert.Len(t, got[1].Tags, 1)
			}

			users.AssertExpectations(t)
			posts.AssertExpectations(t)
			tags.AssertExpectations(t)
		})
	}
}
