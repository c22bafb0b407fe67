package service

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
)

type AddUserInput struct {
	UID string
}

type DeleteUserInput struct {
	UID string
}

type UserAdder interface {
	repository.UserFinder
	repository.UserCreator
}

type UserRemover interface {
	repository.UserFinder
	repository.UserDeleter
}

// AddUser registers a new uid. An existing uid is a precondition failure.
func AddUser(ctx context.Context, users UserAdder, in AddUserInput) (*models.User, error) {
	existing, err := users.FindByUID(ctx, in.UID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, repository.NewInternalErrorWithMessage(repository.MsgUserAlreadyExist)
	}

	return users.Create(ctx, in.UID)
}

// CheckUser returns the user with uid, or nil if there is none.
func CheckUser(ctx context.Context, users repository.UserFinder, uid string) (*models.User, error) {
	return users.FindByUID(ctx, uid)
}

func DeleteUser(ctx context.Context, users UserRemover, in DeleteUserInput) error {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return err
	}

	return users.Delete(ctx, user.ID)
}

type UserService interface {
	AddUser(ctx context.Context, in AddUserInput) (*models.User, error)
	CheckUser(ctx context.Context, uid string) (*models.User, error)
	DeleteUser(ctx context.Context, in DeleteUserInput) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) AddUser(ctx context.Context, in AddUserInput) (*models.User, error) {
	return AddUser(ctx, s.users, in)
}

func (s *userService) CheckUser(ctx context.Context, uid string) (*models.User, error) {
	return CheckUser(ctx, s.users, uid)
}

func (s *userService) DeleteUser(ctx context.Context, in DeleteUserInput) error {
	return DeleteUser(ctx, s.users, in)
}
