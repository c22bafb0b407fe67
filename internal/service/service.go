package service

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
)

// MsgInvalidPage is returned when a listing asks for page < 1 or count < 1.
const MsgInvalidPage = "Invalid page or count!"

// Service bundles the use cases with the adapters they run against. The
// use cases themselves are plain functions over ports; Service only injects
// the adapters so handlers can depend on small interfaces.
type Service struct {
	User       UserService
	Post       PostService
	Tag        TagService
	Attendance AttendanceService
	Action     ActionService
	Tables     TablesService
}

func NewService(repo *repository.Repository) *Service {
	return &Service{
		User:       NewUserService(repo.User),
		Post:       NewPostService(repo.User, repo.Post, repo.PostTag),
		Tag:        NewTagService(repo.User, repo.Tag, repo.PostTag),
		Attendance: NewAttendanceService(repo.User, repo.Attendance),
		Action:     NewActionService(repo.User, repo.Action),
		Tables:     NewTablesService(repo.Tables),
	}
}

// requireUser resolves uid to its user or fails with "User not found!".
// Every use case on user-owned data starts here.
func requireUser(ctx context.Context, users repository.UserFinder, uid string) (*models.User, error) {
	user, err := users.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, repository.NewInternalErrorWithMessage(repository.MsgUserNotFound)
	}
	return user, nil
}

func pageOf(number, size int) (repository.Page, error) {
	page := repository.Page{Number: number, Size: size}
	if !page.Valid() {
		return page, repository.NewInternalErrorWithMessage(MsgInvalidPage)
	}
	return page, nil
}
