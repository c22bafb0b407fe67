package handlers

import (
	"github.com/AkifumiSato/at-api/internal/config"
	"github.com/AkifumiSato/at-api/internal/service"
	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	UserService       service.UserService
	PostService       service.PostService
	TagService        service.TagService
	AttendanceService service.AttendanceService
	ActionService     service.ActionService
	TablesService     service.TablesService
	Cfg               *config.Config
	Validate          *validator.Validate
}

func NewHandlers(service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserService:       service.User,
		PostService:       service.Post,
		TagService:        service.Tag,
		AttendanceService: service.Attendance,
		ActionService:     service.Action,
		TablesService:     service.Tables,
		Cfg:               config,
		Validate:          validator.New(),
	}
}
