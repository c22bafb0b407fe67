package handlers

import (
	"net/http"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/service"
)

type CreateTagRequest struct {
	UID  string `json:"uid" validate:"required"`
	Name string `json:"name" validate:"required,max=255"`
	Slug string `json:"slug" validate:"required,max=255"`
}

type UpdateTagRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
	Slug *string `json:"slug" validate:"omitempty,min=1,max=255"`
}

type TagsResponse struct {
	Tags []models.Tag `json:"tags"`
}

func (h *Handlers) GetTags(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUIDQuery(w, r)
	if !ok {
		return
	}

	tags, err := h.TagService.ListTags(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, TagsResponse{Tags: tags}, http.StatusOK)
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	tag, err := h.TagService.CreateTag(r.Context(), service.CreateTagInput{
		UID:  req.UID,
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, tag, http.StatusCreated)
}

func (h *Handlers) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateTagRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	err := h.TagService.UpdateTag(r.Context(), service.UpdateTagInput{
		ID:    id,
		Patch: models.TagPatch{Name: req.Name, Slug: req.Slug},
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "tag updated"}, http.StatusOK)
}

func (h *Handlers) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.TagService.DeleteTag(r.Context(), service.DeleteTagInput{ID: id}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "tag deleted"}, http.StatusOK)
}
