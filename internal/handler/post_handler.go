package handlers

import (
	"net/http"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/service"
)

type CreatePostRequest struct {
	UID       string `json:"uid" validate:"required"`
	Title     string `json:"title" validate:"required,max=255"`
	Body      string `json:"body" validate:"required"`
	Published bool   `json:"published"`
}

type UpdatePostRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=255"`
	Body      *string `json:"body" validate:"omitempty,min=1"`
	Published *bool   `json:"published"`
}

type RegisterTagRequest struct {
	TagID int `json:"tagId" validate:"required,min=1"`
}

type PostsResponse struct {
	Posts []service.PostWithTags `json:"posts"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parsePageQuery(w, r)
	if !ok {
		return
	}

	posts, err := h.PostService.ListPosts(r.Context(), service.ListPostsInput{
		UID:   q.UID,
		Page:  q.Page,
		Count: q.Count,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, PostsResponse{Posts: posts}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	uid, ok := requireUIDQuery(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.FindPost(r.Context(), service.FindPostInput{ID: id, UID: uid})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if post == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), service.CreatePostInput{
		UID:       req.UID,
		Title:     req.Title,
		Body:      req.Body,
		Published: req.Published,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	err := h.PostService.UpdatePost(r.Context(), service.UpdatePostInput{
		ID: id,
		Patch: models.PostPatch{
			Title:     req.Title,
			Body:      req.Body,
			Published: req.Published,
		},
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "post updated"}, http.StatusOK)
}

func (h *Handlers) PublishPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.PublishPost(r.Context(), service.PublishPostInput{ID: id})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.PostService.DeletePost(r.Context(), service.DeletePostInput{ID: id}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "post deleted"}, http.StatusOK)
}

func (h *Handlers) RegisterTag(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req RegisterTagRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	err := h.TagService.RegisterTagToPost(r.Context(), service.RegisterTagInput{
		PostID: postID,
		TagID:  req.TagID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "tag registered"}, http.StatusCreated)
}
