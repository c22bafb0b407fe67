package handlers

import (
	"net/http"

	"github.com/AkifumiSato/at-api/internal/service"
)

type UserRequest struct {
	UID string `json:"uid" validate:"required,max=255"`
}

func (h *Handlers) CheckUser(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUIDQuery(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.CheckUser(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if user == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) AddUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	user, err := h.UserService.AddUser(r.Context(), service.AddUserInput{UID: req.UID})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	if err := h.UserService.DeleteUser(r.Context(), service.DeleteUserInput{UID: req.UID}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "user deleted"}, http.StatusOK)
}
