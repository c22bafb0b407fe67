package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/AkifumiSato/at-api/internal/repository"
	"github.com/gorilla/mux"
)

const (
	defaultMaxBodySize = 4096
	defaultPageSize    = 10
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError turns a use-case error into a response: precondition
// failures go back to the caller as 400, everything else is an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if message, ok := repository.Message(err); ok {
		WriteError(w, message, http.StatusBadRequest)
		return
	}

	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	WriteError(w, "internal error", http.StatusInternalServerError)
}

// decodeBody reads a size-limited JSON body into dst and validates it.
func (h *Handlers) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	limit := int64(defaultMaxBodySize)
	if h.Cfg != nil && h.Cfg.MaxBodySize > 0 {
		limit = h.Cfg.MaxBodySize
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	if err := h.Validate.Struct(dst); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}

// pathID reads the {id} route variable.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		WriteError(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

type pageQuery struct {
	UID   string `validate:"required"`
	Page  int    `validate:"min=1"`
	Count int    `validate:"min=1"`
}

// parsePageQuery reads ?uid=&page=&count=. A missing page or count falls
// back to the first page of defaultPageSize.
func (h *Handlers) parsePageQuery(w http.ResponseWriter, r *http.Request) (pageQuery, bool) {
	query := r.URL.Query()

	page, err := queryInt(query.Get("page"), 1)
	if err != nil {
		WriteError(w, "invalid page", http.StatusBadRequest)
		return pageQuery{}, false
	}
	count, err := queryInt(query.Get("count"), defaultPageSize)
	if err != nil {
		WriteError(w, "invalid count", http.StatusBadRequest)
		return pageQuery{}, false
	}

	q := pageQuery{UID: query.Get("uid"), Page: page, Count: count}
	if err := h.Validate.Struct(q); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return pageQuery{}, false
	}

	return q, true
}

func queryInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func requireUIDQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid := r.URL.Query().Get("uid")
	if uid == "" {
		WriteError(w, "uid is required", http.StatusBadRequest)
		return "", false
	}
	return uid, true
}
