package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/users", h.CheckUser).Methods(http.MethodGet)
	r.HandleFunc("/users", h.AddUser).Methods(http.MethodPost)
	r.HandleFunc("/users", h.DeleteUser).Methods(http.MethodDelete)

	r.HandleFunc("/posts", h.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}", h.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id:[0-9]+}", h.UpdatePost).Methods(http.MethodPatch)
	r.HandleFunc("/posts/{id:[0-9]+}", h.DeletePost).Methods(http.MethodDelete)
	r.HandleFunc("/posts/{id:[0-9]+}/publish", h.PublishPost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}/tags", h.RegisterTag).Methods(http.MethodPost)

	r.HandleFunc("/tags", h.GetTags).Methods(http.MethodGet)
	r.HandleFunc("/tags", h.CreateTag).Methods(http.MethodPost)
	r.HandleFunc("/tags/{id:[0-9]+}", h.UpdateTag).Methods(http.MethodPatch)
	r.HandleFunc("/tags/{id:[0-9]+}", h.DeleteTag).Methods(http.MethodDelete)

	r.HandleFunc("/attendance_records", h.SearchAttendanceRecords).Methods(http.MethodGet)
	r.HandleFunc("/attendance_records", h.AddAttendanceRecord).Methods(http.MethodPost)
	r.HandleFunc("/attendance_records/{id:[0-9]+}", h.UpdateAttendanceRecord).Methods(http.MethodPatch)
	r.HandleFunc("/attendance_records/{id:[0-9]+}", h.DeleteAttendanceRecord).Methods(http.MethodDelete)

	r.HandleFunc("/action_records", h.ListActionRecords).Methods(http.MethodGet)
	r.HandleFunc("/action_records", h.AddActionRecord).Methods(http.MethodPost)
	r.HandleFunc("/action_records/categories", h.AddActionCategory).Methods(http.MethodPost)
	r.HandleFunc("/action_records/categories/{id:[0-9]+}", h.UpdateActionCategory).Methods(http.MethodPatch)

	return r
}
