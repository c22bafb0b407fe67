package handlers

import (
	"net/http"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/service"
)

type AddAttendanceRecordRequest struct {
	UID       string `json:"uid" validate:"required"`
	StartTime *int64 `json:"startTime" validate:"required"`
	EndTime   *int64 `json:"endTime" validate:"required"`
	BreakTime int    `json:"breakTime" validate:"min=0"`
}

type UpdateAttendanceRecordRequest struct {
	UID       string `json:"uid" validate:"required"`
	StartTime *int64 `json:"startTime"`
	EndTime   *int64 `json:"endTime"`
	BreakTime *int   `json:"breakTime" validate:"omitempty,min=0"`
}

type DeleteRecordRequest struct {
	UID string `json:"uid" validate:"required"`
}

type AddActionCategoryRequest struct {
	UID  string `json:"uid" validate:"required"`
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateActionCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
}

type AddActionRecordRequest struct {
	UID        string  `json:"uid" validate:"required"`
	StartTime  *int64  `json:"startTime" validate:"required"`
	EndTime    *int64  `json:"endTime" validate:"required"`
	Info       *string `json:"info"`
	CategoryID *int    `json:"categoryId" validate:"omitempty,min=1"`
}

type AttendanceRecordsResponse struct {
	Records []models.AttendanceRecord `json:"records"`
}

type ActionRecordsResponse struct {
	Records []models.ActionRecord `json:"records"`
}

func (h *Handlers) SearchAttendanceRecords(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parsePageQuery(w, r)
	if !ok {
		return
	}

	records, err := h.AttendanceService.SearchAttendanceRecords(r.Context(), service.SearchAttendanceRecordsInput{
		UID:   q.UID,
		Page:  q.Page,
		Count: q.Count,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, AttendanceRecordsResponse{Records: records}, http.StatusOK)
}

func (h *Handlers) AddAttendanceRecord(w http.ResponseWriter, r *http.Request) {
	var req AddAttendanceRecordRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	record, err := h.AttendanceService.AddAttendanceRecord(r.Context(), service.AddAttendanceRecordInput{
		UID:       req.UID,
		StartTime: *req.StartTime,
		EndTime:   *req.EndTime,
		BreakTime: req.BreakTime,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, record, http.StatusCreated)
}

func (h *Handlers) UpdateAttendanceRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateAttendanceRecordRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	err := h.AttendanceService.UpdateAttendanceRecord(r.Context(), service.UpdateAttendanceRecordInput{
		UID: req.UID,
		ID:  id,
		Patch: models.AttendanceRecordPatch{
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			BreakTime: req.BreakTime,
		},
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "attendance record updated"}, http.StatusOK)
}

func (h *Handlers) DeleteAttendanceRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req DeleteRecordRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	err := h.AttendanceService.DeleteAttendanceRecord(r.Context(), service.DeleteAttendanceRecordInput{
		UID: req.UID,
		ID:  id,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "attendance record deleted"}, http.StatusOK)
}

func (h *Handlers) ListActionRecords(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parsePageQuery(w, r)
	if !ok {
		return
	}

	records, err := h.ActionService.ListActionRecords(r.Context(), service.ListActionRecordsInput{
		UID:   q.UID,
		Page:  q.Page,
		Count: q.Count,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, ActionRecordsResponse{Records: records}, http.StatusOK)
}

func (h *Handlers) AddActionRecord(w http.ResponseWriter, r *http.Request) {
	var req AddActionRecordRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	record, err := h.ActionService.AddActionRecord(r.Context(), service.AddActionRecordInput{
		UID:        req.UID,
		StartTime:  *req.StartTime,
		EndTime:    *req.EndTime,
		Info:       req.Info,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, record, http.StatusCreated)
}

func (h *Handlers) AddActionCategory(w http.ResponseWriter, r *http.Request) {
	var req AddActionCategoryRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	category, err := h.ActionService.AddActionCategory(r.Context(), service.AddActionCategoryInput{
		UID:  req.UID,
		Name: req.Name,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, category, http.StatusCreated)
}

func (h *Handlers) UpdateActionCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateActionCategoryRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	err := h.ActionService.UpdateActionCategory(r.Context(), service.UpdateActionCategoryInput{
		ID:    id,
		Patch: models.ActionCategoryPatch{Name: req.Name},
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "action category updated"}, http.StatusOK)
}
