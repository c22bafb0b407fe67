package service

import (
	"context"
	"time"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
)

// Times are epoch seconds; BreakTime is in milliseconds.
type AddAttendanceRecordInput struct {
	UID       string
	StartTime int64
	EndTime   int64
	BreakTime int
}

type SearchAttendanceRecordsInput struct {
	UID   string
	Page  int
	Count int
}

type UpdateAttendanceRecordInput struct {
	UID   string
	ID    int
	Patch models.AttendanceRecordPatch
}

type DeleteAttendanceRecordInput struct {
	UID string
	ID  int
}

type AttendanceRecordEditor interface {
	repository.AttendanceRecordFinder
	repository.AttendanceRecordUpdater
}

type AttendanceRecordRemover interface {
	repository.AttendanceRecordFinder
	repository.AttendanceRecordDeleter
}

func AddAttendanceRecord(ctx context.Context, users repository.UserFinder, records repository.AttendanceRecordCreator, in AddAttendanceRecordInput) (*models.AttendanceRecord, error) {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return nil, err
	}

	return records.Create(ctx, models.NewAttendanceRecord{
		UserID:    user.ID,
		StartTime: time.Unix(in.StartTime, 0).UTC(),
		EndTime:   time.Unix(in.EndTime, 0).UTC(),
		BreakTime: in.BreakTime,
	})
}

func SearchAttendanceRecords(ctx context.Context, users repository.UserFinder, records repository.AttendanceRecordLister, in SearchAttendanceRecordsInput) ([]models.AttendanceRecord, error) {
	user, err := requireUser(ctx, users, in.UID)
	if err != nil {
		return nil, err
	}

	page, err := pageOf(in.Page, in.Count)
	if err != nil {
		return nil, err
	}

	return records.ListByUser(ctx, user.ID, page)
}

func UpdateAttendanceRecord(ctx context.Context, users repository.UserFinder, records AttendanceRecordEditor, in UpdateAttendanceRecordInput) error {
	if err := requireOwnRecord(ctx, users, records, in.UID, in.ID); err != nil {
		return err
	}

	return records.Update(ctx, in.ID, in.Patch)
}

func DeleteAttendanceRecord(ctx context.Context, users repository.UserFinder, records AttendanceRecordRemover, in DeleteAttendanceRecordInput) error {
	if err := requireOwnRecord(ctx, users, records, in.UID, in.ID); err != nil {
		return err
	}

	return records.Delete(ctx, in.ID)
}

// requireOwnRecord fails with the internal error unless record id exists and
// belongs to uid.
func requireOwnRecord(ctx context.Context, users repository.UserFinder, records repository.AttendanceRecordFinder, uid string, id int) error {
	user, err := requireUser(ctx, users, uid)
	if err != nil {
		return err
	}

	record, err := records.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil || record.UserID != user.ID {
		return repository.ErrInternal
	}

	return nil
}

type AttendanceService interface {
	AddAttendanceRecord(ctx context.Context, in AddAttendanceRecordInput) (*models.AttendanceRecord, error)
	SearchAttendanceRecords(ctx context.Context, in SearchAttendanceRecordsInput) ([]models.AttendanceRecord, error)
	UpdateAttendanceRecord(ctx context.Context, in UpdateAttendanceRecordInput) error
	DeleteAttendanceRecord(ctx context.Context, in DeleteAttendanceRecordInput) error
}

type attendanceService struct {
	users   repository.UserFinder
	records repository.AttendanceRecordRepository
}

func NewAttendanceService(users repository.UserFinder, records repository.AttendanceRecordRepository) AttendanceService {
	return &attendanceService{
		users:   users,
		records: records,
	}
}

func (a *attendanceService) AddAttendanceRecord(ctx context.Context, in AddAttendanceRecordInput) (*models.AttendanceRecord, error) {
	return AddAttendanceRecord(ctx, a.users, a.records, in)
}

func (a *attendanceService) SearchAttendanceRecords(ctx context.Context, in SearchAttendanceRecordsInput) ([]models.AttendanceRecord, error) {
	return SearchAttendanceRecords(ctx, a.users, a.records, in)
}

func (a *attendanceService) UpdateAttendanceRecord(ctx context.Context, in UpdateAttendanceRecordInput) error {
	return UpdateAttendanceRecord(ctx, a.users, a.records, in)
}

func (a *attendanceService) DeleteAttendanceRecord(ctx context.Context, in DeleteAttendanceRecordInput) error {
	return DeleteAttendanceRecord(ctx, a.users, a.records, in)
}
