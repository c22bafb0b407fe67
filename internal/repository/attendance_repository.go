package repository

import (
	"context"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const attendanceColumns = `id, user_id, start_time, end_time, break_time`

type AttendanceRecordRepositoryImpl struct {
	db sqlx.ExtContext
}

func NewAttendanceRecordRepository(db sqlx.ExtContext) *AttendanceRecordRepositoryImpl {
	return &AttendanceRecordRepositoryImpl{db: db}
}

func (r *AttendanceRecordRepositoryImpl) Create(ctx context.Context, record models.NewAttendanceRecord) (*models.AttendanceRecord, error) {
	query := `
		INSERT INTO attendance_records (user_id, start_time, end_time, break_time)
		VALUES (:user_id, :start_time, :end_time, :break_time)
		RETURNING ` + attendanceColumns

	var created models.AttendanceRecord
	if err := getReturning(ctx, r.db, &created, query, record); err != nil {
		return nil, storageError("create attendance record", err)
	}

	return &created, nil
}

func (r *AttendanceRecordRepositoryImpl) FindByID(ctx context.Context, id int) (*models.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	var record models.AttendanceRecord
	found, err := getOptional(ctx, r.db, &record, query, id)
	if err != nil {
		return nil, storageError("find attendance record", err)
	}
	if !found {
		return nil, nil
	}

	return &record, nil
}

func (r *AttendanceRecordRepositoryImpl) ListByUser(ctx context.Context, userID int, page Page) ([]models.AttendanceRecord, error) {
	query := `
		SELECT ` + attendanceColumns + ` FROM attendance_records
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	records := []models.AttendanceRecord{}
	err := sqlx.SelectContext(ctx, r.db, &records, query, userID, page.Size, page.Offset())
	if err != nil {
		return nil, storageError("list attendance records", err)
	}

	return records, nil
}

func (r *AttendanceRecordRepositoryImpl) Update(ctx context.Context, id int, patch models.AttendanceRecordPatch) error {
	return updatePartial(ctx, r.db, "update attendance record", "attendance_records", id, AttendanceRecordChanges(patch))
}

func (r *AttendanceRecordRepositoryImpl) Delete(ctx context.Context, id int) error {
	return deleteByID(ctx, r.db, "delete attendance record", "attendance_records", id)
}
