package memory

import (
	"context"
	"sort"
	"time"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
)

type attendanceStore struct{ s *Store }

func (a *attendanceStore) Create(ctx context.Context, in models.NewAttendanceRecord) (*models.AttendanceRecord, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.users[in.UserID]; !ok {
		return nil, fail("create attendance record", "users %d not found", in.UserID)
	}

	record := models.AttendanceRecord{
		ID:        a.s.nextID("attendance_records"),
		UserID:    in.UserID,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		BreakTime: in.BreakTime,
	}
	a.s.attendance[record.ID] = record
	return &record, nil
}

func (a *attendanceStore) FindByID(ctx context.Context, id int) (*models.AttendanceRecord, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	record, ok := a.s.attendance[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (a *attendanceStore) ListByUser(ctx context.Context, userID int, page repository.Page) ([]models.AttendanceRecord, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	var records []models.AttendanceRecord
	for _, id := range sortedIDs(a.s.attendance) {
		if record := a.s.attendance[id]; record.UserID == userID {
			records = append(records, record)
		}
	}
	return paginate(records, page), nil
}

func (a *attendanceStore) Update(ctx context.Context, id int, patch models.AttendanceRecordPatch) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	record, ok := a.s.attendance[id]
	if !ok {
		return fail("update attendance record", "attendance_records %d not found", id)
	}

	cs := repository.AttendanceRecordChanges(patch)
	if v, ok := cs.Value("start_time"); ok {
		record.StartTime = v.(time.Time)
	}
	if v, ok := cs.Value("end_time"); ok {
		record.EndTime = v.(time.Time)
	}
	if v, ok := cs.Value("break_time"); ok {
		record.BreakTime = v.(int)
	}
	a.s.attendance[id] = record
	return nil
}

func (a *attendanceStore) Delete(ctx context.Context, id int) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.attendance[id]; !ok {
		return fail("delete attendance record", "attendance_records %d not found", id)
	}
	delete(a.s.attendance, id)
	return nil
}

type actionStore struct{ s *Store }

func (a *actionStore) CreateCategory(ctx context.Context, userID int, name string) (*models.ActionCategory, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.users[userID]; !ok {
		return nil, fail("create action category", "users %d not found", userID)
	}

	category := models.ActionCategory{
		ID:     a.s.nextID("action_categories"),
		UserID: userID,
		Name:   name,
	}
	a.s.categories[category.ID] = category
	return &category, nil
}

func (a *actionStore) UpdateCategory(ctx context.Context, id int, patch models.ActionCategoryPatch) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	category, ok := a.s.categories[id]
	if !ok {
		return fail("update action category", "action_categories %d not found", id)
	}

	cs := repository.ActionCategoryChanges(patch)
	if v, ok := cs.Value("name"); ok {
		category.Name = v.(string)
	}
	a.s.categories[id] = category
	return nil
}

func (a *actionStore) FindCategoriesByIDs(ctx context.Context, ids []int) ([]models.ActionCategory, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	seen := make(map[int]bool, len(ids))
	categories := []models.ActionCategory{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if category, ok := a.s.categories[id]; ok {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (a *actionStore) Create(ctx context.Context, in models.NewActionRecord) (*models.ActionRecord, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	if _, ok := a.s.users[in.UserID]; !ok {
		return nil, fail("create action record", "users %d not found", in.UserID)
	}
	if in.CategoryID != nil {
		if _, ok := a.s.categories[*in.CategoryID]; !ok {
			return nil, fail("create action record", "action_categories %d not found", *in.CategoryID)
		}
	}

	record := models.ActionRecord{
		ID:         a.s.nextID("action_records"),
		UserID:     in.UserID,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Info:       clone(in.Info),
		CategoryID: clone(in.CategoryID),
	}
	a.s.actions[record.ID] = record
	return &record, nil
}

func (a *actionStore) ListByUser(ctx context.Context, userID int, page repository.Page) ([]models.ActionRecord, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	var records []models.ActionRecord
	for _, id := range sortedIDs(a.s.actions) {
		if record := a.s.actions[id]; record.UserID == userID {
			record.Info = clone(record.Info)
			record.CategoryID = clone(record.CategoryID)
			records = append(records, record)
		}
	}
	return paginate(records, page), nil
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// deleteCategory must be called with mu held for writing. Records that
// pointed at the category keep existing without one.
func (s *Store) deleteCategory(id int) {
	delete(s.categories, id)
	for recordID, record := range s.actions {
		if record.CategoryID != nil && *record.CategoryID == id {
			record.CategoryID = nil
			s.actions[recordID] = record
		}
	}
}
