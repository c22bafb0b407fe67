package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/AkifumiSato/at-api/internal/models"
)

// ChangeSet is the sparse list of columns an update writes. Columns are kept
// in insertion order so the generated SQL is stable.
type ChangeSet struct {
	columns []string
	values  map[string]interface{}
}

func NewChangeSet() *ChangeSet {
	return &ChangeSet{values: map[string]interface{}{}}
}

// Set adds column only when value is present.
func Set[T any](cs *ChangeSet, column string, value *T) {
	if value == nil {
		return
	}
	cs.put(column, *value)
}

// SetMapped is Set with a conversion applied to the present value.
func SetMapped[T, U any](cs *ChangeSet, column string, value *T, convert func(T) U) {
	if value == nil {
		return
	}
	cs.put(column, convert(*value))
}

func (cs *ChangeSet) put(column string, value interface{}) {
	if _, ok := cs.values[column]; !ok {
		cs.columns = append(cs.columns, column)
	}
	cs.values[column] = value
}

func (cs *ChangeSet) Empty() bool {
	return len(cs.columns) == 0
}

func (cs *ChangeSet) Columns() []string {
	return append([]string(nil), cs.columns...)
}

func (cs *ChangeSet) Value(column string) (interface{}, bool) {
	v, ok := cs.values[column]
	return v, ok
}

// UpdateQuery renders a named UPDATE statement for the present columns,
// e.g. "UPDATE tags SET name = :name WHERE id = :id".
func (cs *ChangeSet) UpdateQuery(table string) string {
	sets := make([]string, 0, len(cs.columns))
	for _, column := range cs.columns {
		sets = append(sets, fmt.Sprintf("%s = :%s", column, column))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", table, strings.Join(sets, ", "))
}

// Args returns the named arguments for UpdateQuery.
func (cs *ChangeSet) Args(id int) map[string]interface{} {
	args := make(map[string]interface{}, len(cs.values)+1)
	for column, value := range cs.values {
		args[column] = value
	}
	args["id"] = id
	return args
}

func unixSeconds(ts int64) time.Time {
	return time.Unix(ts, 0).UTC()
}

func PostChanges(p models.PostPatch) *ChangeSet {
	cs := NewChangeSet()
	Set(cs, "title", p.Title)
	Set(cs, "body", p.Body)
	Set(cs, "published", p.Published)
	return cs
}

func TagChanges(p models.TagPatch) *ChangeSet {
	cs := NewChangeSet()
	Set(cs, "name", p.Name)
	Set(cs, "slug", p.Slug)
	return cs
}

func AttendanceRecordChanges(p models.AttendanceRecordPatch) *ChangeSet {
	cs := NewChangeSet()
	SetMapped(cs, "start_time", p.StartTime, unixSeconds)
	SetMapped(cs, "end_time", p.EndTime, unixSeconds)
	Set(cs, "break_time", p.BreakTime)
	return cs
}

func ActionCategoryChanges(p models.ActionCategoryPatch) *ChangeSet {
	cs := NewChangeSet()
	Set(cs, "name", p.Name)
	return cs
}
