package repository

import (
	"math"
	"testing"
	"time"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestChangeSet_OnlyPresentFields(t *testing.T) {
	cs := TagChanges(models.TagPatch{Name: stringPtr("t2")})

	assert.False(t, cs.Empty())
	assert.Equal(t, []string{"name"}, cs.Columns())
	_, ok := cs.Value("slug")
	assert.False(t, ok)
	assert.Equal(t, "UPDATE tags SET name = :name WHERE id = :id", cs.UpdateQuery("tags"))
	assert.Equal(t, map[string]interface{}{"name": "t2", "id": 9}, cs.Args(9))
}

func TestChangeSet_EmptyPatch(t *testing.T) {
	assert.True(t, PostChanges(models.PostPatch{}).Empty())
	assert.True(t, AttendanceRecordChanges(models.AttendanceRecordPatch{}).Empty())
	assert.True(t, ActionCategoryChanges(models.ActionCategoryPatch{}).Empty())
}

func TestChangeSet_MappedValue(t *testing.T) {
	end := int64(1700003600)

	cs := AttendanceRecordChanges(models.AttendanceRecordPatch{EndTime: &end})

	v, ok := cs.Value("end_time")
	assert.True(t, ok)
	assert.Equal(t, time.Unix(end, 0).UTC(), v)
}

func TestChangeSet_ZeroValueIsStillPresent(t *testing.T) {
	cs := PostChanges(models.PostPatch{Published: boolPtr(false), Title: stringPtr("")})

	assert.Equal(t, []string{"title", "published"}, cs.Columns())
}

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		page   Page
		valid  bool
		offset int
	}{
		{Page{Number: 1, Size: 10}, true, 0},
		{Page{Number: 4, Size: 3}, true, 9},
		{Page{Number: 0, Size: 10}, false, -10},
		{Page{Number: 1, Size: 0}, false, 0},
		{Page{Number: math.MaxInt64 / 2, Size: 4}, true, math.MaxInt},
		{Page{Number: math.MaxInt, Size: math.MaxInt}, true, math.MaxInt},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.page.Valid(), "%+v", tt.page)
		assert.Equal(t, tt.offset, tt.page.Offset(), "%+v", tt.page)
	}
}

func TestDataAccessError(t *testing.T) {
	err := NewInternalErrorWithMessage(MsgUserNotFound)

	msg, ok := Message(err)
	assert.True(t, ok)
	assert.Equal(t, "User not found!", msg)
	assert.False(t, IsInternal(err))

	_, ok = Message(ErrInternal)
	assert.False(t, ok)
	assert.True(t, IsInternal(ErrInternal))
	assert.Equal(t, "internal error", ErrInternal.Error())
}
