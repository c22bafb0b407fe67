package models

import (
	"time"
)

type User struct {
	ID  int    `json:"id" db:"id"`
	UID string `json:"uid" db:"uid"`
}

type Post struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Body        string    `json:"body" db:"body"`
	Published   bool      `json:"published" db:"published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
}

type NewPost struct {
	UserID    int    `db:"user_id"`
	Title     string `db:"title"`
	Body      string `db:"body"`
	Published bool   `db:"published"`
}

// PostPatch carries the fields of a post to change. Nil means "leave as is".
type PostPatch struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}

type Tag struct {
	ID     int    `json:"id" db:"id"`
	UserID int    `json:"userId" db:"user_id"`
	Name   string `json:"name" db:"name"`
	Slug   string `json:"slug" db:"slug"`
}

type NewTag struct {
	UserID int    `db:"user_id"`
	Name   string `db:"name"`
	Slug   string `db:"slug"`
}

type TagPatch struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

// PostTag is a tag as seen through the posts_tags link of one post.
type PostTag struct {
	TagID  int    `json:"id" db:"tag_id"`
	PostID int    `json:"-" db:"post_id"`
	Name   string `json:"name" db:"name"`
	Slug   string `json:"slug" db:"slug"`
}

type AttendanceRecord struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	StartTime time.Time `json:"startTime" db:"start_time"`
	EndTime   time.Time `json:"endTime" db:"end_time"`
	BreakTime int       `json:"breakTime" db:"break_time"`
}

type NewAttendanceRecord struct {
	UserID    int       `db:"user_id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	BreakTime int       `db:"break_time"`
}

// AttendanceRecordPatch takes times as epoch seconds, as they arrive from clients.
type AttendanceRecordPatch struct {
	StartTime *int64 `json:"startTime"`
	EndTime   *int64 `json:"endTime"`
	BreakTime *int   `json:"breakTime"`
}

type ActionCategory struct {
	ID     int    `json:"id" db:"id"`
	UserID int    `json:"userId" db:"user_id"`
	Name   string `json:"name" db:"name"`
}

type ActionCategoryPatch struct {
	Name *string `json:"name"`
}

type ActionRecord struct {
	ID         int              `json:"id" db:"id"`
	UserID     int              `json:"userId" db:"user_id"`
	StartTime  time.Time        `json:"startTime" db:"start_time"`
	EndTime    time.Time        `json:"endTime" db:"end_time"`
	Info       *string          `json:"info" db:"info"`
	CategoryID *int             `json:"categoryId" db:"category_id"`
	Categories []ActionCategory `json:"categories" db:"-"`
}

type NewActionRecord struct {
	UserID     int       `db:"user_id"`
	StartTime  time.Time `db:"start_time"`
	EndTime    time.Time `db:"end_time"`
	Info       *string   `db:"info"`
	CategoryID *int      `db:"category_id"`
}
