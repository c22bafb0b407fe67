// Package memory keeps every table in process memory. It satisfies the same
// ports as the Postgres adapters and mirrors their constraints: serial ids,
// unique uids, foreign keys with cascades and id-desc listings.
package memory

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/AkifumiSato/at-api/internal/models"
	"github.com/AkifumiSato/at-api/internal/repository"
)

type postTagKey struct {
	postID int
	tagID  int
}

// Store is the shared state behind the adapters returned by NewRepository.
type Store struct {
	mu sync.RWMutex

	seq map[string]int

	users      map[int]models.User
	posts      map[int]models.Post
	tags       map[int]models.Tag
	postTags   map[postTagKey]struct{}
	attendance map[int]models.AttendanceRecord
	categories map[int]models.ActionCategory
	actions    map[int]models.ActionRecord

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		seq:        make(map[string]int),
		users:      make(map[int]models.User),
		posts:      make(map[int]models.Post),
		tags:       make(map[int]models.Tag),
		postTags:   make(map[postTagKey]struct{}),
		attendance: make(map[int]models.AttendanceRecord),
		categories: make(map[int]models.ActionCategory),
		actions:    make(map[int]models.ActionRecord),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// NewRepository returns the in-memory adapters over a fresh Store.
func NewRepository() *repository.Repository {
	return NewStore().Repository()
}

func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:       &userStore{s},
		Post:       &postStore{s},
		Tag:        &tagStore{s},
		PostTag:    &postTagStore{s},
		Attendance: &attendanceStore{s},
		Action:     &actionStore{s},
		Tables:     &tablesStore{s},
	}
}

// nextID must be called with mu held for writing.
func (s *Store) nextID(table string) int {
	s.seq[table]++
	return s.seq[table]
}

func fail(op string, format string, args ...interface{}) error {
	log.Printf("data access: %s: %s", op, fmt.Sprintf(format, args...))
	return repository.ErrInternal
}

// sortedIDs returns the keys of m, highest first.
func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	return ids
}

func paginate[T any](items []T, page repository.Page) []T {
	offset := page.Offset()
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := offset + page.Size
	if end > len(items) || end < offset {
		end = len(items)
	}
	return append([]T{}, items[offset:end]...)
}

var tables = []string{
	"users",
	"posts",
	"tags",
	"posts_tags",
	"attendance_records",
	"action_categories",
	"action_records",
}

type tablesStore struct{ s *Store }

func (t *tablesStore) CountTables(ctx context.Context) (int, error) {
	return len(tables), nil
}
