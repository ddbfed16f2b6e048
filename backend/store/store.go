package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"smartlearn/backend/models"
)

// ErrInvalidUpdate marks a partial update whose fields could not be applied
// to the record, e.g. a mistyped value. The record is left untouched.
var ErrInvalidUpdate = errors.New("invalid update")

// Store holds the single in-memory snapshot of the data document and is the
// only component allowed to mutate it. All accessors take the lock, so the
// store is safe to share across request handlers.
type Store struct {
	mu   sync.RWMutex
	data *models.Database

	// Monotonic id counters, seeded to the max id present at load. Ids are
	// never reused within a process, even after deleting the highest record.
	nextUser         int
	nextCourse       int
	nextAssignment   int
	nextNotification int
}

// New wraps an already-decoded document. Nil collections are normalized to
// empty slices so readers never see a nil list.
func New(db *models.Database) *Store {
	if db.Users == nil {
		db.Users = []models.User{}
	}
	if db.Courses == nil {
		db.Courses = []models.Course{}
	}
	if db.Assignments == nil {
		db.Assignments = []models.Assignment{}
	}
	if db.Quizzes == nil {
		db.Quizzes = []models.Quiz{}
	}
	if db.Achievements == nil {
		db.Achievements = []models.Achievement{}
	}
	if db.Notifications == nil {
		db.Notifications = []models.Notification{}
	}
	if db.SystemHealth == nil {
		db.SystemHealth = []models.HealthEntry{}
	}
	if db.PendingTasks == nil {
		db.PendingTasks = []models.PendingTask{}
	}
	if db.RecentActivities == nil {
		db.RecentActivities = []models.Activity{}
	}

	s := &Store{data: db}
	for _, u := range db.Users {
		if u.ID > s.nextUser {
			s.nextUser = u.ID
		}
	}
	for _, c := range db.Courses {
		if c.ID > s.nextCourse {
			s.nextCourse = c.ID
		}
	}
	for _, a := range db.Assignments {
		if a.ID > s.nextAssignment {
			s.nextAssignment = a.ID
		}
	}
	for _, n := range db.Notifications {
		if n.ID > s.nextNotification {
			s.nextNotification = n.ID
		}
	}
	return s
}

// Empty returns a store over the default well-shaped document: all
// collections empty, stats zeroed.
func Empty() *Store {
	return New(&models.Database{
		SystemStats: models.SystemStats{SystemUptime: defaultUptime},
	})
}

// Load reads and decodes the data document at path. Unlike LoadOrEmpty, the
// caller sees the failure and can tell "empty because the load failed" from
// "truly empty".
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	var db models.Database
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	return New(&db), nil
}

// LoadOrEmpty loads the document and falls back to the empty default when the
// file is missing or malformed, logging the reason. Callers that need to
// distinguish the two cases should use Load directly.
func LoadOrEmpty(path string, logger *log.Logger) *Store {
	s, err := Load(path)
	if err != nil {
		if logger != nil {
			logger.Printf("could not load data file %q: %v; starting with an empty dataset", path, err)
		}
		return Empty()
	}
	return s
}

// save is where a real deployment would write the document back out. Data is
// intentionally not persisted; mutations live for the lifetime of the process.
func (s *Store) save() {}

// now stamps created/updated timestamps in the document's RFC 3339 format.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// merge applies a partial update onto dst. Only the keys present in updates
// are touched, mirroring an object-spread merge. Callers must pass a scratch
// copy, not the live record: encoding/json keeps applying valid fields after
// the first type error, so merging in place would leave partial state behind
// a failure.
func merge(dst any, updates map[string]any) error {
	raw, err := json.Marshal(updates)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
