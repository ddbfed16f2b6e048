package store

import (
	"errors"
	"fmt"

	"smartlearn/backend/models"
)

// ErrCourseNotFound is the one hard failure in the layer: an assignment must
// reference an existing course, unlike every other lookup which degrades to
// an absent-marker.
var ErrCourseNotFound = errors.New("course not found")

// Assignments returns every assignment in document order.
func (s *Store) Assignments() []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Assignment(nil), s.data.Assignments...)
}

// AssignmentsByCourse returns the assignments of one course, in document order.
func (s *Store) AssignmentsByCourse(courseID int) []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Assignment{}
	for _, a := range s.data.Assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out
}

// CreateAssignment appends a new assignment and, as a side effect, a
// notification announcing it. The referenced course must exist; on
// ErrCourseNotFound neither record is appended.
func (s *Store) CreateAssignment(a models.Assignment) (models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := s.findCourse(a.CourseID)
	if course == nil {
		return models.Assignment{}, ErrCourseNotFound
	}

	s.nextAssignment++
	a.ID = s.nextAssignment
	a.CreatedAt = now()
	s.data.Assignments = append(s.data.Assignments, a)

	s.nextNotification++
	s.data.Notifications = append(s.data.Notifications, models.Notification{
		ID:        s.nextNotification,
		Message:   fmt.Sprintf("New assignment available in %s: %s", course.Name, a.Title),
		Type:      "assignment",
		Read:      false,
		Timestamp: now(),
	})

	s.save()
	return a, nil
}
