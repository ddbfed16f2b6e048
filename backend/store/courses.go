package store

import (
	"fmt"

	"smartlearn/backend/models"
)

// Courses returns every course in document order.
func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Course(nil), s.data.Courses...)
}

// CourseByID returns the course with the given id, or nil if there is none.
func (s *Store) CourseByID(id int) *models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCourse(s.findCourse(id))
}

// CreateCourse appends a new course, assigning the next id and stamping the
// creation time.
func (s *Store) CreateCourse(c models.Course) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCourse++
	c.ID = s.nextCourse
	c.CreatedAt = now()
	s.data.Courses = append(s.data.Courses, c)
	s.save()
	return c
}

// UpdateCourse merges the given partial fields into the matching record and
// returns the updated course. An unknown id yields (nil, nil); a malformed
// update yields ErrInvalidUpdate and leaves the record untouched.
func (s *Store) UpdateCourse(id int, updates map[string]any) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCourse(id)
	if c == nil {
		return nil, nil
	}
	scratch := *copyCourse(c)
	if err := merge(&scratch, updates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpdate, err)
	}
	*c = scratch
	s.save()
	return copyCourse(c), nil
}

// DeleteCourse removes and returns the course, or nil if the id is unknown.
func (s *Store) DeleteCourse(id int) *models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Courses {
		if s.data.Courses[i].ID == id {
			deleted := copyCourse(&s.data.Courses[i])
			s.data.Courses = append(s.data.Courses[:i], s.data.Courses[i+1:]...)
			s.save()
			return deleted
		}
	}
	return nil
}

// EnrollUser adds the course to the user's enrollment set and bumps the
// course's student count. Enrolling twice is a no-op. Returns the updated
// user, or nil when either id is unknown.
func (s *Store) EnrollUser(userID, courseID int) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(userID)
	c := s.findCourse(courseID)
	if u == nil || c == nil {
		return nil
	}
	if !u.IsEnrolledIn(courseID) {
		u.EnrolledCourses = append(u.EnrolledCourses, courseID)
		c.Students++
		s.save()
	}
	return copyUser(u)
}

func (s *Store) findCourse(id int) *models.Course {
	for i := range s.data.Courses {
		if s.data.Courses[i].ID == id {
			return &s.data.Courses[i]
		}
	}
	return nil
}

func copyCourse(c *models.Course) *models.Course {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
