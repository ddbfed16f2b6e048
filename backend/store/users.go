package store

import (
	"fmt"
	"strings"

	"smartlearn/backend/models"
)

// Users returns every user in document order. Records are deep copies, so a
// held snapshot never aliases the live enrollment arrays.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.data.Users))
	for i := range s.data.Users {
		out = append(out, *copyUser(&s.data.Users[i]))
	}
	return out
}

// UserByID returns the user with the given id, or nil if there is none.
func (s *Store) UserByID(id int) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.findUser(id))
}

// UserByEmail looks a user up by email, case-insensitively.
func (s *Store) UserByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.findUserByEmail(email))
}

// CreateUser appends a new user, assigning the next id and stamping the
// creation time. Email uniqueness is not checked here; the original layer
// never did, and the lookup side stays case-insensitive.
func (s *Store) CreateUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUser++
	u.ID = s.nextUser
	u.CreatedAt = now()
	s.data.Users = append(s.data.Users, u)
	s.save()
	return u
}

// UpdateUser merges the given partial fields into the matching record and
// returns the updated user. An unknown id yields (nil, nil); a malformed
// update yields ErrInvalidUpdate and leaves the record untouched.
func (s *Store) UpdateUser(id int, updates map[string]any) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(id)
	if u == nil {
		return nil, nil
	}
	// Merge into a scratch copy and commit only on success.
	scratch := *copyUser(u)
	if err := merge(&scratch, updates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpdate, err)
	}
	*u = scratch
	s.save()
	return copyUser(u), nil
}

// DeleteUser removes and returns the user, or nil if the id is unknown.
func (s *Store) DeleteUser(id int) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Users {
		if s.data.Users[i].ID == id {
			deleted := copyUser(&s.data.Users[i])
			s.data.Users = append(s.data.Users[:i], s.data.Users[i+1:]...)
			s.save()
			return deleted
		}
	}
	return nil
}

func (s *Store) findUser(id int) *models.User {
	for i := range s.data.Users {
		if s.data.Users[i].ID == id {
			return &s.data.Users[i]
		}
	}
	return nil
}

func (s *Store) findUserByEmail(email string) *models.User {
	for i := range s.data.Users {
		if strings.EqualFold(s.data.Users[i].Email, email) {
			return &s.data.Users[i]
		}
	}
	return nil
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	out := *u
	out.EnrolledCourses = append([]int(nil), u.EnrolledCourses...)
	return &out
}
