package store

import "smartlearn/backend/models"

// AuthenticateUser checks the credentials against the document: the email
// lookup is case-insensitive, the password comparison is exact. On success
// the user's lastLogin is stamped and the updated record returned; on unknown
// email or wrong password the result is nil. The two failure modes are
// deliberately indistinguishable to the caller.
//
// Passwords in the document are plaintext. That mirrors the seed data this
// layer is contracted to read, not a recommendation.
func (s *Store) AuthenticateUser(email, password string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUserByEmail(email)
	if u == nil || u.Password != password {
		return nil
	}
	u.LastLogin = now()
	s.save()
	return copyUser(u)
}
