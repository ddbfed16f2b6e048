package store

import "smartlearn/backend/models"

// Achievements returns every achievement in document order.
func (s *Store) Achievements() []models.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Achievement(nil), s.data.Achievements...)
}

// AchievementsByUser returns the achievements earned by one user.
func (s *Store) AchievementsByUser(userID int) []models.Achievement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Achievement{}
	for _, a := range s.data.Achievements {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}
