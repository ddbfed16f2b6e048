package store

import "smartlearn/backend/models"

// Quizzes returns every quiz in document order.
func (s *Store) Quizzes() []models.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Quiz(nil), s.data.Quizzes...)
}

// QuizzesByCourse returns the quizzes of one course, in document order.
func (s *Store) QuizzesByCourse(courseID int) []models.Quiz {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Quiz{}
	for _, q := range s.data.Quizzes {
		if q.CourseID == courseID {
			out = append(out, q)
		}
	}
	return out
}
