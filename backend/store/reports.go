package store

import "smartlearn/backend/models"

// CourseStudents returns the users enrolled in the course, in document order.
func (s *Store) CourseStudents(courseID int) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.User{}
	for _, u := range s.data.Users {
		if u.Role == models.RoleStudent && u.IsEnrolledIn(courseID) {
			cu := copyUser(&u)
			out = append(out, cu.Sanitized())
		}
	}
	return out
}

// CourseReport builds the per-course report: one summary row per enrolled
// student plus course-wide totals. Returns nil when the course id is unknown.
func (s *Store) CourseReport(courseID int) *models.CourseReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course := s.findCourse(courseID)
	if course == nil {
		return nil
	}

	pendingAssignments := 0
	totalAssignments := 0
	for _, a := range s.data.Assignments {
		if a.CourseID == courseID {
			totalAssignments++
			if a.Status == models.AssignmentPending {
				pendingAssignments++
			}
		}
	}

	// Quiz scores per user and for the course as a whole.
	userScores := map[int][]float64{}
	var courseSum float64
	courseCount := 0
	for _, q := range s.data.Quizzes {
		if q.CourseID == courseID {
			userScores[q.UserID] = append(userScores[q.UserID], q.Score)
			courseSum += q.Score
			courseCount++
		}
	}
	courseAvg := 0.0
	if courseCount > 0 {
		courseAvg = courseSum / float64(courseCount)
	}

	students := []models.CourseStudentSummary{}
	for _, u := range s.data.Users {
		if u.Role != models.RoleStudent || !u.IsEnrolledIn(courseID) {
			continue
		}
		scores := userScores[u.ID]
		avg := 0.0
		for _, sc := range scores {
			avg += sc
		}
		if len(scores) > 0 {
			avg /= float64(len(scores))
		}
		students = append(students, models.CourseStudentSummary{
			Student:        u.Sanitized(),
			Progress:       course.Progress,
			AssignmentsDue: pendingAssignments,
			QuizzesTaken:   len(scores),
			AvgQuizScore:   avg,
		})
	}

	return &models.CourseReport{
		Course:           *copyCourse(course),
		Students:         students,
		TotalAssignments: totalAssignments,
		AvgQuizScore:     courseAvg,
	}
}
