package store

import "smartlearn/backend/models"

const weeklyGoal = 500

// StudentDashboard joins the user's enrollments with courses, assignments,
// quizzes and achievements and computes the headline stats. Returns nil when
// the user id is unknown.
func (s *Store) StudentDashboard(userID int) *models.StudentDashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := s.findUser(userID)
	if user == nil {
		return nil
	}

	enrolled := []models.Course{}
	enrolledIDs := map[int]bool{}
	for _, c := range s.data.Courses {
		if user.IsEnrolledIn(c.ID) {
			enrolled = append(enrolled, c)
			enrolledIDs[c.ID] = true
		}
	}

	assignments := []models.Assignment{}
	weeklyProgress := 0
	for _, a := range s.data.Assignments {
		if enrolledIDs[a.CourseID] {
			assignments = append(assignments, a)
			if a.Status == models.AssignmentSubmitted {
				weeklyProgress += a.Points
			}
		}
	}
	if weeklyProgress > weeklyGoal {
		weeklyProgress = weeklyGoal
	}

	quizzes := []models.Quiz{}
	for _, q := range s.data.Quizzes {
		if enrolledIDs[q.CourseID] {
			quizzes = append(quizzes, q)
		}
	}

	achievements := []models.Achievement{}
	for _, a := range s.data.Achievements {
		if a.UserID == userID {
			achievements = append(achievements, a)
		}
	}

	completed := 0
	for _, c := range enrolled {
		if c.Progress >= 100 {
			completed++
		}
	}

	level := user.Level
	if level == 0 {
		level = 1
	}

	return &models.StudentDashboard{
		User:            *copyUser(user),
		EnrolledCourses: enrolled,
		Assignments:     assignments,
		Quizzes:         quizzes,
		Achievements:    achievements,
		Stats: models.StudentStats{
			TotalCourses:     len(enrolled),
			CompletedCourses: completed,
			CurrentLevel:     level,
			TotalXP:          user.XP,
			WeeklyGoal:       weeklyGoal,
			WeeklyProgress:   weeklyProgress,
			Streak:           user.Streak,
		},
	}
}

// FacultyDashboard gathers the courses the user teaches, their assignments
// and summary stats. Returns nil when the user id is unknown.
func (s *Store) FacultyDashboard(userID int) *models.FacultyDashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := s.findUser(userID)
	if user == nil {
		return nil
	}

	courses := []models.Course{}
	courseIDs := map[int]bool{}
	totalStudents := 0
	for _, c := range s.data.Courses {
		if c.TaughtBy(*user) {
			courses = append(courses, c)
			courseIDs[c.ID] = true
			totalStudents += c.Students
		}
	}

	assignments := []models.Assignment{}
	pending := 0
	for _, a := range s.data.Assignments {
		if courseIDs[a.CourseID] {
			assignments = append(assignments, a)
			if a.Status == models.AssignmentPending {
				pending++
			}
		}
	}

	var scoreSum float64
	scoreCount := 0
	for _, q := range s.data.Quizzes {
		if courseIDs[q.CourseID] {
			scoreSum += q.Score
			scoreCount++
		}
	}
	avgPerformance := 0.0
	if scoreCount > 0 {
		avgPerformance = scoreSum / float64(scoreCount)
	}

	return &models.FacultyDashboard{
		User:        *copyUser(user),
		Courses:     courses,
		Assignments: assignments,
		Stats: models.FacultyStats{
			TotalStudents:       totalStudents,
			ActiveCourses:       len(courses),
			PendingAssignments:  pending,
			AvgClassPerformance: avgPerformance,
		},
	}
}

// AdminDashboard bundles the system stats, per-role user counts and the
// operational panels straight from the document.
func (s *Store) AdminDashboard() *models.AdminDashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{}
	for _, u := range s.data.Users {
		counts[u.Role]++
	}

	return &models.AdminDashboard{
		SystemStats: s.systemStats(),
		UserStats: []models.UserStat{
			{Role: "Students", Count: counts[models.RoleStudent], Change: "+12%"},
			{Role: "Faculty", Count: counts[models.RoleFaculty], Change: "+3%"},
			{Role: "Admins", Count: counts[models.RoleAdmin], Change: "0%"},
		},
		RecentActivities: append([]models.Activity(nil), s.data.RecentActivities...),
		SystemHealth:     append([]models.HealthEntry(nil), s.data.SystemHealth...),
		PendingTasks:     append([]models.PendingTask(nil), s.data.PendingTasks...),
	}
}
