package store

import (
	"testing"

	"smartlearn/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestStudentDashboard(t *testing.T) {
	s := seedStore()

	d := s.StudentDashboard(1)
	assert.NotNil(t, d)
	assert.Equal(t, "Ann", d.User.Name)

	// Enrolled courses come back in document order, filtered by membership.
	assert.Len(t, d.EnrolledCourses, 2)
	assert.Equal(t, "Algebra", d.EnrolledCourses[0].Name)
	assert.Equal(t, "Biology", d.EnrolledCourses[1].Name)

	// Assignments and quizzes are scoped to the enrolled courses.
	assert.Len(t, d.Assignments, 2)
	assert.Equal(t, "Sets", d.Assignments[0].Title)
	assert.Equal(t, "Cells", d.Assignments[1].Title)
	assert.Len(t, d.Quizzes, 2)

	assert.Len(t, d.Achievements, 1)
	assert.Equal(t, "First Steps", d.Achievements[0].Title)

	assert.Equal(t, 2, d.Stats.TotalCourses)
	assert.Equal(t, 1, d.Stats.CompletedCourses) // Algebra is at 100
	assert.Equal(t, 3, d.Stats.CurrentLevel)
	assert.Equal(t, 1200, d.Stats.TotalXP)
	assert.Equal(t, 500, d.Stats.WeeklyGoal)
	assert.Equal(t, 100, d.Stats.WeeklyProgress) // points of the one submitted assignment
	assert.Equal(t, 4, d.Stats.Streak)
}

func TestStudentDashboardDefaultsLevelToOne(t *testing.T) {
	s := Empty()
	u := s.CreateUser(models.User{Name: "Zero", Email: "z@b.com", Role: models.RoleStudent})

	d := s.StudentDashboard(u.ID)
	assert.NotNil(t, d)
	assert.Equal(t, 1, d.Stats.CurrentLevel)
	assert.Empty(t, d.EnrolledCourses)
}

func TestStudentDashboardUnknownUser(t *testing.T) {
	s := seedStore()
	assert.Nil(t, s.StudentDashboard(99))
}

func TestFacultyDashboard(t *testing.T) {
	s := seedStore()

	d := s.FacultyDashboard(2)
	assert.NotNil(t, d)

	// Matches by instructor id or by display name.
	assert.Len(t, d.Courses, 2)
	assert.Equal(t, "Algebra", d.Courses[0].Name)
	assert.Equal(t, "Biology", d.Courses[1].Name)

	assert.Len(t, d.Assignments, 2)
	assert.Equal(t, 22, d.Stats.TotalStudents)
	assert.Equal(t, 2, d.Stats.ActiveCourses)
	assert.Equal(t, 1, d.Stats.PendingAssignments)
	assert.Equal(t, 80.0, d.Stats.AvgClassPerformance) // (90 + 70) / 2
}

func TestAdminDashboard(t *testing.T) {
	s := seedStore()

	d := s.AdminDashboard()
	assert.NotNil(t, d)
	assert.Equal(t, 3, d.SystemStats.TotalUsers)

	assert.Len(t, d.UserStats, 3)
	assert.Equal(t, "Students", d.UserStats[0].Role)
	assert.Equal(t, 1, d.UserStats[0].Count)
	assert.Equal(t, "+12%", d.UserStats[0].Change)
	assert.Equal(t, 1, d.UserStats[1].Count)
	assert.Equal(t, 1, d.UserStats[2].Count)
}

func TestCourseReport(t *testing.T) {
	s := seedStore()

	r := s.CourseReport(2)
	assert.NotNil(t, r)
	assert.Equal(t, "Algebra", r.Course.Name)
	assert.Equal(t, 1, r.TotalAssignments)
	assert.Equal(t, 90.0, r.AvgQuizScore)

	assert.Len(t, r.Students, 1)
	assert.Equal(t, "Ann", r.Students[0].Student.Name)
	assert.Empty(t, r.Students[0].Student.Password)
	assert.Equal(t, 1, r.Students[0].QuizzesTaken)
	assert.Equal(t, 90.0, r.Students[0].AvgQuizScore)

	assert.Nil(t, s.CourseReport(99))
}

func TestCourseStudents(t *testing.T) {
	s := seedStore()

	students := s.CourseStudents(5)
	assert.Len(t, students, 1)
	assert.Equal(t, "Ann", students[0].Name)
	assert.Empty(t, students[0].Password)

	assert.Empty(t, s.CourseStudents(99))
}
