package models

type StudentStats struct {
	TotalCourses     int `json:"totalCourses"`
	CompletedCourses int `json:"completedCourses"`
	CurrentLevel     int `json:"currentLevel"`
	TotalXP          int `json:"totalXP"`
	WeeklyGoal       int `json:"weeklyGoal"`
	WeeklyProgress   int `json:"weeklyProgress"`
	Streak           int `json:"streak"`
}

type StudentDashboard struct {
	User            User          `json:"user"`
	EnrolledCourses []Course      `json:"enrolledCourses"`
	Assignments     []Assignment  `json:"assignments"`
	Quizzes         []Quiz        `json:"quizzes"`
	Achievements    []Achievement `json:"achievements"`
	Stats           StudentStats  `json:"stats"`
}

type FacultyStats struct {
	TotalStudents       int     `json:"totalStudents"`
	ActiveCourses       int     `json:"activeCourses"`
	PendingAssignments  int     `json:"pendingAssignments"`
	AvgClassPerformance float64 `json:"avgClassPerformance"`
}

type FacultyDashboard struct {
	User        User         `json:"user"`
	Courses     []Course     `json:"courses"`
	Assignments []Assignment `json:"assignments"`
	Stats       FacultyStats `json:"stats"`
}

type AdminDashboard struct {
	SystemStats      SystemStats   `json:"systemStats"`
	UserStats        []UserStat    `json:"userStats"`
	RecentActivities []Activity    `json:"recentActivities"`
	SystemHealth     []HealthEntry `json:"systemHealth"`
	PendingTasks     []PendingTask `json:"pendingTasks"`
}

// CourseStudentSummary is one row of the per-course report: a student's
// standing in the course, joined from assignments and quizzes.
type CourseStudentSummary struct {
	Student        User    `json:"student"`
	Progress       float64 `json:"progress"`
	AssignmentsDue int     `json:"assignmentsDue"`
	QuizzesTaken   int     `json:"quizzesTaken"`
	AvgQuizScore   float64 `json:"avgQuizScore"`
}

type CourseReport struct {
	Course           Course                 `json:"course"`
	Students         []CourseStudentSummary `json:"students"`
	TotalAssignments int                    `json:"totalAssignments"`
	AvgQuizScore     float64                `json:"avgQuizScore"`
}
