package models

// Database is the full document shape of the data file. Collections keep
// the file's ordering; every read and write in the store goes through one
// in-memory instance of this struct.
type Database struct {
	Users            []User         `json:"users"`
	Courses          []Course       `json:"courses"`
	Assignments      []Assignment   `json:"assignments"`
	Quizzes          []Quiz         `json:"quizzes"`
	Achievements     []Achievement  `json:"achievements"`
	Notifications    []Notification `json:"notifications"`
	SystemStats      SystemStats    `json:"systemStats"`
	SystemHealth     []HealthEntry  `json:"systemHealth"`
	PendingTasks     []PendingTask  `json:"pendingTasks"`
	RecentActivities []Activity     `json:"recentActivities"`
}
