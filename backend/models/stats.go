package models

type SystemStats struct {
	TotalUsers        int     `json:"totalUsers"`
	TotalCourses      int     `json:"totalCourses"`
	ActiveInstructors int     `json:"activeInstructors"`
	SystemUptime      float64 `json:"systemUptime"`
	DailyActiveUsers  int     `json:"dailyActiveUsers"`
	NewRegistrations  int     `json:"newRegistrations"`
}

// HealthEntry is one gauge on the admin system-health panel.
type HealthEntry struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

type PendingTask struct {
	ID       int    `json:"id"`
	Task     string `json:"task"`
	Priority string `json:"priority"` // high, medium, low
}

type Activity struct {
	ID   int    `json:"id"`
	Type string `json:"type"` // system, course, user
	Text string `json:"text"`
	Time string `json:"time"`
}

// UserStat is a per-role user count on the admin dashboard. Change is a
// display label, not a computed delta.
type UserStat struct {
	Role   string `json:"role"`
	Count  int    `json:"count"`
	Change string `json:"change"`
}
