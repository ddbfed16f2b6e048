package models

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

type User struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password,omitempty"`
	Role            string `json:"role"`
	Department      string `json:"department,omitempty"`
	EnrolledCourses []int  `json:"enrolledCourses,omitempty"`
	Level           int    `json:"level,omitempty"`
	XP              int    `json:"xp,omitempty"`
	Streak          int    `json:"streak,omitempty"`
	LastLogin       string `json:"lastLogin,omitempty"`
	CreatedAt       string `json:"createdAt,omitempty"`
}

// Sanitized returns a copy of the user without the password field set,
// safe to include in API responses.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// IsEnrolledIn reports whether the user is enrolled in the given course.
func (u User) IsEnrolledIn(courseID int) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}
