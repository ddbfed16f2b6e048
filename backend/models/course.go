package models

type Course struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Level        string  `json:"level,omitempty"` // beginner, intermediate, advanced
	Duration     string  `json:"duration,omitempty"`
	Instructor   string  `json:"instructor,omitempty"`
	InstructorID int     `json:"instructorId,omitempty"`
	Students     int     `json:"students"`
	Progress     float64 `json:"progress"`
	NextClass    string  `json:"nextClass,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// TaughtBy reports whether the course belongs to the given instructor,
// matching either by id or by display name (older records only carry the name).
func (c Course) TaughtBy(u User) bool {
	return (c.InstructorID != 0 && c.InstructorID == u.ID) || (c.Instructor != "" && c.Instructor == u.Name)
}
