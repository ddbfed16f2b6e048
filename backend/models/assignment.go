package models

const (
	AssignmentPending   = "pending"
	AssignmentSubmitted = "submitted"
)

type Assignment struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CourseID    int    `json:"courseId"`
	DueDate     string `json:"dueDate,omitempty"`
	Points      int    `json:"points"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
