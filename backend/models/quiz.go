package models

type Quiz struct {
	ID       int     `json:"id"`
	Title    string  `json:"title,omitempty"`
	CourseID int     `json:"courseId"`
	UserID   int     `json:"userId,omitempty"`
	Score    float64 `json:"score"`
}
