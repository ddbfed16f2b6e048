package models

type Notification struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Type      string `json:"type"` // assignment, system, ...
	Read      bool   `json:"read"`
	Timestamp string `json:"timestamp"`
}
