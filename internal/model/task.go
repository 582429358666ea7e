// Package model defines domain entities for the application.
package model

import "time"

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

// IsValid checks if the status is one of the known values.
// Transitions are free-form: any valid status may follow any other.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task represents a single tracked item. OwnerID is assigned server-side
// from the authenticated identity at creation and is never writable
// through the API.
type Task struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AuthContext carries the identity resolved by the auth middleware.
type AuthContext struct {
	UserID string
	Email  string
}
