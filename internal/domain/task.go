package domain

import "time"

// Task represents a todo item tracked by the system.
type Task struct {
	ID          string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
