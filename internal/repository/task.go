package repository

import (
	"context"

	"task-manager/internal/domain"
)

// TaskRepository exposes persistence operations for Task records. Get,
// Update, and Delete return domain.ErrNotFound for a well-formed but absent
// id.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) error
	Get(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
