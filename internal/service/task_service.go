package service

import (
	"context"

	"github.com/google/uuid"

	"task-manager/internal/domain"
	"task-manager/internal/repository"
	"task-manager/internal/validation"
)

// TaskPatch carries the whitelisted mutable fields of a task; nil means the
// field is untouched.
type TaskPatch struct {
	Description *string
	Completed   *bool
}

// TaskService coordinates task level operations backed by the repository.
type TaskService interface {
	Create(ctx context.Context, description string, completed bool) (*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) (*domain.Task, error)
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, description string, completed bool) (*domain.Task, error) {
	task := &domain.Task{
		ID:          uuid.NewString(),
		Description: description,
		Completed:   completed,
	}
	if err := validation.ValidateTask(task); err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.Get(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

// Update applies an already guard-checked patch, re-runs the full task
// validator so trimming and presence rules hold for patched values, then
// persists.
func (s *taskService) Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := validation.ValidateTask(task); err != nil {
		return nil, err
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task and returns the deleted record.
func (s *taskService) Delete(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return nil, err
	}
	return task, nil
}
