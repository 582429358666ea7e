package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/repository"
)

// Task service errors.
var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidStatus = errors.New("invalid task status")
	ErrTaskNotFound  = errors.New("task not found")
)

// TaskService handles owner-scoped task CRUD. It trusts the owner ID it
// is given; authentication happens upstream in the middleware.
type TaskService struct {
	store   TaskStore
	metrics metrics.Recorder
}

// NewTaskService creates a new TaskService.
func NewTaskService(store TaskStore, recorder metrics.Recorder) *TaskService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TaskService{
		store:   store,
		metrics: recorder,
	}
}

// CreateTaskInput defines input for creating a task. There is no owner
// field: ownership always comes from the authenticated caller.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
}

// CreateTask creates a new task owned by ownerID.
func (s *TaskService) CreateTask(ctx context.Context, ownerID string, input CreateTaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	status := model.StatusPending
	if input.Status != "" {
		status = model.TaskStatus(input.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	now := time.Now().UTC()
	task := &model.Task{
		ID:          ulid.Make().String(),
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.metrics.IncTaskCreated()

	return task, nil
}

// ListTasks returns all tasks owned by ownerID, newest first.
// An owner with no tasks gets an empty slice, not an error.
func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]*model.Task, error) {
	tasks, err := s.store.ListTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskInput defines a partial update. Nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// UpdateTask applies a patch to the task matching both taskID and ownerID.
// A task owned by someone else is reported as not found, so a caller
// cannot probe for the existence of other users' tasks.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, input UpdateTaskInput) (*model.Task, error) {
	task, err := s.store.GetTask(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		status := model.TaskStatus(*input.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		task.Status = status
	}

	task.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.metrics.IncTaskUpdated()

	return task, nil
}

// DeleteTask removes the task matching both taskID and ownerID, with the
// same not-found conflation as UpdateTask. Deleting an already-deleted
// task yields ErrTaskNotFound again.
func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	if err := s.store.DeleteTask(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}

	s.metrics.IncTaskDeleted()

	return nil
}
