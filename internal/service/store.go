// Package service provides business logic for the application.
package service

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/model"
)

// UserStore persists user records. Implemented by repository.Repository
// (Postgres) and repository.Memory (tests).
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// TaskStore persists task records. Every read and mutation is scoped to an
// owner; implementations must treat "absent" and "owned by someone else"
// identically.
type TaskStore interface {
	CreateTask(ctx context.Context, task *model.Task) error
	ListTasksByOwner(ctx context.Context, ownerID string) ([]*model.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (*model.Task, error)
	UpdateTask(ctx context.Context, task *model.Task) error
	DeleteTask(ctx context.Context, ownerID, taskID string) error
}
