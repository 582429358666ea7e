package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/taskdeck/taskdeck/internal/model"
)

// Memory is an in-memory store implementation with the same contract as
// Repository. Used by tests and local development without Postgres.
type Memory struct {
	mu      sync.RWMutex
	users   map[string]*model.User
	byEmail map[string]string
	tasks   map[string]*model.Task
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]*model.User),
		byEmail: make(map[string]string),
		tasks:   make(map[string]*model.Task),
	}
}

// Ping always succeeds.
func (m *Memory) Ping(ctx context.Context) error {
	return nil
}

// CreateUser stores a new user, enforcing email uniqueness.
func (m *Memory) CreateUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[user.Email]; exists {
		return ErrEmailExists
	}

	u := *user
	m.users[u.ID] = &u
	m.byEmail[u.Email] = u.ID
	return nil
}

// GetUserByID retrieves a user by ID.
func (m *Memory) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}

// GetUserByEmail retrieves a user by email (case-sensitive).
func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := *m.users[id]
	return &u, nil
}

// CreateTask stores a new task.
func (m *Memory) CreateTask(ctx context.Context, task *model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := *task
	m.tasks[t.ID] = &t
	return nil
}

// ListTasksByOwner returns the owner's tasks, newest first.
func (m *Memory) ListTasksByOwner(ctx context.Context, ownerID string) ([]*model.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tasks := make([]*model.Task, 0)
	for _, task := range m.tasks {
		if task.OwnerID == ownerID {
			t := *task
			tasks = append(tasks, &t)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})

	return tasks, nil
}

// GetTask retrieves a task matching both taskID and ownerID.
func (m *Memory) GetTask(ctx context.Context, ownerID, taskID string) (*model.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	task, ok := m.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return nil, ErrTaskNotFound
	}
	t := *task
	return &t, nil
}

// UpdateTask replaces a task's mutable fields, matching ID and owner.
func (m *Memory) UpdateTask(ctx context.Context, task *model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return ErrTaskNotFound
	}

	t := *task
	t.CreatedAt = existing.CreatedAt
	m.tasks[t.ID] = &t
	return nil
}

// DeleteTask removes a task matching ID and owner.
func (m *Memory) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return ErrTaskNotFound
	}

	delete(m.tasks, taskID)
	return nil
}
