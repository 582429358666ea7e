package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestTaskService_CreateTask(t *testing.T) {
	rec := metrics.NewInMemory()
	svc := NewTaskService(repository.NewMemory(), rec)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "owner-1", CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "owner-1", task.OwnerID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
	assert.Equal(t, uint64(1), rec.Snapshot().TasksCreated)
}

func TestTaskService_CreateTask_ExplicitStatus(t *testing.T) {
	svc := NewTaskService(repository.NewMemory(), nil)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "owner-1", CreateTaskInput{
		Title:  "Write report",
		Status: "In Progress",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, task.Status)
}

func TestTaskService_CreateTask_Validation(t *testing.T) {
	svc := NewTaskService(repository.NewMemory(), nil)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, "owner-1", CreateTaskInput{Title: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.CreateTask(ctx, "owner-1", CreateTaskInput{Title: "x", Status: "Done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Nothing was persisted.
	tasks, err := svc.ListTasks(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_ListTasks_Order(t *testing.T) {
	store := repository.NewMemory()
	svc := NewTaskService(store, nil)
	ctx := context.Background()

	// Seed directly so creation timestamps are distinct and controlled.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		err := store.CreateTask(ctx, &model.Task{
			ID:        title,
			OwnerID:   "owner-1",
			Title:     title,
			Status:    model.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	tasks, err := svc.ListTasks(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	// Newest first.
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestTaskService_UpdateTask(t *testing.T) {
	rec := metrics.NewInMemory()
	svc := NewTaskService(repository.NewMemory(), rec)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "owner-1", CreateTaskInput{
		Title:       "Buy milk",
		Description: "2 liters",
	})
	require.NoError(t, err)

	// Patch only the status; other fields survive.
	updated, err := svc.UpdateTask(ctx, "owner-1", task.ID, UpdateTaskInput{
		Status: strPtr("Completed"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "2 liters", updated.Description)
	assert.Equal(t, task.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(task.UpdatedAt))
	assert.Equal(t, uint64(1), rec.Snapshot().TasksUpdated)
}

func TestTaskService_UpdateTask_Validation(t *testing.T) {
	svc := NewTaskService(repository.NewMemory(), nil)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "owner-1", CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, "owner-1", task.ID, UpdateTaskInput{Title: strPtr("  ")})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.UpdateTask(ctx, "owner-1", task.ID, UpdateTaskInput{Status: strPtr("Archived")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// The failed patches did not stick.
	tasks, err := svc.ListTasks(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, model.StatusPending, tasks[0].Status)
}

func TestTaskService_UpdateTask_WrongOwner(t *testing.T) {
	svc := NewTaskService(repository.NewMemory(), nil)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "owner-1", CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	// Another owner's task and a nonexistent task look identical.
	_, err = svc.UpdateTask(ctx, "owner-2", task.ID, UpdateTaskInput{Title: strPtr("hijacked")})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.UpdateTask(ctx, "owner-1", "no-such-task", UpdateTaskInput{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_DeleteTask(t *testing.T) {
	rec := metrics.NewInMemory()
	svc := NewTaskService(repository.NewMemory(), rec)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, "owner-1", CreateTaskInput{Title: "Buy milk"})
	require.NoError(t, err)

	// Wrong owner cannot delete it.
	err = svc.DeleteTask(ctx, "owner-2", task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	require.NoError(t, svc.DeleteTask(ctx, "owner-1", task.ID))
	assert.Equal(t, uint64(1), rec.Snapshot().TasksDeleted)

	// Deleting again reports not found.
	err = svc.DeleteTask(ctx, "owner-1", task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
