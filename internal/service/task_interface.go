package service

import (
	"context"

	"taskManager/internal/models/task"
)

// TaskRepository — то, что сервису нужно от хранилища
type TaskRepository interface {
	Add(context.Context, *task.Task) error
	Remove(ctx context.Context, id int) error
	Complete(ctx context.Context, id int) (*task.Task, error)
	SetStatus(ctx context.Context, id int, newStatus task.Status) (*task.Task, error)
	GetByID(ctx context.Context, id int) (*task.Task, bool)
	FindByTitle(ctx context.Context, term string) []*task.Task
	FilterByStatus(ctx context.Context, status task.Status) []*task.Task
	FilterByCategory(ctx context.Context, category task.Category) []*task.Task
	FilterByPriority(ctx context.Context, priority task.Priority) []*task.Task
	Overdue(ctx context.Context) []*task.Task
	Upcoming(ctx context.Context, windowDays int) []*task.Task
	All(ctx context.Context) []*task.Task
	TotalCount(ctx context.Context) int
	CountByStatus(ctx context.Context, status task.Status) int
	RecentlyCompleted(ctx context.Context) []*task.Task
}
