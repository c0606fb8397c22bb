package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskManager/internal/logger"
	"taskManager/internal/models/task"
	repo "taskManager/internal/repository"

	"go.uber.org/zap"
)

// здесь проверяются ошибки бизнес-логики и собираются BusinessError

type TaskService struct {
	repo TaskRepository
	gen  *task.IDGenerator
}

func NewTaskService(repo TaskRepository, gen *task.IDGenerator) TaskService {
	return TaskService{
		repo: repo,
		gen:  gen,
	}
}

// перевод ошибки валидации задачи в BusinessError
func wrapInvalidTask(err error) error {
	var invalidErr *task.InvalidTaskError
	if errors.As(err, &invalidErr) {
		return NewValidationError("title", invalidErr.Reason, err)
	}
	return err
}

func (s *TaskService) CreateWorkTask(ctx context.Context, title, description string, priority task.Priority, dueAt *time.Time, project, assignedTo string, estimatedHours int) (*task.Task, error) {
	newTask, err := task.NewWorkTask(s.gen, title, description, priority, dueAt, project, assignedTo, estimatedHours)
	if err != nil {
		logger.Warn("Service: Ошибка валидации задачи", zap.Error(err))
		return nil, wrapInvalidTask(err)
	}

	if err := s.repo.Add(ctx, newTask); err != nil {
		return nil, err
	}

	logger.Info("Service: Рабочая задача создана", zap.Int("task_id", newTask.ID))
	return newTask, nil
}

func (s *TaskService) CreatePersonalTask(ctx context.Context, title, description string, priority task.Priority, dueAt *time.Time, location string, recurring bool, recurDays int) (*task.Task, error) {
	newTask, err := task.NewPersonalTask(s.gen, title, description, priority, dueAt, location, recurring, recurDays)
	if err != nil {
		logger.Warn("Service: Ошибка валидации задачи", zap.Error(err))
		return nil, wrapInvalidTask(err)
	}

	if err := s.repo.Add(ctx, newTask); err != nil {
		return nil, err
	}

	logger.Info("Service: Личная задача создана", zap.Int("task_id", newTask.ID))
	return newTask, nil
}

func (s *TaskService) CreateShoppingTask(ctx context.Context, title, description string, priority task.Priority, dueAt *time.Time, estimatedBudget float64, store string) (*task.Task, error) {
	newTask, err := task.NewShoppingTask(s.gen, title, description, priority, dueAt, estimatedBudget, store)
	if err != nil {
		logger.Warn("Service: Ошибка валидации задачи", zap.Error(err))
		return nil, wrapInvalidTask(err)
	}

	if err := s.repo.Add(ctx, newTask); err != nil {
		return nil, err
	}

	logger.Info("Service: Задача покупок создана", zap.Int("task_id", newTask.ID))
	return newTask, nil
}

func (s *TaskService) CompleteTask(ctx context.Context, id int) (*task.Task, error) {
	completed, err := s.repo.Complete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int("target_id", id))
			return nil, NewNotFound(id, err)
		}
		return nil, err
	}

	logger.Info("Service: Задача завершена", zap.Int("task_id", id))
	return completed, nil
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, id int, newStatus task.Status) (*task.Task, error) {
	updated, err := s.repo.SetStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int("target_id", id))
			return nil, NewNotFound(id, err)
		}
		return nil, err
	}

	logger.Info("Service: Статус задачи обновлён",
		zap.Int("task_id", id),
		zap.String("status", newStatus.String()))
	return updated, nil
}

func (s *TaskService) RenameTask(ctx context.Context, id int, newTitle string) error {
	taskToRename, ok := s.repo.GetByID(ctx, id)
	if !ok {
		logger.Info("Service: Задача не найдена", zap.Int("target_id", id))
		return NewNotFound(id, repo.ErrNotFound)
	}

	if err := taskToRename.Rename(newTitle); err != nil {
		logger.Warn("Service: Ошибка валидации заголовка", zap.Error(err))
		return wrapInvalidTask(err)
	}

	logger.Info("Service: Задача переименована", zap.Int("task_id", id))
	return nil
}

// UpdateTask применяет опции к задаче. Статус через опции не меняется:
// переход в COMPLETED должен идти через UpdateTaskStatus, чтобы
// попасть в журнал завершённых.
func (s *TaskService) UpdateTask(ctx context.Context, id int, options ...task.TaskOption) error {
	taskToUpdate, ok := s.repo.GetByID(ctx, id)
	if !ok {
		logger.Info("Service: Задача не найдена", zap.Int("target_id", id))
		return NewNotFound(id, repo.ErrNotFound)
	}

	for _, opt := range options {
		opt(taskToUpdate)
	}

	logger.Info("Service: Задача обновлена", zap.Int("task_id", id))
	return nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.Int("target_id", id))
			return NewNotFound(id, err)
		}
		return err
	}

	logger.Info("Service: Задача удалена", zap.Int("task_id", id))
	return nil
}

func (s *TaskService) shoppingDetails(ctx context.Context, id int) (*task.ShoppingDetails, error) {
	t, ok := s.repo.GetByID(ctx, id)
	if !ok {
		logger.Info("Service: Задача не найдена", zap.Int("target_id", id))
		return nil, NewNotFound(id, repo.ErrNotFound)
	}

	if t.Kind != task.KindShopping || t.Shopping == nil {
		logger.Warn("Service: Неверный вариант задачи",
			zap.Int("task_id", id),
			zap.String("kind", t.Kind.String()))
		return nil, NewValidationError("kind", "Not a shopping task!", task.ErrInvalidTask)
	}
	return t.Shopping, nil
}

func (s *TaskService) AddShoppingItem(ctx context.Context, id int, item string) error {
	details, err := s.shoppingDetails(ctx, id)
	if err != nil {
		return err
	}
	details.AddItem(item)
	return nil
}

func (s *TaskService) RemoveShoppingItem(ctx context.Context, id int, item string) error {
	details, err := s.shoppingDetails(ctx, id)
	if err != nil {
		return err
	}
	details.RemoveItem(item)
	return nil
}

func (s *TaskService) SetActualCost(ctx context.Context, id int, cost float64) error {
	details, err := s.shoppingDetails(ctx, id)
	if err != nil {
		return err
	}
	details.SetActualCost(cost)
	return nil
}

// SearchByTitle отбрасывает пустой запрос — хранилище его не проверяет
func (s *TaskService) SearchByTitle(ctx context.Context, term string) ([]*task.Task, error) {
	if strings.TrimSpace(term) == "" {
		logger.Warn("Service: Пустой поисковый запрос")
		return nil, NewValidationError("term", "Search term cannot be empty!", nil)
	}
	return s.repo.FindByTitle(ctx, term), nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id int) (*task.Task, bool) {
	return s.repo.GetByID(ctx, id)
}

func (s *TaskService) FilterByStatus(ctx context.Context, status task.Status) []*task.Task {
	return s.repo.FilterByStatus(ctx, status)
}

func (s *TaskService) FilterByCategory(ctx context.Context, category task.Category) []*task.Task {
	return s.repo.FilterByCategory(ctx, category)
}

func (s *TaskService) FilterByPriority(ctx context.Context, priority task.Priority) []*task.Task {
	return s.repo.FilterByPriority(ctx, priority)
}

func (s *TaskService) OverdueTasks(ctx context.Context) []*task.Task {
	return s.repo.Overdue(ctx)
}

func (s *TaskService) UpcomingTasks(ctx context.Context, windowDays int) []*task.Task {
	return s.repo.Upcoming(ctx, windowDays)
}

func (s *TaskService) AllTasks(ctx context.Context) []*task.Task {
	return s.repo.All(ctx)
}

func (s *TaskService) TotalCount(ctx context.Context) int {
	return s.repo.TotalCount(ctx)
}

func (s *TaskService) RecentlyCompleted(ctx context.Context) []*task.Task {
	return s.repo.RecentlyCompleted(ctx)
}
