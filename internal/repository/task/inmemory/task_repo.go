package inmemory

import (
	"context"
	"strings"
	"sync"

	"taskManager/internal/models/task"
	repo "taskManager/internal/repository"
)

// TaskStorage — единственное владеющее хранилище задач.
// Порядок вставки сохраняется, мутации его не меняют.
// Мьютекс защищает отдельные операции; составные чтения
// (статистика, отчёты) сериализует вызывающая сторона.
type TaskStorage struct {
	storage map[int]*task.Task
	ids     []int
	mtx     *sync.RWMutex
	log     *CompletionLog
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[int]*task.Task),
		ids:     []int{},
		mtx:     &sync.RWMutex{},
		log:     NewCompletionLog(),
	}
}

func (s *TaskStorage) Add(ctx context.Context, taskToAdd *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.storage[taskToAdd.ID] = taskToAdd
	s.ids = append(s.ids, taskToAdd.ID)
	return nil
}

func (s *TaskStorage) Remove(ctx context.Context, id int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	// журнал завершённых намеренно не трогаем
	return nil
}

// Complete — безусловное завершение: MarkComplete + запись в журнал
func (s *TaskStorage) Complete(ctx context.Context, id int) (*task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	taskToComplete, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	taskToComplete.MarkComplete()
	s.log.Push(taskToComplete)
	return taskToComplete, nil
}

// SetStatus пишет в журнал при любом переходе в COMPLETED,
// независимо от того, было ли уже выставлено время завершения
func (s *TaskStorage) SetStatus(ctx context.Context, id int, newStatus task.Status) (*task.Task, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	taskToUpdate, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	taskToUpdate.SetStatus(newStatus)
	if newStatus == task.StatusCompleted {
		s.log.Push(taskToUpdate)
	}
	return taskToUpdate, nil
}

// GetByID — отсутствие задачи не ошибка, это читающий поиск
func (s *TaskStorage) GetByID(ctx context.Context, id int) (*task.Task, bool) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	taskToGet, ok := s.storage[id]
	return taskToGet, ok
}

func (s *TaskStorage) FindByTitle(ctx context.Context, term string) []*task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	lowered := strings.ToLower(term)
	res := []*task.Task{}

	for _, id := range s.ids {
		if strings.Contains(strings.ToLower(s.storage[id].Title), lowered) {
			res = append(res, s.storage[id])
		}
	}
	return res
}

func (s *TaskStorage) FilterByStatus(ctx context.Context, status task.Status) []*task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.ids {
		if s.storage[id].Status == status {
			res = append(res, s.storage[id])
		}
	}
	return res
}

func (s *TaskStorage) FilterByCategory(ctx context.Context, category task.Category) []*task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.ids {
		if s.storage[id].Category == category {
			res = append(res, s.storage[id])
		}
	}
	return res
}

func (s *TaskStorage) FilterByPriority(ctx context.Context, priority task.Priority) []*task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.ids {
		if s.storage[id].Priority == priority {
			res = append(res, s.storage[id])
		}
	}
	return res
}

func (s *TaskStorage) Overdue(ctx context.Context) []*task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	for _, id := range s.ids {
		if s.storage[id].IsOverdue() {
			res = append(res, s.storage[id])
		}
	}
	return res
}

// Upcoming — открытый интервал с обеих сторон: задача с дедлайном
// ровно «сейчас» или ровно на границе окна не попадает
func (s *TaskStorage) Upcoming(ctx context.Context, windowDays int) []*task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	now := task.Now()
	limit := now.AddDate(0, 0, windowDays)

	res := []*task.Task{}
	for _, id := range s.ids {
		t := s.storage[id]
		if t.Status.IsComplete() || t.DueAt == nil {
			continue
		}
		if t.DueAt.After(now) && t.DueAt.Before(limit) {
			res = append(res, t)
		}
	}
	return res
}

func (s *TaskStorage) All(ctx context.Context) []*task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*task.Task, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, s.storage[id])
	}
	return res
}

func (s *TaskStorage) TotalCount(ctx context.Context) int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.ids)
}

func (s *TaskStorage) CountByStatus(ctx context.Context, status task.Status) int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	count := 0
	for _, id := range s.ids {
		if s.storage[id].Status == status {
			count++
		}
	}
	return count
}

func (s *TaskStorage) RecentlyCompleted(ctx context.Context) []*task.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.log.Entries()
}
