package statistics

import (
	"context"

	"taskManager/internal/models/task"
)

// TaskSource — то, что движку статистики нужно от хранилища
type TaskSource interface {
	All(ctx context.Context) []*task.Task
	Overdue(ctx context.Context) []*task.Task
}

// Statistics — движок без состояния: каждый запрос пересчитывается
// по текущему снимку хранилища. Кэша нет — корректность важнее
// стоимости пересчёта на in-memory объёмах.
type Statistics struct {
	source TaskSource
}

func New(source TaskSource) Statistics {
	return Statistics{source: source}
}

func (s *Statistics) Total(ctx context.Context) int {
	return len(s.source.All(ctx))
}

func (s *Statistics) TotalByStatus(ctx context.Context, status task.Status) int {
	count := 0
	for _, t := range s.source.All(ctx) {
		if t.Status == status {
			count++
		}
	}
	return count
}

func (s *Statistics) TotalByCategory(ctx context.Context, category task.Category) int {
	count := 0
	for _, t := range s.source.All(ctx) {
		if t.Category == category {
			count++
		}
	}
	return count
}

func (s *Statistics) TotalByPriority(ctx context.Context, priority task.Priority) int {
	count := 0
	for _, t := range s.source.All(ctx) {
		if t.Priority == priority {
			count++
		}
	}
	return count
}

// CompletionRate — процент завершённых; на пустом хранилище 0, не ошибка
func (s *Statistics) CompletionRate(ctx context.Context) float64 {
	total := s.Total(ctx)
	if total == 0 {
		return 0.0
	}
	completed := s.TotalByStatus(ctx, task.StatusCompleted)
	return float64(completed) * 100.0 / float64(total)
}

// AverageCompletionHours — среднее по завершённым задачам.
// Неположительные длительности не попадают ни в сумму, ни в делитель.
func (s *Statistics) AverageCompletionHours(ctx context.Context) float64 {
	totalHours := 0.0
	completedCount := 0

	for _, t := range s.source.All(ctx) {
		if t.Status != task.StatusCompleted {
			continue
		}
		hours := t.CompletionHours()
		if hours > 0 {
			totalHours += hours
			completedCount++
		}
	}

	if completedCount == 0 {
		return 0.0
	}
	return totalHours / float64(completedCount)
}

// MostCommonPriority — приоритет с наибольшим числом задач;
// при равенстве побеждает младший уровень (строгое сравнение)
func (s *Statistics) MostCommonPriority(ctx context.Context) task.Priority {
	counts := make(map[task.Priority]int)
	for _, t := range s.source.All(ctx) {
		counts[t.Priority]++
	}

	mostCommon := task.PriorityLow
	maxCount := counts[task.PriorityLow]

	for _, p := range task.Priorities() {
		if counts[p] > maxCount {
			maxCount = counts[p]
			mostCommon = p
		}
	}
	return mostCommon
}

// MostActiveCategory — категория с наибольшим числом задач.
// Пустое хранилище даёт OTHER; при равенстве побеждает первая
// достигшая максимума категория в порядке перечисления.
func (s *Statistics) MostActiveCategory(ctx context.Context) task.Category {
	mostActive := task.CategoryOther
	maxCount := 0

	for _, c := range task.Categories() {
		count := s.TotalByCategory(ctx, c)
		if count > maxCount {
			maxCount = count
			mostActive = c
		}
	}
	return mostActive
}

func (s *Statistics) OverdueCount(ctx context.Context) int {
	return len(s.source.Overdue(ctx))
}

// UrgentPendingCount — срочный приоритет и нетерминальный статус
func (s *Statistics) UrgentPendingCount(ctx context.Context) int {
	count := 0
	for _, t := range s.source.All(ctx) {
		if t.Priority.IsUrgent() && !t.Status.IsComplete() {
			count++
		}
	}
	return count
}
