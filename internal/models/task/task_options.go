package task

import "time"

// TaskOption — функция обновления одного поля задачи.
// Заголовок через опции не меняется: ему нужна валидация (см. Rename).
type TaskOption func(*Task)

func WithDescription(description string) TaskOption {
	return func(task *Task) {
		task.Description = description
	}
}

func WithPriority(priority Priority) TaskOption {
	return func(task *Task) {
		task.Priority = priority
	}
}

func WithDueDate(dueAt *time.Time) TaskOption {
	return func(task *Task) {
		task.DueAt = dueAt
	}
}
