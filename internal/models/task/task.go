package task

import (
	"strings"
	"time"
	"unicode/utf8"
)

const maxTitleLen = 100

// Task — единая запись задачи. Общие поля + тег Kind,
// payload варианта лежит в соответствующем указателе (ровно один не nil).
type Task struct {
	ID          int
	Title       string
	Description string
	Priority    Priority
	Status      Status
	Category    Category
	CreatedAt   time.Time
	DueAt       *time.Time
	CompletedAt *time.Time

	Kind     Kind
	Work     *WorkDetails
	Personal *PersonalDetails
	Shopping *ShoppingDetails
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return newInvalidTask("Task title cannot be empty!")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return newInvalidTask("Task title too long (max 100 characters)!")
	}
	return nil
}

// общий конструктор базовой записи; ID выдаётся только после валидации
func newBase(gen *IDGenerator, kind Kind, title, description string, priority Priority, dueAt *time.Time) (*Task, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	return &Task{
		ID:          gen.Next(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Status:      StatusTodo,
		Category:    kind.Category(),
		CreatedAt:   Now(),
		DueAt:       dueAt,
		Kind:        kind,
	}, nil
}

func NewWorkTask(gen *IDGenerator, title, description string, priority Priority, dueAt *time.Time, project, assignedTo string, estimatedHours int) (*Task, error) {
	t, err := newBase(gen, KindWork, title, description, priority, dueAt)
	if err != nil {
		return nil, err
	}

	t.Work = &WorkDetails{
		Project:        project,
		AssignedTo:     assignedTo,
		EstimatedHours: estimatedHours,
	}
	return t, nil
}

func NewPersonalTask(gen *IDGenerator, title, description string, priority Priority, dueAt *time.Time, location string, recurring bool, recurDays int) (*Task, error) {
	t, err := newBase(gen, KindPersonal, title, description, priority, dueAt)
	if err != nil {
		return nil, err
	}

	t.Personal = &PersonalDetails{
		Location:  location,
		Recurring: recurring,
		RecurDays: recurDays,
	}
	return t, nil
}

func NewShoppingTask(gen *IDGenerator, title, description string, priority Priority, dueAt *time.Time, estimatedBudget float64, store string) (*Task, error) {
	t, err := newBase(gen, KindShopping, title, description, priority, dueAt)
	if err != nil {
		return nil, err
	}

	t.Shopping = &ShoppingDetails{
		EstimatedBudget: estimatedBudget,
		Store:           store,
	}
	return t, nil
}

// Rename повторно валидирует заголовок, при ошибке задача не меняется
func (t *Task) Rename(newTitle string) error {
	if err := validateTitle(newTitle); err != nil {
		return err
	}
	t.Title = newTitle
	return nil
}

func (t *Task) SetPriority(p Priority) {
	t.Priority = p
}

func (t *Task) SetDueDate(dueAt *time.Time) {
	t.DueAt = dueAt
}

// MarkComplete всегда перезаписывает время завершения,
// даже если задача уже была завершена.
func (t *Task) MarkComplete() {
	t.Status = StatusCompleted
	now := Now()
	t.CompletedAt = &now
}

// SetStatus ставит время завершения только при переходе в COMPLETED
// и только если оно ещё не выставлено. Поведение намеренно
// отличается от MarkComplete.
func (t *Task) SetStatus(newStatus Status) {
	t.Status = newStatus
	if newStatus == StatusCompleted && t.CompletedAt == nil {
		now := Now()
		t.CompletedAt = &now
	}
}

func (t *Task) IsOverdue() bool {
	if t.Status.IsComplete() || t.DueAt == nil {
		return false
	}
	return Now().After(*t.DueAt)
}

// DaysUntilDue — целое число дней до дедлайна (усечение к нулю),
// -1 если дедлайн не задан.
func (t *Task) DaysUntilDue() int {
	if t.DueAt == nil {
		return -1
	}
	return int(t.DueAt.Sub(Now()) / (24 * time.Hour))
}

// CompletionHours — целые часы от создания до завершения,
// -1 если задача не завершена.
func (t *Task) CompletionHours() float64 {
	if t.CompletedAt == nil {
		return -1
	}
	return float64(t.CompletedAt.Sub(t.CreatedAt) / time.Hour)
}

// HoursVariance — перерасход часов по рабочей задаче
// (фактические минус оценка). Доступно только после завершения.
func (t *Task) HoursVariance() (float64, bool) {
	if t.Kind != KindWork || t.Work == nil {
		return 0, false
	}
	if t.Status != StatusCompleted || t.CompletedAt == nil {
		return 0, false
	}
	return t.CompletionHours() - float64(t.Work.EstimatedHours), true
}

// NextOccurrence — следующее повторение личной задачи:
// дедлайн + RecurDays. nil, если задача не повторяется или без дедлайна.
func (t *Task) NextOccurrence() *time.Time {
	if t.Kind != KindPersonal || t.Personal == nil {
		return nil
	}
	return t.Personal.NextOccurrence(t.DueAt)
}
