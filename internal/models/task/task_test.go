package task_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"taskManager/internal/models/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// фиксируем часы пакета на время теста
func freezeClock(t *testing.T, frozen time.Time) {
	t.Helper()
	task.Now = func() time.Time { return frozen }
	t.Cleanup(func() { task.Now = time.Now })
}

// TestNewTask_IDsMonotonic тестирует монотонный рост ID
func TestNewTask_IDsMonotonic(t *testing.T) {
	gen := task.NewIDGenerator()

	first, err := task.NewWorkTask(gen, "First", "", task.PriorityLow, nil, "P", "A", 1)
	require.NoError(t, err)

	second, err := task.NewPersonalTask(gen, "Second", "", task.PriorityLow, nil, "", false, 0)
	require.NoError(t, err)

	third, err := task.NewShoppingTask(gen, "Third", "", task.PriorityLow, nil, 10, "Store")
	require.NoError(t, err)

	assert.Positive(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.Greater(t, third.ID, second.ID)
}

// TestNewTask_Validation тестирует валидацию заголовка
func TestNewTask_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		expectError bool
	}{
		{name: "valid title", title: "Buy milk", expectError: false},
		{name: "empty title", title: "", expectError: true},
		{name: "whitespace only", title: "   \t ", expectError: true},
		{name: "exactly 100 characters", title: strings.Repeat("a", 100), expectError: false},
		{name: "101 characters", title: strings.Repeat("a", 101), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := task.NewIDGenerator()
			created, err := task.NewWorkTask(gen, tt.title, "desc", task.PriorityMedium, nil, "P", "A", 8)

			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, task.ErrInvalidTask)

				var invalidErr *task.InvalidTaskError
				require.ErrorAs(t, err, &invalidErr)
				assert.NotEmpty(t, invalidErr.Reason)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.title, created.Title)
				assert.Equal(t, task.StatusTodo, created.Status)
			}
		})
	}
}

// TestNewTask_CategoryFixedPerKind тестирует привязку категории к варианту
func TestNewTask_CategoryFixedPerKind(t *testing.T) {
	gen := task.NewIDGenerator()

	work, err := task.NewWorkTask(gen, "W", "", task.PriorityLow, nil, "P", "A", 1)
	require.NoError(t, err)
	assert.Equal(t, task.CategoryWork, work.Category)
	assert.NotNil(t, work.Work)
	assert.Nil(t, work.Personal)
	assert.Nil(t, work.Shopping)

	personal, err := task.NewPersonalTask(gen, "P", "", task.PriorityLow, nil, "Home", false, 0)
	require.NoError(t, err)
	assert.Equal(t, task.CategoryPersonal, personal.Category)
	assert.NotNil(t, personal.Personal)

	shopping, err := task.NewShoppingTask(gen, "S", "", task.PriorityLow, nil, 50, "Store")
	require.NoError(t, err)
	assert.Equal(t, task.CategoryShopping, shopping.Category)
	assert.NotNil(t, shopping.Shopping)
}

// TestTask_Rename тестирует переименование с повторной валидацией
func TestTask_Rename(t *testing.T) {
	gen := task.NewIDGenerator()
	created, err := task.NewWorkTask(gen, "Old title", "", task.PriorityLow, nil, "P", "A", 1)
	require.NoError(t, err)

	require.NoError(t, created.Rename("New title"))
	assert.Equal(t, "New title", created.Title)

	err = created.Rename("  ")
	assert.ErrorIs(t, err, task.ErrInvalidTask)
	assert.Equal(t, "New title", created.Title)

	err = created.Rename(strings.Repeat("x", 101))
	assert.ErrorIs(t, err, task.ErrInvalidTask)
	assert.Equal(t, "New title", created.Title)
}

// TestTask_MarkCompleteOverwritesTimestamp тестирует расхождение
// MarkComplete и SetStatus по перезаписи времени завершения
func TestTask_MarkCompleteOverwritesTimestamp(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	freezeClock(t, base)

	gen := task.NewIDGenerator()
	created, err := task.NewWorkTask(gen, "Task", "", task.PriorityLow, nil, "P", "A", 1)
	require.NoError(t, err)

	// первый переход через SetStatus ставит время
	created.SetStatus(task.StatusCompleted)
	require.NotNil(t, created.CompletedAt)
	assert.Equal(t, base, *created.CompletedAt)

	// повторный SetStatus время не трогает
	task.Now = func() time.Time { return base.Add(2 * time.Hour) }
	created.SetStatus(task.StatusCompleted)
	assert.Equal(t, base, *created.CompletedAt)

	// MarkComplete перезаписывает всегда
	task.Now = func() time.Time { return base.Add(5 * time.Hour) }
	created.MarkComplete()
	require.NotNil(t, created.CompletedAt)
	assert.Equal(t, base.Add(5*time.Hour), *created.CompletedAt)
	assert.Equal(t, task.StatusCompleted, created.Status)
}

// TestTask_IsOverdue тестирует признак просроченности
func TestTask_IsOverdue(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	freezeClock(t, base)

	pastDue := base.Add(-time.Hour)
	futureDue := base.Add(time.Hour)

	tests := []struct {
		name    string
		dueAt   *time.Time
		status  task.Status
		overdue bool
	}{
		{name: "past due and pending", dueAt: &pastDue, status: task.StatusTodo, overdue: true},
		{name: "past due but completed", dueAt: &pastDue, status: task.StatusCompleted, overdue: false},
		{name: "past due but cancelled", dueAt: &pastDue, status: task.StatusCancelled, overdue: false},
		{name: "future due", dueAt: &futureDue, status: task.StatusTodo, overdue: false},
		{name: "no due date", dueAt: nil, status: task.StatusTodo, overdue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := task.NewIDGenerator()
			created, err := task.NewWorkTask(gen, "Task", "", task.PriorityLow, tt.dueAt, "P", "A", 1)
			require.NoError(t, err)

			created.SetStatus(tt.status)
			assert.Equal(t, tt.overdue, created.IsOverdue())
		})
	}
}

// TestTask_DaysUntilDue тестирует подсчёт дней до дедлайна
func TestTask_DaysUntilDue(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	freezeClock(t, base)

	gen := task.NewIDGenerator()

	noDue, err := task.NewWorkTask(gen, "No due", "", task.PriorityLow, nil, "P", "A", 1)
	require.NoError(t, err)
	assert.Equal(t, -1, noDue.DaysUntilDue())

	due := base.Add(48 * time.Hour)
	withDue, err := task.NewWorkTask(gen, "Due soon", "", task.PriorityLow, &due, "P", "A", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, withDue.DaysUntilDue())
}

// TestTask_CompletionHoursAndVariance тестирует сценарий рабочей задачи:
// создана 3 дня назад, оценка 16 часов, перерасход +56
func TestTask_CompletionHoursAndVariance(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	freezeClock(t, base)

	gen := task.NewIDGenerator()
	due := base.Add(48 * time.Hour)
	created, err := task.NewWorkTask(gen, "Proposal", "", task.PriorityHigh, &due, "Q1", "John", 16)
	require.NoError(t, err)

	assert.False(t, created.IsOverdue())
	assert.Equal(t, float64(-1), created.CompletionHours())

	_, ok := created.HoursVariance()
	assert.False(t, ok, "перерасход не считается до завершения")

	// сдвигаем создание на 3 дня в прошлое и завершаем
	created.CreatedAt = base.Add(-72 * time.Hour)
	created.MarkComplete()

	assert.InDelta(t, 72.0, created.CompletionHours(), 0.01)

	variance, ok := created.HoursVariance()
	require.True(t, ok)
	assert.InDelta(t, 56.0, variance, 0.01)
}

// TestTask_VarianceOnlyForWork тестирует, что перерасход есть только у рабочих задач
func TestTask_VarianceOnlyForWork(t *testing.T) {
	gen := task.NewIDGenerator()
	personal, err := task.NewPersonalTask(gen, "P", "", task.PriorityLow, nil, "", false, 0)
	require.NoError(t, err)

	personal.MarkComplete()
	_, ok := personal.HoursVariance()
	assert.False(t, ok)
}

// TestTask_NextOccurrence тестирует следующее повторение личной задачи
func TestTask_NextOccurrence(t *testing.T) {
	gen := task.NewIDGenerator()
	due := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	recurring, err := task.NewPersonalTask(gen, "Workout", "", task.PriorityLow, &due, "Gym", true, 3)
	require.NoError(t, err)
	next := recurring.NextOccurrence()
	require.NotNil(t, next)
	assert.Equal(t, due.AddDate(0, 0, 3), *next)

	oneOff, err := task.NewPersonalTask(gen, "Dentist", "", task.PriorityLow, &due, "", false, 0)
	require.NoError(t, err)
	assert.Nil(t, oneOff.NextOccurrence())

	noDue, err := task.NewPersonalTask(gen, "Stretching", "", task.PriorityLow, nil, "", true, 3)
	require.NoError(t, err)
	assert.Nil(t, noDue.NextOccurrence())
}

// TestShoppingDetails тестирует список покупок и экономию
func TestShoppingDetails(t *testing.T) {
	gen := task.NewIDGenerator()
	created, err := task.NewShoppingTask(gen, "Groceries", "", task.PriorityLow, nil, 150.00, "Whole Foods")
	require.NoError(t, err)

	details := created.Shopping
	details.AddItem("Milk")
	details.AddItem("Bread")
	details.AddItem("Milk")
	assert.Equal(t, []string{"Milk", "Bread", "Milk"}, details.Items)
	assert.Equal(t, 3, details.ItemCount())

	// убирается только первое вхождение
	details.RemoveItem("Milk")
	assert.Equal(t, []string{"Bread", "Milk"}, details.Items)

	// отсутствующий товар — no-op
	details.RemoveItem("Caviar")
	assert.Equal(t, []string{"Bread", "Milk"}, details.Items)

	details.SetActualCost(120.00)
	assert.InDelta(t, 30.00, details.Savings(), 0.001)
}

// TestInvalidTaskError тестирует развёртывание ошибки валидации
func TestInvalidTaskError(t *testing.T) {
	gen := task.NewIDGenerator()
	_, err := task.NewWorkTask(gen, "", "", task.PriorityLow, nil, "P", "A", 1)
	require.Error(t, err)

	assert.True(t, errors.Is(err, task.ErrInvalidTask))
	assert.Equal(t, "Task title cannot be empty!", err.Error())
}
