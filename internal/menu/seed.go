package menu

import (
	"context"
	"time"

	"taskManager/internal/logger"
	"taskManager/internal/models/task"
	"taskManager/internal/service"
)

// SeedDemoData наполняет хранилище демонстрационными задачами.
// Ошибки только логируются: демо-данные не должны ронять приложение.
func SeedDemoData(ctx context.Context, svc *service.TaskService) {
	now := task.Now()

	due := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	if _, err := svc.CreateWorkTask(ctx,
		"Complete Project Proposal",
		"Draft and finalize Q1 project proposal for management review",
		task.PriorityHigh, due(2), "Q1 Initiative", "John Doe", 16,
	); err != nil {
		logger.Error("Seed: Ошибка загрузки демо-данных", err)
		return
	}

	if _, err := svc.CreateWorkTask(ctx,
		"Code Review",
		"Review pull requests from team members",
		task.PriorityMedium, due(1), "Development", "Team", 4,
	); err != nil {
		logger.Error("Seed: Ошибка загрузки демо-данных", err)
		return
	}

	if _, err := svc.CreatePersonalTask(ctx,
		"Dentist Appointment",
		"Annual dental checkup",
		task.PriorityMedium, due(5), "Downtown Dental Clinic", false, 0,
	); err != nil {
		logger.Error("Seed: Ошибка загрузки демо-данных", err)
		return
	}

	groceries, err := svc.CreateShoppingTask(ctx,
		"Weekly Groceries",
		"Buy groceries for the week",
		task.PriorityLow, due(1), 150.00, "Whole Foods",
	)
	if err != nil {
		logger.Error("Seed: Ошибка загрузки демо-данных", err)
		return
	}
	for _, item := range []string{"Milk", "Bread", "Eggs", "Vegetables"} {
		svc.AddShoppingItem(ctx, groceries.ID, item)
	}

	workout, err := svc.CreatePersonalTask(ctx,
		"Morning Workout",
		"30 minute cardio session",
		task.PriorityMedium, due(-1), "Gym", true, 1,
	)
	if err != nil {
		logger.Error("Seed: Ошибка загрузки демо-данных", err)
		return
	}
	svc.CompleteTask(ctx, workout.ID)

	logger.Info("Seed: Демо-данные загружены")
}
