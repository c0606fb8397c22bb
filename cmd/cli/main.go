package main

import (
	"context"
	"fmt"
	"os"

	"taskManager/internal/config"
	"taskManager/internal/logger"
	"taskManager/internal/menu"
	"taskManager/internal/models/task"
	"taskManager/internal/report"
	"taskManager/internal/repository/task/inmemory"
	"taskManager/internal/service"
	"taskManager/internal/statistics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Development)
	defer logger.Sync()

	taskRepo := inmemory.NewTaskStorage()
	taskService := service.NewTaskService(taskRepo, task.NewIDGenerator())
	taskStats := statistics.New(taskRepo)
	reports := report.NewGenerator(taskRepo, taskStats, cfg.UpcomingWindow())

	ctx := context.Background()

	if cfg.Seed.DemoData {
		menu.SeedDemoData(ctx, &taskService)
	}

	logger.Info("Приложение запущено")
	m := menu.New(os.Stdin, os.Stdout, &taskService, &reports, cfg.UpcomingWindow())
	m.Run(ctx)
}
