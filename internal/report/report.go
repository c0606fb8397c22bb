package report

import (
	"context"
	"fmt"
	"strings"

	"taskManager/internal/models/task"
	"taskManager/internal/statistics"
)

// TaskStore — запросы хранилища, нужные отчётам помимо статистики
type TaskStore interface {
	Overdue(ctx context.Context) []*task.Task
	Upcoming(ctx context.Context, windowDays int) []*task.Task
}

// Generator собирает текстовые отчёты. Состояния нет — только ссылки,
// каждый отчёт строится по текущему снимку. Ничего не печатает.
type Generator struct {
	store      TaskStore
	stats      statistics.Statistics
	windowDays int
}

func NewGenerator(store TaskStore, stats statistics.Statistics, windowDays int) Generator {
	return Generator{
		store:      store,
		stats:      stats,
		windowDays: windowDays,
	}
}

func (g *Generator) Summary(ctx context.Context) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("╔════════════════════════════════════════╗\n")
	b.WriteString("║     TASK MANAGEMENT SUMMARY REPORT     ║\n")
	b.WriteString("╚════════════════════════════════════════╝\n")

	b.WriteString("\n--- Quick Stats ---\n")
	fmt.Fprintf(&b, "Total Tasks: %d\n", g.stats.Total(ctx))
	fmt.Fprintf(&b, "Completion Rate: %.1f%%\n", g.stats.CompletionRate(ctx))

	if overdue := g.stats.OverdueCount(ctx); overdue > 0 {
		fmt.Fprintf(&b, "⚠ OVERDUE: %d tasks\n", overdue)
	}
	if urgent := g.stats.UrgentPendingCount(ctx); urgent > 0 {
		fmt.Fprintf(&b, "⚠ URGENT: %d tasks\n", urgent)
	}

	// распределения — только непустые корзины
	b.WriteString("\n--- Status Distribution ---\n")
	for _, status := range task.Statuses() {
		if count := g.stats.TotalByStatus(ctx, status); count > 0 {
			fmt.Fprintf(&b, "%-15s : %d\n", status.DisplayName(), count)
		}
	}

	b.WriteString("\n--- Category Distribution ---\n")
	for _, category := range task.Categories() {
		if count := g.stats.TotalByCategory(ctx, category); count > 0 {
			fmt.Fprintf(&b, "%-15s : %d\n", category.String(), count)
		}
	}

	return b.String()
}

func (g *Generator) Detailed(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(g.Summary(ctx))

	if overdueTasks := g.store.Overdue(ctx); len(overdueTasks) > 0 {
		b.WriteString("\n--- OVERDUE TASKS ---\n")
		for i, t := range overdueTasks {
			fmt.Fprintf(&b, "%d. [ID:%d] %s (%s)\n", i+1, t.ID, t.Title, t.Priority)
		}
	}

	if upcoming := g.store.Upcoming(ctx, g.windowDays); len(upcoming) > 0 {
		fmt.Fprintf(&b, "\n--- UPCOMING (Next %d Days) ---\n", g.windowDays)
		for i, t := range upcoming {
			fmt.Fprintf(&b, "%d. [ID:%d] %s - Due in %d days\n", i+1, t.ID, t.Title, t.DaysUntilDue())
		}
	}

	return b.String()
}

// ProductivityAnalysis — качественные оценки с точными порогами:
// среднее время <24/<72, доля завершённых >=80/>=60/>=40,
// доля просроченных ==0/<10.
func (g *Generator) ProductivityAnalysis(ctx context.Context) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("═══════════════════════════════════════\n")
	b.WriteString("      PRODUCTIVITY ANALYSIS\n")
	b.WriteString("═══════════════════════════════════════\n")

	if avg := g.stats.AverageCompletionHours(ctx); avg > 0 {
		fmt.Fprintf(&b, "\nAverage task completion: %.1f hours", avg)
		if avg < 24 {
			b.WriteString(" ✓ Excellent!")
		} else if avg < 72 {
			b.WriteString(" ✓ Good")
		} else {
			b.WriteString(" - Could improve")
		}
		b.WriteString("\n")
	}

	completionRate := g.stats.CompletionRate(ctx)
	fmt.Fprintf(&b, "\nCompletion rate: %.1f%%", completionRate)
	if completionRate >= 80 {
		b.WriteString(" ✓ Outstanding!")
	} else if completionRate >= 60 {
		b.WriteString(" ✓ Good progress")
	} else if completionRate >= 40 {
		b.WriteString(" - Room for improvement")
	} else {
		b.WriteString(" - Focus on completing tasks")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "\nMost common priority: %s\n", g.stats.MostCommonPriority(ctx))
	fmt.Fprintf(&b, "Most active category: %s\n", g.stats.MostActiveCategory(ctx))

	if total := g.stats.Total(ctx); total > 0 {
		overdueRate := float64(g.stats.OverdueCount(ctx)) * 100.0 / float64(total)
		fmt.Fprintf(&b, "\nOverdue rate: %.1f%%", overdueRate)
		if overdueRate == 0 {
			b.WriteString(" ✓ Perfect!")
		} else if overdueRate < 10 {
			b.WriteString(" ✓ Well managed")
		} else {
			b.WriteString(" ⚠ Needs attention")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Statistics — развёрнутая сводка для пункта меню «статистика»
func (g *Generator) Statistics(ctx context.Context) string {
	var b strings.Builder

	b.WriteString("\n========================================\n")
	b.WriteString("         TASK STATISTICS\n")
	b.WriteString("========================================\n")

	b.WriteString("\n--- Overall Statistics ---\n")
	fmt.Fprintf(&b, "Total tasks: %d\n", g.stats.Total(ctx))
	fmt.Fprintf(&b, "Completed: %d\n", g.stats.TotalByStatus(ctx, task.StatusCompleted))
	fmt.Fprintf(&b, "In Progress: %d\n", g.stats.TotalByStatus(ctx, task.StatusInProgress))
	fmt.Fprintf(&b, "To Do: %d\n", g.stats.TotalByStatus(ctx, task.StatusTodo))
	fmt.Fprintf(&b, "Blocked: %d\n", g.stats.TotalByStatus(ctx, task.StatusBlocked))
	fmt.Fprintf(&b, "Cancelled: %d\n", g.stats.TotalByStatus(ctx, task.StatusCancelled))

	fmt.Fprintf(&b, "\nCompletion rate: %.1f%%\n", g.stats.CompletionRate(ctx))
	if avg := g.stats.AverageCompletionHours(ctx); avg > 0 {
		fmt.Fprintf(&b, "Average completion time: %.1f hours\n", avg)
	}

	b.WriteString("\n--- Priority Breakdown ---\n")
	for _, priority := range task.Priorities() {
		fmt.Fprintf(&b, "%s: %d\n", priority, g.stats.TotalByPriority(ctx, priority))
	}

	b.WriteString("\n--- Category Breakdown ---\n")
	for _, category := range task.Categories() {
		fmt.Fprintf(&b, "%s: %d\n", category, g.stats.TotalByCategory(ctx, category))
	}

	b.WriteString("\n--- Alerts ---\n")
	overdueCount := g.stats.OverdueCount(ctx)
	urgentCount := g.stats.UrgentPendingCount(ctx)

	if overdueCount > 0 {
		fmt.Fprintf(&b, "⚠ OVERDUE tasks: %d\n", overdueCount)
	}
	if urgentCount > 0 {
		fmt.Fprintf(&b, "⚠ High priority pending: %d\n", urgentCount)
	}
	if overdueCount == 0 && urgentCount == 0 {
		b.WriteString("✓ No urgent issues!\n")
	}

	return b.String()
}
