package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"taskManager/internal/logger"
	"taskManager/internal/models/task"
	"taskManager/internal/report"
	"taskManager/internal/service"

	"go.uber.org/zap"
)

// Menu — интерактивный текстовый слой. Весь ввод/вывод живёт здесь:
// ядро отдаёт строки и ошибки, меню их печатает. Кривой числовой ввод
// до ядра не доходит.
type Menu struct {
	in         *bufio.Scanner
	out        io.Writer
	service    *service.TaskService
	reports    *report.Generator
	windowDays int
}

func New(in io.Reader, out io.Writer, svc *service.TaskService, reports *report.Generator, windowDays int) *Menu {
	return &Menu{
		in:         bufio.NewScanner(in),
		out:        out,
		service:    svc,
		reports:    reports,
		windowDays: windowDays,
	}
}

func (m *Menu) Run(ctx context.Context) {
	fmt.Fprintln(m.out, "╔════════════════════════════════════════╗")
	fmt.Fprintln(m.out, "║    TASK MANAGEMENT SYSTEM v1.0         ║")
	fmt.Fprintln(m.out, "║    Organize your work & life!          ║")
	fmt.Fprintln(m.out, "╚════════════════════════════════════════╝")

	for {
		m.printMainMenu()

		choice, err := m.readInt("Enter your choice: ")
		if err != nil {
			fmt.Fprintln(m.out, "\n⚠ Error: Please enter a valid number!")
			m.waitForUser()
			continue
		}

		switch choice {
		case 1:
			m.createTask(ctx)
		case 2:
			m.viewAllTasks(ctx)
		case 3:
			m.viewTasksByStatus(ctx)
		case 4:
			m.viewTasksByCategory(ctx)
		case 5:
			m.searchTasks(ctx)
		case 6:
			m.updateTask(ctx)
		case 7:
			m.completeTask(ctx)
		case 8:
			m.deleteTask(ctx)
		case 9:
			fmt.Fprintln(m.out, m.reports.Statistics(ctx))
		case 10:
			m.generateReports(ctx)
		case 11:
			m.viewOverdueAndUpcoming(ctx)
		case 0:
			fmt.Fprintln(m.out, "\n✓ Thank you for using Task Management System!")
			fmt.Fprintln(m.out, "Your productivity matters. See you next time!")
			logger.Info("Menu: Завершение работы по команде пользователя")
			return
		default:
			fmt.Fprintln(m.out, "\n⚠ Invalid choice! Please try again.")
		}

		m.waitForUser()
	}
}

func (m *Menu) printMainMenu() {
	fmt.Fprintln(m.out, "\n╔════════════════════════════════════════╗")
	fmt.Fprintln(m.out, "║           MAIN MENU                    ║")
	fmt.Fprintln(m.out, "╠════════════════════════════════════════╣")
	fmt.Fprintln(m.out, "║  1. Create New Task                    ║")
	fmt.Fprintln(m.out, "║  2. View All Tasks                     ║")
	fmt.Fprintln(m.out, "║  3. Filter by Status                   ║")
	fmt.Fprintln(m.out, "║  4. Filter by Category                 ║")
	fmt.Fprintln(m.out, "║  5. Search Tasks                       ║")
	fmt.Fprintln(m.out, "║  6. Update Task                        ║")
	fmt.Fprintln(m.out, "║  7. Mark Task Complete                 ║")
	fmt.Fprintln(m.out, "║  8. Delete Task                        ║")
	fmt.Fprintln(m.out, "║  9. View Statistics                    ║")
	fmt.Fprintln(m.out, "║ 10. Generate Reports                   ║")
	fmt.Fprintln(m.out, "║ 11. Overdue & Upcoming Tasks           ║")
	fmt.Fprintln(m.out, "║  0. Exit                               ║")
	fmt.Fprintln(m.out, "╚════════════════════════════════════════╝")
}

func (m *Menu) readLine(prompt string) string {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) readInt(prompt string) (int, error) {
	return strconv.Atoi(m.readLine(prompt))
}

func (m *Menu) readFloat(prompt string) (float64, error) {
	return strconv.ParseFloat(m.readLine(prompt), 64)
}

func (m *Menu) waitForUser() {
	m.readLine("\nPress Enter to continue...")
}

// печать ошибки ядра: BusinessError несёт готовый текст
func (m *Menu) printError(err error) {
	var busErr *service.BusinessError
	if errors.As(err, &busErr) {
		fmt.Fprintln(m.out, "⚠ "+busErr.Message)
		return
	}
	fmt.Fprintln(m.out, "⚠ An error occurred: "+err.Error())
}

func (m *Menu) createTask(ctx context.Context) {
	fmt.Fprintln(m.out, "\n=== CREATE NEW TASK ===")

	title := m.readLine("Enter task title: ")
	description := m.readLine("Enter description: ")

	fmt.Fprintln(m.out, "\nSelect Priority:")
	for i, p := range task.Priorities() {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, p.Label())
	}
	priorityChoice, err := m.readInt("Choice: ")
	if err != nil || priorityChoice < 1 || priorityChoice > len(task.Priorities()) {
		logger.Warn("Menu: Неверный выбор приоритета", zap.Int("choice", priorityChoice))
		fmt.Fprintln(m.out, "⚠ Invalid number format!")
		return
	}
	priority := task.Priorities()[priorityChoice-1]

	fmt.Fprintln(m.out, "\nSelect Task Type:")
	fmt.Fprintln(m.out, "1. Work Task")
	fmt.Fprintln(m.out, "2. Personal Task")
	fmt.Fprintln(m.out, "3. Shopping Task")
	typeChoice, err := m.readInt("Choice: ")
	if err != nil {
		fmt.Fprintln(m.out, "⚠ Invalid number format!")
		return
	}

	daysUntilDue, err := m.readInt("\nDays until due (0 for no due date): ")
	if err != nil {
		fmt.Fprintln(m.out, "⚠ Invalid number format!")
		return
	}
	var dueAt *time.Time
	if daysUntilDue > 0 {
		due := task.Now().AddDate(0, 0, daysUntilDue)
		dueAt = &due
	}

	var created *task.Task

	switch typeChoice {
	case 1:
		project := m.readLine("Project name: ")
		assignedTo := m.readLine("Assigned to: ")
		hours, err := m.readInt("Estimated hours: ")
		if err != nil {
			fmt.Fprintln(m.out, "⚠ Invalid number format!")
			return
		}
		created, err = m.service.CreateWorkTask(ctx, title, description, priority, dueAt, project, assignedTo, hours)
		if err != nil {
			m.printError(err)
			return
		}

	case 2:
		location := m.readLine("Location (optional): ")
		recurring := strings.EqualFold(m.readLine("Is recurring? (yes/no): "), "yes")
		recurDays := 0
		if recurring {
			recurDays, err = m.readInt("Repeat every X days: ")
			if err != nil {
				fmt.Fprintln(m.out, "⚠ Invalid number format!")
				return
			}
		}
		created, err = m.service.CreatePersonalTask(ctx, title, description, priority, dueAt, location, recurring, recurDays)
		if err != nil {
			m.printError(err)
			return
		}

	case 3:
		budget, err := m.readFloat("Estimated budget: $")
		if err != nil {
			fmt.Fprintln(m.out, "⚠ Invalid number format!")
			return
		}
		store := m.readLine("Store: ")
		created, err = m.service.CreateShoppingTask(ctx, title, description, priority, dueAt, budget, store)
		if err != nil {
			m.printError(err)
			return
		}

		if strings.EqualFold(m.readLine("\nAdd items to shopping list? (yes/no): "), "yes") {
			for {
				item := m.readLine("Enter item (or 'done' to finish): ")
				if strings.EqualFold(item, "done") {
					break
				}
				if item != "" {
					m.service.AddShoppingItem(ctx, created.ID, item)
				}
			}
		}

	default:
		logger.Warn("Menu: Неверный выбор варианта задачи", zap.Int("choice", typeChoice))
		fmt.Fprintln(m.out, "⚠ Invalid task type!")
		return
	}

	fmt.Fprintf(m.out, "Task added successfully! ID: %d\n", created.ID)
	fmt.Fprintln(m.out, "\n✓ Task created successfully!")
}

func (m *Menu) listTasks(tasks []*task.Task, title string) {
	if len(tasks) == 0 {
		fmt.Fprintln(m.out, "No tasks found.")
		return
	}

	fmt.Fprintf(m.out, "\n=== %s (%d tasks) ===\n", title, len(tasks))
	for i, t := range tasks {
		fmt.Fprintf(m.out, "\n%d.\n", i+1)
		fmt.Fprint(m.out, t.Render())
	}
}

func (m *Menu) viewAllTasks(ctx context.Context) {
	all := m.service.AllTasks(ctx)
	if len(all) == 0 {
		fmt.Fprintln(m.out, "No tasks found.")
		return
	}

	fmt.Fprintf(m.out, "\n=== All Tasks (%d total) ===\n", len(all))
	for i, t := range all {
		fmt.Fprintf(m.out, "\n%d.\n", i+1)
		fmt.Fprint(m.out, t.Render())
	}
}

func (m *Menu) viewTasksByStatus(ctx context.Context) {
	fmt.Fprintln(m.out, "\n=== FILTER BY STATUS ===")
	fmt.Fprintln(m.out, "Select status:")
	for i, status := range task.Statuses() {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, status.DisplayName())
	}

	choice, err := m.readInt("Choice: ")
	if err != nil || choice < 1 || choice > len(task.Statuses()) {
		fmt.Fprintln(m.out, "⚠ Invalid selection!")
		return
	}

	selected := task.Statuses()[choice-1]
	m.listTasks(m.service.FilterByStatus(ctx, selected), selected.DisplayName()+" Tasks")
}

func (m *Menu) viewTasksByCategory(ctx context.Context) {
	fmt.Fprintln(m.out, "\n=== FILTER BY CATEGORY ===")
	fmt.Fprintln(m.out, "Select category:")
	for i, category := range task.Categories() {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, category)
	}

	choice, err := m.readInt("Choice: ")
	if err != nil || choice < 1 || choice > len(task.Categories()) {
		fmt.Fprintln(m.out, "⚠ Invalid selection!")
		return
	}

	selected := task.Categories()[choice-1]
	m.listTasks(m.service.FilterByCategory(ctx, selected), selected.String()+" Tasks")
}

func (m *Menu) searchTasks(ctx context.Context) {
	fmt.Fprintln(m.out, "\n=== SEARCH TASKS ===")
	term := m.readLine("Enter search term: ")

	results, err := m.service.SearchByTitle(ctx, term)
	if err != nil {
		m.printError(err)
		return
	}
	m.listTasks(results, "Search Results for '"+term+"'")
}

func (m *Menu) updateTask(ctx context.Context) {
	fmt.Fprintln(m.out, "\n=== UPDATE TASK ===")
	id, err := m.readInt("Enter task ID: ")
	if err != nil {
		fmt.Fprintln(m.out, "⚠ Invalid input!")
		return
	}

	current, ok := m.service.GetTaskByID(ctx, id)
	if !ok {
		fmt.Fprintln(m.out, "⚠ Task not found!")
		return
	}

	fmt.Fprintln(m.out, "\nCurrent task:")
	fmt.Fprint(m.out, current.Render())

	fmt.Fprintln(m.out, "\nWhat would you like to update?")
	fmt.Fprintln(m.out, "1. Status")
	fmt.Fprintln(m.out, "2. Priority")
	fmt.Fprintln(m.out, "3. Title")
	choice, err := m.readInt("Choice: ")
	if err != nil {
		fmt.Fprintln(m.out, "⚠ Invalid input!")
		return
	}

	switch choice {
	case 1:
		fmt.Fprintln(m.out, "\nSelect new status:")
		for i, status := range task.Statuses() {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, status.DisplayName())
		}
		statusChoice, err := m.readInt("Choice: ")
		if err != nil || statusChoice < 1 || statusChoice > len(task.Statuses()) {
			fmt.Fprintln(m.out, "⚠ Invalid input!")
			return
		}
		newStatus := task.Statuses()[statusChoice-1]
		if _, err := m.service.UpdateTaskStatus(ctx, id, newStatus); err != nil {
			m.printError(err)
			return
		}
		fmt.Fprintf(m.out, "Task status updated to: %s\n", newStatus.DisplayName())

	case 2:
		fmt.Fprintln(m.out, "\nSelect new priority:")
		for i, p := range task.Priorities() {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, p.Label())
		}
		priorityChoice, err := m.readInt("Choice: ")
		if err != nil || priorityChoice < 1 || priorityChoice > len(task.Priorities()) {
			fmt.Fprintln(m.out, "⚠ Invalid input!")
			return
		}
		if err := m.service.UpdateTask(ctx, id, task.WithPriority(task.Priorities()[priorityChoice-1])); err != nil {
			m.printError(err)
			return
		}
		fmt.Fprintln(m.out, "✓ Priority updated!")

	case 3:
		newTitle := m.readLine("Enter new title: ")
		if err := m.service.RenameTask(ctx, id, newTitle); err != nil {
			m.printError(err)
			return
		}
		fmt.Fprintln(m.out, "✓ Title updated!")

	default:
		fmt.Fprintln(m.out, "⚠ Invalid choice!")
	}
}

func (m *Menu) completeTask(ctx context.Context) {
	fmt.Fprintln(m.out, "\n=== MARK TASK COMPLETE ===")
	id, err := m.readInt("Enter task ID: ")
	if err != nil {
		fmt.Fprintln(m.out, "⚠ Invalid ID!")
		return
	}

	if _, err := m.service.CompleteTask(ctx, id); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, "✓ Task marked as complete!")
}

func (m *Menu) deleteTask(ctx context.Context) {
	fmt.Fprintln(m.out, "\n=== DELETE TASK ===")
	id, err := m.readInt("Enter task ID: ")
	if err != nil {
		fmt.Fprintln(m.out, "⚠ Invalid ID!")
		return
	}

	current, ok := m.service.GetTaskByID(ctx, id)
	if !ok {
		fmt.Fprintln(m.out, "⚠ Task not found!")
		return
	}

	fmt.Fprintln(m.out, "\nAre you sure you want to delete:")
	fmt.Fprintln(m.out, current.Title)
	if !strings.EqualFold(m.readLine("Type 'yes' to confirm: "), "yes") {
		fmt.Fprintln(m.out, "Deletion cancelled.")
		return
	}

	if err := m.service.DeleteTask(ctx, id); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, "✓ Task deleted!")
}

func (m *Menu) generateReports(ctx context.Context) {
	fmt.Fprintln(m.out, "\n=== GENERATE REPORTS ===")
	fmt.Fprintln(m.out, "1. Summary Report")
	fmt.Fprintln(m.out, "2. Detailed Report")
	fmt.Fprintln(m.out, "3. Productivity Analysis")

	choice, err := m.readInt("Choice: ")
	if err != nil {
		fmt.Fprintln(m.out, "⚠ Invalid input!")
		return
	}

	switch choice {
	case 1:
		fmt.Fprintln(m.out, m.reports.Summary(ctx))
	case 2:
		fmt.Fprintln(m.out, m.reports.Detailed(ctx))
	case 3:
		fmt.Fprintln(m.out, m.reports.ProductivityAnalysis(ctx))
	default:
		fmt.Fprintln(m.out, "⚠ Invalid choice!")
	}
}

func (m *Menu) viewOverdueAndUpcoming(ctx context.Context) {
	fmt.Fprintln(m.out, "\n=== OVERDUE & UPCOMING TASKS ===")

	if overdue := m.service.OverdueTasks(ctx); len(overdue) > 0 {
		m.listTasks(overdue, "⚠ OVERDUE Tasks")
	} else {
		fmt.Fprintln(m.out, "\n✓ No overdue tasks!")
	}

	if upcoming := m.service.UpcomingTasks(ctx, m.windowDays); len(upcoming) > 0 {
		m.listTasks(upcoming, fmt.Sprintf("Upcoming Tasks (Next %d Days)", m.windowDays))
	} else {
		fmt.Fprintf(m.out, "\n✓ No upcoming tasks in the next %d days.\n", m.windowDays)
	}

	recent := m.service.RecentlyCompleted(ctx)
	if len(recent) == 0 {
		fmt.Fprintln(m.out, "No recently completed tasks.")
		return
	}

	fmt.Fprintln(m.out, "\n=== Recently Completed Tasks ===")
	for i, t := range recent {
		fmt.Fprintf(m.out, "\n%d.\n", i+1)
		fmt.Fprint(m.out, t.RenderBasic())
	}
}
