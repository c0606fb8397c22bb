package task

import (
	"fmt"
	"math"
	"strings"
)

const timeLayout = "2006-01-02 15:04"

// RenderBasic — общая шапка задачи. Чистая функция: только строит
// строку, никакого вывода.
func (t *Task) RenderBasic() string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nID: %d | %s %s\n", t.ID, t.Category.Icon(), t.Title)
	fmt.Fprintf(&b, "Type: %s\n", t.Kind)
	fmt.Fprintf(&b, "Description: %s\n", t.Description)
	fmt.Fprintf(&b, "Priority: %s\n", t.Priority.Label())
	fmt.Fprintf(&b, "Status: %s\n", t.Status.DisplayName())
	fmt.Fprintf(&b, "Created: %s\n", t.CreatedAt.Format(timeLayout))

	if t.DueAt != nil {
		fmt.Fprintf(&b, "Due: %s\n", t.DueAt.Format(timeLayout))
		if t.IsOverdue() {
			b.WriteString(">>> OVERDUE! <<<\n")
		} else if !t.Status.IsComplete() {
			fmt.Fprintf(&b, "Days until due: %d\n", t.DaysUntilDue())
		}
	}

	if t.CompletedAt != nil {
		fmt.Fprintf(&b, "Completed: %s\n", t.CompletedAt.Format(timeLayout))
		fmt.Fprintf(&b, "Completion time: %.1f hours\n", t.CompletionHours())
	}

	return b.String()
}

// Render — шапка + блок варианта
func (t *Task) Render() string {
	var b strings.Builder
	b.WriteString(t.RenderBasic())

	switch t.Kind {
	case KindWork:
		t.renderWork(&b)
	case KindPersonal:
		t.renderPersonal(&b)
	case KindShopping:
		t.renderShopping(&b)
	}

	return b.String()
}

func (t *Task) renderWork(b *strings.Builder) {
	d := t.Work
	fmt.Fprintf(b, "Project: %s\n", d.Project)
	fmt.Fprintf(b, "Assigned to: %s\n", d.AssignedTo)
	fmt.Fprintf(b, "Estimated hours: %d\n", d.EstimatedHours)

	// перерасход показываем только по завершённой задаче
	if variance, ok := t.HoursVariance(); ok {
		fmt.Fprintf(b, "Actual hours: %.1f\n", t.CompletionHours())
		sign := ""
		if variance > 0 {
			sign = "+"
		}
		fmt.Fprintf(b, "Variance: %s%.1f hours\n", sign, variance)
	}
}

func (t *Task) renderPersonal(b *strings.Builder) {
	d := t.Personal
	if d.Location != "" {
		fmt.Fprintf(b, "Location: %s\n", d.Location)
	}
	if d.Recurring {
		fmt.Fprintf(b, "Recurring: Every %d days\n", d.RecurDays)
	}
}

func (t *Task) renderShopping(b *strings.Builder) {
	d := t.Shopping
	fmt.Fprintf(b, "Store: %s\n", d.Store)
	fmt.Fprintf(b, "Estimated budget: $%.2f\n", d.EstimatedBudget)

	if d.ActualCost > 0 {
		fmt.Fprintf(b, "Actual cost: $%.2f\n", d.ActualCost)
		difference := d.ActualCost - d.EstimatedBudget
		if difference > 0 {
			fmt.Fprintf(b, "Over budget by: $%.2f\n", difference)
		} else {
			fmt.Fprintf(b, "Under budget by: $%.2f\n", math.Abs(difference))
		}
	}

	if len(d.Items) > 0 {
		fmt.Fprintf(b, "Shopping list (%d items):\n", len(d.Items))
		for i, item := range d.Items {
			fmt.Fprintf(b, "  %d. %s\n", i+1, item)
		}
	}
}
