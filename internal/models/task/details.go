package task

import "time"

type WorkDetails struct {
	Project        string
	AssignedTo     string
	EstimatedHours int
}

type PersonalDetails struct {
	Location  string
	Recurring bool
	RecurDays int
}

func (d *PersonalDetails) NextOccurrence(dueAt *time.Time) *time.Time {
	if !d.Recurring || dueAt == nil {
		return nil
	}
	next := dueAt.AddDate(0, 0, d.RecurDays)
	return &next
}

type ShoppingDetails struct {
	Items           []string
	EstimatedBudget float64
	ActualCost      float64
	Store           string
}

func (d *ShoppingDetails) AddItem(item string) {
	d.Items = append(d.Items, item)
}

// RemoveItem убирает первое вхождение; отсутствующий товар — no-op
func (d *ShoppingDetails) RemoveItem(item string) {
	for i, existing := range d.Items {
		if existing == item {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

func (d *ShoppingDetails) SetActualCost(cost float64) {
	d.ActualCost = cost
}

func (d *ShoppingDetails) Savings() float64 {
	return d.EstimatedBudget - d.ActualCost
}

func (d *ShoppingDetails) ItemCount() int {
	return len(d.Items)
}
