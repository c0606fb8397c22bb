package task

// Kind — тег варианта задачи. Ровно один payload должен быть заполнен.
type Kind int

const (
	KindWork Kind = iota
	KindPersonal
	KindShopping
)

func (k Kind) String() string {
	switch k {
	case KindWork:
		return "Work Task"
	case KindPersonal:
		return "Personal Task"
	case KindShopping:
		return "Shopping Task"
	default:
		return "Unknown Task"
	}
}

// категория жёстко привязана к варианту
func (k Kind) Category() Category {
	switch k {
	case KindWork:
		return CategoryWork
	case KindPersonal:
		return CategoryPersonal
	case KindShopping:
		return CategoryShopping
	default:
		return CategoryOther
	}
}

type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Level — числовой уровень приоритета (1..4)
func (p Priority) Level() int {
	return int(p)
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	case PriorityUrgent:
		return "URGENT"
	default:
		return "UNKNOWN"
	}
}

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low Priority"
	case PriorityMedium:
		return "Medium Priority"
	case PriorityHigh:
		return "High Priority"
	case PriorityUrgent:
		return "Urgent - Critical"
	default:
		return "Unknown Priority"
	}
}

// HIGH и URGENT считаются срочными
func (p Priority) IsUrgent() bool {
	return p == PriorityHigh || p == PriorityUrgent
}

type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusBlocked
	StatusCompleted
	StatusCancelled
)

func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusBlocked, StatusCompleted, StatusCancelled}
}

func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "TODO"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusBlocked:
		return "BLOCKED"
	case StatusCompleted:
		return "COMPLETED"
	case StatusCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

func (s Status) DisplayName() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusBlocked:
		return "Blocked"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// терминальные статусы: задача больше не в работе
func (s Status) IsComplete() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Category int

const (
	CategoryWork Category = iota
	CategoryPersonal
	CategoryShopping
	CategoryHealth
	CategoryEducation
	CategoryFinance
	CategoryOther
)

func Categories() []Category {
	return []Category{
		CategoryWork,
		CategoryPersonal,
		CategoryShopping,
		CategoryHealth,
		CategoryEducation,
		CategoryFinance,
		CategoryOther,
	}
}

func (c Category) String() string {
	switch c {
	case CategoryWork:
		return "WORK"
	case CategoryPersonal:
		return "PERSONAL"
	case CategoryShopping:
		return "SHOPPING"
	case CategoryHealth:
		return "HEALTH"
	case CategoryEducation:
		return "EDUCATION"
	case CategoryFinance:
		return "FINANCE"
	default:
		return "OTHER"
	}
}

func (c Category) Icon() string {
	return "[" + c.String() + "]"
}
