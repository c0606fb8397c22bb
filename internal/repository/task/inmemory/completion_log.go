package inmemory

import "taskManager/internal/models/task"

// размер журнала недавно завершённых задач
const completionLogCapacity = 10

// CompletionLog — ограниченный журнал завершённых задач,
// самые свежие в начале. Держит только ссылки: задача может быть
// уже удалена из хранилища, журнал это переживает.
// Дедупликации нет: повторное завершение добавляет запись заново,
// старый дубликат вытесняется только по ёмкости.
type CompletionLog struct {
	entries  []*task.Task
	capacity int
}

func NewCompletionLog() *CompletionLog {
	return &CompletionLog{capacity: completionLogCapacity}
}

func (l *CompletionLog) Push(t *task.Task) {
	l.entries = append([]*task.Task{t}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Entries отдаёт копию: журнал снаружи не изменить
func (l *CompletionLog) Entries() []*task.Task {
	out := make([]*task.Task, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *CompletionLog) Len() int {
	return len(l.entries)
}
