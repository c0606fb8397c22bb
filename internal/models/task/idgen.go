package task

import "sync/atomic"

// IDGenerator выдаёт уникальные, монотонно растущие ID в рамках процесса.
// ID никогда не переиспользуются, даже после удаления задачи.
type IDGenerator struct {
	last atomic.Int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

func (g *IDGenerator) Next() int {
	return int(g.last.Add(1))
}
