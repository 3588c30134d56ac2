package repo

import "sync"

const (
	CollectionUsers      = "users"
	CollectionPayments   = "payments"
	CollectionFacilities = "facilities"
)

// Sequence 每个集合一个自增计数器，从 1 开始，删除后也不回收
type Sequence struct {
	mu   sync.Mutex
	next map[string]int64
}

func NewSequence() *Sequence { return &Sequence{next: make(map[string]int64)} }

func (s *Sequence) Next(collection string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next[collection]++
	return s.next[collection]
}

// Peek 返回最近一次分配的 id（未分配为 0）
func (s *Sequence) Peek(collection string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next[collection]
}
