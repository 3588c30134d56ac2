package repo

import (
	"sync"
	"time"

	"eco-waste-api/internal/domain"
)

// table 按主键存储并记录插入顺序；并发控制由持有者负责
type table[T any] struct {
	rows  map[int64]T
	order []int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) get(id int64) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

// put 新 id 追加到顺序表尾部，已有 id 原位替换
func (t *table[T]) put(id int64, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

// scan 按插入顺序遍历，fn 返回 false 时停止
func (t *table[T]) scan(fn func(T) bool) {
	for _, id := range t.order {
		if !fn(t.rows[id]) {
			return
		}
	}
}

// clock 保证同一仓储内时间戳不回退
type clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newClock(now func() time.Time) *clock {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &clock{now: now}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now()
	if t.Before(c.last) {
		t = c.last
	}
	c.last = t
	return t
}

type MemoryOptions struct {
	Now func() time.Time
	// Sequence 为空时新建；传入可让多个仓储共享计数器（测试用）
	Sequence *Sequence
}

// NewMemory 构造一组进程内仓储：用于测试和无数据库的本地运行
func NewMemory(opt MemoryOptions) domain.Repositories {
	seq := opt.Sequence
	if seq == nil {
		seq = NewSequence()
	}
	clk := newClock(opt.Now)
	return domain.Repositories{
		Users:      &MemoryUserRepo{seq: seq, rows: newTable[domain.User]()},
		Payments:   &MemoryPaymentRepo{seq: seq, clk: clk, rows: newTable[domain.Payment]()},
		Facilities: &MemoryFacilityRepo{seq: seq, clk: clk, rows: newTable[domain.Facility]()},
	}
}
