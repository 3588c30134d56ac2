// Package query 组合实体谓词，只读快照，不修改入参也不依赖全局状态。
package query

import "strings"

type Predicate[T any] func(T) bool

// All 全部满足；空列表恒真
func All[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

// Any 任一满足；空列表恒假
func Any[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p != nil && p(v) {
				return true
			}
		}
		return false
	}
}

func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// Filter 返回新切片（非 nil），保持输入顺序
func Filter[T any](items []T, ps ...Predicate[T]) []T {
	match := All(ps...)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// EqualIfSet want 为零值时不过滤
func EqualIfSet[T any, V comparable](want V, get func(T) V) Predicate[T] {
	var zero V
	if want == zero {
		return nil
	}
	return func(v T) bool { return get(v) == want }
}

// ContainsFold 大小写不敏感子串匹配，任一字段命中即可；needle 为空时不过滤
func ContainsFold[T any](needle string, fields ...func(T) string) Predicate[T] {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return nil
	}
	return func(v T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(v)), needle) {
				return true
			}
		}
		return false
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
