// Package domain 定义实体、入参、过滤条件、仓储接口与错误分类。
//
// 各存储实现（memory / gorm / cached）负责把底层错误转换为这里的领域错误，
// transport 层只依赖这些错误做状态码映射。
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound 实体不存在
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate 唯一键冲突（用户名重复）
	ErrDuplicate = errors.New("duplicate: entity already exists")
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError 入参不符合实体约束，带字段级明细
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InvalidID 存储层对非正 id 的兜底拒绝
func InvalidID(id int64) error {
	return &ValidationError{Fields: []FieldError{{
		Field:   "id",
		Rule:    "gt",
		Message: fmt.Sprintf("must be a positive integer, got %d", id),
	}}}
}

// InternalError 存储实现内部的意外失败（后端不可用等），调用方可退避重试
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *InternalError) Unwrap() error { return e.Err }

func Internal(op string, err error) error {
	if err == nil {
		return nil
	}
	return &InternalError{Op: op, Err: err}
}

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
