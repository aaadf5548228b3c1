package todo

import "fmt"

// ValidationError 参数校验失败 / ValidationError means a required argument is
// missing or empty. It is raised at the tool boundary, before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError 引用的待办不存在 / NotFoundError means the referenced todo id
// no longer exists (stale reference, or deleted between resolution and execution).
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo with id %s not found", e.ID)
}

// StoreError 底层存储失败 / StoreError wraps a failure of the underlying store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
