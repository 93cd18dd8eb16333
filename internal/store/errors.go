package store

import "fmt"

// ValidationError reports the first missing required field on create/update
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// DuplicateError reports a (name, category, deadline) collision with an
// existing project owned by the same user
type DuplicateError struct {
	Name     string
	Category string
	Deadline string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("a project with the same name, category and deadline already exists: %s / %s / %s",
		e.Name, e.Category, e.Deadline)
}

// RemoteError carries the persistence or object-storage service's message
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

// AuthError reports an operation attempted with no authenticated user
type AuthError struct{}

func (e *AuthError) Error() string {
	return "not logged in"
}

// NotFoundError reports a project id absent from the canonical collection
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project not found: %s", e.ID)
}
