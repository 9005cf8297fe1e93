// Package errors defines the error types shared across the notifier.
package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConnection is returned when a connection error occurs
	ErrConnection = errors.New("connection error")

	// ErrUnauthorized is returned when an operation is not authorized
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotificationFailed is returned when a channel could not deliver a notification
	ErrNotificationFailed = errors.New("notification failed")
)

// DomainError represents a domain-specific error with context
type DomainError struct {
	Type    error
	Message string
	Details map[string]interface{}
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
	return e.Type.Error()
}

// Is implements errors.Is interface
func (e *DomainError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

// Unwrap returns the error type and, when set, the underlying cause
func (e *DomainError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Type}
	}
	return []error{e.Type, e.Err}
}

// NewDomainError creates a new domain error
func NewDomainError(errType error, message string) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// WrapDomainError creates a domain error keeping err as its cause
func WrapDomainError(errType error, err error) *DomainError {
	domainErr := NewDomainError(errType, err.Error())
	domainErr.Err = err
	return domainErr
}

// WithDetails adds details to the domain error
func (e *DomainError) WithDetails(key string, value interface{}) *DomainError {
	e.Details[key] = value
	return e
}

// ValidationError represents a validation error with field-specific errors
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d fields", len(e.Fields))
}

// Is implements errors.Is interface
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// AddFieldError adds a field-specific error
func (e *ValidationError) AddFieldError(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors returns true if there are any field errors
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// NotificationFailedError is returned by a channel when it could not deliver
// a notification to the subscription target.
type NotificationFailedError struct {
	Channel string
	Target  string
	Err     error
}

// NewNotificationFailedError wraps err with the channel and subscription target.
func NewNotificationFailedError(channel, target string, err error) *NotificationFailedError {
	return &NotificationFailedError{
		Channel: channel,
		Target:  target,
		Err:     err,
	}
}

// Error implements the error interface
func (e *NotificationFailedError) Error() string {
	return fmt.Sprintf("failed to send %s notification to %s: %v", e.Channel, e.Target, e.Err)
}

// Is implements errors.Is interface
func (e *NotificationFailedError) Is(target error) bool {
	return target == ErrNotificationFailed
}

// Unwrap implements errors.Unwrap interface
func (e *NotificationFailedError) Unwrap() error {
	return e.Err
}

// RepositoryError represents a repository-specific error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s on %s: %v",
		e.Operation, e.Entity, e.Err)
}

// Unwrap implements errors.Unwrap interface
func (e *RepositoryError) Unwrap() error {
	return e.Err
}
